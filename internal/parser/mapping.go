package parser

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"crane-recon/internal/domain"
)

// fieldKeywords are the header fragments that identify each field.
// Order inside a list does not matter; the leftmost matching column wins.
var fieldKeywords = map[domain.Field][]string{
	domain.FieldDate:        {"fecha", "date", "fecha operación", "fecha valor"},
	domain.FieldDescription: {"descripción", "concepto", "description", "detalle", "movimiento"},
	domain.FieldAmount:      {"monto", "importe", "amount", "cantidad", "valor"},
	domain.FieldReference:   {"referencia", "reference", "folio", "número"},
	domain.FieldCredit:      {"abono", "crédito", "credit", "depósito"},
	domain.FieldDebit:       {"cargo", "débito", "debit", "retiro"},
}

// DetectMapping assigns each field the first header containing one of its
// keywords. Matching ignores case and accents. Fields without a match stay unset.
func DetectMapping(headers []string) domain.ColumnMapping {
	folded := make([]string, len(headers))
	for i, h := range headers {
		folded[i] = fold(h)
	}

	mapping := make(domain.ColumnMapping)
	for _, field := range domain.Fields {
		keywords := make([]string, len(fieldKeywords[field]))
		for i, kw := range fieldKeywords[field] {
			keywords[i] = fold(kw)
		}

	columns:
		for idx, header := range folded {
			for _, kw := range keywords {
				if strings.Contains(header, kw) {
					mapping[field] = idx
					break columns
				}
			}
		}
	}
	return mapping
}

// ValidateMapping checks that every assigned column exists in a sheet
// with columnCount columns.
func ValidateMapping(mapping domain.ColumnMapping, columnCount int) error {
	for field, idx := range mapping {
		if !field.IsValid() {
			return fmt.Errorf("unknown field %q: %w", field, domain.ErrInvalidMapping)
		}
		if idx < 0 || idx >= columnCount {
			return fmt.Errorf("column %d for field %q is out of range (0-%d): %w", idx, field, columnCount-1, domain.ErrInvalidMapping)
		}
	}
	return nil
}

// fold lower-cases s and strips diacritics
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}
