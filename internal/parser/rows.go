package parser

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"crane-recon/internal/domain"
	"crane-recon/pkg/logger"
)

const (
	// serialEpochOffset is the spreadsheet serial of 1970-01-01
	serialEpochOffset = 25569
	secondsPerDay     = 86400

	isoDate = "2006-01-02"

	// amountPlaces is the scale amounts are stored with
	amountPlaces = 2
)

var (
	amountNoise  = regexp.MustCompile(`[^0-9.\-]`)
	amountPrefix = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)`)
)

var dateFormats = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"02.01.2006",
	"2006/01/02",
	"01/02/2006",
	"02/01/2006 15:04:05",
	"02/01/06",
}

// parseDate reads the date cell of a row
var parseDate = parseDateCell

// ParseRows normalizes every data row with the given mapping.
// Rows are independent: a bad row never affects the others.
func ParseRows(rows []Row, mapping domain.ColumnMapping) []domain.ParsedRow {
	parsed := make([]domain.ParsedRow, 0, len(rows))
	for _, row := range rows {
		parsed = append(parsed, parseRow(row, mapping))
	}
	return parsed
}

func parseRow(row Row, mapping domain.ColumnMapping) (parsed domain.ParsedRow) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.GetLogger().WithFields(map[string]interface{}{
				"row":   row.Number,
				"panic": fmt.Sprint(rec),
			}).Warn("Failed to parse statement row")
			parsed = domain.ParsedRow{Row: row.Number, Error: domain.RowErrParseException}
		}
	}()

	parsed.Row = row.Number

	date, ok := parseDate(field(row, mapping, domain.FieldDate))
	if !ok {
		parsed.Error = domain.RowErrInvalidDate
		return parsed
	}
	parsed.Date = date.Format(isoDate)

	parsed.Description = field(row, mapping, domain.FieldDescription)
	parsed.Reference = field(row, mapping, domain.FieldReference)
	parsed.Amount, parsed.IsCredit = rowAmount(row, mapping)

	switch {
	case parsed.Description == "":
		parsed.Error = domain.RowErrNoDescription
	case parsed.Amount.IsZero():
		parsed.Error = domain.RowErrZeroAmount
	default:
		parsed.IsValid = true
	}
	return parsed
}

func field(row Row, mapping domain.ColumnMapping, f domain.Field) string {
	idx, ok := mapping.Index(f)
	if !ok {
		return ""
	}
	return row.Cell(idx)
}

// rowAmount returns the absolute amount, rounded to cents, and its direction.
// Separate credit and debit columns take precedence over a single signed
// amount column.
func rowAmount(row Row, mapping domain.ColumnMapping) (decimal.Decimal, bool) {
	if mapping.SplitAmounts() {
		credit := ParseAmount(field(row, mapping, domain.FieldCredit)).Round(amountPlaces)
		debit := ParseAmount(field(row, mapping, domain.FieldDebit)).Round(amountPlaces)
		if credit.IsPositive() {
			return credit, true
		}
		return debit.Abs(), false
	}

	amount := ParseAmount(field(row, mapping, domain.FieldAmount)).Round(amountPlaces)
	return amount.Abs(), amount.IsPositive()
}

// ParseAmount reads a possibly currency-formatted number. Everything but
// digits, '.' and '-' is dropped and the longest numeric prefix is used.
// Text without a number yields zero.
func ParseAmount(s string) decimal.Decimal {
	cleaned := amountPrefix.FindString(amountNoise.ReplaceAllString(s, ""))
	if cleaned == "" || cleaned == "-" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(strings.TrimSuffix(cleaned, "."))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseDateCell converts a spreadsheet serial number or a date string
func parseDateCell(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	if v, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return time.Time{}, false
		}
		return SerialToTime(v), true
	}

	// The calendar day is read in the offset the text carries
	for _, format := range dateFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SerialToTime converts a spreadsheet serial date (days since 1899-12-30)
// to a UTC time.
func SerialToTime(serial float64) time.Time {
	seconds := (serial - serialEpochOffset) * secondsPerDay
	return time.Unix(int64(math.Floor(seconds)), 0).UTC()
}
