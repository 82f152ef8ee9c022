package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Field is a logical statement column
type Field string

const (
	FieldDate        Field = "date"
	FieldDescription Field = "description"
	FieldAmount      Field = "amount"
	FieldReference   Field = "reference"
	FieldCredit      Field = "credit"
	FieldDebit       Field = "debit"
)

// Fields lists every logical field in detection order
var Fields = []Field{FieldDate, FieldDescription, FieldAmount, FieldReference, FieldCredit, FieldDebit}

// IsValid reports whether f is a known field
func (f Field) IsValid() bool {
	for _, known := range Fields {
		if f == known {
			return true
		}
	}
	return false
}

// ColumnMapping maps a logical field to a zero-based column index.
// Fields without a column are absent from the map.
type ColumnMapping map[Field]int

// Index returns the column assigned to f
func (m ColumnMapping) Index(f Field) (int, bool) {
	idx, ok := m[f]
	return idx, ok
}

// SplitAmounts reports whether separate credit and debit columns are assigned
func (m ColumnMapping) SplitAmounts() bool {
	_, credit := m[FieldCredit]
	_, debit := m[FieldDebit]
	return credit && debit
}

// Complete reports whether the mapping has everything needed to parse rows:
// date, description, and either amount or both credit and debit.
func (m ColumnMapping) Complete() bool {
	_, date := m[FieldDate]
	_, desc := m[FieldDescription]
	_, amount := m[FieldAmount]
	return date && desc && (amount || m.SplitAmounts())
}

// Clone returns an independent copy of the mapping
func (m ColumnMapping) Clone() ColumnMapping {
	out := make(ColumnMapping, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Row validation messages shown in the import preview
const (
	RowErrInvalidDate    = "Fecha inválida"
	RowErrNoDescription  = "Sin descripción"
	RowErrZeroAmount     = "Monto cero"
	RowErrParseException = "Error de parseo"
)

// ParsedRow is a statement row after normalization and validation.
// It only lives between parsing and import confirmation.
type ParsedRow struct {
	Row         int             `json:"row"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Reference   string          `json:"reference,omitempty"`
	IsCredit    bool            `json:"is_credit"`
	IsValid     bool            `json:"is_valid"`
	Error       string          `json:"error,omitempty"`
}

// ImportBatch records one committed statement import
type ImportBatch struct {
	ID          string    `json:"id" db:"id"`
	FileName    string    `json:"file_name" db:"file_name"`
	BankName    *string   `json:"bank_name" db:"bank_name"`
	TotalRows   int       `json:"total_rows" db:"total_rows"`
	ValidRows   int       `json:"valid_rows" db:"valid_rows"`
	InvalidRows int       `json:"invalid_rows" db:"invalid_rows"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
