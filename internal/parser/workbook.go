package parser

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"crane-recon/internal/domain"
	"crane-recon/pkg/logger"
)

// Row is a data row of the first sheet. Number is the 1-based row in the file.
type Row struct {
	Number int
	Cells  []string
}

// Cell returns the trimmed cell at idx, or "" when the row is shorter
func (r Row) Cell(idx int) string {
	if idx < 0 || idx >= len(r.Cells) {
		return ""
	}
	return strings.TrimSpace(r.Cells[idx])
}

func (r Row) isEmpty() bool {
	for _, c := range r.Cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// Sheet is the first worksheet of an uploaded statement
type Sheet struct {
	Headers []string
	Rows    []Row
}

// ColumnCount is the width of the header row
func (s *Sheet) ColumnCount() int {
	return len(s.Headers)
}

type recordReader func(data []byte) ([][]string, error)

// readers maps each accepted file extension to its decoder
var readers = map[string]recordReader{
	".csv":  readCSV,
	".txt":  readCSV,
	".xlsx": readXLSX,
	".xlsm": readXLSX,
	".xls":  readXLS,
}

// SupportedExtensions lists the accepted statement file types, sorted
func SupportedExtensions() []string {
	exts := make([]string, 0, len(readers))
	for ext := range readers {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// ReadWorkbook reads the first sheet of a CSV, XLS or XLSX statement.
// The format is chosen from the file extension.
func ReadWorkbook(fileName string, r io.Reader) (*Sheet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &domain.FileFormatError{Reason: "unreadable upload", Err: err}
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	read, ok := readers[ext]
	if !ok {
		return nil, &domain.FileFormatError{Reason: fmt.Sprintf("unsupported file type %q (accepted: %s)",
			ext, strings.Join(SupportedExtensions(), ", "))}
	}

	records, err := read(data)
	if err != nil {
		logger.GetLogger().WithError(err).WithField("file", fileName).Warn("Failed to read statement workbook")
		return nil, &domain.FileFormatError{Reason: "unreadable workbook", Err: err}
	}

	return buildSheet(records)
}

func buildSheet(records [][]string) (*Sheet, error) {
	if len(records) < 2 {
		return nil, &domain.FileFormatError{Reason: "the sheet has no data rows"}
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	rows := make([]Row, 0, len(records)-1)
	for i, rec := range records[1:] {
		row := Row{Number: i + 2, Cells: rec}
		if row.isEmpty() {
			continue
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, &domain.FileFormatError{Reason: "the sheet has no data rows"}
	}

	return &Sheet{Headers: headers, Rows: rows}, nil
}

func readCSV(data []byte) ([][]string, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	reader := csv.NewReader(bytes.NewReader(data))
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	reader.Comma = sniffDelimiter(data)

	return reader.ReadAll()
}

// sniffDelimiter picks ';' over ',' when the header line uses it more.
// Spanish-locale spreadsheet exports default to semicolons.
func sniffDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	if bytes.Count(line, []byte{';'}) > bytes.Count(line, []byte{','}) {
		return ';'
	}
	return ','
}

func readXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	// Raw values keep date cells as serial numbers.
	return f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
}

func readXLS(data []byte) (records [][]string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("corrupt xls workbook: %v", rec)
		}
	}()

	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, err
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			records = append(records, nil)
			continue
		}
		cells := make([]string, 0, row.LastCol())
		for c := 0; c < row.LastCol(); c++ {
			cells = append(cells, row.Col(c))
		}
		records = append(records, cells)
	}
	return records, nil
}
