package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crane-recon/internal/domain"
	"crane-recon/internal/parser"
	"crane-recon/internal/repository"
	"crane-recon/internal/repository/mocks"
)

const statement = "Fecha,Descripcion,Monto,Referencia\n" +
	"15/01/2024,Pago cliente,1500.50,REF1\n" +
	"16/01/2024,Retiro cajero,-200,\n" +
	"sin fecha,Otro,10,\n"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func writeStatement(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "movimientos.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, deps dependencies, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand(deps)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPreview_Table(t *testing.T) {
	path := writeStatement(t, statement)

	out, err := run(t, dependencies{}, "preview", path)
	require.NoError(t, err)

	assert.Contains(t, out, "movimientos.csv: 3 rows, 2 valid, 1 invalid")
	assert.Contains(t, out, "2024-01-15")
	assert.Contains(t, out, "1500.50")
	assert.Contains(t, out, domain.RowErrInvalidDate)
}

func TestPreview_JSONWithOverride(t *testing.T) {
	path := writeStatement(t, statement)

	out, err := run(t, dependencies{}, "preview", path, "--json", "--map", "description=3")
	require.NoError(t, err)

	var preview parser.Preview
	require.NoError(t, json.Unmarshal([]byte(out), &preview))
	require.Len(t, preview.Rows, 3)
	assert.Equal(t, "REF1", preview.Rows[0].Description)
	assert.Equal(t, domain.RowErrNoDescription, preview.Rows[1].Error)
}

func TestPreview_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := run(t, dependencies{}, "preview", filepath.Join(t.TempDir(), "nope.csv"))
		assert.Error(t, err)
	})

	t.Run("header only", func(t *testing.T) {
		_, err := run(t, dependencies{}, "preview", writeStatement(t, "fecha,monto\n"))
		var formatErr *domain.FileFormatError
		assert.ErrorAs(t, err, &formatErr)
	})

	t.Run("incomplete mapping", func(t *testing.T) {
		_, err := run(t, dependencies{}, "preview", writeStatement(t, "fecha,texto,monto\n2024-01-01,a,1\n"))
		assert.ErrorIs(t, err, domain.ErrMappingIncomplete)
	})

	t.Run("override out of range", func(t *testing.T) {
		_, err := run(t, dependencies{}, "preview", writeStatement(t, statement), "--map", "amount=12")
		assert.ErrorIs(t, err, domain.ErrInvalidMapping)
	})
}

func TestImport(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockImportRepository(ctrl)
	deps := dependencies{
		openImportRepository: func() (repository.ImportRepository, io.Closer, error) {
			return repo, nopCloser{}, nil
		},
	}

	repo.EXPECT().CreateBatch(gomock.Any(), gomock.Any(), gomock.Len(2)).
		DoAndReturn(func(_ interface{}, batch *domain.ImportBatch, txs []domain.NewBankTransaction) error {
			require.NotNil(t, txs[0].BankName)
			assert.Equal(t, "Santander", *txs[0].BankName)
			batch.ID = "batch-7"
			return nil
		})

	out, err := run(t, deps, "import", writeStatement(t, statement), "--bank-name", "Santander")
	require.NoError(t, err)
	assert.Equal(t, "imported 2 of 3 rows from movimientos.csv (batch batch-7)\n", out)
}

func TestImport_Errors(t *testing.T) {
	t.Run("bank name is required", func(t *testing.T) {
		_, err := run(t, dependencies{}, "import", writeStatement(t, statement))
		assert.Error(t, err)
	})

	t.Run("database unavailable", func(t *testing.T) {
		deps := dependencies{
			openImportRepository: func() (repository.ImportRepository, io.Closer, error) {
				return nil, nil, errors.New("connection refused")
			},
		}
		_, err := run(t, deps, "import", writeStatement(t, statement), "--bank-name", "BBVA")
		assert.EqualError(t, err, "connection refused")
	})
}

func TestClassify(t *testing.T) {
	tests := []struct {
		payment string
		want    string
	}{
		{"1000", "exact (difference 0.00, tolerance 50.00)\n"},
		{"1049.99", "close (difference 49.99, tolerance 50.00)\n"},
		{"1050.01", "significant (difference 50.01, tolerance 50.00)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.payment, func(t *testing.T) {
			out, err := run(t, dependencies{}, "classify", "--transaction", "1000", "--payment", tt.payment)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}

	_, err := run(t, dependencies{}, "classify", "--transaction", "mil", "--payment", "1")
	assert.Error(t, err)
}
