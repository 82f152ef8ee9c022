package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crane-recon/internal/domain"
	"crane-recon/internal/repository/mocks"
	"crane-recon/internal/service"
	"crane-recon/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const statementCSV = "Fecha;Concepto;Abono;Cargo\n" +
	"15/01/2024;Pago Acme;1000.00;\n" +
	"16/01/2024;Comision;;15.50\n" +
	"17/01/2024;;20;\n"

type envelope struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Data    json.RawMessage       `json:"data"`
	Error   *response.ErrorDetail `json:"error"`
}

func newImportRouter(t *testing.T) (*gin.Engine, *mocks.MockImportRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockImportRepository(ctrl)
	h := NewImportHandler(service.NewImportService(repo, time.Minute), 1<<20)

	router := gin.New()
	h.RegisterRoutes(router.Group("/api/v1"))
	return router, repo
}

func doRequest(router *gin.Engine, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	var body envelope
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func uploadRequest(t *testing.T, fileName, content string) *http.Request {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/imports", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func upload(t *testing.T, router *gin.Engine) service.ImportSession {
	w, body := doRequest(router, uploadRequest(t, "movimientos.csv", statementCSV))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var session service.ImportSession
	require.NoError(t, json.Unmarshal(body.Data, &session))
	return session
}

func TestImportHandler_Upload(t *testing.T) {
	router, _ := newImportRouter(t)

	session := upload(t, router)

	assert.Equal(t, service.StageMapping, session.Stage)
	assert.Equal(t, domain.ColumnMapping{
		domain.FieldDate:        0,
		domain.FieldDescription: 1,
		domain.FieldCredit:      2,
		domain.FieldDebit:       3,
	}, session.Mapping)
}

func TestImportHandler_Upload_Errors(t *testing.T) {
	router, _ := newImportRouter(t)

	t.Run("missing file", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/imports", nil)
		w, _ := doRequest(router, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("header only", func(t *testing.T) {
		w, body := doRequest(router, uploadRequest(t, "vacio.csv", "fecha,monto\n"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "FILE_FORMAT_ERROR", body.Error.Code)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		w, body := doRequest(router, uploadRequest(t, "estado.pdf", statementCSV))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "FILE_FORMAT_ERROR", body.Error.Code)
	})
}

func TestImportHandler_Upload_TooLarge(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewImportHandler(service.NewImportService(mocks.NewMockImportRepository(ctrl), time.Minute), 512)
	router := gin.New()
	h.RegisterRoutes(router.Group("/api/v1"))

	w, body := doRequest(router, uploadRequest(t, "grande.csv", statementCSV+strings.Repeat("18/01/2024;Pago;10;\n", 200)))

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "FILE_TOO_LARGE", body.Error.Code)
}

func TestImportHandler_Flow(t *testing.T) {
	router, repo := newImportRouter(t)
	session := upload(t, router)
	base := "/api/v1/imports/" + session.ID

	w, body := doRequest(router, jsonRequest(http.MethodPut, base+"/mapping", `{"date":0,"description":null,"credit":2,"debit":3}`))
	require.Equal(t, http.StatusOK, w.Code)

	w, body = doRequest(router, httptest.NewRequest(http.MethodPost, base+"/preview", nil))
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "MAPPING_INCOMPLETE", body.Error.Code)

	w, _ = doRequest(router, jsonRequest(http.MethodPut, base+"/mapping", `{"date":0,"description":1,"credit":2,"debit":3}`))
	require.Equal(t, http.StatusOK, w.Code)

	w, body = doRequest(router, httptest.NewRequest(http.MethodPost, base+"/preview", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var previewed service.ImportSession
	require.NoError(t, json.Unmarshal(body.Data, &previewed))
	require.NotNil(t, previewed.Preview)
	assert.Equal(t, 2, previewed.Preview.ValidCount)
	assert.Equal(t, 1, previewed.Preview.InvalidCount)
	assert.Equal(t, domain.RowErrNoDescription, previewed.Preview.Rows[2].Error)

	repo.EXPECT().CreateBatch(gomock.Any(), gomock.Any(), gomock.Len(2)).Return(errors.New("db down"))
	w, body = doRequest(router, jsonRequest(http.MethodPost, base+"/commit", `{"bank_name":"Banorte"}`))
	require.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "PERSISTENCE_ERROR", body.Error.Code)

	repo.EXPECT().CreateBatch(gomock.Any(), gomock.Any(), gomock.Len(2)).
		DoAndReturn(func(_ interface{}, batch *domain.ImportBatch, _ []domain.NewBankTransaction) error {
			batch.ID = "batch-1"
			return nil
		})
	w, body = doRequest(router, jsonRequest(http.MethodPost, base+"/commit", `{"bank_name":"Banorte"}`))
	require.Equal(t, http.StatusCreated, w.Code)
	var batch domain.ImportBatch
	require.NoError(t, json.Unmarshal(body.Data, &batch))
	assert.Equal(t, "batch-1", batch.ID)
	assert.Equal(t, 2, batch.ValidRows)

	w, _ = doRequest(router, httptest.NewRequest(http.MethodGet, base, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestImportHandler_UpdateMapping_OutOfRange(t *testing.T) {
	router, _ := newImportRouter(t)
	session := upload(t, router)

	w, body := doRequest(router, jsonRequest(http.MethodPut, "/api/v1/imports/"+session.ID+"/mapping", `{"date":7}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "BAD_REQUEST", body.Error.Code)
}

func TestImportHandler_Discard(t *testing.T) {
	router, _ := newImportRouter(t)
	session := upload(t, router)

	w, _ := doRequest(router, httptest.NewRequest(http.MethodDelete, "/api/v1/imports/"+session.ID, nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doRequest(router, httptest.NewRequest(http.MethodDelete, "/api/v1/imports/"+session.ID, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestImportHandler_Batches(t *testing.T) {
	router, repo := newImportRouter(t)

	repo.EXPECT().ListBatches(gomock.Any(), 10).Return([]domain.ImportBatch{{ID: "b1"}, {ID: "b2"}}, nil)
	w, _ := doRequest(router, httptest.NewRequest(http.MethodGet, "/api/v1/import-batches?limit=10", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doRequest(router, httptest.NewRequest(http.MethodGet, "/api/v1/import-batches?limit=x", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	repo.EXPECT().GetBatch(gomock.Any(), "b9").Return(nil, domain.ErrNotFound)
	w, _ = doRequest(router, httptest.NewRequest(http.MethodGet, "/api/v1/import-batches/b9", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
