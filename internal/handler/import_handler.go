package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"crane-recon/internal/domain"
	"crane-recon/internal/middleware"
	"crane-recon/internal/service"
	"crane-recon/pkg/logger"
	"crane-recon/pkg/response"
)

type ImportHandler struct {
	service        service.ImportService
	maxUploadBytes int64
}

func NewImportHandler(service service.ImportService, maxUploadBytes int64) *ImportHandler {
	return &ImportHandler{service: service, maxUploadBytes: maxUploadBytes}
}

// RegisterRoutes mounts the import endpoints on the v1 group
func (h *ImportHandler) RegisterRoutes(v1 *gin.RouterGroup) {
	imports := v1.Group("/imports")
	{
		imports.POST("", middleware.BodyLimit(h.maxUploadBytes), h.Upload)
		imports.GET("/:import_id", h.GetImport)
		imports.PUT("/:import_id/mapping", h.UpdateMapping)
		imports.POST("/:import_id/preview", h.Preview)
		imports.POST("/:import_id/commit", h.Commit)
		imports.DELETE("/:import_id", h.Discard)
	}

	batches := v1.Group("/import-batches")
	{
		batches.GET("", h.ListBatches)
		batches.GET("/:batch_id", h.GetBatch)
	}
}

// MappingRequest assigns a column index to each field. Null or absent fields are unset.
type MappingRequest map[string]*int

type CommitRequest struct {
	BankName string `json:"bank_name"`
}

// Upload godoc
// @Summary Upload a bank statement
// @Description Read a CSV, TXT, XLS, XLSX or XLSM statement and open an import session with the detected column mapping
// @Tags imports
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Statement file"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 413 {object} response.Response
// @Router /api/v1/imports [post]
func (h *ImportHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.TooLarge(c, "Statement file is too large", err.Error())
			return
		}
		response.BadRequest(c, "Statement file is required", err.Error())
		return
	}

	file, err := header.Open()
	if err != nil {
		response.BadRequest(c, "Statement file is unreadable", err.Error())
		return
	}
	defer file.Close()

	session, err := h.service.Upload(header.Filename, file)
	if err != nil {
		logger.GetLogger().WithError(err).WithField("file", header.Filename).Warn("Statement upload rejected")
		respondError(c, "Statement could not be read", err)
		return
	}

	response.Created(c, "Statement uploaded successfully", session)
}

// GetImport godoc
// @Summary Get an import session
// @Tags imports
// @Produce json
// @Param import_id path string true "Import ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/imports/{import_id} [get]
func (h *ImportHandler) GetImport(c *gin.Context) {
	session, err := h.service.Get(c.Param("import_id"))
	if err != nil {
		respondError(c, "Import not found", err)
		return
	}

	response.Success(c, http.StatusOK, "Import retrieved successfully", session)
}

// UpdateMapping godoc
// @Summary Replace the column mapping
// @Description Assign zero-based column indexes to date, description, amount, reference, credit and debit
// @Tags imports
// @Accept json
// @Produce json
// @Param import_id path string true "Import ID"
// @Param mapping body MappingRequest true "Column mapping"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/imports/{import_id}/mapping [put]
func (h *ImportHandler) UpdateMapping(c *gin.Context) {
	var req MappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	mapping := make(domain.ColumnMapping, len(req))
	for name, idx := range req {
		if idx == nil {
			continue
		}
		mapping[domain.Field(name)] = *idx
	}

	session, err := h.service.UpdateMapping(c.Param("import_id"), mapping)
	if err != nil {
		respondError(c, "Mapping could not be applied", err)
		return
	}

	response.Success(c, http.StatusOK, "Mapping updated successfully", session)
}

// Preview godoc
// @Summary Parse the statement with the current mapping
// @Tags imports
// @Produce json
// @Param import_id path string true "Import ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /api/v1/imports/{import_id}/preview [post]
func (h *ImportHandler) Preview(c *gin.Context) {
	session, err := h.service.Preview(c.Param("import_id"))
	if err != nil {
		respondError(c, "Preview could not be built", err)
		return
	}

	response.Success(c, http.StatusOK, "Preview built successfully", session)
}

// Commit godoc
// @Summary Import the valid rows
// @Description Persist every valid preview row as a pending bank transaction
// @Tags imports
// @Accept json
// @Produce json
// @Param import_id path string true "Import ID"
// @Param request body CommitRequest false "Bank name"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 422 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /api/v1/imports/{import_id}/commit [post]
func (h *ImportHandler) Commit(c *gin.Context) {
	var req CommitRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.ValidationError(c, err.Error())
		return
	}

	batch, err := h.service.Commit(c.Request.Context(), c.Param("import_id"), req.BankName)
	if err != nil {
		respondError(c, "Import failed", err)
		return
	}

	response.Created(c, "Statement imported successfully", batch)
}

// Discard godoc
// @Summary Discard an import session
// @Tags imports
// @Produce json
// @Param import_id path string true "Import ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/imports/{import_id} [delete]
func (h *ImportHandler) Discard(c *gin.Context) {
	if err := h.service.Discard(c.Param("import_id")); err != nil {
		respondError(c, "Import not found", err)
		return
	}

	response.Success(c, http.StatusOK, "Import discarded", nil)
}

// ListBatches godoc
// @Summary List committed imports
// @Tags imports
// @Produce json
// @Param limit query int false "Maximum batches returned"
// @Success 200 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /api/v1/import-batches [get]
func (h *ImportHandler) ListBatches(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			response.BadRequest(c, "Invalid limit", "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	batches, err := h.service.ListBatches(c.Request.Context(), limit)
	if err != nil {
		respondError(c, "Failed to list import batches", err)
		return
	}

	response.Success(c, http.StatusOK, "Import batches retrieved successfully", batches)
}

// GetBatch godoc
// @Summary Get a committed import
// @Tags imports
// @Produce json
// @Param batch_id path string true "Batch ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/import-batches/{batch_id} [get]
func (h *ImportHandler) GetBatch(c *gin.Context) {
	batch, err := h.service.GetBatch(c.Request.Context(), c.Param("batch_id"))
	if err != nil {
		respondError(c, "Import batch not found", err)
		return
	}

	response.Success(c, http.StatusOK, "Import batch retrieved successfully", batch)
}
