package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "stockfolio/internal/errors"
	"stockfolio/internal/logger"
	"stockfolio/internal/middleware"
	"stockfolio/internal/pagination"
	"stockfolio/internal/schema"
)

// MaxBatchItems is the largest number of values accepted by ValidateBatch.
const MaxBatchItems = 100

// SchemaRegistry defines the registry operations used by SchemaHandler.
type SchemaRegistry interface {
	Names() []string
	Lookup(name string) (schema.Schema, bool)
}

// SchemaHandler exposes the schema registry over HTTP.
type SchemaHandler struct {
	registry SchemaRegistry
}

// NewSchemaHandler creates a new SchemaHandler
func NewSchemaHandler(registry SchemaRegistry) *SchemaHandler {
	return &SchemaHandler{registry: registry}
}

// SchemaListResponse lists the registered schema names.
type SchemaListResponse struct {
	Schemas []string `json:"schemas"`
	pagination.Page
}

// ValidateResponse carries the normalized record of a valid value.
type ValidateResponse struct {
	Schema string `json:"schema"`
	Data   any    `json:"data"`
}

// BatchItem is one value to validate in a batch request.
type BatchItem struct {
	Schema  string          `json:"schema" validate:"required"`
	Payload json.RawMessage `json:"payload" validate:"required"`
}

// BatchRequest is the request payload of ValidateBatch.
type BatchRequest struct {
	Items []BatchItem `json:"items" validate:"required,min=1,max=100,dive"`
}

// BatchResult is the outcome for one BatchItem.
type BatchResult struct {
	Schema string         `json:"schema"`
	Valid  bool           `json:"valid"`
	Data   any            `json:"data,omitempty"`
	Issues []schema.Issue `json:"issues,omitempty"`
}

// BatchResponse is the response of ValidateBatch. Results are in request order.
type BatchResponse struct {
	Results []BatchResult `json:"results"`
}

// ListSchemas returns the names of all registered schemas
// @Summary     List schemas
// @Description List the names of all registered record schemas in sorted order
// @Tags        schemas
// @Produce     json
// @Param       page      query int false "Page number" minimum(1)
// @Param       page_size query int false "Page size" minimum(1) maximum(100)
// @Success     200 {object} SchemaListResponse
// @Failure     400 {object} ErrorResponse "Invalid page"
// @Router      /v1/schemas [get]
func (h *SchemaHandler) ListSchemas(c *gin.Context) {
	var req pagination.PageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	names, page := pagination.Slice(h.registry.Names(), req)
	c.JSON(http.StatusOK, SchemaListResponse{Schemas: names, Page: page})
}

// Validate checks the request body against the named schema
// @Summary     Validate a value
// @Description Validate a JSON value against a schema and return the normalized record
// @Tags        schemas
// @Accept      json
// @Produce     json
// @Param       name    path string true "Schema name"
// @Param       request body object true "Value to validate"
// @Success     200 {object} ValidateResponse "Value is valid"
// @Failure     400 {object} ErrorResponse "Body is not JSON"
// @Failure     404 {object} ErrorResponse "Unknown schema"
// @Failure     413 {object} ErrorResponse "Body too large"
// @Failure     422 {object} ErrorResponse "Value violates the schema"
// @Router      /v1/schemas/{name}/validate [post]
func (h *SchemaHandler) Validate(c *gin.Context) {
	name := c.Param("name")
	s, ok := h.registry.Lookup(name)
	if !ok {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrSchemaNotFound, "Unknown schema "+name))
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondWithError(c, apperrors.ErrPayloadTooLarge)
			return
		}
		respondWithError(c, apperrors.Wrap(apperrors.ErrInvalidInput, err))
		return
	}
	if !json.Valid(body) {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Request body must be valid JSON"))
		return
	}

	data, err := s.Check(body)
	if err != nil {
		respondWithValidationError(c, err)
		return
	}
	middleware.RecordIssues(c, 0)
	c.JSON(http.StatusOK, ValidateResponse{Schema: s.Name(), Data: data})
}

// ValidateBatch checks several values, each against its own schema
// @Summary     Validate values in bulk
// @Description Validate up to 100 values; every item gets its own result
// @Tags        schemas
// @Accept      json
// @Produce     json
// @Param       request body BatchRequest true "Values to validate"
// @Success     200 {object} BatchResponse
// @Failure     400 {object} ErrorResponse "Malformed batch"
// @Failure     413 {object} ErrorResponse "Body too large"
// @Router      /v1/schemas/validate [post]
func (h *SchemaHandler) ValidateBatch(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondWithError(c, apperrors.ErrPayloadTooLarge)
			return
		}
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	resp := BatchResponse{Results: make([]BatchResult, 0, len(req.Items))}
	invalid, issues := 0, 0
	for _, item := range req.Items {
		result := BatchResult{Schema: item.Schema}
		s, ok := h.registry.Lookup(item.Schema)
		if !ok {
			result.Issues = []schema.Issue{{Code: schema.CodeUnknownSchema, Message: "unknown schema " + item.Schema}}
			resp.Results = append(resp.Results, result)
			invalid++
			issues++
			continue
		}

		data, err := s.Check(item.Payload)
		var verr *schema.ValidationError
		switch {
		case err == nil:
			result.Valid = true
			result.Data = data
		case errors.As(err, &verr):
			result.Issues = verr.Issues
		default:
			respondWithError(c, err)
			return
		}
		if !result.Valid {
			invalid++
			issues += len(result.Issues)
		}
		resp.Results = append(resp.Results, result)
	}

	middleware.RecordIssues(c, issues)
	logger.Get().Debugw("batch validated", "items", len(req.Items), "invalid", invalid)
	c.JSON(http.StatusOK, resp)
}

func respondWithValidationError(c *gin.Context, err error) {
	var verr *schema.ValidationError
	if errors.As(err, &verr) {
		middleware.RecordIssues(c, len(verr.Issues))
		respondWithError(c, apperrors.WithDetails(apperrors.ErrValidationFailed, verr.Issues))
		return
	}
	respondWithError(c, err)
}
