package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"stockfolio/internal/middleware"
	"stockfolio/internal/schema"
	"stockfolio/internal/testutil"
	"stockfolio/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

// --- stub schema ---

type stubSchema struct {
	name    string
	checkFn func(data []byte) (any, error)
}

func (s *stubSchema) Name() string { return s.name }

func (s *stubSchema) Check(data []byte) (any, error) {
	if s.checkFn != nil {
		return s.checkFn(data)
	}
	return json.RawMessage(data), nil
}

var _ schema.Schema = (*stubSchema)(nil)

func setupSchemaRouter(registry SchemaRegistry, maxBody int64) *gin.Engine {
	handler := NewSchemaHandler(registry)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	group := r.Group("/schemas", middleware.BodyLimit(maxBody))
	group.GET("", handler.ListSchemas)
	group.POST("/validate", handler.ValidateBatch)
	group.POST("/:name/validate", handler.Validate)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %s, got %v", code, errObj["code"])
	}
}

func TestSchemaHandler_ListSchemas(t *testing.T) {
	r := setupSchemaRouter(schema.Default(), 1<<20)

	rec := doRequest(r, http.MethodGet, "/schemas", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp SchemaListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(resp.Schemas) != len(schema.Default().Names()) {
		t.Errorf("expected %d schemas, got %d", len(schema.Default().Names()), len(resp.Schemas))
	}
	if resp.Schemas[0] != "Asset" {
		t.Errorf("expected Asset first, got %s", resp.Schemas[0])
	}

	t.Run("pages through the names", func(t *testing.T) {
		rec := doRequest(r, http.MethodGet, "/schemas?page=2&page_size=5", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		var page SchemaListResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if len(page.Schemas) != 5 || page.Schemas[0] != schema.Default().Names()[5] {
			t.Errorf("unexpected page %v", page.Schemas)
		}
		if page.Page.Page != 2 || page.TotalItems != len(schema.Default().Names()) {
			t.Errorf("unexpected page metadata %+v", page.Page)
		}
	})

	t.Run("returns 400 on invalid page size", func(t *testing.T) {
		rec := doRequest(r, http.MethodGet, "/schemas?page_size=500", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestSchemaHandler_Validate(t *testing.T) {
	r := setupSchemaRouter(schema.Default(), 1<<20)

	t.Run("returns 200 with the normalized record", func(t *testing.T) {
		rec := doRequest(r, http.MethodPost, "/schemas/TransferAmount/validate", `"12.50"`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["schema"] != "TransferAmount" {
			t.Errorf("expected TransferAmount, got %v", result["schema"])
		}
		if result["data"] != 12.5 {
			t.Errorf("expected 12.5, got %v", result["data"])
		}
	})

	t.Run("fills defaults", func(t *testing.T) {
		rec := doRequest(r, http.MethodPost, "/schemas/DividendDetails/validate",
			`{"identifier":"US0378331005","payoutInterval":"quarterly"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		data := parseJSON(t, rec)["data"].(map[string]interface{})
		if history, ok := data["historyDividends"].([]interface{}); !ok || len(history) != 0 {
			t.Errorf("expected empty historyDividends, got %v", data["historyDividends"])
		}
	})

	t.Run("accepts null users", func(t *testing.T) {
		rec := doRequest(r, http.MethodPost, "/schemas/User/validate", `null`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if data, ok := parseJSON(t, rec)["data"]; !ok || data != nil {
			t.Errorf("expected null data, got %v", data)
		}
	})

	t.Run("returns 422 with issues", func(t *testing.T) {
		quote := testutil.Fixture(t, "StockQuote")
		quote["isin"] = "US03783310051"
		delete(quote, "price")

		rec := doRequest(r, http.MethodPost, "/schemas/StockQuote/validate", string(testutil.Encode(t, quote)))

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		assertErrorCode(t, result, "VALIDATION_FAILED")

		var resp struct {
			Error struct {
				Details []schema.Issue `json:"details"`
			} `json:"error"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse issues: %v", err)
		}
		paths := map[string]string{}
		for _, issue := range resp.Error.Details {
			paths[issue.Path] = issue.Code
		}
		if paths["price"] != schema.CodeRequired || paths["isin"] != "isin" {
			t.Errorf("unexpected issues %v", resp.Error.Details)
		}
	})

	t.Run("returns 404 for unknown schema", func(t *testing.T) {
		rec := doRequest(r, http.MethodPost, "/schemas/Portfolio/validate", `{}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "SCHEMA_NOT_FOUND")
	})

	t.Run("returns 400 for non JSON bodies", func(t *testing.T) {
		rec := doRequest(r, http.MethodPost, "/schemas/StockQuote/validate", `isin=US0378331005`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 500 for unexpected errors", func(t *testing.T) {
		broken := schema.NewRegistry(&stubSchema{
			name: "Broken",
			checkFn: func([]byte) (any, error) {
				return nil, errors.New("boom")
			},
		})
		rec := doRequest(setupSchemaRouter(broken, 1<<20), http.MethodPost, "/schemas/Broken/validate", `{}`)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		assertErrorCode(t, result, "INTERNAL_ERROR")
		if strings.Contains(rec.Body.String(), "boom") {
			t.Error("internal error leaked to the client")
		}
	})
}

func TestSchemaHandler_BodyLimit(t *testing.T) {
	r := setupSchemaRouter(schema.Default(), 16)
	body := fmt.Sprintf(`{"name":%q}`, strings.Repeat("x", 64))

	t.Run("declared length", func(t *testing.T) {
		rec := doRequest(r, http.MethodPost, "/schemas/Asset/validate", body)

		if rec.Code != http.StatusRequestEntityTooLarge {
			t.Fatalf("expected 413, got %d: %s", rec.Code, rec.Body.String())
		}
		assertErrorCode(t, parseJSON(t, rec), "PAYLOAD_TOO_LARGE")
	})

	t.Run("streamed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/schemas/Asset/validate", strings.NewReader(body))
		req.ContentLength = -1
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusRequestEntityTooLarge {
			t.Fatalf("expected 413, got %d: %s", rec.Code, rec.Body.String())
		}
		assertErrorCode(t, parseJSON(t, rec), "PAYLOAD_TOO_LARGE")
	})
}

func TestSchemaHandler_ValidateBatch(t *testing.T) {
	r := setupSchemaRouter(schema.Default(), 1<<20)

	t.Run("returns one result per item in order", func(t *testing.T) {
		body := `{"items":[` +
			`{"schema":"Currency","payload":"EUR"},` +
			`{"schema":"Currency","payload":"EURO"},` +
			`{"schema":"Portfolio","payload":{}},` +
			`{"schema":"ClosePositionPayload","payload":{"id":3}}` +
			`]}`
		rec := doRequest(r, http.MethodPost, "/schemas/validate", body)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		var resp BatchResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if len(resp.Results) != 4 {
			t.Fatalf("expected 4 results, got %d", len(resp.Results))
		}

		wantValid := []bool{true, false, false, true}
		for i, result := range resp.Results {
			if result.Valid != wantValid[i] {
				t.Errorf("result %d: expected valid=%v, got %+v", i, wantValid[i], result)
			}
		}
		if resp.Results[1].Issues[0].Code != "currency" {
			t.Errorf("expected currency issue, got %v", resp.Results[1].Issues)
		}
		if resp.Results[2].Issues[0].Code != schema.CodeUnknownSchema {
			t.Errorf("expected unknown schema issue, got %v", resp.Results[2].Issues)
		}
	})

	t.Run("returns 400 on empty batch", func(t *testing.T) {
		rec := doRequest(r, http.MethodPost, "/schemas/validate", `{"items":[]}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on missing payload", func(t *testing.T) {
		rec := doRequest(r, http.MethodPost, "/schemas/validate", `{"items":[{"schema":"Currency"}]}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 above the item limit", func(t *testing.T) {
		items := make([]string, MaxBatchItems+1)
		for i := range items {
			items[i] = `{"schema":"Currency","payload":"EUR"}`
		}
		rec := doRequest(r, http.MethodPost, "/schemas/validate", `{"items":[`+strings.Join(items, ",")+`]}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
