package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"testing"
)

func TestWrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(ErrInternalServer, cause)

	if err.Code != "INTERNAL_ERROR" || err.StatusCode != http.StatusInternalServerError {
		t.Errorf("unexpected error %+v", err)
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected the cause to be unwrapped")
	}
}

func TestWithMessage(t *testing.T) {
	err := WithMessage(ErrSchemaNotFound, "Unknown schema Portfolio")

	if err.Message != "Unknown schema Portfolio" || err.Code != ErrSchemaNotFound.Code {
		t.Errorf("unexpected error %+v", err)
	}
	if ErrSchemaNotFound.Message != "Schema not found" {
		t.Error("sentinel must not be modified")
	}
}

func TestWithDetails(t *testing.T) {
	err := WithDetails(ErrValidationFailed, []string{"isin"})

	data, jsonErr := json.Marshal(err)
	if jsonErr != nil {
		t.Fatalf("unexpected error: %v", jsonErr)
	}
	want := `{"code":"VALIDATION_FAILED","message":"Value does not match the schema","details":["isin"]}`
	if string(data) != want {
		t.Errorf("expected %s, got %s", want, data)
	}
	if ErrValidationFailed.Details != nil {
		t.Error("sentinel must not be modified")
	}
	if err.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", err.StatusCode)
	}
}
