package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("CASE_NOT_FOUND", "Case not found", http.StatusNotFound)
		if e.Error() != "Case not found" {
			t.Fatalf("unexpected message: %s", e.Error())
		}
		body := e.ToHTTPError()
		if body.Error != "Case not found" || body.Code != "CASE_NOT_FOUND" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("wraps cause", func(t *testing.T) {
		cause := errors.New("embedding service unavailable")
		e := NewDomainError("CASE_PROCESSING_FAILED", "processing failed", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected errors.Is to match the cause")
		}
		if e.Error() != "processing failed: embedding service unavailable" {
			t.Fatalf("unexpected message: %s", e.Error())
		}
	})

	t.Run("zero status defaults to 500", func(t *testing.T) {
		e := NewDomainError("X", "x", nil, 0)
		if e.HTTPStatus != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", e.HTTPStatus)
		}
	})
}
