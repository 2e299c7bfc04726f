package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dynamodb unavailable")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if e.Error() != "INTERNAL_ERROR: An internal error occurred: dynamodb unavailable" {
		t.Fatalf("unexpected error string: %q", e.Error())
	}

	body := e.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
		t.Fatalf("unexpected http error: %+v", body)
	}

	simple := NewDomainErrorSimple("EXAM_NOT_PRICED", "Exam has no price", http.StatusUnprocessableEntity)
	if simple.Error() != "EXAM_NOT_PRICED: Exam has no price" {
		t.Fatalf("unexpected error string: %q", simple.Error())
	}
	if simple.Unwrap() != nil {
		t.Fatalf("expected no cause")
	}
}
