package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"innkeep/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusConflict,
		Message: "room 101 cannot be reserved for the requested dates",
	}

	if f.Error() != "room 101 cannot be reserved for the requested dates" {
		t.Errorf("unexpected error message: %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "BadRequestFromString", err: failure.BadRequestFromString("bad input"), code: http.StatusBadRequest},
		{name: "BadRequest", err: failure.BadRequest(errors.New("bad input")), code: http.StatusBadRequest},
		{name: "Unauthorized", err: failure.Unauthorized("token expired"), code: http.StatusUnauthorized},
		{name: "Forbidden", err: failure.Forbidden("nope"), code: http.StatusForbidden},
		{name: "NotFound", err: failure.NotFound("reservation not found"), code: http.StatusNotFound},
		{name: "Conflict", err: failure.Conflict("dates overlap"), code: http.StatusConflict},
		{name: "InternalError", err: failure.InternalError(errors.New("boom")), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := tt.err.(*failure.Failure)
			if !ok {
				t.Fatalf("expected *failure.Failure, got %T", tt.err)
			}

			if f.Code != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, f.Code)
			}
		})
	}
}

func TestNilErrorsProduceNilFailures(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("BadRequest(nil) should return nil")
	}

	if failure.InternalError(nil) != nil {
		t.Error("InternalError(nil) should return nil")
	}
}

func TestGetCode(t *testing.T) {
	if code := failure.GetCode(failure.Conflict("overlap")); code != http.StatusConflict {
		t.Errorf("expected %d, got %d", http.StatusConflict, code)
	}

	wrapped := fmt.Errorf("creating reservation: %w", failure.NotFound("room not found"))
	if code := failure.GetCode(wrapped); code != http.StatusNotFound {
		t.Errorf("expected wrapped failure code %d, got %d", http.StatusNotFound, code)
	}

	if code := failure.GetCode(errors.New("plain")); code != http.StatusInternalServerError {
		t.Errorf("expected fallback code %d, got %d", http.StatusInternalServerError, code)
	}
}
