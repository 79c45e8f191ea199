package paymentwindow

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestErrorStatusCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *Error
		want int
	}{
		{name: "invalid request", err: NewInvalidRequestError("bad"), want: http.StatusBadRequest},
		{name: "processing", err: NewProcessingError("boom"), want: http.StatusInternalServerError},
		{name: "explicit", err: NewHTTPError(http.StatusForbidden, InvalidRequest, InvalidSignature, "nope"), want: http.StatusForbidden},
		{name: "override", err: NewInvalidRequestError("bad", WithStatusCode(http.StatusUnprocessableEntity)), want: http.StatusUnprocessableEntity},
		{name: "zero value", err: &Error{}, want: http.StatusInternalServerError},
		{name: "nil", err: nil, want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.StatusCode(); got != tt.want {
				t.Fatalf("StatusCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWithOffendingParam(t *testing.T) {
	t.Parallel()

	err := NewInvalidRequestError("bad amount", WithOffendingParam("onpay_amount"))
	if err.Param == nil || *err.Param != "onpay_amount" {
		t.Fatalf("unexpected param %v", err.Param)
	}
	if err.Error() != "bad amount" {
		t.Fatalf("Error() = %q", err.Error())
	}
}

func TestWriteServiceErrorHidesUntypedErrors(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	writeServiceError(rec, errors.New("connection refused"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", rec.Code)
	}
	if got := rec.Header().Get("Cache-Control"); got != "no-store" {
		t.Fatalf("unexpected Cache-Control %q", got)
	}
	if body := rec.Body.String(); body == "" || strings.Contains(body, "connection refused") {
		t.Fatalf("unexpected body %q", body)
	}
}
