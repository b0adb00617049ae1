package httperr_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/barberia-app/barberia-api/internal/httperr"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"validation", httperr.ErrValidation("invalid_date"), http.StatusBadRequest, "invalid_date"},
		{"integrity", httperr.ErrIntegrity("related_resource_invalid"), http.StatusBadRequest, "related_resource_invalid"},
		{"conflict", httperr.ErrConflict("slot_taken"), http.StatusConflict, "slot_taken"},
		{"not found", httperr.ErrNotFound("barber_not_found"), http.StatusNotFound, "barber_not_found"},
		{"unclassified", errors.New("pq: connection refused"), http.StatusInternalServerError, "storage_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := httperr.StatusFor(tt.err)
			if code != tt.wantCode {
				t.Errorf("expected status %d, got %d", tt.wantCode, code)
			}
			if msg != tt.wantMsg {
				t.Errorf("expected code %q, got %q", tt.wantMsg, msg)
			}
		})
	}
}

func TestIsBusiness(t *testing.T) {
	err := httperr.ErrConflict("slot_taken")
	if !httperr.IsBusiness(err, "slot_taken") {
		t.Error("expected IsBusiness to match the code")
	}
	if httperr.IsBusiness(err, "barber_unavailable") {
		t.Error("expected IsBusiness to reject a different code")
	}
	if httperr.IsBusiness(errors.New("plain"), "slot_taken") {
		t.Error("expected IsBusiness to reject non-business errors")
	}
}

func TestTotalsPending(t *testing.T) {
	cause := errors.New("connection reset")
	err := httperr.ErrTotalsPending(cause)

	if !httperr.IsTotalsPending(err) {
		t.Error("expected IsTotalsPending to be true")
	}
	if !errors.Is(err, cause) {
		t.Error("expected the cause to remain unwrappable")
	}
	if httperr.IsTotalsPending(cause) {
		t.Error("expected the bare cause not to be totals-pending")
	}

	// a wrapped business error keeps its kind through the pending wrapper
	wrapped := httperr.ErrTotalsPending(httperr.ErrNotFound("reservation_not_found"))
	if !httperr.IsBusiness(wrapped, "reservation_not_found") {
		t.Error("expected the inner business code to survive wrapping")
	}
}
