package httperr

import (
	"errors"
	"net/http"
)

// Kind classifies business errors so handlers can map them to a status
// without inspecting individual codes.
type Kind int

const (
	KindValidation Kind = iota // missing/malformed input, 400
	KindConflict               // slot already booked, 409
	KindNotFound               // referenced row does not exist, 404
	KindIntegrity              // FK/unique violation from storage, 400
	KindStorage                // connection/timeout failures, 500
)

type BusinessError struct {
	Kind Kind
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrValidation(code string) error {
	return BusinessError{Kind: KindValidation, Code: code}
}

func ErrConflict(code string) error {
	return BusinessError{Kind: KindConflict, Code: code}
}

func ErrNotFound(code string) error {
	return BusinessError{Kind: KindNotFound, Code: code}
}

func ErrIntegrity(code string) error {
	return BusinessError{Kind: KindIntegrity, Code: code}
}

// TotalsPendingError marks a booking that committed but whose totals
// finalization failed. Callers must be able to tell this apart from a
// failed booking: the reservation exists and only needs repair.
type TotalsPendingError struct {
	Err error
}

func (e TotalsPendingError) Error() string {
	return "totals_pending: " + e.Err.Error()
}

func (e TotalsPendingError) Unwrap() error {
	return e.Err
}

func ErrTotalsPending(err error) error {
	return TotalsPendingError{Err: err}
}

func IsTotalsPending(err error) bool {
	var tp TotalsPendingError
	return errors.As(err, &tp)
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func KindOf(err error) (Kind, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind, true
	}
	return 0, false
}

// StatusFor maps an error to the HTTP status of its kind; unclassified
// errors are reported as storage failures.
func StatusFor(err error) (int, string) {
	var be BusinessError
	if !errors.As(err, &be) {
		return http.StatusInternalServerError, "storage_error"
	}

	switch be.Kind {
	case KindValidation, KindIntegrity:
		return http.StatusBadRequest, be.Code
	case KindConflict:
		return http.StatusConflict, be.Code
	case KindNotFound:
		return http.StatusNotFound, be.Code
	default:
		return http.StatusInternalServerError, be.Code
	}
}
