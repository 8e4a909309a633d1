package httperr

import "errors"

// Business error codes surfaced to clients as structured results.
const (
	CodeInvalidCredentials = "invalid_credentials"
	CodeInvalidSlot        = "invalid_slot"
	CodeSlotTaken          = "slot_taken"
	CodeInvalidTransition  = "invalid_transition"
	CodeInsufficientPoints = "insufficient_points"
	CodeNotFound           = "not_found"
	CodeUnauthorized       = "unauthorized"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extracts the code from a business error, or "" when err is
// something else.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
