package httperr

import "errors"

// Business rule violations raised by the use cases, mapped to HTTP statuses
// at the handler boundary.
const (
	CodeBookingNotFound       = "booking_not_found"
	CodeServiceNotFound       = "service_not_found"
	CodeUserNotFound          = "user_not_found"
	CodeForbidden             = "forbidden"
	CodeInvalidStatus         = "invalid_status"
	CodeInvalidPaymentMethod  = "invalid_payment_method"
	CodeNotDeleted            = "not_deleted"
	CodePaymentIntentMismatch = "payment_intent_mismatch"
	CodePaymentFailed         = "payment_failed"
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

// BusinessCode extracts the code, or "" when err is not a business error.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
