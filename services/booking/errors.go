package booking

import "fmt"

// BookingError is a recoverable booking failure. Errors with the same Code
// match under errors.Is.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BookingError) Is(target error) bool {
	t, ok := target.(*BookingError)
	return ok && t.Code == e.Code
}

var (
	// ErrInvalidSelection: a date or time outside the offered set.
	ErrInvalidSelection = &BookingError{Code: "invalidSelection", Message: "selection is not offered"}
	// ErrIncompleteSelection: confirm before both date and time are chosen.
	ErrIncompleteSelection = &BookingError{Code: "incompleteSelection", Message: "Please select a date and a time slot."}
	// ErrSessionClosed: the session is confirmed or cancelled.
	ErrSessionClosed = &BookingError{Code: "sessionClosed", Message: "booking session is no longer open"}
	// ErrSessionNotFound: unknown, expired or foreign session id.
	ErrSessionNotFound = &BookingError{Code: "sessionNotFound", Message: "booking session not found or expired"}
	// ErrDoctorNotFound: the catalog has no such doctor.
	ErrDoctorNotFound = &BookingError{Code: "doctorNotFound", Message: "doctor not found"}
)

func invalidSelection(format string, args ...any) error {
	return &BookingError{Code: ErrInvalidSelection.Code, Message: fmt.Sprintf(format, args...)}
}
