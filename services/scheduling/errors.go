package scheduling

import (
	"errors"
	"fmt"
)

// Error codes returned by the scheduling engine. All of them are recoverable
// by the caller; the API layer translates codes into HTTP responses.
const (
	CodeMalformedWindow   = "malformedWindow"
	CodeNotOnGrid         = "notOnGrid"
	CodeSlotUnavailable   = "slotUnavailable"
	CodeIllegalTransition = "illegalTransition"
)

// Error is a typed scheduling failure with a stable code.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	ErrMalformedWindow   = &Error{Code: CodeMalformedWindow, Message: "requested window must start before it ends"}
	ErrNotOnGrid         = &Error{Code: CodeNotOnGrid, Message: "requested window does not align with the availability grid"}
	ErrSlotUnavailable   = &Error{Code: CodeSlotUnavailable, Message: "requested window overlaps an existing appointment"}
	ErrIllegalTransition = &Error{Code: CodeIllegalTransition, Message: "requested status change is not legal"}
)

// IsCode reports whether err carries the given scheduling error code.
func IsCode(err error, code string) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Code == code
	}
	return false
}
