package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound     = errors.New("record not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPaymentRequired    = errors.New("ticket must be paid before accessing hotels")
	ErrRoomFull           = errors.New("room is at full capacity")
)

// ValidationError reports client input that is structurally malformed,
// e.g. a path or query parameter that is not a number.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Msg)
}

// PolicyViolationError reports well-formed input that a business rule
// rejects, e.g. a user without an enrollment booking a room. Kept distinct
// from ValidationError so logs and tests can tell the two apart even when
// a route maps both to the same status code.
type PolicyViolationError struct {
	Msg string
}

func (e *PolicyViolationError) Error() string {
	return e.Msg
}
