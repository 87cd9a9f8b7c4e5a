package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound covers both a missing resource and one owned by another
	// teacher. The two are deliberately indistinguishable so ids cannot be
	// probed.
	ErrNotFound = errors.New("not found")

	// ErrForbidden means the caller is authenticated but the role or
	// ownership check failed. Callers must answer with a terminal 403,
	// never a login redirect.
	ErrForbidden = errors.New("forbidden")

	// ErrUnauthenticated means no usable session was presented.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrInvalidCredentials is returned for every authentication failure:
	// unknown email, inactive account or wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports per-field input problems. Handlers redisplay the
// form with the submitted values and these messages.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidationError unwraps err into a *ValidationError when it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
