package profile

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredential is returned when the pasted credential contains no token
	ErrInvalidCredential = errors.New("entered token is invalid")
	// ErrTransport is returned when the request failed before a status code was known,
	// or when the response body could not be read or parsed
	ErrTransport = errors.New("transport error")
	// ErrServer is returned for any status code outside of 200-399
	ErrServer = errors.New("server error")
	// ErrValidation is returned when a response body does not have the expected shape
	ErrValidation = errors.New("validation error")
	// ErrDownload is returned when a skin url did not serve a usable png
	ErrDownload = errors.New("download error")
	// ErrInvalidInput is returned when local input (name, skin file) is rejected before any request
	ErrInvalidInput = errors.New("invalid input")
)

// Error is the single error shape returned by every client action.
// Use errors.Is with one of the Err* kinds to tell them apart.
type Error struct {
	// Action is the human readable action label, like "Get profile"
	Action string
	// Kind is one of the Err* sentinels
	Kind error
	// StatusCode is only set for ErrServer
	StatusCode int
	// Cause is the human readable reason
	Cause string
	// Err is the underlying error, if any
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s failed. because %s", e.Action, e.Cause)
}

// Is reports whether target is the kind of this error
func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

func invalidCredential(action string) *Error {
	return &Error{Action: action, Kind: ErrInvalidCredential, Cause: ErrInvalidCredential.Error()}
}

func transportError(action string, err error) *Error {
	return &Error{
		Action: action,
		Kind:   ErrTransport,
		Cause:  fmt.Sprintf("an error occurred (%s)", err),
		Err:    err,
	}
}

func serverError(action string, status int) *Error {
	return &Error{
		Action:     action,
		Kind:       ErrServer,
		StatusCode: status,
		Cause:      fmt.Sprintf("the server responded with a bad statuscode %d", status),
	}
}

func validationError(action string, err error) *Error {
	return &Error{Action: action, Kind: ErrValidation, Cause: err.Error(), Err: err}
}

func downloadError(action string, err error) *Error {
	return &Error{Action: action, Kind: ErrDownload, Cause: "failed to download skin file", Err: err}
}

func inputError(action string, cause string) *Error {
	return &Error{Action: action, Kind: ErrInvalidInput, Cause: cause}
}
