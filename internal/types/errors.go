package types

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidBackend = errors.New("invalid backend")

	ErrRequestFailed       = errors.New("request failed")
	ErrUnsuccessful        = errors.New("unsuccessful response")
	ErrMalformedResponse   = errors.New("malformed response")
	ErrDeviceNotConfigured = errors.New("device not configured")
	ErrInvalidInput        = errors.New("invalid input")
	ErrMissingParameter    = errors.New("missing parameter")
	ErrNotImplemented      = errors.New("not implemented")
	ErrChecksumMismatch    = errors.New("export checksum rejected")
	ErrConfigFileNotFound  = errors.New("config file not found")
	ErrUnknownProxyScheme  = errors.New("unknown proxy scheme")
	ErrInvalidLogLevel     = errors.New("invalid log level")
)

// StatusError is returned when the SCU answered with a non-2xx status.
// errors.Is(err, ErrUnsuccessful) holds for every StatusError.
type StatusError struct {
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("unsuccessful response: status %d", e.StatusCode)
	}
	return fmt.Sprintf("unsuccessful response: status %d: %s", e.StatusCode, e.Detail)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrUnsuccessful
}

func Err(typedError error, innerErr error, msgTemplate string, args ...any) error {
	if msgTemplate == "" {
		return errors.Join(typedError, innerErr)
	} else {
		return errors.Join(typedError, innerErr, fmt.Errorf(msgTemplate, args...))
	}
}
