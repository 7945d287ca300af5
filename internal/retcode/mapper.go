package retcode

import (
	"errors"
	"sculink/internal/types"
)

// FromError converts an error into its return code. A non-2xx SCU answer maps
// to Unknown; use FromErrorOr where the operation has a business failure code.
func FromError(err error) Code {
	return FromErrorOr(err, Unknown)
}

// FromErrorOr is FromError with the code reported for an unsuccessful SCU status.
func FromErrorOr(err error, unsuccessful Code) Code {
	switch {
	case err == nil:
		return ExecutionOk
	case errors.Is(err, types.ErrNotImplemented):
		return NotImplemented
	case errors.Is(err, types.ErrDeviceNotConfigured):
		return InvalidConfig
	case errors.Is(err, types.ErrConfigFileNotFound):
		return ConfigFileNotFound
	case errors.Is(err, types.ErrMissingParameter):
		return MissingParameter
	case errors.Is(err, types.ErrInvalidInput):
		return ParameterMismatch
	case errors.Is(err, types.ErrRequestFailed):
		return SeCommunicationFailed
	case errors.Is(err, types.ErrMalformedResponse):
		return TseResponseDataInvalid
	case errors.Is(err, types.ErrUnsuccessful):
		return unsuccessful
	}
	return Unknown
}
