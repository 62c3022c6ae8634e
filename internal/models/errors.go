package models

import (
	"errors"
)

// Failure taxonomy surfaced by the extraction engine. Callers classify with errors.Is;
// components wrap these with fmt.Errorf("%w: ...") to add detail.
var (
	ErrInvalidParameter     = errors.New("invalid parameter")
	ErrConnectionRefused    = errors.New("connection refused")
	ErrTimeout              = errors.New("upstream timeout")
	ErrUpstream             = errors.New("upstream error")
	ErrNoChannelAvailable   = errors.New("no channel available")
	ErrMalformedResponse    = errors.New("malformed response")
	ErrNormalization        = errors.New("normalization error")
	ErrNotFound             = errors.New("data not found")
	ErrUnsupportedOnChannel = errors.New("entity not available on channel")
)

const (
	ErrorKindInvalidParameter   = "InvalidParameterError"
	ErrorKindConnectionRefused  = "ConnectionRefused"
	ErrorKindTimeout            = "Timeout"
	ErrorKindUpstream           = "UpstreamError"
	ErrorKindNoChannelAvailable = "NoChannelAvailable"
	ErrorKindMalformedResponse  = "MalformedResponseError"
	ErrorKindNormalization      = "NormalizationError"
	ErrorKindNotFound           = "NotFound"
	ErrorKindInternal           = "InternalError"
)

// ErrorKind names the taxonomy bucket of err. NoChannelAvailable is checked first because
// it wraps the last channel failure.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidParameter):
		return ErrorKindInvalidParameter
	case errors.Is(err, ErrNoChannelAvailable):
		return ErrorKindNoChannelAvailable
	case errors.Is(err, ErrConnectionRefused):
		return ErrorKindConnectionRefused
	case errors.Is(err, ErrTimeout):
		return ErrorKindTimeout
	case errors.Is(err, ErrMalformedResponse):
		return ErrorKindMalformedResponse
	case errors.Is(err, ErrUpstream), errors.Is(err, ErrUnsupportedOnChannel):
		return ErrorKindUpstream
	case errors.Is(err, ErrNormalization):
		return ErrorKindNormalization
	case errors.Is(err, ErrNotFound):
		return ErrorKindNotFound
	default:
		return ErrorKindInternal
	}
}
