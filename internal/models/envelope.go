package models

import "time"

// Envelope is the uniform result of every extraction operation.
type Envelope struct {
	Success          bool             `json:"success"`
	Data             any              `json:"data,omitempty"`
	Count            *int             `json:"count,omitempty"`
	ExtractionMethod ExtractionMethod `json:"extraction_method,omitempty"`
	Error            string           `json:"error,omitempty"`
	ErrorKind        string           `json:"error_kind,omitempty"`
	Timestamp        time.Time        `json:"timestamp"`

	// Err keeps the original error for in-process callers.
	Err error `json:"-"`
}

func NewSuccessEnvelope(data any, count *int, method ExtractionMethod, now time.Time) Envelope {
	return Envelope{
		Success:          true,
		Data:             data,
		Count:            count,
		ExtractionMethod: method,
		Timestamp:        now,
	}
}

func NewErrorEnvelope(err error, now time.Time) Envelope {
	return Envelope{
		Success:   false,
		Error:     err.Error(),
		ErrorKind: ErrorKind(err),
		Timestamp: now,
		Err:       err,
	}
}

func CountOf(n int) *int {
	return &n
}
