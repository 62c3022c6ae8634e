package models

import (
	"fmt"
	"strings"
)

// CompanyContext is the active company scope of the extraction facade. It is a value;
// changing it means swapping the whole value.
type CompanyContext struct {
	Company string        `json:"company"`
	FYStart Date          `json:"fy_start"`
	FYEnd   Date          `json:"fy_end"`
	Mode    TransportMode `json:"transport_mode"`
}

func (c CompanyContext) Validate() error {
	if strings.TrimSpace(c.Company) == "" {
		return fmt.Errorf("%w: company name is empty", ErrInvalidParameter)
	}
	if c.FYStart.IsZero() || c.FYEnd.IsZero() {
		return fmt.Errorf("%w: fiscal year bounds are required", ErrInvalidParameter)
	}
	if c.FYEnd.Before(c.FYStart.Time) {
		return fmt.Errorf("%w: fiscal year ends before it starts", ErrInvalidParameter)
	}
	switch c.Mode {
	case TransportModeAuto, TransportModeXMLAPI, TransportModeODBC:
	default:
		return fmt.Errorf("%w: unknown transport mode %q", ErrInvalidParameter, c.Mode)
	}
	return nil
}

// WithCompany returns a copy scoped to another company, keeping the fiscal year.
func (c CompanyContext) WithCompany(name string, mode TransportMode) CompanyContext {
	c.Company = strings.TrimSpace(name)
	if mode != "" {
		c.Mode = mode
	}
	return c
}
