package models

import (
	"fmt"
	"strings"
)

// ExtractionMethod tags the channel that produced a payload.
type ExtractionMethod string

const (
	ExtractionMethodXMLAPI ExtractionMethod = "xml_api"
	ExtractionMethodODBC   ExtractionMethod = "odbc"
)

// TransportMode is the channel selection policy held by the company context.
type TransportMode string

const (
	TransportModeAuto   TransportMode = "auto"
	TransportModeXMLAPI TransportMode = "xml_api"
	TransportModeODBC   TransportMode = "odbc"
)

func ParseTransportMode(s string) (TransportMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return TransportModeAuto, nil
	case "xml_api", "xml", "primary":
		return TransportModeXMLAPI, nil
	case "odbc", "secondary":
		return TransportModeODBC, nil
	default:
		return "", fmt.Errorf("%w: unknown transport mode %q", ErrInvalidParameter, s)
	}
}

// EntityKind identifies an upstream entity type; it is also the first half of a cache key.
type EntityKind string

const (
	EntityCompanyList EntityKind = "company_list"
	EntityCompanyInfo EntityKind = "company_info"
	EntityLedger      EntityKind = "ledger"
	EntityGroup       EntityKind = "group"
	EntityCostCentre  EntityKind = "cost_centre"
	EntityVoucher     EntityKind = "voucher"
)

// Cacheable reports whether results for the kind may be memoized. Vouchers are keyed by
// arbitrary date windows and are never cached.
func (k EntityKind) Cacheable() bool {
	switch k {
	case EntityLedger, EntityGroup, EntityCostCentre, EntityCompanyInfo:
		return true
	default:
		return false
	}
}
