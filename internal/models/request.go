package models

// Query-string requests of the REST front-end.
type (
	RefreshRequest struct {
		Refresh bool `query:"refresh" json:"refresh"`
	}

	SearchLedgerRequest struct {
		Name string `query:"name" json:"name" validate:"required,noStartEndSpaces"`
	}

	TopLedgersRequest struct {
		Limit int `query:"limit" json:"limit" validate:"omitempty,min=1,max=1000"`
	}

	VoucherListRequest struct {
		VoucherType string `query:"voucher_type" json:"voucher_type"`
		FromDate    string `query:"from_date" json:"from_date" validate:"omitempty,tallydate"`
		ToDate      string `query:"to_date" json:"to_date" validate:"omitempty,tallydate"`
		Limit       int    `query:"limit" json:"limit" validate:"omitempty,min=1,max=10000"`
	}

	DayBookRequest struct {
		Date string `query:"date" json:"date" validate:"omitempty,tallydate"`
	}

	SwitchCompanyRequest struct {
		CompanyName   string `query:"company_name" json:"company_name" validate:"required,noStartEndSpaces"`
		TransportMode string `query:"transport_mode" json:"transport_mode" validate:"omitempty,transportmode"`
	}
)
