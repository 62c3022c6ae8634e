package models

import "time"

type TrialBalanceRow struct {
	LedgerName     string   `json:"ledger_name"`
	ParentGroup    string   `json:"parent_group"`
	Debit          Decimal  `json:"debit"`
	Credit         Decimal  `json:"credit"`
	ClosingBalance Decimal  `json:"closing_balance"`
	Polarity       Polarity `json:"closing_dr_cr"`
}

// TrialBalance keeps the column totals as computed; a non-zero Difference is reported, not corrected.
type TrialBalance struct {
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  Decimal           `json:"total_debit"`
	TotalCredit Decimal           `json:"total_credit"`
	Difference  Decimal           `json:"difference"`
	IsBalanced  bool              `json:"is_balanced"`
}

type FinancialSummary struct {
	Company          string  `json:"company"`
	TotalLedgers     int     `json:"total_ledgers"`
	TotalAssets      Decimal `json:"total_assets"`
	TotalLiabilities Decimal `json:"total_liabilities"`
	TotalReceivables Decimal `json:"total_receivables"`
	TotalPayables    Decimal `json:"total_payables"`
	TotalBankBalance Decimal `json:"total_bank_balance"`
	TotalCashBalance Decimal `json:"total_cash_balance"`
	TotalLoans       Decimal `json:"total_loans"`
	TotalFixedAssets Decimal `json:"total_fixed_assets"`
}

type GroupSummaryRow struct {
	Group            string  `json:"group"`
	Count            int     `json:"count"`
	TotalOpening     Decimal `json:"total_opening_balance"`
	TotalClosing     Decimal `json:"total_closing_balance"`
	TotalNetMovement Decimal `json:"total_net_movement"`
}

type VoucherTypeSummary struct {
	VoucherType string  `json:"voucher_type"`
	Count       int     `json:"count"`
	TotalAmount Decimal `json:"total_amount"`
}

type DayBook struct {
	Date          Date                 `json:"date"`
	Vouchers      []Voucher            `json:"vouchers"`
	SummaryByType []VoucherTypeSummary `json:"summary_by_type"`
	TotalAmount   Decimal              `json:"total_amount"`
}

type Export struct {
	CompanyInfo         CompanyInfo      `json:"company_info"`
	Groups              []Group          `json:"groups"`
	Ledgers             []Ledger         `json:"ledgers"`
	CostCentres         []CostCentre     `json:"cost_centres"`
	Vouchers            []Voucher        `json:"vouchers"`
	TrialBalance        TrialBalance     `json:"trial_balance"`
	FinancialSummary    FinancialSummary `json:"financial_summary"`
	ExtractionTimestamp time.Time        `json:"extraction_timestamp"`
}

type ChannelHealth struct {
	Reachable bool   `json:"reachable"`
	Error     string `json:"error,omitempty"`
}

type HealthReport struct {
	Company      string           `json:"company"`
	XMLAPI       ChannelHealth    `json:"xml_api"`
	ODBC         ChannelHealth    `json:"odbc"`
	ActiveMethod ExtractionMethod `json:"active_method,omitempty"`
}
