package models

// Ledger is an account of the chart of accounts. Balances follow the ledger convention:
// a positive amount sits on the debit side, a negative one on the credit side.
type Ledger struct {
	Name           string  `json:"ledger_name"`
	Company        string  `json:"company"`
	ParentGroup    string  `json:"parent_group"`
	OpeningBalance Balance `json:"opening_balance"`
	ClosingBalance Balance `json:"closing_balance"`
	NetMovement    Decimal `json:"net_movement"`
	Address        string  `json:"address,omitempty"`
	GSTIN          string  `json:"gstin,omitempty"`
	PAN            string  `json:"pan,omitempty"`
	Email          string  `json:"email,omitempty"`
	Phone          string  `json:"phone,omitempty"`
	State          string  `json:"state,omitempty"`
	Pincode        string  `json:"pincode,omitempty"`
	CreditPeriod   string  `json:"credit_period,omitempty"`
}

type Group struct {
	Name      string `json:"name"`
	Parent    string `json:"parent"`
	IsPrimary bool   `json:"is_primary"`
}

// RootParent is the pseudo parent the upstream reports for top-level groups.
const RootParent = "Primary"

func (g Group) IsRoot() bool {
	return g.Parent == "" || g.Parent == RootParent
}

type CostCentre struct {
	Name   string `json:"name"`
	Parent string `json:"parent"`
}

type CompanyInfo struct {
	Name      string `json:"company_name"`
	Address   string `json:"address"`
	State     string `json:"state"`
	Pincode   string `json:"pincode"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	GSTIN     string `json:"gstin"`
	PAN       string `json:"pan"`
	BooksFrom string `json:"books_from"`
}
