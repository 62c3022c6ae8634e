package models

// BalanceTolerance absorbs rounding in upstream decimal text.
var BalanceTolerance = MustDecimal("0.01")

// Voucher is one accounting transaction document.
type Voucher struct {
	Number      string        `json:"voucher_number"`
	Company     string        `json:"company"`
	Type        string        `json:"voucher_type"`
	Date        Date          `json:"date"`
	PartyName   string        `json:"party_name"`
	Particulars string        `json:"particulars"`
	Narration   string        `json:"narration"`
	Amount      Decimal       `json:"amount"`
	Entries     []LedgerEntry `json:"ledger_entries,omitempty"`
}

// LedgerEntry is one line of a voucher. Amount keeps the voucher-entry sign convention,
// which is inverted relative to ledger balances: a negative amount is a debit.
type LedgerEntry struct {
	LedgerName string  `json:"ledger_name"`
	Amount     Decimal `json:"amount"`
	IsDebit    bool    `json:"is_debit"`
}

func (e LedgerEntry) Side() Polarity {
	if e.IsDebit {
		return PolarityDebit
	}
	return PolarityCredit
}

// EntrySum is the signed sum of entry amounts; zero for a balanced voucher.
func (v Voucher) EntrySum() Decimal {
	total := Zero
	for _, e := range v.Entries {
		total = total.Add(e.Amount)
	}
	return total
}

// Imbalance is the absolute deviation from double-entry balance.
func (v Voucher) Imbalance() Decimal {
	return v.EntrySum().Abs()
}

func (v Voucher) Balanced() bool {
	return v.Imbalance().LessThanOrEqual(BalanceTolerance.Decimal)
}

// DebitTotal and CreditTotal sum entry magnitudes per side.
func (v Voucher) DebitTotal() Decimal {
	return v.sideTotal(true)
}

func (v Voucher) CreditTotal() Decimal {
	return v.sideTotal(false)
}

func (v Voucher) sideTotal(debit bool) Decimal {
	total := Zero
	for _, e := range v.Entries {
		if e.IsDebit == debit {
			total = total.Add(e.Amount.Abs())
		}
	}
	return total
}
