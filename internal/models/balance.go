package models

// Polarity is the debit/credit side of a signed amount.
type Polarity string

const (
	PolarityDebit   Polarity = "debit"
	PolarityCredit  Polarity = "credit"
	PolarityNeutral Polarity = "neutral"
)

// PolarityOfBalance applies the ledger-balance convention: positive is debit, negative is credit
// and zero carries no side.
func PolarityOfBalance(d Decimal) Polarity {
	switch d.Sign() {
	case 1:
		return PolarityDebit
	case -1:
		return PolarityCredit
	default:
		return PolarityNeutral
	}
}

// Balance is a signed ledger balance paired with the polarity derived from its sign.
type Balance struct {
	Amount   Decimal  `json:"amount"`
	Polarity Polarity `json:"polarity"`
}

func NewBalance(signed Decimal) Balance {
	return Balance{Amount: signed, Polarity: PolarityOfBalance(signed)}
}

// Magnitude is the unsigned amount shown in a Dr/Cr column.
func (b Balance) Magnitude() Decimal {
	return b.Amount.Abs()
}
