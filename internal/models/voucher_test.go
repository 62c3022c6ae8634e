package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func entry(name, amount string) LedgerEntry {
	d := MustDecimal(amount)
	return LedgerEntry{LedgerName: name, Amount: d, IsDebit: d.IsNegative()}
}

func TestVoucher_Balanced(t *testing.T) {
	tests := []struct {
		name      string
		entries   []LedgerEntry
		balanced  bool
		imbalance string
	}{
		{
			name:      "two legs",
			entries:   []LedgerEntry{entry("Cash", "-1180"), entry("Sales", "1000"), entry("Output GST", "180")},
			balanced:  true,
			imbalance: "0",
		},
		{
			name:      "rounding inside tolerance",
			entries:   []LedgerEntry{entry("Cash", "-100.005"), entry("Sales", "100")},
			balanced:  true,
			imbalance: "0.005",
		},
		{
			name:      "off by a rupee",
			entries:   []LedgerEntry{entry("Cash", "-101"), entry("Sales", "100")},
			balanced:  false,
			imbalance: "1",
		},
		{name: "no entries", balanced: true, imbalance: "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Voucher{Number: "S-1", Entries: tt.entries}
			assert.Equal(t, tt.balanced, v.Balanced())
			assert.True(t, v.Imbalance().Equal(MustDecimal(tt.imbalance)), "imbalance %s", v.Imbalance())
		})
	}
}

func TestVoucher_SideTotals(t *testing.T) {
	v := Voucher{Entries: []LedgerEntry{entry("Cash", "-1180"), entry("Sales", "1000"), entry("Output GST", "180")}}

	assert.True(t, v.DebitTotal().Equal(MustDecimal("1180")))
	assert.True(t, v.CreditTotal().Equal(MustDecimal("1180")))
	assert.Equal(t, PolarityDebit, v.Entries[0].Side())
	assert.Equal(t, PolarityCredit, v.Entries[1].Side())
}
