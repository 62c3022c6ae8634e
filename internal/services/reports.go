package services

import (
	"sort"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/trugenie/go-tally-extraction/internal/models"
)

// TrialBalance puts every ledger's closing balance in the debit or credit column by its
// polarity. Totals are reported as they are; a difference is never absorbed.
func TrialBalance(ledgers []models.Ledger) models.TrialBalance {
	tb := models.TrialBalance{
		Rows:        make([]models.TrialBalanceRow, 0, len(ledgers)),
		TotalDebit:  models.Zero,
		TotalCredit: models.Zero,
	}
	for _, l := range ledgers {
		row := models.TrialBalanceRow{
			LedgerName:     l.Name,
			ParentGroup:    l.ParentGroup,
			Debit:          models.Zero,
			Credit:         models.Zero,
			ClosingBalance: l.ClosingBalance.Magnitude(),
			Polarity:       l.ClosingBalance.Polarity,
		}
		switch l.ClosingBalance.Polarity {
		case models.PolarityDebit:
			row.Debit = row.ClosingBalance
		case models.PolarityCredit:
			row.Credit = row.ClosingBalance
		}
		tb.TotalDebit = tb.TotalDebit.Add(row.Debit)
		tb.TotalCredit = tb.TotalCredit.Add(row.Credit)
		tb.Rows = append(tb.Rows, row)
	}
	tb.Difference = tb.TotalDebit.Sub(tb.TotalCredit)
	tb.IsBalanced = tb.Difference.Abs().LessThanOrEqual(models.BalanceTolerance.Decimal)
	return tb
}

// FinancialSummary sums signed closing balances per bucket. Credit-natured buckets
// (liabilities, payables, loans) are negated so a normal balance reads positive.
func FinancialSummary(company string, ledgers []models.Ledger, c Classifier) models.FinancialSummary {
	fs := models.FinancialSummary{
		Company:          company,
		TotalLedgers:     len(ledgers),
		TotalAssets:      models.Zero,
		TotalLiabilities: models.Zero,
		TotalReceivables: models.Zero,
		TotalPayables:    models.Zero,
		TotalBankBalance: models.Zero,
		TotalCashBalance: models.Zero,
		TotalLoans:       models.Zero,
		TotalFixedAssets: models.Zero,
	}

	sum := func(b Bucket) models.Decimal {
		total := models.Zero
		for _, l := range ledgers {
			if c.InBucket(l, b) {
				total = total.Add(l.ClosingBalance.Amount)
			}
		}
		return total
	}

	fs.TotalAssets = sum(BucketAssets)
	fs.TotalLiabilities = sum(BucketLiabilities).Neg()
	fs.TotalReceivables = sum(BucketSundryDebtors)
	fs.TotalPayables = sum(BucketSundryCreditors).Neg()
	fs.TotalBankBalance = sum(BucketBankAccounts)
	fs.TotalCashBalance = sum(BucketCashAccounts)
	fs.TotalLoans = sum(BucketLoans).Neg()
	fs.TotalFixedAssets = sum(BucketFixedAssets)
	return fs
}

// GroupSummary aggregates ledgers by their direct parent group, ordered by group name.
func GroupSummary(ledgers []models.Ledger) []models.GroupSummaryRow {
	byGroup := map[string]*models.GroupSummaryRow{}
	for _, l := range ledgers {
		name := l.ParentGroup
		if name == "" {
			name = "Unknown"
		}
		row, ok := byGroup[name]
		if !ok {
			row = &models.GroupSummaryRow{
				Group:            name,
				TotalOpening:     models.Zero,
				TotalClosing:     models.Zero,
				TotalNetMovement: models.Zero,
			}
			byGroup[name] = row
		}
		row.Count++
		row.TotalOpening = row.TotalOpening.Add(l.OpeningBalance.Amount)
		row.TotalClosing = row.TotalClosing.Add(l.ClosingBalance.Amount)
		row.TotalNetMovement = row.TotalNetMovement.Add(l.NetMovement)
	}

	rows := make([]models.GroupSummaryRow, 0, len(byGroup))
	for _, row := range byGroup {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Group < rows[j].Group })
	return rows
}

// DayBook summarises the vouchers of one date per voucher type.
func DayBook(date models.Date, vouchers []models.Voucher) models.DayBook {
	db := models.DayBook{
		Date:          date,
		Vouchers:      vouchers,
		SummaryByType: []models.VoucherTypeSummary{},
		TotalAmount:   models.Zero,
	}
	if db.Vouchers == nil {
		db.Vouchers = []models.Voucher{}
	}

	index := map[string]int{}
	for _, v := range vouchers {
		i, ok := index[v.Type]
		if !ok {
			i = len(db.SummaryByType)
			index[v.Type] = i
			db.SummaryByType = append(db.SummaryByType, models.VoucherTypeSummary{VoucherType: v.Type, TotalAmount: models.Zero})
		}
		db.SummaryByType[i].Count++
		db.SummaryByType[i].TotalAmount = db.SummaryByType[i].TotalAmount.Add(v.Amount)
		db.TotalAmount = db.TotalAmount.Add(v.Amount)
	}
	sort.Slice(db.SummaryByType, func(i, j int) bool {
		return db.SummaryByType[i].VoucherType < db.SummaryByType[j].VoucherType
	})
	return db
}

// TopByClosing orders ledgers by closing balance magnitude, largest first, and keeps limit.
func TopByClosing(ledgers []models.Ledger, limit int) []models.Ledger {
	out := slices.Clone(ledgers)
	slices.SortStableFunc(out, func(a, b models.Ledger) int {
		return b.ClosingBalance.Magnitude().Cmp(a.ClosingBalance.Magnitude().Decimal)
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	if out == nil {
		out = []models.Ledger{}
	}
	return out
}

// FindLedger matches a ledger name case-insensitively.
func FindLedger(ledgers []models.Ledger, name string) (models.Ledger, bool) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, l := range ledgers {
		if strings.ToLower(l.Name) == want {
			return l, true
		}
	}
	return models.Ledger{}, false
}

// FilterVouchers applies the voucher-type filter (case-insensitive) and the limit, in that
// order, and drops entries unless asked to keep them.
func FilterVouchers(vouchers []models.Voucher, voucherType string, limit int, includeEntries bool) []models.Voucher {
	out := make([]models.Voucher, 0)
	for _, v := range vouchers {
		if voucherType != "" && !strings.EqualFold(v.Type, voucherType) {
			continue
		}
		if !includeEntries {
			v.Entries = nil
		}
		out = append(out, v)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}
