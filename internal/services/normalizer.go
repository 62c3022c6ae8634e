package services

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/trugenie/go-tally-extraction/internal/common/tdl"
	"github.com/trugenie/go-tally-extraction/internal/models"
)

var amountNoise = strings.NewReplacer(",", "", " ", "", "\u00a0", "", "₹", "")

// ParseAmount reads upstream amount text such as "1,23,456.00 Dr", "(-)1,000", "(250)" or
// "500-". The value keeps the sign written in the text; a Dr/Cr suffix is returned
// separately because its meaning depends on the entity kind.
func ParseAmount(raw string) (models.Decimal, models.Polarity, error) {
	s := amountNoise.Replace(strings.TrimSpace(raw))

	var suffix models.Polarity
	switch upper := strings.ToUpper(s); {
	case strings.HasSuffix(upper, "DR"):
		suffix, s = models.PolarityDebit, s[:len(s)-2]
	case strings.HasSuffix(upper, "CR"):
		suffix, s = models.PolarityCredit, s[:len(s)-2]
	}

	negative := false
	if strings.HasPrefix(s, "(-)") {
		negative, s = true, s[3:]
	}
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative, s = !negative, s[1:len(s)-1]
	}
	if strings.HasSuffix(s, "-") && len(s) > 1 {
		negative, s = !negative, s[:len(s)-1]
	}
	if s == "" {
		return models.Decimal{}, "", fmt.Errorf("%w: empty amount %q", models.ErrNormalization, raw)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return models.Decimal{}, "", fmt.Errorf("%w: amount %q: %v", models.ErrNormalization, raw, err)
	}
	if negative {
		d = d.Neg()
	}
	return models.NewDecimalFromExternal(d), suffix, nil
}

// ledgerBalance applies the ledger convention: debit positive, credit negative.
func ledgerBalance(raw string) (models.Decimal, error) {
	v, suffix, err := ParseAmount(raw)
	if err != nil {
		return models.Decimal{}, err
	}
	switch suffix {
	case models.PolarityDebit:
		return v.Abs(), nil
	case models.PolarityCredit:
		return v.Abs().Neg(), nil
	}
	return v, nil
}

// entryAmount applies the voucher-entry convention, the inverse of ledgerBalance: debit
// negative, credit positive.
func entryAmount(raw string) (models.Decimal, error) {
	v, suffix, err := ParseAmount(raw)
	if err != nil {
		return models.Decimal{}, err
	}
	switch suffix {
	case models.PolarityDebit:
		return v.Abs().Neg(), nil
	case models.PolarityCredit:
		return v.Abs(), nil
	}
	return v, nil
}

func parseFlag(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "true", "1", "y":
		return true, nil
	case "no", "false", "0", "n", "":
		return false, nil
	default:
		return false, fmt.Errorf("%w: flag %q", models.ErrNormalization, raw)
	}
}

// fieldReader reads one raw record through its field contract. The first failure sticks
// and later reads return zero values.
type fieldReader struct {
	kind   models.EntityKind
	index  int
	fields []tdl.Field
	rec    models.RawRecord
	err    error
}

func newFieldReader(kind models.EntityKind, index int, fields []tdl.Field, rec models.RawRecord) *fieldReader {
	return &fieldReader{kind: kind, index: index, fields: fields, rec: rec}
}

func (r *fieldReader) fail(key string, err error) {
	if r.err == nil {
		r.err = fmt.Errorf("%s record %d field %s: %w", r.kind, r.index, key, err)
	}
}

// raw resolves the value of key: the upstream value, else the declared default. Blank
// values count as missing for every kind except optional text.
func (r *fieldReader) raw(key string) (string, bool) {
	var field tdl.Field
	found := false
	for _, f := range r.fields {
		if f.Key == key {
			field, found = f, true
			break
		}
	}
	if !found {
		r.fail(key, fmt.Errorf("%w: field is not declared", models.ErrNormalization))
		return "", false
	}

	v, ok := r.rec.Value(key)
	v = strings.TrimSpace(v)
	if ok && (v != "" || (field.Kind == tdl.KindText && !field.Required)) {
		return v, true
	}
	if field.Default != "" {
		return field.Default, true
	}
	if field.Required {
		r.fail(key, fmt.Errorf("%w: required value is missing", models.ErrNormalization))
	}
	return "", false
}

func (r *fieldReader) text(key string) string {
	v, _ := r.raw(key)
	return v
}

func (r *fieldReader) balance(key string) models.Decimal {
	v, ok := r.raw(key)
	if !ok {
		return models.Zero
	}
	d, err := ledgerBalance(v)
	if err != nil {
		r.fail(key, err)
		return models.Zero
	}
	return d
}

func (r *fieldReader) entry(key string) models.Decimal {
	v, ok := r.raw(key)
	if !ok {
		return models.Zero
	}
	d, err := entryAmount(v)
	if err != nil {
		r.fail(key, err)
		return models.Zero
	}
	return d
}

func (r *fieldReader) date(key string) models.Date {
	v, ok := r.raw(key)
	if !ok {
		return models.Date{}
	}
	d, err := models.ParseUpstreamDate(v)
	if err != nil {
		r.fail(key, fmt.Errorf("%w: %v", models.ErrNormalization, err))
		return models.Date{}
	}
	return d
}

// flag returns the value and whether the upstream (or a default) supplied one.
func (r *fieldReader) flag(key string) (bool, bool) {
	v, ok := r.raw(key)
	if !ok {
		return false, false
	}
	b, err := parseFlag(v)
	if err != nil {
		r.fail(key, err)
		return false, false
	}
	return b, true
}

func NormalizeCompanies(records []models.RawRecord) ([]string, error) {
	e := tdl.MustLookup(models.EntityCompanyList)
	names := make([]string, 0, len(records))
	for i, rec := range records {
		r := newFieldReader(e.Kind, i, e.Fields, rec)
		name := r.text("company_name")
		if r.err != nil {
			return nil, r.err
		}
		names = append(names, name)
	}
	return names, nil
}

// NormalizeCompanyInfo reads the first record; the company name falls back to the name
// the request was scoped to.
func NormalizeCompanyInfo(records []models.RawRecord, company string) (models.CompanyInfo, error) {
	info := models.CompanyInfo{Name: company}
	if len(records) == 0 {
		return info, nil
	}

	e := tdl.MustLookup(models.EntityCompanyInfo)
	r := newFieldReader(e.Kind, 0, e.Fields, records[0])
	if name := r.text("cmp_name"); name != "" {
		info.Name = name
	}
	info.Address = r.text("cmp_address")
	info.State = r.text("cmp_state")
	info.Pincode = r.text("cmp_pincode")
	info.Phone = r.text("cmp_phone")
	info.Email = r.text("cmp_email")
	info.GSTIN = r.text("cmp_gstin")
	info.PAN = r.text("cmp_pan")
	info.BooksFrom = r.date("cmp_books_from").String()
	if r.err != nil {
		return models.CompanyInfo{}, r.err
	}
	return info, nil
}

func NormalizeLedgers(records []models.RawRecord, company string) ([]models.Ledger, error) {
	e := tdl.MustLookup(models.EntityLedger)
	ledgers := make([]models.Ledger, 0, len(records))
	for i, rec := range records {
		r := newFieldReader(e.Kind, i, e.Fields, rec)
		opening := r.balance("opening_balance")
		closing := r.balance("closing_balance")
		l := models.Ledger{
			Name:           r.text("name"),
			Company:        company,
			ParentGroup:    r.text("parent"),
			OpeningBalance: models.NewBalance(opening),
			ClosingBalance: models.NewBalance(closing),
			NetMovement:    closing.Sub(opening),
			Address:        r.text("address"),
			GSTIN:          r.text("gstin"),
			PAN:            r.text("pan"),
			Email:          r.text("email"),
			Phone:          r.text("phone"),
			State:          r.text("state"),
			Pincode:        r.text("pincode"),
			CreditPeriod:   r.text("credit_period"),
		}
		if r.err != nil {
			return nil, r.err
		}
		ledgers = append(ledgers, l)
	}
	return ledgers, nil
}

func NormalizeGroups(records []models.RawRecord) ([]models.Group, error) {
	e := tdl.MustLookup(models.EntityGroup)
	groups := make([]models.Group, 0, len(records))
	for i, rec := range records {
		r := newFieldReader(e.Kind, i, e.Fields, rec)
		g := models.Group{
			Name:   r.text("grp_name"),
			Parent: r.text("grp_parent"),
		}
		g.IsPrimary, _ = r.flag("grp_primary")
		if r.err != nil {
			return nil, r.err
		}
		groups = append(groups, g)
	}
	return groups, nil
}

func NormalizeCostCentres(records []models.RawRecord) ([]models.CostCentre, error) {
	e := tdl.MustLookup(models.EntityCostCentre)
	centres := make([]models.CostCentre, 0, len(records))
	for i, rec := range records {
		r := newFieldReader(e.Kind, i, e.Fields, rec)
		c := models.CostCentre{
			Name:   r.text("cc_name"),
			Parent: r.text("cc_parent"),
		}
		if r.err != nil {
			return nil, r.err
		}
		centres = append(centres, c)
	}
	return centres, nil
}

// NormalizeVouchers keeps every voucher that carries a number, entries included.
// Optional and cancelled vouchers come without one and are skipped.
func NormalizeVouchers(records []models.RawRecord, company string) ([]models.Voucher, error) {
	e := tdl.MustLookup(models.EntityVoucher)
	vouchers := make([]models.Voucher, 0, len(records))
	for i, rec := range records {
		r := newFieldReader(e.Kind, i, e.Fields, rec)
		number := r.text("voucher_number")
		if number == "" {
			continue
		}

		v := models.Voucher{
			Number:    number,
			Company:   company,
			Type:      r.text("voucher_type"),
			Date:      r.date("date"),
			PartyName: r.text("party_ledger_name"),
			Narration: r.text("narration"),
		}
		if v.Type == "" {
			v.Type = rec.Attr("VCHTYPE")
		}
		header := r.entry("amount")
		if r.err != nil {
			return nil, r.err
		}

		entries, err := normalizeEntries(e, i, rec.Children)
		if err != nil {
			return nil, err
		}
		v.Entries = entries

		if len(entries) > 0 {
			v.Particulars = entries[0].LedgerName
		}
		if v.PartyName == "" {
			v.PartyName = v.Particulars
		}
		v.Amount = voucherTotal(entries, header)

		vouchers = append(vouchers, v)
	}
	return vouchers, nil
}

func normalizeEntries(e tdl.Entity, voucherIndex int, children []models.RawRecord) ([]models.LedgerEntry, error) {
	if len(children) == 0 {
		return nil, nil
	}
	entries := make([]models.LedgerEntry, 0, len(children))
	for _, child := range children {
		r := newFieldReader(e.Kind, voucherIndex, e.EntryFields, child)
		entry := models.LedgerEntry{
			LedgerName: r.text("ledger_name"),
			Amount:     r.entry("amount"),
		}
		isDebit, ok := r.flag("is_deemed_positive")
		if !ok {
			isDebit = entry.Amount.IsNegative()
		}
		entry.IsDebit = isDebit
		if r.err != nil {
			return nil, r.err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// voucherTotal is the Day Book amount: the debit side, else the credit side, else the
// header amount.
func voucherTotal(entries []models.LedgerEntry, header models.Decimal) models.Decimal {
	debit, credit := models.Zero, models.Zero
	for _, e := range entries {
		switch e.Amount.Sign() {
		case -1:
			debit = debit.Add(e.Amount.Abs())
		case 1:
			credit = credit.Add(e.Amount)
		}
	}
	switch {
	case !debit.IsZero():
		return debit
	case !credit.IsZero():
		return credit
	default:
		return header.Abs()
	}
}
