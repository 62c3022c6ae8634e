package tdl

import (
	"fmt"

	"github.com/trugenie/go-tally-extraction/internal/models"
)

type Dialect string

const (
	DialectReport     Dialect = "template_report"
	DialectCollection Dialect = "collection_export"
)

// Entity describes how one entity kind is requested and which fields it carries.
type Entity struct {
	Kind           models.EntityKind
	Dialect        Dialect
	CollectionType string
	CompanyScoped  bool
	// Table is the secondary-channel table; empty when the entity is not reachable there.
	Table  string
	Fields []Field

	// collection-export only
	EntryList   string
	EntryTags   []string
	EntryFields []Field
	RecordTag   string
	RecordAttrs []string
}

func (e Entity) Field(key string) (Field, bool) {
	for _, f := range e.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

func (e Entity) EntryField(key string) (Field, bool) {
	for _, f := range e.EntryFields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

func (e Entity) OnSecondary() bool {
	return e.Table != ""
}

// SecondaryFields are the fields selected as columns on the secondary channel, in declaration order.
func (e Entity) SecondaryFields() []Field {
	fields := make([]Field, 0, len(e.Fields))
	for _, f := range e.Fields {
		if !f.ReportOnly {
			fields = append(fields, f)
		}
	}
	return fields
}

var (
	companyList = Entity{
		Kind:           models.EntityCompanyList,
		Dialect:        DialectReport,
		CollectionType: "Company",
		Table:          "Company",
		Fields: []Field{
			{Key: "company_name", Method: "Name", Kind: KindText, Required: true},
		},
	}

	companyInfo = Entity{
		Kind:           models.EntityCompanyInfo,
		Dialect:        DialectReport,
		CollectionType: "Company",
		CompanyScoped:  true,
		Fields: []Field{
			{Key: "cmp_name", Method: "Name", Kind: KindText},
			{Key: "cmp_address", Method: "Address", Kind: KindText},
			{Key: "cmp_state", Method: "State", Kind: KindText},
			{Key: "cmp_pincode", Method: "Pincode", Kind: KindText},
			{Key: "cmp_phone", Method: "PhoneNumber", Kind: KindText},
			{Key: "cmp_email", Method: "Email", Kind: KindText},
			{Key: "cmp_gstin", Method: "GSTIN", Kind: KindText},
			{Key: "cmp_pan", Method: "IncomeTaxNumber", Kind: KindText},
			{Key: "cmp_books_from", Method: "BooksFrom", Kind: KindDate},
		},
	}

	ledger = Entity{
		Kind:           models.EntityLedger,
		Dialect:        DialectReport,
		CollectionType: "Ledger",
		CompanyScoped:  true,
		Table:          "Ledger",
		Fields: []Field{
			{Key: "name", Method: "Name", Kind: KindText, Required: true},
			{Key: "parent", Method: "Parent", Kind: KindText},
			{Key: "opening_balance", Method: "OpeningBalance", Kind: KindAmount, Default: "0"},
			{Key: "closing_balance", Method: "ClosingBalance", Kind: KindAmount, Default: "0"},
			{Key: "address", Method: "Address", Kind: KindText},
			{Key: "gstin", Method: "PartyGSTIN", Kind: KindText},
			{Key: "pan", Method: "IncomeTaxNumber", Kind: KindText},
			{Key: "email", Method: "Email", Kind: KindText},
			{Key: "phone", Method: "Phone", Kind: KindText},
			{Key: "state", Method: "LedStateName", Kind: KindText},
			{Key: "pincode", Method: "Pincode", Kind: KindText},
			{Key: "credit_period", Method: "CreditPeriod", Kind: KindText, ReportOnly: true},
		},
	}

	group = Entity{
		Kind:           models.EntityGroup,
		Dialect:        DialectReport,
		CollectionType: "Group",
		CompanyScoped:  true,
		Table:          "Group",
		Fields: []Field{
			{Key: "grp_name", Method: "Name", Kind: KindText, Required: true},
			{Key: "grp_parent", Method: "Parent", Kind: KindText},
			{Key: "grp_primary", Method: "IsPrimary", Kind: KindBool, Default: "No"},
		},
	}

	costCentre = Entity{
		Kind:           models.EntityCostCentre,
		Dialect:        DialectReport,
		CollectionType: "Cost Centre",
		CompanyScoped:  true,
		Table:          "CostCentre",
		Fields: []Field{
			{Key: "cc_name", Method: "Name", Kind: KindText, Required: true},
			{Key: "cc_parent", Method: "Parent", Kind: KindText},
		},
	}

	voucher = Entity{
		Kind:           models.EntityVoucher,
		Dialect:        DialectCollection,
		CollectionType: "Voucher",
		CompanyScoped:  true,
		RecordTag:      "VOUCHER",
		RecordAttrs:    []string{"VCHTYPE"},
		Fields: []Field{
			{Key: "voucher_number", Method: "VoucherNumber", Kind: KindText},
			{Key: "voucher_type", Method: "VoucherTypeName", Kind: KindText},
			{Key: "date", Method: "Date", Kind: KindDate, Required: true},
			{Key: "amount", Method: "Amount", Kind: KindAmount, Default: "0"},
			{Key: "party_ledger_name", Method: "PartyLedgerName", Kind: KindText, Aliases: []string{"PartyName"}},
			{Key: "narration", Method: "Narration", Kind: KindText},
		},
		EntryList: "AllLedgerEntries",
		EntryTags: []string{"ALLLEDGERENTRIES.LIST", "LEDGERENTRIES.LIST"},
		EntryFields: []Field{
			{Key: "ledger_name", Method: "LedgerName", Kind: KindText},
			{Key: "amount", Method: "Amount", Kind: KindAmount, Default: "0"},
			{Key: "is_deemed_positive", Method: "IsDeemedPositive", Kind: KindBool},
		},
	}

	catalogue = map[models.EntityKind]Entity{
		models.EntityCompanyList: companyList,
		models.EntityCompanyInfo: companyInfo,
		models.EntityLedger:      ledger,
		models.EntityGroup:       group,
		models.EntityCostCentre:  costCentre,
		models.EntityVoucher:     voucher,
	}
)

func Lookup(kind models.EntityKind) (Entity, error) {
	e, ok := catalogue[kind]
	if !ok {
		return Entity{}, fmt.Errorf("%w: unknown entity kind %q", models.ErrInvalidParameter, kind)
	}
	return e, nil
}

// MustLookup is for the fixed entity kinds declared in this package.
func MustLookup(kind models.EntityKind) Entity {
	e, err := Lookup(kind)
	if err != nil {
		panic(err)
	}
	return e
}
