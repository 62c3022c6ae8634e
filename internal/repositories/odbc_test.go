package repositories

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/trugenie/go-tally-extraction/internal/common/tdl"
	"github.com/trugenie/go-tally-extraction/internal/config"
	"github.com/trugenie/go-tally-extraction/internal/models"
)

func TestODBCChannelTestSuite(t *testing.T) {
	t.Helper()
	suite.Run(t, new(odbcTestSuite))
}

type odbcTestSuite struct {
	suite.Suite
	db      *sql.DB
	mock    sqlmock.Sqlmock
	channel Channel
}

func (suite *odbcTestSuite) SetupTest() {
	var err error
	suite.db, suite.mock, err = sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(suite.T(), err)

	suite.channel = NewODBCChannel(suite.db, config.Tally{Timeout: time.Second, ProbeTimeout: time.Second}, nil)
}

func (suite *odbcTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	suite.db.Close()
}

func (suite *odbcTestSuite) TestMethod() {
	suite.Equal(models.ExtractionMethodODBC, suite.channel.Method())
}

func (suite *odbcTestSuite) TestFetch_Ledger() {
	e := tdl.MustLookup(models.EntityLedger)
	query := regexp.QuoteMeta("SELECT $Name, $Parent, $OpeningBalance, $ClosingBalance, $Address, $PartyGSTIN, " +
		"$IncomeTaxNumber, $Email, $Phone, $LedStateName, $Pincode FROM Ledger")

	fields := e.SecondaryFields()
	columns := make([]string, 0, len(fields))
	for _, f := range fields {
		columns = append(columns, f.Column())
	}
	suite.Require().NotContains(columns, "$CreditPeriod")
	rows := sqlmock.NewRows(columns).
		AddRow("HDFC Bank", "Bank Accounts", float64(-100000), float64(-250000.5), nil, nil, nil, nil, nil, nil, nil).
		AddRow([]byte(" Capital Account "), "Capital Account", nil, nil, nil, nil, nil, nil, nil, nil, int64(560034))
	suite.mock.ExpectQuery(query).WillReturnRows(rows)

	records, err := suite.channel.Fetch(context.Background(), tdl.Request{Entity: e, Company: "Nimona"})
	suite.Require().NoError(err)
	suite.Require().Len(records, 2)

	suite.Equal(map[string]string{
		"name":            "HDFC Bank",
		"parent":          "Bank Accounts",
		"opening_balance": "-100000",
		"closing_balance": "-250000.5",
	}, records[0].Fields)
	suite.Equal("Capital Account", records[1].Fields["name"])
	suite.Equal("560034", records[1].Fields["pincode"])
	_, ok := records[1].Value("closing_balance")
	suite.False(ok)
	_, ok = records[1].Value("credit_period")
	suite.False(ok)
}

func (suite *odbcTestSuite) TestFetch_Group() {
	suite.mock.ExpectQuery(regexp.QuoteMeta("SELECT $Name, $Parent, $IsPrimary FROM Group")).
		WillReturnRows(sqlmock.NewRows([]string{"$Name", "$Parent", "$IsPrimary"}).
			AddRow("Capital Account", "Primary", true))

	records, err := suite.channel.Fetch(context.Background(), tdl.Request{Entity: tdl.MustLookup(models.EntityGroup)})
	suite.Require().NoError(err)
	suite.Require().Len(records, 1)
	suite.Equal("Yes", records[0].Fields["grp_primary"])
}

func (suite *odbcTestSuite) TestFetch_Unsupported() {
	for _, kind := range []models.EntityKind{models.EntityVoucher, models.EntityCompanyInfo} {
		_, err := suite.channel.Fetch(context.Background(), tdl.Request{Entity: tdl.MustLookup(kind)})
		suite.ErrorIs(err, models.ErrUnsupportedOnChannel, kind)
	}
}

func (suite *odbcTestSuite) TestFetch_QueryError() {
	suite.mock.ExpectQuery("SELECT").WillReturnError(errors.New("[Tally ODBC] syntax error"))

	_, err := suite.channel.Fetch(context.Background(), tdl.Request{Entity: tdl.MustLookup(models.EntityCostCentre)})
	suite.ErrorIs(err, models.ErrUpstream)
}

func (suite *odbcTestSuite) TestProbe() {
	suite.mock.ExpectPing()
	suite.NoError(suite.channel.Probe(context.Background()))

	suite.mock.ExpectPing().WillReturnError(errors.New("data source name not found"))
	suite.ErrorIs(suite.channel.Probe(context.Background()), models.ErrConnectionRefused)
}

func TestODBCChannel_NotConfigured(t *testing.T) {
	ch := NewODBCChannel(nil, config.Tally{}, nil)

	assert.ErrorIs(t, ch.Probe(context.Background()), models.ErrConnectionRefused)
	_, err := ch.Fetch(context.Background(), tdl.Request{Entity: tdl.MustLookup(models.EntityLedger)})
	assert.ErrorIs(t, err, models.ErrConnectionRefused)
}

func TestStringify(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		want   string
		wantOK bool
	}{
		{name: "null", in: nil, wantOK: false},
		{name: "large float stays plain", in: float64(1000000), want: "1000000", wantOK: true},
		{name: "negative float", in: -5500000.25, want: "-5500000.25", wantOK: true},
		{name: "bytes trimmed", in: []byte(" Cash "), want: "Cash", wantOK: true},
		{name: "bool", in: false, want: "No", wantOK: true},
		{name: "date", in: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), want: "20250401", wantOK: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := stringify(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
