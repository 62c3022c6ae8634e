package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/trugenie/go-tally-extraction/internal/common/graceful"
	xlog "github.com/trugenie/go-tally-extraction/internal/common/log"
	"github.com/trugenie/go-tally-extraction/internal/models"
	"github.com/trugenie/go-tally-extraction/internal/services"
	"github.com/trugenie/go-tally-extraction/internal/services/mock"
)

var now = time.Date(2025, 4, 15, 10, 30, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

type testCLIHelper struct {
	mockExtractor *mock.MockExtractionService
	stopped       *bool
	configPaths   *[]string
}

func run(t *testing.T, doMock func(h testCLIHelper), args ...string) (string, error) {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	h := testCLIHelper{
		mockExtractor: mock.NewMockExtractionService(mockCtrl),
		stopped:       new(bool),
		configPaths:   new([]string),
	}
	if doMock != nil {
		doMock(h)
	}

	c := newCLI(func(configPaths []string) (services.ExtractionService, []graceful.ProcessStopper, error) {
		*h.configPaths = configPaths
		return h.mockExtractor, []graceful.ProcessStopper{func(ctx context.Context) error {
			*h.stopped = true
			return nil
		}}, nil
	})

	var out bytes.Buffer
	root := c.rootCommand()
	root.SetOut(&out)
	root.SetArgs(args)
	err := root.Execute()
	c.stop()

	assert.True(t, *h.stopped, "stoppers run after every command")
	return out.String(), err
}

func TestVouchersCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want services.VoucherQuery
	}{
		{
			name: "defaults",
			args: []string{"vouchers"},
			want: services.VoucherQuery{Limit: services.DefaultVoucherLimit},
		},
		{
			name: "every flag",
			args: []string{"vouchers", "--from", "20250401", "--to", "20250430", "--type", "Sales", "--limit", "5", "--entries"},
			want: services.VoucherQuery{Type: "Sales", From: "20250401", To: "20250430", Limit: 5, IncludeEntries: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, func(h testCLIHelper) {
				h.mockExtractor.EXPECT().GetVouchers(gomock.Any(), tt.want).Return(models.NewSuccessEnvelope(
					[]models.Voucher{}, models.CountOf(0), models.ExtractionMethodXMLAPI, now))
			}, tt.args...)

			require.NoError(t, err)
			var env models.Envelope
			require.NoError(t, json.Unmarshal([]byte(out), &env))
			assert.True(t, env.Success)
			assert.Equal(t, models.ExtractionMethodXMLAPI, env.ExtractionMethod)
		})
	}
}

func TestCommands(t *testing.T) {
	ok := models.NewSuccessEnvelope(map[string]any{}, nil, models.ExtractionMethodODBC, now)

	tests := []struct {
		name   string
		args   []string
		doMock func(h testCLIHelper)
	}{
		{name: "health", args: []string{"health"}, doMock: func(h testCLIHelper) {
			h.mockExtractor.EXPECT().HealthCheck(gomock.Any()).Return(ok)
		}},
		{name: "ledgers", args: []string{"ledgers", "--refresh"}, doMock: func(h testCLIHelper) {
			h.mockExtractor.EXPECT().GetLedgers(gomock.Any(), true).Return(ok)
		}},
		{name: "daybook", args: []string{"daybook", "--date", "20250415"}, doMock: func(h testCLIHelper) {
			h.mockExtractor.EXPECT().GetDayBook(gomock.Any(), "20250415").Return(ok)
		}},
		{name: "trial-balance", args: []string{"trial-balance"}, doMock: func(h testCLIHelper) {
			h.mockExtractor.EXPECT().GetTrialBalance(gomock.Any()).Return(ok)
		}},
		{name: "financial-summary", args: []string{"financial-summary"}, doMock: func(h testCLIHelper) {
			h.mockExtractor.EXPECT().GetFinancialSummary(gomock.Any()).Return(ok)
		}},
		{name: "export", args: []string{"export"}, doMock: func(h testCLIHelper) {
			h.mockExtractor.EXPECT().ExportAll(gomock.Any()).Return(ok)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.doMock, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, `"extraction_method": "odbc"`)
		})
	}
}

func TestCommand_FailureExitsNonZero(t *testing.T) {
	out, err := run(t, func(h testCLIHelper) {
		h.mockExtractor.EXPECT().GetTrialBalance(gomock.Any()).Return(models.NewErrorEnvelope(
			fmt.Errorf("%w for ledger", models.ErrNoChannelAvailable), now))
	}, "trial-balance")

	assert.ErrorIs(t, err, errExtractionFailed)
	assert.Contains(t, out, `"error_kind": "NoChannelAvailable"`)
}

func TestCompanyFlags(t *testing.T) {
	var configPaths *[]string
	out, err := run(t, func(h testCLIHelper) {
		configPaths = h.configPaths
		gomock.InOrder(
			h.mockExtractor.EXPECT().Context().Return(models.CompanyContext{Company: "Nimona"}),
			h.mockExtractor.EXPECT().SwitchCompany(gomock.Any(), "Nimona", "odbc").Return(models.NewSuccessEnvelope(nil, nil, "", now)),
			h.mockExtractor.EXPECT().GetLedgers(gomock.Any(), false).Return(models.NewSuccessEnvelope([]models.Ledger{}, models.CountOf(0), models.ExtractionMethodODBC, now)),
		)
	}, "ledgers", "--mode", "odbc", "--config", "/etc/tally,./config")

	require.NoError(t, err)
	assert.Contains(t, out, `"count": 0`)
	assert.Equal(t, []string{"/etc/tally", "./config"}, *configPaths)
}

func TestCompanyFlags_SwitchFails(t *testing.T) {
	out, err := run(t, func(h testCLIHelper) {
		h.mockExtractor.EXPECT().SwitchCompany(gomock.Any(), "Nobody", "").Return(models.NewErrorEnvelope(
			fmt.Errorf("%w: company", models.ErrInvalidParameter), now))
	}, "ledgers", "--company", "Nobody")

	assert.ErrorIs(t, err, errExtractionFailed)
	assert.Contains(t, out, `"error_kind": "InvalidParameterError"`)
}
