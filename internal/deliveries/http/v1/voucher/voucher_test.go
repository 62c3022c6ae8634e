package voucher

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/trugenie/go-tally-extraction/internal/models"
	"github.com/trugenie/go-tally-extraction/internal/services"
)

func vouchersEnvelope(n int) models.Envelope {
	vouchers := make([]models.Voucher, n)
	return models.NewSuccessEnvelope(vouchers, models.CountOf(n), models.ExtractionMethodXMLAPI, now)
}

func Test_Handler_voucher(t *testing.T) {
	testHelper := voucherTestHelper(t)
	mockExtractor := testHelper.mockExtractor

	type mockData struct {
		wantCode int
		wantKind string
	}
	tests := []struct {
		name      string
		urlCalled string
		mockData  mockData
		doMock    func()
	}{
		{
			name:      "success vouchers default window",
			urlCalled: "/api/v1/vouchers",
			mockData:  mockData{wantCode: 200},
			doMock: func() {
				mockExtractor.EXPECT().GetVouchers(gomock.Any(), services.VoucherQuery{}).Return(vouchersEnvelope(3))
			},
		},
		{
			name:      "success vouchers filtered",
			urlCalled: "/api/v1/vouchers?voucher_type=Sales&from_date=20250401&to_date=20250430&limit=50",
			mockData:  mockData{wantCode: 200},
			doMock: func() {
				mockExtractor.EXPECT().GetVouchers(gomock.Any(), services.VoucherQuery{
					Type: "Sales", From: "20250401", To: "20250430", Limit: 50,
				}).Return(vouchersEnvelope(1))
			},
		},
		{
			name:      "success voucher details carry entries",
			urlCalled: "/api/v1/vouchers/details?limit=10",
			mockData:  mockData{wantCode: 200},
			doMock: func() {
				mockExtractor.EXPECT().GetVouchers(gomock.Any(), services.VoucherQuery{
					Limit: 10, IncludeEntries: true,
				}).Return(vouchersEnvelope(1))
			},
		},
		{
			name:      "error vouchers bad date",
			urlCalled: "/api/v1/vouchers?from_date=01-04-2025",
			mockData:  mockData{wantCode: 400, wantKind: models.ErrorKindInvalidParameter},
		},
		{
			name:      "error vouchers limit too large",
			urlCalled: "/api/v1/vouchers?limit=10001",
			mockData:  mockData{wantCode: 400, wantKind: models.ErrorKindInvalidParameter},
		},
		{
			name:      "error vouchers inverted window from service",
			urlCalled: "/api/v1/vouchers?from_date=20250430&to_date=20250401",
			mockData:  mockData{wantCode: 400, wantKind: models.ErrorKindInvalidParameter},
			doMock: func() {
				mockExtractor.EXPECT().GetVouchers(gomock.Any(), services.VoucherQuery{
					From: "20250430", To: "20250401",
				}).Return(models.NewErrorEnvelope(models.ErrInvalidParameter, now))
			},
		},
		{
			name:      "success sales",
			urlCalled: "/api/v1/vouchers/sales",
			mockData:  mockData{wantCode: 200},
			doMock: func() {
				mockExtractor.EXPECT().GetVouchers(gomock.Any(), services.VoucherQuery{Type: "Sales"}).Return(vouchersEnvelope(2))
			},
		},
		{
			name:      "success credit notes",
			urlCalled: "/api/v1/vouchers/credit-notes?from_date=20250401",
			mockData:  mockData{wantCode: 200},
			doMock: func() {
				mockExtractor.EXPECT().GetVouchers(gomock.Any(), services.VoucherQuery{
					Type: "Credit Note", From: "20250401",
				}).Return(vouchersEnvelope(0))
			},
		},
		{
			name:      "error unknown kind",
			urlCalled: "/api/v1/vouchers/memos",
			mockData:  mockData{wantCode: 404, wantKind: models.ErrorKindNotFound},
		},
		{
			name:      "success daybook",
			urlCalled: "/api/v1/vouchers/daybook?date=20250415",
			mockData:  mockData{wantCode: 200},
			doMock: func() {
				mockExtractor.EXPECT().GetDayBook(gomock.Any(), "20250415").Return(models.NewSuccessEnvelope(
					models.DayBook{Date: models.NewDate(2025, 4, 15)}, models.CountOf(0), models.ExtractionMethodXMLAPI, now))
			},
		},
		{
			name:      "success daybook today",
			urlCalled: "/api/v1/vouchers/daybook",
			mockData:  mockData{wantCode: 200},
			doMock: func() {
				mockExtractor.EXPECT().GetDayBook(gomock.Any(), "").Return(models.NewSuccessEnvelope(
					models.DayBook{Date: models.NewDate(2025, 4, 15)}, models.CountOf(0), models.ExtractionMethodXMLAPI, now))
			},
		},
		{
			name:      "error daybook impossible date",
			urlCalled: "/api/v1/vouchers/daybook?date=20250230",
			mockData:  mockData{wantCode: 400, wantKind: models.ErrorKindInvalidParameter},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock()
			}

			req := httptest.NewRequest(http.MethodGet, tt.urlCalled, nil)
			rec := httptest.NewRecorder()
			testHelper.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			var env map[string]any
			require.NoError(t, json.Unmarshal(body, &env))

			require.Equal(t, tt.mockData.wantCode, resp.StatusCode)
			assert.Equal(t, tt.mockData.wantKind == "", env["success"])
			if tt.mockData.wantKind != "" {
				assert.Equal(t, tt.mockData.wantKind, env["error_kind"])
			}
		})
	}
}
