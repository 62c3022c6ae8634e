package masterdata

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/trugenie/go-tally-extraction/internal/models"
)

func Test_Handler_masterData(t *testing.T) {
	testHelper := masterDataTestHelper(t)

	type mockData struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name      string
		urlCalled string
		mockData  mockData
		doMock    func(mockData mockData)
	}{
		{
			name:      "success groups",
			urlCalled: "/api/v1/groups",
			mockData: mockData{
				wantRes:  `{"success":true,"data":[{"name":"Sundry Debtors","parent":"Current Assets","is_primary":false}],"count":1,"extraction_method":"xml_api","timestamp":"2025-04-15T10:30:00Z"}`,
				wantCode: 200,
			},
			doMock: func(mockData mockData) {
				testHelper.mockExtractor.EXPECT().GetGroups(gomock.Any(), false).Return(models.NewSuccessEnvelope(
					[]models.Group{{Name: "Sundry Debtors", Parent: "Current Assets"}}, models.CountOf(1), models.ExtractionMethodXMLAPI, now))
			},
		},
		{
			name:      "success cost centres refresh",
			urlCalled: "/api/v1/cost-centres?refresh=true",
			mockData: mockData{
				wantRes:  `{"success":true,"data":[{"name":"Mumbai","parent":""}],"count":1,"extraction_method":"odbc","timestamp":"2025-04-15T10:30:00Z"}`,
				wantCode: 200,
			},
			doMock: func(mockData mockData) {
				testHelper.mockExtractor.EXPECT().GetCostCentres(gomock.Any(), true).Return(models.NewSuccessEnvelope(
					[]models.CostCentre{{Name: "Mumbai"}}, models.CountOf(1), models.ExtractionMethodODBC, now))
			},
		},
		{
			name:      "error groups malformed",
			urlCalled: "/api/v1/groups",
			mockData: mockData{
				wantRes:  `{"success":false,"error":"malformed response","error_kind":"MalformedResponseError","timestamp":"2025-04-15T10:30:00Z"}`,
				wantCode: 502,
			},
			doMock: func(mockData mockData) {
				testHelper.mockExtractor.EXPECT().GetGroups(gomock.Any(), false).Return(models.NewErrorEnvelope(models.ErrMalformedResponse, now))
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.mockData)
			}

			req := httptest.NewRequest(http.MethodGet, tt.urlCalled, nil)
			rec := httptest.NewRecorder()
			testHelper.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tt.mockData.wantCode, resp.StatusCode)
			require.JSONEq(t, tt.mockData.wantRes, strings.TrimSuffix(string(body), "\n"))
		})
	}
}
