package report

import (
	"github.com/labstack/echo/v4"

	"github.com/trugenie/go-tally-extraction/internal/common/http"
	"github.com/trugenie/go-tally-extraction/internal/services"
)

type reportHandler struct {
	extractionSvc services.ExtractionService
}

// New report handler will initialize the reports/ and export/ resources endpoint
func New(app *echo.Group, extractionSvc services.ExtractionService) {
	handler := reportHandler{
		extractionSvc: extractionSvc,
	}

	reports := app.Group("/reports")
	reports.GET("/financial-summary", handler.getFinancialSummary)
	reports.GET("/group-summary", handler.getGroupSummary)
	reports.GET("/trial-balance", handler.getTrialBalance)

	app.GET("/export/all", handler.exportAll)
}

// getFinancialSummary API totals of bank, cash, receivables, payables and loans
// @Summary Financial summary
// @Tags Reports
// @Produce  json
// @Success 200 {object} models.Envelope
// @Router /v1/reports/financial-summary [get]
func (h *reportHandler) getFinancialSummary(c echo.Context) error {
	return http.EnvelopeResponse(c, h.extractionSvc.GetFinancialSummary(c.Request().Context()))
}

// getGroupSummary API ledger count and totals per parent group
// @Router /v1/reports/group-summary [get]
func (h *reportHandler) getGroupSummary(c echo.Context) error {
	return http.EnvelopeResponse(c, h.extractionSvc.GetGroupSummary(c.Request().Context()))
}

// getTrialBalance API debit and credit columns of every ledger
// @Summary Trial balance
// @Tags Reports
// @Produce  json
// @Success 200 {object} models.Envelope
// @Router /v1/reports/trial-balance [get]
func (h *reportHandler) getTrialBalance(c echo.Context) error {
	return http.EnvelopeResponse(c, h.extractionSvc.GetTrialBalance(c.Request().Context()))
}

// exportAll API every entity of the active company in one document
// @Summary Export everything
// @Tags Reports
// @Produce  json
// @Success 200 {object} models.Envelope
// @Failure 502 {object} models.Envelope
// @Router /v1/export/all [get]
func (h *reportHandler) exportAll(c echo.Context) error {
	return http.EnvelopeResponse(c, h.extractionSvc.ExportAll(c.Request().Context()))
}
