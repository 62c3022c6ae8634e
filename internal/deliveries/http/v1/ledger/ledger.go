package ledger

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/trugenie/go-tally-extraction/internal/common/http"
	"github.com/trugenie/go-tally-extraction/internal/models"
	"github.com/trugenie/go-tally-extraction/internal/services"
)

type ledgerHandler struct {
	extractionSvc services.ExtractionService
}

// New ledger handler will initialize the ledgers/, debtors/ and creditors/ resources endpoint
func New(app *echo.Group, extractionSvc services.ExtractionService) {
	handler := ledgerHandler{
		extractionSvc: extractionSvc,
	}

	ledgers := app.Group("/ledgers")
	ledgers.GET("", handler.getLedgers)
	ledgers.GET("/search", handler.searchLedger)
	ledgers.GET("/group/:group", handler.getLedgersByGroup)
	ledgers.GET("/bank-accounts", handler.bucket(extractionSvc.GetBankAccounts))
	ledgers.GET("/cash-accounts", handler.bucket(extractionSvc.GetCashAccounts))
	ledgers.GET("/fixed-assets", handler.bucket(extractionSvc.GetFixedAssets))
	ledgers.GET("/loans", handler.bucket(extractionSvc.GetLoans))

	app.GET("/debtors", handler.bucket(extractionSvc.GetDebtors))
	app.GET("/debtors/top", handler.top(extractionSvc.GetTopDebtors))
	app.GET("/creditors", handler.bucket(extractionSvc.GetCreditors))
	app.GET("/creditors/top", handler.top(extractionSvc.GetTopCreditors))
}

// getLedgers API all ledgers of the active company
// @Summary List ledgers
// @Tags Ledgers
// @Produce  json
// @Param refresh query bool false "bypass the cache"
// @Success 200 {object} models.Envelope
// @Failure 502 {object} models.Envelope
// @Failure 504 {object} models.Envelope
// @Router /v1/ledgers [get]
func (h *ledgerHandler) getLedgers(c echo.Context) error {
	req := new(models.RefreshRequest)
	if err := http.BindQuery(c, req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	return http.EnvelopeResponse(c, h.extractionSvc.GetLedgers(c.Request().Context(), req.Refresh))
}

// searchLedger API one ledger by exact name, ignoring case
// @Summary Search ledger
// @Tags Ledgers
// @Produce  json
// @Param name query string true "ledger name"
// @Success 200 {object} models.Envelope
// @Failure 400 {object} http.RestErrorValidationResponseModel
// @Failure 404 {object} models.Envelope
// @Router /v1/ledgers/search [get]
func (h *ledgerHandler) searchLedger(c echo.Context) error {
	req := new(models.SearchLedgerRequest)
	if err := http.BindQuery(c, req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	return http.EnvelopeResponse(c, h.extractionSvc.SearchLedger(c.Request().Context(), req.Name))
}

// getLedgersByGroup API ledgers under a group or any of its sub-groups
// @Summary Ledgers by group
// @Tags Ledgers
// @Produce  json
// @Param group path string true "group name"
// @Success 200 {object} models.Envelope
// @Router /v1/ledgers/group/{group} [get]
func (h *ledgerHandler) getLedgersByGroup(c echo.Context) error {
	return http.EnvelopeResponse(c, h.extractionSvc.GetLedgersByGroup(c.Request().Context(), c.Param("group")))
}

func (h *ledgerHandler) bucket(get func(ctx context.Context) models.Envelope) echo.HandlerFunc {
	return func(c echo.Context) error {
		return http.EnvelopeResponse(c, get(c.Request().Context()))
	}
}

func (h *ledgerHandler) top(get func(ctx context.Context, limit int) models.Envelope) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(models.TopLedgersRequest)
		if err := http.BindQuery(c, req); err != nil {
			return http.RestErrorValidationResponse(c, err)
		}

		return http.EnvelopeResponse(c, get(c.Request().Context(), req.Limit))
	}
}
