package voucher

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/trugenie/go-tally-extraction/internal/common/http"
	"github.com/trugenie/go-tally-extraction/internal/models"
	"github.com/trugenie/go-tally-extraction/internal/services"
)

// voucherTypes maps the path kinds onto the upstream voucher type names.
var voucherTypes = map[string]string{
	"sales":        "Sales",
	"purchases":    "Purchase",
	"receipts":     "Receipt",
	"payments":     "Payment",
	"journals":     "Journal",
	"contras":      "Contra",
	"credit-notes": "Credit Note",
	"debit-notes":  "Debit Note",
}

type voucherHandler struct {
	extractionSvc services.ExtractionService
}

// New voucher handler will initialize the vouchers/ resources endpoint
func New(app *echo.Group, extractionSvc services.ExtractionService) {
	handler := voucherHandler{
		extractionSvc: extractionSvc,
	}
	api := app.Group("/vouchers")
	api.GET("", handler.getVouchers(false))
	api.GET("/details", handler.getVouchers(true))
	api.GET("/daybook", handler.getDayBook)
	api.GET("/:kind", handler.getVouchersByKind)
}

// getVouchers API vouchers in a date window; /details adds the ledger entries
// @Summary List vouchers
// @Tags Vouchers
// @Produce  json
// @Param voucher_type query string false "voucher type name"
// @Param from_date query string false "YYYYMMDD, defaults to the fiscal year start"
// @Param to_date query string false "YYYYMMDD, defaults to the fiscal year end"
// @Param limit query int false "defaults to 500, at most 10000"
// @Success 200 {object} models.Envelope
// @Failure 400 {object} http.RestErrorValidationResponseModel
// @Failure 502 {object} models.Envelope
// @Router /v1/vouchers [get]
func (h *voucherHandler) getVouchers(includeEntries bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(models.VoucherListRequest)
		if err := http.BindQuery(c, req); err != nil {
			return http.RestErrorValidationResponse(c, err)
		}

		return http.EnvelopeResponse(c, h.extractionSvc.GetVouchers(c.Request().Context(), services.VoucherQuery{
			Type:           req.VoucherType,
			From:           req.FromDate,
			To:             req.ToDate,
			Limit:          req.Limit,
			IncludeEntries: includeEntries,
		}))
	}
}

// getVouchersByKind API vouchers of one type, e.g. /vouchers/sales
// @Summary List vouchers of a type
// @Tags Vouchers
// @Produce  json
// @Param kind path string true "sales, purchases, receipts, payments, journals, contras, credit-notes or debit-notes"
// @Success 200 {object} models.Envelope
// @Failure 404 {object} models.Envelope
// @Router /v1/vouchers/{kind} [get]
func (h *voucherHandler) getVouchersByKind(c echo.Context) error {
	voucherType, found := voucherTypes[c.Param("kind")]
	if !found {
		return http.RestErrorResponse(c, fmt.Errorf("%w: voucher kind %q", models.ErrNotFound, c.Param("kind")))
	}

	req := new(models.VoucherListRequest)
	if err := http.BindQuery(c, req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	return http.EnvelopeResponse(c, h.extractionSvc.GetVouchers(c.Request().Context(), services.VoucherQuery{
		Type:  voucherType,
		From:  req.FromDate,
		To:    req.ToDate,
		Limit: req.Limit,
	}))
}

// getDayBook API vouchers of a single day with per-type totals
// @Summary Day book
// @Tags Vouchers
// @Produce  json
// @Param date query string false "YYYYMMDD, defaults to today"
// @Success 200 {object} models.Envelope
// @Failure 400 {object} http.RestErrorValidationResponseModel
// @Router /v1/vouchers/daybook [get]
func (h *voucherHandler) getDayBook(c echo.Context) error {
	req := new(models.DayBookRequest)
	if err := http.BindQuery(c, req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	return http.EnvelopeResponse(c, h.extractionSvc.GetDayBook(c.Request().Context(), req.Date))
}

