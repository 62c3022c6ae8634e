package company

import (
	"github.com/labstack/echo/v4"

	"github.com/trugenie/go-tally-extraction/internal/common/http"
	"github.com/trugenie/go-tally-extraction/internal/models"
	"github.com/trugenie/go-tally-extraction/internal/services"
)

type companyHandler struct {
	extractionSvc services.ExtractionService
}

// New company handler will initialize the companies/, company/ and config/ resources endpoint
func New(app *echo.Group, extractionSvc services.ExtractionService) {
	handler := companyHandler{
		extractionSvc: extractionSvc,
	}
	app.GET("/companies", handler.getCompanies)
	app.GET("/company/info", handler.getCompanyInfo)
	app.POST("/config/switch-company", handler.switchCompany)
}

// getCompanies API list the companies loaded in Tally
// @Summary List companies
// @Tags Company
// @Produce  json
// @Success 200 {object} models.Envelope
// @Failure 502 {object} models.Envelope
// @Router /v1/companies [get]
func (h *companyHandler) getCompanies(c echo.Context) error {
	return http.EnvelopeResponse(c, h.extractionSvc.GetCompanies(c.Request().Context()))
}

// getCompanyInfo API company master data of the active company
// @Summary Get company info
// @Tags Company
// @Produce  json
// @Param refresh query bool false "bypass the cache"
// @Success 200 {object} models.Envelope
// @Failure 502 {object} models.Envelope
// @Router /v1/company/info [get]
func (h *companyHandler) getCompanyInfo(c echo.Context) error {
	req := new(models.RefreshRequest)
	if err := http.BindQuery(c, req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	return http.EnvelopeResponse(c, h.extractionSvc.GetCompanyInfo(c.Request().Context(), req.Refresh))
}

// switchCompany API change the active company and transport mode; the cache is cleared
// @Summary Switch company
// @Tags Company
// @Produce  json
// @Param company_name query string true "company name"
// @Param transport_mode query string false "auto, xml_api or odbc"
// @Success 200 {object} models.Envelope
// @Failure 400 {object} http.RestErrorValidationResponseModel
// @Router /v1/config/switch-company [post]
func (h *companyHandler) switchCompany(c echo.Context) error {
	req := new(models.SwitchCompanyRequest)
	if err := http.BindQuery(c, req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	return http.EnvelopeResponse(c, h.extractionSvc.SwitchCompany(c.Request().Context(), req.CompanyName, req.TransportMode))
}
