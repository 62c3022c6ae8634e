package health

import (
	"github.com/labstack/echo/v4"

	"github.com/trugenie/go-tally-extraction/internal/common/http"
	"github.com/trugenie/go-tally-extraction/internal/services"
)

type healthHandler struct {
	extractionSvc services.ExtractionService
}

// New health handler will initialize the health/ resources endpoint
func New(app *echo.Group, extractionSvc services.ExtractionService) {
	hh := healthHandler{extractionSvc: extractionSvc}
	app.GET("/health", hh.healthCheck)
}

// healthCheck godoc
// @Summary 	Get the reachability of both channels
// @Description	Probes the XML API and ODBC channels; always answers 200 with the report
// @Produce		json
// @Success 200 {object} models.Envelope
// @Router /health [get]
func (hh healthHandler) healthCheck(c echo.Context) error {
	return http.EnvelopeResponse(c, hh.extractionSvc.HealthCheck(c.Request().Context()))
}
