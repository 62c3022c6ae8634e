package masterdata

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/trugenie/go-tally-extraction/internal/common/http"
	"github.com/trugenie/go-tally-extraction/internal/models"
	"github.com/trugenie/go-tally-extraction/internal/services"
)

type masterDataHandler struct {
	extractionSvc services.ExtractionService
}

// New masterdata handler will initialize the groups/ and cost-centres/ resources endpoint
func New(app *echo.Group, extractionSvc services.ExtractionService) {
	handler := masterDataHandler{
		extractionSvc: extractionSvc,
	}

	app.GET("/groups", handler.getAll(extractionSvc.GetGroups))
	app.GET("/cost-centres", handler.getAll(extractionSvc.GetCostCentres))
}

// getAll API account groups or cost centres of the active company
// @Summary List groups / cost centres
// @Tags MasterData
// @Produce  json
// @Param refresh query bool false "bypass the cache"
// @Success 200 {object} models.Envelope
// @Failure 502 {object} models.Envelope
// @Router /v1/groups [get]
// @Router /v1/cost-centres [get]
func (h *masterDataHandler) getAll(get func(ctx context.Context, refresh bool) models.Envelope) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(models.RefreshRequest)
		if err := http.BindQuery(c, req); err != nil {
			return http.RestErrorValidationResponse(c, err)
		}

		return http.EnvelopeResponse(c, get(c.Request().Context(), req.Refresh))
	}
}
