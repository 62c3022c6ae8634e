package http

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/trugenie/go-tally-extraction/internal/common/validation"
	"github.com/trugenie/go-tally-extraction/internal/models"
)

// BindQuery fills req from the query string and validates it. Query params are bound for
// every method, POST included.
func BindQuery(c echo.Context, req any) error {
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, req); err != nil {
		return fmt.Errorf("%w: %v", models.ErrInvalidParameter, err)
	}
	return validation.ValidateStruct(req)
}
