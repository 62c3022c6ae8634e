package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/trugenie/go-tally-extraction/internal/common/validation"
	"github.com/trugenie/go-tally-extraction/internal/models"
)

type (
	// RestErrorValidationResponseModel is an error envelope carrying the rejected fields.
	RestErrorValidationResponseModel struct {
		models.Envelope
		Errors []validation.ErrorValidateResponse `json:"errors"`
	}
)

// StatusFromKind maps an envelope error kind onto the HTTP status of the response.
func StatusFromKind(kind string) int {
	switch kind {
	case "":
		return http.StatusOK
	case models.ErrorKindInvalidParameter:
		return http.StatusBadRequest
	case models.ErrorKindNotFound:
		return http.StatusNotFound
	case models.ErrorKindTimeout:
		return http.StatusGatewayTimeout
	case models.ErrorKindUpstream,
		models.ErrorKindMalformedResponse,
		models.ErrorKindNoChannelAvailable,
		models.ErrorKindConnectionRefused:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// EnvelopeResponse writes env with the status derived from its error kind.
func EnvelopeResponse(c echo.Context, env models.Envelope) error {
	if env.Success {
		return c.JSON(http.StatusOK, env)
	}
	return c.JSON(StatusFromKind(env.ErrorKind), env)
}

// RestErrorResponse writes an error envelope for err. Echo HTTP errors keep their status.
func RestErrorResponse(c echo.Context, err error) error {
	env := models.NewErrorEnvelope(err, time.Now())

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if msg, ok := echoErr.Message.(string); ok {
			env.Error = msg
		}
		if echoErr.Code == http.StatusNotFound {
			env.ErrorKind = models.ErrorKindNotFound
		}
		return c.JSON(echoErr.Code, env)
	}
	return c.JSON(StatusFromKind(env.ErrorKind), env)
}

// RestErrorValidationResponse writes a 400 envelope listing every rejected field of err.
func RestErrorValidationResponse(c echo.Context, err error) error {
	res := RestErrorValidationResponseModel{
		Envelope: models.NewErrorEnvelope(err, time.Now()),
		Errors:   validation.Errors(err),
	}
	res.ErrorKind = models.ErrorKindInvalidParameter
	if res.Errors == nil {
		res.Errors = []validation.ErrorValidateResponse{}
	}
	return c.JSON(http.StatusBadRequest, res)
}
