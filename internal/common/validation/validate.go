package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"

	"github.com/trugenie/go-tally-extraction/internal/models"
)

var (
	validate = validator.New()
	once     sync.Once
)

func init() {
	registerTallyDate()
	registerTransportMode()
	registerNoSpacesAtStartOrEnd()
}

// ErrorValidateResponse describes one rejected field.
type ErrorValidateResponse struct {
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message,omitempty"`
}

func (e ErrorValidateResponse) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type fieldError struct {
	code    string
	message func(param string) string
}

var fieldErrors = map[string]fieldError{
	"required":         {code: "MISSING_FIELD", message: func(string) string { return "field is missing" }},
	"min":              {code: "OUT_OF_RANGE", message: func(p string) string { return "must be at least " + p }},
	"max":              {code: "OUT_OF_RANGE", message: func(p string) string { return "must be at most " + p }},
	"tallydate":        {code: "INVALID_DATE", message: func(string) string { return "must be a calendar date in YYYYMMDD form" }},
	"transportmode":    {code: "INVALID_VALUE", message: func(string) string { return "must be one of auto, xml_api, odbc" }},
	"noStartEndSpaces": {code: "INVALID_FORMAT", message: func(string) string { return "must not start or end with spaces" }},
}

// ValidateStruct reports every rejected field, named after its json tag. The result
// wraps models.ErrInvalidParameter.
func ValidateStruct(toValidate any) error {
	// register function to get tag name from json tags.
	once.Do(func() {
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})

	err := validate.Struct(toValidate)
	if err == nil {
		return nil
	}

	var errs *multierror.Error
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		errs = multierror.Append(errs, ErrorValidateResponse{Message: err.Error()})
		return wrap(errs)
	}

	var valErrs validator.ValidationErrors
	if errors.As(err, &valErrs) {
		for _, valErr := range valErrs {
			res := ErrorValidateResponse{
				Code:    "UNKNOWN",
				Field:   valErr.Field(),
				Message: strings.TrimSpace(fmt.Sprintf("%s %s", valErr.Tag(), valErr.Param())),
			}
			if fe, found := fieldErrors[valErr.Tag()]; found {
				res.Code = fe.code
				res.Message = fe.message(valErr.Param())
			}
			errs = multierror.Append(errs, res)
		}
	}
	return wrap(errs)
}

// Errors lists the field errors carried by err.
func Errors(err error) []ErrorValidateResponse {
	var merr *multierror.Error
	if !errors.As(err, &merr) {
		return nil
	}
	out := make([]ErrorValidateResponse, 0, len(merr.Errors))
	for _, e := range merr.Errors {
		var res ErrorValidateResponse
		if errors.As(e, &res) {
			out = append(out, res)
		}
	}
	return out
}

func wrap(errs *multierror.Error) error {
	if errs.ErrorOrNil() == nil {
		return nil
	}
	errs.ErrorFormat = func(es []error) string {
		parts := make([]string, 0, len(es))
		for _, e := range es {
			parts = append(parts, e.Error())
		}
		return strings.Join(parts, "; ")
	}
	return fmt.Errorf("%w: %w", models.ErrInvalidParameter, errs)
}

func registerTallyDate() {
	_ = validate.RegisterValidation("tallydate", func(fl validator.FieldLevel) bool {
		_, err := models.ParseTallyDate(fl.Field().String())
		return err == nil
	})
}

func registerTransportMode() {
	_ = validate.RegisterValidation("transportmode", func(fl validator.FieldLevel) bool {
		_, err := models.ParseTransportMode(fl.Field().String())
		return err == nil
	})
}

func registerNoSpacesAtStartOrEnd() {
	_ = validate.RegisterValidation("noStartEndSpaces", func(fl validator.FieldLevel) bool {
		str := fl.Field().String()
		return str == "" || (str[0] != ' ' && str[len(str)-1] != ' ')
	})
}
