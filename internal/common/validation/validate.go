// Package validation checks request and config structs and maps failures to user-facing messages.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"github.com/shopspring/decimal"

	"github.com/punyakios/go-kios-client/internal/models"
)

const codeUnknown = "UNKNOWN"

var (
	validate = validator.New()

	noSpecialPattern = regexp.MustCompile(`^[a-zA-Z0-9 ]*$`)
	msisdnPattern    = regexp.MustCompile(`^(\+?62|0)8[0-9]{7,12}$`)
)

func init() {
	// field names follow the json tags, "-" falls back to the Go field name
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(models.Decimal); ok {
			return d.String()
		}
		return nil
	}, models.Decimal{})

	rules := map[string]validator.Func{
		"nospecial":          matches(noSpecialPattern),
		"msisdn":             matches(msisdnPattern),
		"noStartEndSpaces":   noStartEndSpaces,
		"decimalGreaterThan": decimalGreaterThan,
	}
	for tag, fn := range rules {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("register validation %q: %v", tag, err))
		}
	}
}

// ValidateStruct returns nil or a multierror of ErrorValidateResponse, one per failed rule.
func ValidateStruct(toValidate interface{}) error {
	err := validate.Struct(toValidate)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return multierror.Append(nil, ErrorValidateResponse{Code: codeUnknown, Message: err.Error()})
	}

	var errs *multierror.Error
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			errs = multierror.Append(errs, toResponse(fe))
		}
	}
	return errs.ErrorOrNil()
}

// toResponse looks the failure up by "<namespace>_<tag>" first, then "<field>_<tag>".
func toResponse(fe validator.FieldError) ErrorValidateResponse {
	for _, key := range []string{fe.Namespace() + "_" + fe.Tag(), fe.Field() + "_" + fe.Tag()} {
		if detail, ok := models.MapErrors[key]; ok {
			return ErrorValidateResponse{Code: detail.Code, Field: fe.Field(), Message: detail.ErrorMessage.Error()}
		}
	}
	return ErrorValidateResponse{
		Code:    codeUnknown,
		Field:   fe.Field(),
		Message: strings.TrimSpace(fe.Tag() + " " + fe.Param()),
	}
}

func matches(pattern *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	}
}

func noStartEndSpaces(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == "" || (s[0] != ' ' && s[len(s)-1] != ' ')
}

// decimalGreaterThan compares a models.Decimal (seen as its string form) with the tag parameter.
func decimalGreaterThan(fl validator.FieldLevel) bool {
	raw, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return false
	}
	limit, err := decimal.NewFromString(fl.Param())
	if err != nil {
		return false
	}
	return value.GreaterThan(limit)
}
