package http

import (
	"errors"
	"net/http"

	"github.com/hashicorp/go-multierror"
	"github.com/labstack/echo/v4"

	"github.com/punyakios/go-kios-client/internal/catalog"
	"github.com/punyakios/go-kios-client/internal/common"
)

type (
	RestErrorResponseModel struct {
		Status  string      `json:"status" example:"error"`
		Code    interface{} `json:"code"`
		Message string      `json:"message" example:"error"`
	}

	RestCollectionResponseModel struct {
		Kind     string      `json:"kind" example:"collection"`
		Contents interface{} `json:"contents"`
		Total    int         `json:"total" example:"10"`
	}

	RestErrorValidationResponseModel struct {
		Status  string      `json:"status" example:"error"`
		Message string      `json:"message" example:"validation error"`
		Errors  interface{} `json:"errors"`
	}
)

func RestSuccessResponse(c echo.Context, code int, in interface{}) error {
	return c.JSON(code, in)
}

func RestCollectionResponse[T any](c echo.Context, contents []T) error {
	if contents == nil {
		contents = []T{}
	}
	return c.JSON(http.StatusOK, RestCollectionResponseModel{
		Kind:     "collection",
		Contents: contents,
		Total:    len(contents),
	})
}

func RestErrorResponse(c echo.Context, statusCode int, err error) error {
	res := RestErrorResponseModel{
		Status:  "error",
		Code:    statusCode,
		Message: err.Error(),
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		res.Code = echoErr.Code
		if msg, ok := echoErr.Message.(string); ok {
			res.Message = msg
		}
	}

	var fetchErr *catalog.FetchError
	if errors.As(err, &fetchErr) {
		res.Code = fetchErr.Kind.String()
		res.Message = fetchErr.Message
	}
	return c.JSON(statusCode, res)
}

func RestErrorValidationResponse(c echo.Context, err error) error {
	res := RestErrorValidationResponseModel{
		Status:  "error",
		Message: common.ErrValidation.Error(),
	}
	var merr *multierror.Error
	if errors.As(err, &merr) {
		res.Errors = merr.Errors
	}

	return c.JSON(http.StatusUnprocessableEntity, res)
}

// HandleServiceError writes err with the status that matches its kind.
func HandleServiceError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}

	var fetchErr *catalog.FetchError
	switch {
	case errors.Is(err, common.ErrValidation):
		return RestErrorValidationResponse(c, err)
	case errors.Is(err, common.ErrUnknownCategory):
		return RestErrorResponse(c, http.StatusNotFound, err)
	case errors.As(err, &fetchErr):
		if fetchErr.Kind == catalog.KindSessionExpired {
			return RestErrorResponse(c, http.StatusUnauthorized, err)
		}
		if fetchErr.Kind == catalog.KindNoConnection {
			return RestErrorResponse(c, http.StatusServiceUnavailable, err)
		}
		return RestErrorResponse(c, http.StatusBadGateway, err)
	}

	return RestErrorResponse(c, http.StatusInternalServerError, err)
}
