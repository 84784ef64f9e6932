package helpers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/apnapan/pulse/core"
	"github.com/apnapan/pulse/core/account"
	"github.com/apnapan/pulse/core/session"
)

var (
	errUnauthorized       = echo.NewHTTPError(http.StatusUnauthorized, "account not authenticated")
	ErrHttpNotFound       = echo.NewHTTPError(http.StatusNotFound, "not found")
	errTokenSigningFailed = errors.New("failed to sign token")
)

func AppHTTPErrorHandler(err error, c echo.Context) {
	var code int
	var message interface{}

	switch err := err.(type) {
	case *echo.HTTPError:
		if err == middleware.ErrJWTMissing {
			code = http.StatusUnauthorized
			message = err.Message
			break
		}
		if err.Internal != nil {
			if herr, ok := err.Internal.(*echo.HTTPError); ok {
				err = herr
			}
		}
		code = err.Code
		message = err.Message
	case validator.ValidationErrors:
		fldErrs := make(map[string]string)
		for _, vErr := range err {
			fldErrs[vErr.Field()] = vErr.Translate(core.Translator)
		}
		code = http.StatusBadRequest
		message = fldErrs
	case *core.ValidationError:
		if err.Fields != nil {
			fldErrs := make(map[string]string)
			for _, fErr := range err.Fields {
				fldErrs[fErr.Field] = fErr.Error
			}
			message = fldErrs
		} else {
			message = err.Error()
		}
		code = http.StatusBadRequest
	default:
		code, message = mapDomainError(err)
	}

	if c.Echo().Debug {
		message = err.Error()
	} else if m, ok := message.(string); ok {
		message = echo.Map{"error": m}
	}

	// Send response
	if !c.Response().Committed {
		if c.Request().Method == http.MethodHead { // Issue #608
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, message)
		}
		if err != nil {
			c.Echo().Logger.Error(err)
		}
	}
}

// mapDomainError translates business errors bubbling out of the services
// into HTTP status codes. Anything unrecognized is a server error.
func mapDomainError(err error) (int, interface{}) {
	var invalidTransition session.InvalidTransitionError
	switch {
	case errors.Is(err, account.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, account.ErrInvalidPassword),
		errors.Is(err, account.ErrEmailMismatch),
		errors.Is(err, account.ErrSchoolIDExists):
		return http.StatusBadRequest, err.Error()
	case errors.As(err, &invalidTransition):
		return http.StatusConflict, err.Error()
	case core.IsConnectivityError(err):
		return http.StatusServiceUnavailable, err.Error()
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}
