package http

import (
	"errors"
	"net/http"

	"kayakoyan/internal/core/application/lifecycle"
	"kayakoyan/internal/core/domain/model/chat"
	"kayakoyan/internal/core/domain/model/order"
	"kayakoyan/internal/core/domain/model/user"
	"kayakoyan/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf maps core errors onto HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrIllegalTransition),
		errors.Is(err, errs.ErrConcurrentModification),
		errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, lifecycle.ErrDeliveryNotAllowed):
		return http.StatusConflict
	case errors.Is(err, errs.ErrUnauthorizedAction),
		errors.Is(err, order.ErrOwnListing):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, user.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, chat.ErrSystemMessageType):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as an Error body. Internal errors are logged and
// their details withheld.
func respondError(c echo.Context, err error) error {
	code := statusOf(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		c.Logger().Error(err)
		msg = http.StatusText(code)
	}
	return c.JSON(code, Error{Code: code, Message: msg})
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: msg})
}
