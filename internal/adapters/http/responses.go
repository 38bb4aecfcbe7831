package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookstore/core/internal/domain/entities"
)

// MessageResponse is a simple confirmation payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// AddToCartRequest references the catalog book to snapshot into the cart.
type AddToCartRequest struct {
	BookID int `json:"book_id" validate:"required,gt=0"`
}

// httpError maps domain sentinel errors onto HTTP status codes. Anything
// unrecognized is treated as an internal persistence failure.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, entities.ErrUserNotFound),
		errors.Is(err, entities.ErrBookNotFound),
		errors.Is(err, entities.ErrOrderNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, entities.ErrDuplicateUser):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, entities.ErrWrongPassword),
		errors.Is(err, entities.ErrUnauthorized):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, entities.ErrEmptyCart),
		errors.Is(err, entities.ErrInvalidStatus),
		errors.Is(err, entities.ErrOutOfStock):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
