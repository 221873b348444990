package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/markobarraza/cafe-marketplace/internal/api/middleware"
	"github.com/markobarraza/cafe-marketplace/internal/core/ports"
)

// ctxActor extracts the claims attached by the Auth middleware and performs a
// fast-fail check before any service call: a token without a positive subject
// id is structurally valid but operationally unusable — reject with 401.
func ctxActor(c echo.Context) (ports.Actor, error) {
	claims, ok := middleware.Identity(c)
	if !ok {
		return ports.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	if claims.UserID <= 0 {
		return ports.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "token missing subject identity")
	}
	return ports.Actor{ID: claims.UserID, Role: claims.Role}, nil
}

// pathID parses the numeric :id path parameter. Identifiers are parsed once
// here at the boundary; everything downstream works with int64.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
