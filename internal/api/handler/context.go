package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxUserID extracts the caller identity injected by the Auth middleware.
// Its presence proves the middleware ran; a handler reached without it is a
// wiring bug and fails closed with 401.
func ctxUserID(c echo.Context) (string, error) {
	id, _ := c.Get("user_id").(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}

// requestBase is the scheme+host of the current request, used to compose
// absolute avatar URLs when no public base URL is configured.
func requestBase(c echo.Context) string {
	return c.Scheme() + "://" + c.Request().Host
}
