package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// pageParams reads ?page=&perPage=; anything unparsable falls back to the
// store defaults.
func pageParams(c echo.Context) (page, perPage int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	perPage, _ = strconv.Atoi(c.QueryParam("perPage"))
	return page, perPage
}

func unauthenticated(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
}
