package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Ok1nam/demo-edp-final/core/navigation"
)

func registerPagesAPI(g *echo.Group, jwt echo.MiddlewareFunc) {
	pg := g.Group("/pages", jwt)
	pg.GET("", queryPages)
	pg.GET("/:id", retrievePage)
}

func queryPages(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, navigation.All())
}

// retrievePage resolves aliases; unknown ids resolve to the home page.
func retrievePage(ctx echo.Context) error {
	page := navigation.ParsePage(ctx.Param("id")).Canonical()
	return ctx.JSON(http.StatusOK, page.Info())
}
