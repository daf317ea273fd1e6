package echoapi

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Ok1nam/demo-edp-final/core/pedagogy"
)

const (
	matchParam    = "match"
	templateParam = "template"
)

type pedagogyApi struct {
	svc      *pedagogy.Service
	validate *validator.Validate
}

func registerPedagogyAPI(
	g *echo.Group,
	jwt echo.MiddlewareFunc,
	svc *pedagogy.Service,
	validate *validator.Validate,
) {
	api := pedagogyApi{
		svc:      svc,
		validate: validate,
	}

	pg := g.Group("/pedagogy", jwt)
	pg.GET("", api.retrieve)
	pg.PUT("", api.update)
	pg.GET("/templates", api.templates)

	sg := pg.Group("/sectors")
	sg.POST("", api.createSector)
	sg.PUT("/:id", api.updateSector)
	sg.DELETE("/:id", api.destroySector)
}

func (api *pedagogyApi) retrieve(ctx echo.Context) error {
	report, err := api.svc.Report(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "building pedagogical costs report")
	}
	return ctx.JSON(http.StatusOK, report)
}

// update saves the school-wide settings and returns the recomputed report.
func (api *pedagogyApi) update(ctx echo.Context) error {
	data := pedagogy.DefaultSettings()
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Settings")
	}

	costs, err := api.svc.SaveSettings(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "saving pedagogical settings")
	}
	return ctx.JSON(http.StatusOK, pedagogy.BuildReport(costs))
}

// bindSector binds a sector; with ?template=true the closest template fills its figures.
func (api *pedagogyApi) bindSector(ctx echo.Context) (pedagogy.Sector, error) {
	var data pedagogy.Sector
	if err := ctx.Bind(&data); err != nil {
		return data, errors.Wrap(err, "binding to Sector")
	}
	if apply, _ := strconv.ParseBool(ctx.QueryParam(templateParam)); apply {
		if match, ok := pedagogy.MatchTemplate(data.Name); ok {
			data.Apply(match.SectorTemplate)
		}
	}
	return data, data.Validate(api.validate)
}

func (api *pedagogyApi) createSector(ctx echo.Context) error {
	data, err := api.bindSector(ctx)
	if err != nil {
		return err
	}

	s, err := api.svc.CreateSector(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating sector")
	}
	return ctx.JSON(http.StatusCreated, s)
}

func (api *pedagogyApi) updateSector(ctx echo.Context) error {
	data, err := api.bindSector(ctx)
	if err != nil {
		return err
	}

	s, err := api.svc.UpdateSector(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating sector")
	}
	return ctx.JSON(http.StatusOK, s)
}

func (api *pedagogyApi) destroySector(ctx echo.Context) error {
	if err := api.svc.DeleteSector(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting sector")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// templates lists the sector templates, or with ?match= the closest one.
func (api *pedagogyApi) templates(ctx echo.Context) error {
	name := ctx.QueryParam(matchParam)
	if name == "" {
		return ctx.JSON(http.StatusOK, pedagogy.Templates())
	}
	match, ok := pedagogy.MatchTemplate(name)
	if !ok {
		return errHttpNotFound
	}
	return ctx.JSON(http.StatusOK, match)
}
