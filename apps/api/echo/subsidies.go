package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Ok1nam/demo-edp-final/core/subsidy"
)

type subsidyApi struct {
	svc      *subsidy.Service
	validate *validator.Validate
}

func registerSubsidyAPI(
	g *echo.Group,
	jwt echo.MiddlewareFunc,
	svc *subsidy.Service,
	validate *validator.Validate,
) {
	api := subsidyApi{
		svc:      svc,
		validate: validate,
	}

	sg := g.Group("/subsidies", jwt)
	sg.GET("", api.query)
	sg.POST("", api.create)
	sg.GET("/stats", api.stats)
	sg.GET("/funding-bodies", api.fundingBodies)

	// detail endpoints
	sg.GET("/:id", api.retrieve)
	sg.PUT("/:id", api.update)
	sg.DELETE("/:id", api.destroy)
}

func (api *subsidyApi) query(ctx echo.Context) error {
	apps, err := api.svc.List(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "listing subsidy applications")
	}
	return ctx.JSON(http.StatusOK, apps)
}

func (api *subsidyApi) create(ctx echo.Context) error {
	var data subsidy.Application
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Application")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	a, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating subsidy application")
	}
	return ctx.JSON(http.StatusCreated, a)
}

func (api *subsidyApi) retrieve(ctx echo.Context) error {
	a, err := api.svc.Get(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "getting subsidy application")
	}
	return ctx.JSON(http.StatusOK, a)
}

func (api *subsidyApi) update(ctx echo.Context) error {
	var data subsidy.Application
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Application")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	a, err := api.svc.Update(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating subsidy application")
	}
	return ctx.JSON(http.StatusOK, a)
}

func (api *subsidyApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting subsidy application")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *subsidyApi) stats(ctx echo.Context) error {
	stats, err := api.svc.Stats(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "computing subsidy stats")
	}
	return ctx.JSON(http.StatusOK, stats)
}

func (api *subsidyApi) fundingBodies(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, subsidy.FundingBodies())
}
