package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Ok1nam/demo-edp-final/core/partnership"
)

type partnershipApi struct {
	svc      *partnership.Service
	validate *validator.Validate
}

func registerPartnershipAPI(
	g *echo.Group,
	jwt echo.MiddlewareFunc,
	svc *partnership.Service,
	validate *validator.Validate,
) {
	api := partnershipApi{
		svc:      svc,
		validate: validate,
	}

	pg := g.Group("/partnerships", jwt)
	pg.GET("", api.query)
	pg.POST("", api.create)
	pg.GET("/stats", api.stats)

	// detail endpoints
	pg.GET("/:id", api.retrieve)
	pg.PUT("/:id", api.update)
	pg.DELETE("/:id", api.destroy)
}

func (api *partnershipApi) query(ctx echo.Context) error {
	partnerships, err := api.svc.List(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "listing partnerships")
	}
	return ctx.JSON(http.StatusOK, partnerships)
}

func (api *partnershipApi) create(ctx echo.Context) error {
	var data partnership.Partnership
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Partnership")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	p, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating partnership")
	}
	return ctx.JSON(http.StatusCreated, p)
}

func (api *partnershipApi) retrieve(ctx echo.Context) error {
	p, err := api.svc.Get(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "getting partnership")
	}
	return ctx.JSON(http.StatusOK, p)
}

func (api *partnershipApi) update(ctx echo.Context) error {
	var data partnership.Partnership
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Partnership")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	p, err := api.svc.Update(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating partnership")
	}
	return ctx.JSON(http.StatusOK, p)
}

func (api *partnershipApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting partnership")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *partnershipApi) stats(ctx echo.Context) error {
	stats, err := api.svc.Stats(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "computing partnership stats")
	}
	return ctx.JSON(http.StatusOK, stats)
}
