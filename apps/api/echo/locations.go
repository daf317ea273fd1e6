package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Ok1nam/demo-edp-final/core/location"
)

type locationApi struct {
	svc      *location.Service
	validate *validator.Validate
}

func registerLocationAPI(
	g *echo.Group,
	jwt echo.MiddlewareFunc,
	svc *location.Service,
	validate *validator.Validate,
) {
	api := locationApi{
		svc:      svc,
		validate: validate,
	}

	lg := g.Group("/locations", jwt)
	lg.GET("", api.query)
	lg.POST("", api.create)
	lg.POST("/score", api.score)
	lg.GET("/reference", api.reference)

	// detail endpoints
	lg.GET("/:id", api.retrieve)
	lg.PUT("/:id", api.update)
	lg.DELETE("/:id", api.destroy)
}

func (api *locationApi) query(ctx echo.Context) error {
	analyses, err := api.svc.List(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "listing location analyses")
	}
	return ctx.JSON(http.StatusOK, analyses)
}

func (api *locationApi) create(ctx echo.Context) error {
	data := location.NewAnalysis()
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Analysis")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	a, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating location analysis")
	}
	return ctx.JSON(http.StatusCreated, a)
}

func (api *locationApi) retrieve(ctx echo.Context) error {
	a, err := api.svc.Get(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "getting location analysis")
	}
	return ctx.JSON(http.StatusOK, a)
}

func (api *locationApi) update(ctx echo.Context) error {
	data := location.NewAnalysis()
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Analysis")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	a, err := api.svc.Update(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating location analysis")
	}
	return ctx.JSON(http.StatusOK, a)
}

func (api *locationApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting location analysis")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// score previews the score of criteria without saving anything.
func (api *locationApi) score(ctx echo.Context) error {
	data := location.DefaultCriteria()
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Criteria")
	}
	return ctx.JSON(http.StatusOK, location.Evaluate(data))
}

func (api *locationApi) reference(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, location.GetReference())
}
