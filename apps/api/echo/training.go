package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Ok1nam/demo-edp-final/core/training"
)

type AcademicYearRequest struct {
	AcademicYear string `json:"academicYear"`
}

type trainingApi struct {
	svc      *training.Service
	validate *validator.Validate
}

func registerTrainingAPI(
	g *echo.Group,
	jwt echo.MiddlewareFunc,
	svc *training.Service,
	validate *validator.Validate,
) {
	api := trainingApi{
		svc:      svc,
		validate: validate,
	}

	tg := g.Group("/training", jwt)
	tg.GET("", api.retrieve)
	tg.PUT("", api.update)
	tg.GET("/stats", api.stats)
	tg.GET("/calendar", api.calendar)
	tg.GET("/reference", api.reference)

	mg := tg.Group("/modules")
	mg.POST("", api.createModule)
	mg.PUT("/:id", api.updateModule)
	mg.DELETE("/:id", api.destroyModule)
}

func (api *trainingApi) retrieve(ctx echo.Context) error {
	p, err := api.svc.Get(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "getting training plan")
	}
	return ctx.JSON(http.StatusOK, p)
}

func (api *trainingApi) update(ctx echo.Context) error {
	var data AcademicYearRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to AcademicYearRequest")
	}

	p, err := api.svc.SetAcademicYear(ctx.Request().Context(), data.AcademicYear)
	if err != nil {
		return errors.Wrap(err, "setting academic year")
	}
	return ctx.JSON(http.StatusOK, p)
}

func (api *trainingApi) createModule(ctx echo.Context) error {
	var data training.Module
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Module")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	m, err := api.svc.CreateModule(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating training module")
	}
	return ctx.JSON(http.StatusCreated, m)
}

func (api *trainingApi) updateModule(ctx echo.Context) error {
	var data training.Module
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Module")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	m, err := api.svc.UpdateModule(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating training module")
	}
	return ctx.JSON(http.StatusOK, m)
}

func (api *trainingApi) destroyModule(ctx echo.Context) error {
	if err := api.svc.DeleteModule(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting training module")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *trainingApi) stats(ctx echo.Context) error {
	stats, err := api.svc.Stats(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "computing training stats")
	}
	return ctx.JSON(http.StatusOK, stats)
}

func (api *trainingApi) calendar(ctx echo.Context) error {
	months, err := api.svc.Calendar(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "building training calendar")
	}
	return ctx.JSON(http.StatusOK, months)
}

func (api *trainingApi) reference(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, training.GetReference())
}
