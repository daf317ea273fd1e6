package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Ok1nam/demo-edp-final/core/rentability"
)

const scenarioParam = "scenario"

// RentabilityResponse holds the saved inputs, the metrics of the selected
// scenario and the three scenarios side by side.
type RentabilityResponse struct {
	Inputs    rentability.Inputs    `json:"inputs"`
	Metrics   rentability.Metrics   `json:"metrics"`
	Scenarios []rentability.Metrics `json:"scenarios"`
}

func newRentabilityResponse(in rentability.Inputs, scenario rentability.Scenario) RentabilityResponse {
	return RentabilityResponse{
		Inputs:    in,
		Metrics:   rentability.Compute(in, scenario),
		Scenarios: rentability.CompareScenarios(in),
	}
}

type rentabilityApi struct {
	svc      *rentability.Service
	validate *validator.Validate
}

func registerRentabilityAPI(
	g *echo.Group,
	jwt echo.MiddlewareFunc,
	svc *rentability.Service,
	validate *validator.Validate,
) {
	api := rentabilityApi{
		svc:      svc,
		validate: validate,
	}

	rg := g.Group("/rentability", jwt)
	rg.GET("", api.retrieve)
	rg.PUT("", api.update)
}

// retrieve computes the saved inputs; ?scenario= overrides the saved scenario.
func (api *rentabilityApi) retrieve(ctx echo.Context) error {
	in, err := api.svc.Get(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "getting rentability inputs")
	}

	scenario := rentability.ParseScenario(string(in.Scenario))
	if param := ctx.QueryParam(scenarioParam); param != "" {
		scenario = rentability.ParseScenario(param)
	}
	return ctx.JSON(http.StatusOK, newRentabilityResponse(in, scenario))
}

func (api *rentabilityApi) update(ctx echo.Context) error {
	var data rentability.Inputs
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Inputs")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	in, err := api.svc.Save(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "saving rentability inputs")
	}
	return ctx.JSON(http.StatusOK, newRentabilityResponse(in, in.Scenario))
}
