package echoapi

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Ok1nam/demo-edp-final/core/plan"
	docsvc "github.com/Ok1nam/demo-edp-final/services/document"
)

const businessPlanFilename = "business-plan.pdf"

type (
	BusinessPlanResponse struct {
		Plan    plan.BusinessPlan `json:"plan"`
		Metrics plan.Metrics      `json:"metrics"`
	}

	BudgetResponse struct {
		Budget plan.Budget `json:"budget"`
		Total  float64     `json:"total"`
	}
)

func newBusinessPlanResponse(bp plan.BusinessPlan) BusinessPlanResponse {
	return BusinessPlanResponse{Plan: bp, Metrics: plan.ComputeMetrics(bp)}
}

type planApi struct {
	svc     *plan.Service
	appName string
}

func registerPlanAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *plan.Service, appName string) {
	api := planApi{
		svc:     svc,
		appName: appName,
	}

	pg := g.Group("/business-plan", jwt)
	pg.GET("", api.retrieve)
	pg.PUT("", api.update)
	pg.GET("/report.pdf", api.report)

	g.POST("/budget", api.budget, jwt)
}

func (api *planApi) retrieve(ctx echo.Context) error {
	bp, err := api.svc.Get(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "getting business plan")
	}
	return ctx.JSON(http.StatusOK, newBusinessPlanResponse(bp))
}

func (api *planApi) update(ctx echo.Context) error {
	data := plan.DefaultBusinessPlan()
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to BusinessPlan")
	}

	bp, err := api.svc.Save(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "saving business plan")
	}
	return ctx.JSON(http.StatusOK, newBusinessPlanResponse(bp))
}

func (api *planApi) report(ctx echo.Context) error {
	bp, err := api.svc.Get(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "getting business plan")
	}

	var buf bytes.Buffer
	if err = docsvc.BusinessPlanPDF(&buf, api.appName, bp); err != nil {
		return errors.Wrap(err, "rendering business plan report")
	}
	return attachment(ctx, businessPlanFilename, contentTypePDF, buf.Bytes())
}

func (api *planApi) budget(ctx echo.Context) error {
	var data plan.Budget
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Budget")
	}
	return ctx.JSON(http.StatusOK, BudgetResponse{Budget: data, Total: data.Total()})
}
