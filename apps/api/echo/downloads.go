package echoapi

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/Ok1nam/demo-edp-final/core/dashboard"
	docsvc "github.com/Ok1nam/demo-edp-final/services/document"
)

const (
	contentTypePDF = "application/pdf"

	templateFilename = "modele-expert-comptable.xlsx"
	exportFilename   = "export-edp.xlsx"
)

type downloadsApi struct {
	dashboardSvc *dashboard.Service
}

func registerDownloadsAPI(g *echo.Group, jwt echo.MiddlewareFunc, dashboardSvc *dashboard.Service) {
	api := downloadsApi{dashboardSvc: dashboardSvc}

	dg := g.Group("/downloads", jwt)
	dg.GET("/template.xlsx", api.template)
	dg.GET("/export.xlsx", api.export)
}

func (api *downloadsApi) template(ctx echo.Context) error {
	f, err := docsvc.Template()
	if err != nil {
		return errors.Wrap(err, "building template workbook")
	}
	return workbook(ctx, templateFilename, f)
}

func (api *downloadsApi) export(ctx echo.Context) error {
	in, err := api.dashboardSvc.LoadInputs(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "loading workspace")
	}
	f, err := docsvc.Export(in)
	if err != nil {
		return errors.Wrap(err, "building export workbook")
	}
	return workbook(ctx, exportFilename, f)
}

func workbook(ctx echo.Context, filename string, f *excelize.File) error {
	var buf bytes.Buffer
	if err := docsvc.WriteXLSX(&buf, f); err != nil {
		return err
	}
	return attachment(ctx, filename, docsvc.ContentTypeXLSX, buf.Bytes())
}

// attachment sends data as a file download.
func attachment(ctx echo.Context, filename, contentType string, data []byte) error {
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return ctx.Blob(http.StatusOK, contentType, data)
}
