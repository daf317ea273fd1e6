package echoapi

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Ok1nam/demo-edp-final/core/statuts"
	docsvc "github.com/Ok1nam/demo-edp-final/services/document"
)

type StatutsResponse struct {
	Document statuts.Document `json:"document"`
	Text     string           `json:"text"`
}

type statutsApi struct {
	validate *validator.Validate
	appName  string
}

func registerStatutsAPI(g *echo.Group, jwt echo.MiddlewareFunc, validate *validator.Validate, appName string) {
	api := statutsApi{
		validate: validate,
		appName:  appName,
	}

	sg := g.Group("/statuts", jwt)
	sg.POST("", api.generate)
	sg.POST("/preview", api.preview)
	sg.POST("/pdf", api.pdf)
}

func (api *statutsApi) bind(ctx echo.Context) (statuts.Document, error) {
	var data statuts.Input
	if err := ctx.Bind(&data); err != nil {
		return statuts.Document{}, errors.Wrap(err, "binding to Input")
	}
	if err := data.Validate(api.validate); err != nil {
		return statuts.Document{}, err
	}
	return statuts.Generate(data), nil
}

func (api *statutsApi) generate(ctx echo.Context) error {
	doc, err := api.bind(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, StatutsResponse{Document: doc, Text: doc.Text()})
}

func (api *statutsApi) preview(ctx echo.Context) error {
	doc, err := api.bind(ctx)
	if err != nil {
		return err
	}
	html, err := docsvc.StatutsHTML(doc)
	if err != nil {
		return errors.Wrap(err, "rendering statuts preview")
	}
	return ctx.HTML(http.StatusOK, html)
}

func (api *statutsApi) pdf(ctx echo.Context) error {
	doc, err := api.bind(ctx)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err = docsvc.StatutsPDF(&buf, api.appName, doc); err != nil {
		return errors.Wrap(err, "rendering statuts pdf")
	}
	filename := strings.TrimSuffix(doc.Filename, ".txt") + ".pdf"
	return attachment(ctx, filename, contentTypePDF, buf.Bytes())
}
