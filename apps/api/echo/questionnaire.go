package echoapi

import (
	"bytes"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Ok1nam/demo-edp-final/core"
	"github.com/Ok1nam/demo-edp-final/core/questionnaire"
	docsvc "github.com/Ok1nam/demo-edp-final/services/document"
)

const questionnaireReportFilename = "rapport-arbre-de-decision.pdf"

var errQuestionnaireIncomplete = errors.New("questionnaire not completed")

type questionnaireApi struct {
	svc      *questionnaire.Service
	validate *validator.Validate
	appName  string
}

func registerQuestionnaireAPI(
	g *echo.Group,
	jwt echo.MiddlewareFunc,
	svc *questionnaire.Service,
	validate *validator.Validate,
	appName string,
) {
	api := questionnaireApi{
		svc:      svc,
		validate: validate,
		appName:  appName,
	}

	qg := g.Group("/questionnaire", jwt)
	qg.GET("", api.retrieve)
	qg.POST("/start", api.start)
	qg.POST("/answer", api.answer)
	qg.POST("/previous", api.previous)
	qg.GET("/report.pdf", api.report)
}

func (api *questionnaireApi) retrieve(ctx echo.Context) error {
	v, err := api.svc.Get(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "getting questionnaire")
	}
	return ctx.JSON(http.StatusOK, v)
}

func (api *questionnaireApi) start(ctx echo.Context) error {
	v, err := api.svc.Start(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "starting questionnaire")
	}
	return ctx.JSON(http.StatusOK, v)
}

func (api *questionnaireApi) answer(ctx echo.Context) error {
	var data questionnaire.AnswerInput
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to AnswerInput")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	v, err := api.svc.Answer(ctx.Request().Context(), data.Answer)
	if err != nil {
		return errors.Wrap(err, "answering question")
	}
	return ctx.JSON(http.StatusOK, v)
}

func (api *questionnaireApi) previous(ctx echo.Context) error {
	v, err := api.svc.Previous(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "going to previous question")
	}
	return ctx.JSON(http.StatusOK, v)
}

func (api *questionnaireApi) report(ctx echo.Context) error {
	v, err := api.svc.Get(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "getting questionnaire")
	}
	if v.Report == nil {
		return core.NewValidationError(errQuestionnaireIncomplete)
	}

	var buf bytes.Buffer
	if err = docsvc.QuestionnairePDF(&buf, api.appName, v); err != nil {
		return errors.Wrap(err, "rendering questionnaire report")
	}
	return attachment(ctx, questionnaireReportFilename, contentTypePDF, buf.Bytes())
}
