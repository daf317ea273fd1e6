package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Ok1nam/demo-edp-final/core/contact"
)

const contactSuccess = "Votre message a bien été envoyé. Nous vous répondrons dans les plus brefs délais."

type contactApi struct {
	svc      *contact.Service
	validate *validator.Validate
}

func registerContactAPI(
	g *echo.Group,
	jwt echo.MiddlewareFunc,
	svc *contact.Service,
	validate *validator.Validate,
) {
	api := contactApi{
		svc:      svc,
		validate: validate,
	}
	g.POST("/contact", api.send, jwt)
}

func (api *contactApi) send(ctx echo.Context) error {
	var data contact.Message
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Message")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	api.svc.Send(data)
	return ctx.JSON(http.StatusAccepted, SuccessResponse{Success: contactSuccess})
}
