// Package contact forwards support messages to the EDP team.
package contact

import (
	"net/mail"

	"github.com/go-playground/validator/v10"

	"github.com/Ok1nam/demo-edp-final/core"
)

const templateName = "contact"

type Message struct {
	Name         string `json:"name" validate:"required,notblank"`
	Email        string `json:"email" validate:"required,email"`
	Organization string `json:"organization"`
	Subject      string `json:"subject" validate:"required,notblank"`
	Message      string `json:"message" validate:"required,notblank"`
}

func (m *Message) Validate(validate *validator.Validate) error {
	m.Name = core.CleanString(m.Name)
	m.Email = core.CleanString(m.Email, true)
	m.Organization = core.CleanString(m.Organization)
	m.Subject = core.CleanString(m.Subject)
	m.Message = core.CleanString(m.Message)
	return validate.Struct(m)
}

type Service struct {
	mailSvc core.EmailService
	to      mail.Address
}

func NewService(mailSvc core.EmailService, to string) *Service {
	addr, err := mail.ParseAddress(to)
	if err != nil {
		addr = &mail.Address{Address: to}
	}
	return &Service{mailSvc: mailSvc, to: *addr}
}

// Send queues the message; delivery happens in the background.
func (svc *Service) Send(msg Message) {
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:           []mail.Address{svc.to},
		ReplyTo:      &mail.Address{Name: msg.Name, Address: msg.Email},
		Subject:      msg.Subject,
		TemplateName: templateName,
		TemplateData: msg,
	})
}
