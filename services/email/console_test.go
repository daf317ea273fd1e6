package emailsvc

import (
	"bytes"
	"log"
	"net/mail"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ok1nam/demo-edp-final/core"
	"github.com/Ok1nam/demo-edp-final/core/contact"
	logsvc "github.com/Ok1nam/demo-edp-final/services/logger"
)

func conf() *core.Config {
	return &core.Config{AppName: "EDP Pilotage", Debug: true}
}

func TestConsoleServiceMock_SendMessages(t *testing.T) {
	var buf bytes.Buffer
	core.ParseEmailTemplates(logsvc.New(log.New(&buf, "", 0), conf()))
	require.Empty(t, buf.String())

	svc := NewConsoleServiceMock(conf())
	contact.NewService(svc, "Equipe EDP <contact@edp.test>").Send(contact.Message{
		Name:    "Camille",
		Email:   "camille@example.com",
		Subject: "Question budget",
		Message: "Bonjour,\nune question sur le budget.",
	})
	svc.SendMessages(&core.EmailMessage{Subject: "no recipients", BodyStr: "ignored"})

	sent := svc.Sent()
	require.Len(t, sent, 1)
	msg := sent[0]
	assert.Equal(t, []mail.Address{{Name: "Equipe EDP", Address: "contact@edp.test"}}, msg.To)
	assert.Contains(t, msg.TextContent, "Nouveau message de Camille <camille@example.com>")
	assert.Contains(t, msg.TextContent, "une question sur le budget.")
	assert.Contains(t, msg.TextContent, "EDP Pilotage")
	assert.NotContains(t, msg.TextContent, "Structure")
	assert.Contains(t, msg.HTMLContent, "<strong>Camille</strong>")
}

func TestConsoleService_build(t *testing.T) {
	svc := NewConsoleServiceMock(conf())
	body, err := svc.build(core.EmailMessage{
		To:          []mail.Address{{Address: "a@edp.test"}},
		ReplyTo:     &mail.Address{Address: "b@edp.test"},
		Subject:     "Hello",
		TextContent: "plain",
	})
	require.NoError(t, err)
	assert.Contains(t, body, "Subject: [EDP Pilotage] Hello\r\n")
	assert.Contains(t, body, "Reply-To: <b@edp.test>\r\n")
	assert.Contains(t, body, "plain")
	assert.NotContains(t, body, "text/html")
}
