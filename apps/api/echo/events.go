package echoapi

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/Ok1nam/demo-edp-final/core"
)

const (
	eventsBuffer = 16
	writeWait    = 10 * time.Second
	pongWait     = 60 * time.Second
	pingPeriod   = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // the token is the gate
	},
}

type eventsApi struct {
	sub    core.Subscriber
	done   <-chan struct{}
	logger core.Logger
}

func registerEventsAPI(
	g *echo.Group,
	jwt echo.MiddlewareFunc,
	sub core.Subscriber,
	done <-chan struct{},
	logger core.Logger,
) {
	api := eventsApi{
		sub:    sub,
		done:   done,
		logger: logger,
	}
	g.GET("/events", api.stream, jwt)
}

// stream pushes every store change to the client until either side closes.
// Events are dropped for a client that cannot keep up.
func (api *eventsApi) stream(ctx echo.Context) error {
	conn, err := upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		return nil // the upgrader already replied
	}
	defer conn.Close()

	events := make(chan core.StoreEvent, eventsBuffer)
	unsubscribe := api.sub.Subscribe(func(ev core.StoreEvent) {
		select {
		case events <- ev:
		default:
		}
	})
	defer unsubscribe()

	// the client sends nothing; reading only handles pongs and close frames
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	account := getContextAccount(ctx)
	for {
		select {
		case ev := <-events:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err = conn.WriteJSON(ev); err != nil {
				api.logger.Debug("events: write failed", err, account)
				return nil
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err = conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return nil
			}
		case <-closed:
			return nil
		case <-api.done:
			msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
			_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
			return nil
		}
	}
}
