package logsvc

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/Ok1nam/demo-edp-final/core"
)

type SentryLogger struct {
	std     *log.Logger
	hub     *sentry.Hub
	enabled atomic.Bool
}

var _ core.Logger = (*SentryLogger)(nil)

func NewSentryLogger(std *log.Logger, conf *core.Config) *SentryLogger {
	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:         conf.SentryDSN,
		Environment: conf.Env,
		Release:     conf.Build,
		ServerName:  conf.Server.Host,
	})
	if err != nil {
		std.Printf("sentry init (non-blocking): %v", err)
	}
	return &SentryLogger{std: std, hub: sentry.NewHub(client, sentry.NewScope())}
}

func (l *SentryLogger) Enable(enabled bool) {
	l.enabled.Store(enabled)
}

// expected fmt: msg | error, map[string]interface{}, core.Account
func (l *SentryLogger) capture(level sentry.Level, msg string, args []interface{}) {
	if !l.enabled.Load() || l.hub.Client() == nil {
		return
	}
	l.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(level)
		var captured error
		for _, arg := range args {
			switch v := arg.(type) {
			case core.Account:
				scope.SetUser(sentry.User{Username: v.Username})
			case error:
				if captured == nil {
					captured = v
				}
			case map[string]interface{}:
				scope.SetContext("extra", v)
			default:
				scope.SetContext(fmt.Sprintf("%T", v), sentry.Context{"value": fmt.Sprintf("%+v", v)})
			}
		}
		if captured != nil {
			scope.SetTag("message", msg)
			l.hub.CaptureException(captured)
		} else {
			l.hub.CaptureMessage(msg)
		}
	})
}

func (l *SentryLogger) Debug(msg string, args ...interface{}) {
	l.capture(sentry.LevelDebug, msg, args)
	echo(l.std, msg, args)
}

func (l *SentryLogger) Info(msg string, args ...interface{}) {
	l.capture(sentry.LevelInfo, msg, args)
	echo(l.std, msg, args)
}

func (l *SentryLogger) Warn(msg string, args ...interface{}) {
	l.capture(sentry.LevelWarning, msg, args)
	echo(l.std, msg, args)
}

func (l *SentryLogger) Error(msg string, args ...interface{}) {
	l.capture(sentry.LevelError, msg, args)
	echo(l.std, msg, args)
}

func (l *SentryLogger) Fatal(msg string, args ...interface{}) {
	l.capture(sentry.LevelFatal, msg, args)
	echo(l.std, msg, args)
	l.hub.Flush(2 * time.Second)
	l.std.Fatal(msg)
}

func (l *SentryLogger) Close() {
	l.hub.Flush(2 * time.Second)
}
