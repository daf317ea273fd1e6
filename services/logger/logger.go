// Package logsvc provides core.Logger implementations backed by error trackers.
package logsvc

import (
	"log"

	"github.com/Ok1nam/demo-edp-final/core"
)

// Logger is a core.Logger that can be switched on/off and flushed.
type Logger interface {
	core.Logger
	Enable(enabled bool)
	Close()
}

// New returns the logger selected by conf.ErrorTracker. Reporting is disabled in debug.
func New(std *log.Logger, conf *core.Config) Logger {
	var l Logger
	switch conf.ErrorTracker {
	case "sentry":
		l = NewSentryLogger(std, conf)
	default:
		l = NewRollbarLogger(std, conf)
	}
	l.Enable(!conf.Debug)
	return l
}

func echo(std *log.Logger, msg string, args []interface{}) {
	std.Println(msg)
	for _, arg := range args {
		if _, ok := arg.(core.Account); ok {
			continue
		}
		std.Printf("%+v\n", arg)
	}
}
