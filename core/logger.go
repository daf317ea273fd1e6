package core

// Logger is the application logger. Extra args may be errors, maps of
// extra data or the authenticated Account, depending on the implementation.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}

// Account identifies the demo user behind a request, for error reports.
type Account struct {
	Username string
}
