package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/Ok1nam/demo-edp-final/core"
	"github.com/Ok1nam/demo-edp-final/core/auth"
	"github.com/Ok1nam/demo-edp-final/core/contact"
	"github.com/Ok1nam/demo-edp-final/core/dashboard"
	"github.com/Ok1nam/demo-edp-final/core/location"
	"github.com/Ok1nam/demo-edp-final/core/partnership"
	"github.com/Ok1nam/demo-edp-final/core/pedagogy"
	"github.com/Ok1nam/demo-edp-final/core/plan"
	"github.com/Ok1nam/demo-edp-final/core/questionnaire"
	"github.com/Ok1nam/demo-edp-final/core/rentability"
	"github.com/Ok1nam/demo-edp-final/core/subsidy"
	"github.com/Ok1nam/demo-edp-final/core/training"
	"github.com/Ok1nam/demo-edp-final/storage/kv"
)

type (
	ServerDeps struct {
		Conf       *core.Config
		Logger     core.Logger
		Validate   *validator.Validate
		Translator ut.Translator
		Store      *kv.Store
		MailSvc    core.EmailService
		AuthSvc    *auth.Service
	}

	Server struct {
		deps     ServerDeps
		app      *echo.Echo
		tokens   tokenIssuer
		shutdown chan os.Signal
		errors   chan error
		done     chan struct{}

		questionnaireSvc *questionnaire.Service
	}
)

func NewServer(deps ServerDeps) *Server {
	s := &Server{
		deps:     deps,
		app:      echo.New(),
		tokens:   newTokenIssuer(deps.Conf),
		shutdown: make(chan os.Signal, 1),
		errors:   make(chan error, 1),
		done:     make(chan struct{}),
	}
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	s.setup()
	return s
}

func (s *Server) setup() {
	conf := s.deps.Conf
	store := s.deps.Store

	s.app.HideBanner = true
	s.app.Pre(middleware.RemoveTrailingSlash())
	if !conf.Server.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}
	s.app.Use(middleware.CORS())

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.deps.Translator, s.signalShutdown)
	s.app.Debug = conf.Debug

	s.app.GET("/", s.home)

	v1 := s.app.Group("/v1")
	jwt := middleware.JWTWithConfig(s.tokens.config)

	s.questionnaireSvc = questionnaire.NewService(store, conf.QuestionnaireAdviceDelay, s.deps.Logger)
	dashboardSvc := dashboard.NewService(store)

	registerAuthAPI(v1, jwt, s.deps.AuthSvc, s.tokens, s.deps.Validate)
	registerPagesAPI(v1, jwt)
	registerPlanAPI(v1, jwt, plan.NewService(store), conf.AppName)
	registerRentabilityAPI(v1, jwt, rentability.NewService(store), s.deps.Validate)
	registerLocationAPI(v1, jwt, location.NewService(store), s.deps.Validate)
	registerPartnershipAPI(v1, jwt, partnership.NewService(store), s.deps.Validate)
	registerSubsidyAPI(v1, jwt, subsidy.NewService(store), s.deps.Validate)
	registerTrainingAPI(v1, jwt, training.NewService(store), s.deps.Validate)
	registerPedagogyAPI(v1, jwt, pedagogy.NewService(store), s.deps.Validate)
	registerQuestionnaireAPI(v1, jwt, s.questionnaireSvc, s.deps.Validate, conf.AppName)
	registerDashboardAPI(v1, jwt, dashboardSvc)
	registerStatutsAPI(v1, jwt, s.deps.Validate, conf.AppName)
	registerDownloadsAPI(v1, jwt, dashboardSvc)
	registerContactAPI(v1, jwt, contact.NewService(s.deps.MailSvc, conf.ContactEmail), s.deps.Validate)

	// browsers cannot set headers on websocket handshakes
	wsJWT := middleware.JWTWithConfig(s.tokens.queryConfig())
	registerEventsAPI(v1, wsJWT, store, s.done, s.deps.Logger)
}

// Start blocks until the server stops; startup errors are sent to Errors().
func (s *Server) Start() {
	if err := s.app.Start(s.deps.Conf.Server.Address); err != nil && err != http.ErrServerClosed {
		s.errors <- err
	}
}

func (s *Server) Errors() <-chan error {
	return s.errors
}

func (s *Server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

func (s *Server) signalShutdown() {
	select {
	case s.shutdown <- syscall.SIGTERM:
	default: // already signaled
	}
}

// Shutdown stops the server gracefully, closing event streams and pending timers.
func (s *Server) Shutdown(ctx context.Context) error {
	s.release()
	return s.app.Shutdown(ctx)
}

func (s *Server) Close() error {
	s.release()
	return s.app.Close()
}

func (s *Server) release() {
	select {
	case <-s.done:
	default:
		close(s.done)
	}
	s.questionnaireSvc.Close()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func (s *Server) home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to "+s.deps.Conf.AppName+" API!")
}
