package echoapi

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/apnapan/pulse/apps/api/echo/handlers"
	"github.com/apnapan/pulse/apps/api/echo/helpers"
	"github.com/apnapan/pulse/core"
	"github.com/apnapan/pulse/core/account"
	"github.com/apnapan/pulse/core/feedback"
)

type (
	Options struct {
		Address        string
		DisableReqLogs bool
		AccountSvc     *account.Service
		FeedbackSvc    *feedback.Service
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
	}

	server struct {
		opts *Options
		app  *echo.Echo
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts: opts,
		app:  echo.New(),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	s.app.Pre(middleware.RemoveTrailingSlash())
	s.app.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(core.Conf.Debug || core.Conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = helpers.AppHTTPErrorHandler
	s.app.Debug = core.Conf.Debug

	s.app.GET("/", home)

	v1 := s.app.Group("/v1")
	jwt := middleware.JWTWithConfig(helpers.AppJWTConfig)
	sessions := handlers.NewSessionStore()

	handlers.RegisterAccountAPI(v1, s.opts.AccountSvc, sessions)
	handlers.RegisterSessionAPI(v1, jwt, sessions)
	handlers.RegisterSurveyAPI(v1, jwt, sessions)
	handlers.RegisterFeedbackAPI(v1, jwt, s.opts.FeedbackSvc)
}

func (s *server) Start() {
	s.app.Logger.Fatal(s.app.Start(s.opts.Address))
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to the "+core.Conf.AppName+" API!")
}
