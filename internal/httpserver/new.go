package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	captureHTTP "timeblock/internal/capture/delivery/http"
	"timeblock/internal/middleware"
	scheduleHTTP "timeblock/internal/schedule/delivery/http"
	"timeblock/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	mw middleware.Middleware

	scheduleHandler scheduleHTTP.Handler
	captureHandler  captureHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware

	ScheduleHandler scheduleHTTP.Handler
	CaptureHandler  captureHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		mw:              cfg.Middleware,
		scheduleHandler: cfg.ScheduleHandler,
		captureHandler:  cfg.CaptureHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.scheduleHandler == nil {
		return errors.New("schedule handler is required")
	}
	if srv.captureHandler == nil {
		return errors.New("capture handler is required")
	}
	return nil
}
