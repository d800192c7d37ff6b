package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"taskboard-api/config"
	"taskboard-api/internal/notification"
	"taskboard-api/pkg/gcalendar"
	"taskboard-api/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Shared infrastructure
	postgresDB *sql.DB
	sink       notification.Sink
	calendar   gcalendar.EventMirror
	calendarID string

	// Middleware configuration
	auth      config.AuthConfig
	rateLimit config.RateLimitConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	PostgresDB *sql.DB
	Sink       notification.Sink
	Calendar   gcalendar.EventMirror
	CalendarID string

	Auth      config.AuthConfig
	RateLimit config.RateLimitConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		postgresDB:  cfg.PostgresDB,
		sink:        cfg.Sink,
		calendar:    cfg.Calendar,
		calendarID:  cfg.CalendarID,
		auth:        cfg.Auth,
		rateLimit:   cfg.RateLimit,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	if srv.sink == nil {
		return errors.New("notification sink is required")
	}
	return nil
}
