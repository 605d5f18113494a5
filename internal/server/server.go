package server

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rpgo/synthfeed/internal/calculation"
	"github.com/rpgo/synthfeed/internal/domain"
	"github.com/rpgo/synthfeed/internal/output"
	"github.com/rpgo/synthfeed/internal/session"
	"github.com/sirupsen/logrus"
)

// SessionCookie names the cookie carrying the session id.
const SessionCookie = "synthfeed_session"

type Config struct {
	Configuration *domain.Configuration
	Logger        *logrus.Logger
	// NextSeed overrides the fresh-seed source; nil draws from the configured seed range.
	NextSeed func() int64
}

type Server struct {
	cfg       *domain.Configuration
	log       *logrus.Logger
	generator *calculation.PathGenerator
	builder   *calculation.DashboardBuilder
	sessions  *session.Store
	page      output.HTMLFormatter
}

func New(cfg Config) (*Server, error) {
	if cfg.Configuration == nil {
		return nil, errors.New("configuration is required")
	}
	log := cfg.Logger
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}

	pathCfg, err := calculation.NewPathConfig(cfg.Configuration.Generation)
	if err != nil {
		return nil, err
	}
	gen := calculation.NewPathGenerator(pathCfg, log)
	builder := calculation.NewDashboardBuilder(calculation.NewDashboardConfig(cfg.Configuration), gen, log)

	next := cfg.NextSeed
	if next == nil {
		next = calculation.SeedRange{Min: cfg.Configuration.Generation.SeedMin, Max: cfg.Configuration.Generation.SeedMax}.Next
	}

	return &Server{
		cfg:       cfg.Configuration,
		log:       log,
		generator: gen,
		builder:   builder,
		sessions:  session.NewStore(builder.DefaultSeeds(), next, cfg.Configuration.Server.SessionTTL),
		page:      output.HTMLFormatter{RegenerateAction: "/regenerate"},
	}, nil
}

func (s *Server) Close() error {
	s.sessions.Close()
	return nil
}

func (s *Server) Router() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.requestLogger())

	r.GET("/healthz", s.wrap(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }))

	// UI
	r.GET("/", s.wrap(s.handleIndex))
	r.POST("/regenerate", s.wrap(s.handleRegenerate))

	api := r.Group("/api")
	api.GET("/dashboard", s.wrap(s.handleDashboard))
	api.GET("/seeds", s.wrap(s.handleSeeds))
	api.POST("/regenerate", s.wrap(s.handleAPIRegenerate))
	api.GET("/series", s.wrap(s.handleSeries))

	return r
}

// wrap adapts net/http handlers to gin.
func (s *Server) wrap(h func(http.ResponseWriter, *http.Request)) gin.HandlerFunc {
	return func(c *gin.Context) {
		h(c.Writer, c.Request)
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Info("request")
	}
}
