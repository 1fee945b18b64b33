package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chatter-api/config"
	"chatter-api/internal/handler"
	"chatter-api/internal/metrics"
	"chatter-api/internal/middleware"
	"chatter-api/internal/transport/httpdto"
	"chatter-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	config     *config.Config
	logger     *logger.Logger
}

var (
	ReleaseMode = "release"
	DebugMode   = "debug"
	TestMode    = "test"
)

type Handlers struct {
	User    *handler.UserHandler
	Group   *handler.GroupHandler
	Message *handler.MessageHandler
}

// HealthChecker reports whether the document store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Observability bundles the metrics sink and the registry it is scraped from.
type Observability struct {
	Collector metrics.MetricsCollector
	Gatherer  prometheus.Gatherer
}

func New(cfg *config.Config, l *logger.Logger) *Server {
	if cfg.AppMode == ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.AppMode == TestMode {
		gin.SetMode(gin.TestMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()
	engine.Use(middleware.Recovery(l))

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%s", cfg.AppPort),
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
		engine: engine,
		config: cfg,
		logger: l,
	}
}

// Handler exposes the engine, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) SetupRoutes(handlers *Handlers, health HealthChecker, obs *Observability) {
	s.engine.Use(middleware.RequestIDMiddleware())
	s.engine.Use(middleware.LoggingMiddleware(s.logger))
	if obs != nil && obs.Collector != nil {
		s.engine.Use(middleware.MetricsMiddleware(obs.Collector))
	}
	s.engine.Use(middleware.ErrorHandler(s.logger))

	s.engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	s.engine.GET("/health", func(c *gin.Context) {
		if health != nil {
			if err := health.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, httpdto.HealthResponse{Status: "unhealthy", Store: err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, httpdto.HealthResponse{Status: "healthy", Store: "ok"})
	})

	if obs != nil && obs.Gatherer != nil {
		s.engine.GET("/metrics", gin.WrapH(metrics.Handler(obs.Gatherer)))
	}

	// gin needs one wildcard name per path segment, so :id is shared.
	users := s.engine.Group("/user")
	{
		users.POST("", handlers.User.Create)
		users.GET("", handlers.User.List)
		users.PUT("", handlers.User.Update)
		users.GET("/:id", handlers.User.Get)
		users.DELETE("/:id", handlers.User.Delete)
		users.GET("/:id/group", handlers.User.Groups)
		users.DELETE("/:id/group/:group_id", handlers.User.LeaveGroup)
	}

	messages := s.engine.Group("/message")
	{
		messages.POST("", handlers.Message.Send)
		messages.GET("/receiver/:id", handlers.Message.Inbox)
		messages.GET("/receiver/:id/sender/:sid", handlers.Message.Conversation)
		messages.DELETE("/:id", handlers.Message.Delete)
		messages.DELETE("/user/:id/sender/:sid", handlers.Message.DeleteConversation)
	}

	groups := s.engine.Group("/group")
	{
		groups.POST("", handlers.Group.Create)
		groups.PUT("/:id/user", handlers.Group.AddUser)
		groups.GET("/:id", handlers.Group.Members)
	}

	s.engine.NoRoute(middleware.NotFound)
}

func (s *Server) Start() error {
	go func() {
		if s.logger != nil {
			s.logger.Infof("Starting the server on port %s...", s.config.AppPort)
		}
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if s.logger != nil {
				s.logger.Errorf("Error in starting the server: %s", err)
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	if s.logger != nil {
		s.logger.Infof("Server is running on :%s", s.config.AppPort)
	}

	<-quit

	timeout := time.Duration(s.config.ShutdownTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if s.logger != nil {
		s.logger.Infof("Quitting signal received.. Shutting down within %s", timeout)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		if s.logger != nil {
			s.logger.Infof("Error in the graceful shutdown of the server: %s", err)
		}
		return err
	}

	if s.logger != nil {
		s.logger.Infof("Server stopped gracefully")
	}

	return nil
}
