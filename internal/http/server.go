package http

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echoMid "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/jpretorius/email-gateway/internal/config"
	"github.com/jpretorius/email-gateway/internal/dispatcher"
	"github.com/jpretorius/email-gateway/internal/http/middleware"
)

type Server struct{ e *echo.Echo }

func NewServer(cfg config.Config, gw *dispatcher.Gateway, rds *redis.Client) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMid.Recover(), echoMid.Logger())

	// The composer UI is served from a different origin; pre-flight
	// OPTIONS succeeds trivially via the CORS middleware.
	e.Use(echoMid.CORSWithConfig(echoMid.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// health
	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	rlMW := middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		Redis:     rds,
		RPS:       cfg.RateLimit.RPS,
		KeyPrefix: "rl:ip:",
		Window:    time.Second,
	})

	// routes
	v1 := e.Group("/v1", rlMW)
	v1.POST("/email/send", sendEmailHandler(gw))

	return &Server{e: e}
}

func (s *Server) Start(addr string) error {
	log.Printf("http: listening on %s", addr)
	return s.e.Start(addr)
}
func (s *Server) Shutdown(ctx context.Context) error { return s.e.Shutdown(ctx) }

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler { return s.e }
