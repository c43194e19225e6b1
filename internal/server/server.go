package server

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"checkpoint-bot/internal/api/handler"
	"checkpoint-bot/internal/logger"
)

type Config struct {
	Host            string        `env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port            int           `env:"HTTP_PORT,PORT" env-default:"8000"`
	Timeout         time.Duration `env:"HTTP_TIMEOUT" env-default:"5s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

func NewRouter(log *zap.Logger, cfgLogger *logger.Config, srvTimeout time.Duration) *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(logger.MiddlewareLogger(log, cfgLogger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(srvTimeout))

	router.NotFound(handler.NotFound(log))
	router.MethodNotAllowed(handler.MethodNotAllowed(log))

	router.Get("/", handler.Root(log))
	router.Get("/api/health", handler.Health(log))

	return router
}
