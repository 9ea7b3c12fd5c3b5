package config

import (
	predictionHandler "IrisProject/internal/api/prediction/handler"
	predictionService "IrisProject/internal/api/prediction/service"
	"IrisProject/internal/middleware"
	"IrisProject/pkg/classifier"
	"IrisProject/pkg/metrics"
	"IrisProject/pkg/utils"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine     *fiber.App
	log        *logrus.Logger
	middleware middleware.Middleware
	validator  *validator.Validate
	utils      utils.IUtils
	classifier classifier.IClassifier
	metrics    *metrics.PredictionMetrics
	handlers   []handler
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.classifier == nil {
		return nil, fmt.Errorf("classifier client is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithClassifier(cls classifier.IClassifier) ServerOption {
	return func(s *Server) error {
		s.classifier = cls
		return nil
	}
}

func WithMetrics() ServerOption {
	return func(s *Server) error {
		m, err := metrics.New(nil)
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to register prediction metrics: %v", err)
			}
			return fmt.Errorf("failed to register prediction metrics: %w", err)
		}
		s.metrics = m
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Prediction Domain
	predictionServices := predictionService.New(s.log, s.classifier, s.validator, s.metrics, s.utils)
	predictionHandlers := predictionHandler.New(s.log, s.middleware, predictionServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, predictionHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Iris Classification Gateway is running!",
			"endpoints": fiber.Map{
				"predict":  "POST /api/v1/predict",
				"examples": "GET /api/v1/examples",
				"species":  "GET /api/v1/species",
				"health":   "GET /health",
				"metrics":  "GET /metrics",
			},
		})
	})

	s.engine.Get("/health", func(ctx *fiber.Ctx) error {
		c, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()

		classifierStatus := "reachable"
		if err := s.classifier.Health(c); err != nil {
			classifierStatus = "unreachable"
			s.log.Warnf("Classifier health probe failed: %v", err)
		}

		return ctx.JSON(fiber.Map{
			"status":            "healthy",
			"classifier_status": classifierStatus,
		})
	})

	s.engine.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
