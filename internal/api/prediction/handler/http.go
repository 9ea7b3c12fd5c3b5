package predictionHandler

import (
	predictionService "IrisProject/internal/api/prediction/service"
	"IrisProject/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type PredictionHandler struct {
	log               *logrus.Logger
	middleware        middleware.Middleware
	predictionService predictionService.IPredictionService
}

func New(
	log *logrus.Logger,
	middleware middleware.Middleware,
	ps predictionService.IPredictionService,
) *PredictionHandler {
	return &PredictionHandler{
		log:               log,
		middleware:        middleware,
		predictionService: ps,
	}
}

func (h *PredictionHandler) Start(srv fiber.Router) {
	srv.Post("/predict", h.middleware.NewRateLimiter, h.Predict)

	srv.Get("/examples", h.ListExamples)
	srv.Get("/examples/:name", h.ApplyExample)

	srv.Get("/species", h.ListSpecies)
	srv.Get("/species/:name", h.GetSpecies)
}
