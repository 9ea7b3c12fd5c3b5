package predictionHandler

import (
	"IrisProject/internal/api/prediction"
	contextPkg "IrisProject/pkg/context"
	"IrisProject/pkg/handlerUtil"
	"IrisProject/pkg/log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *PredictionHandler) Predict(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 15*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing prediction request")

	var req prediction.PredictRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleInvalidBody(ctx, requestID, err, ctx.Path())
	}

	if violations := h.predictionService.Validate(req); len(violations) > 0 {
		return errHandler.HandleFieldViolations(ctx, requestID, violations, ctx.Path())
	}

	view, err := h.predictionService.Predict(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "predict")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"path":       ctx.Path(),
			"prediction": view.Prediction,
		}).Info("Prediction successful")
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, prediction.PredictionEnvelope{
			Data: view,
		})
	}
}

func (h *PredictionHandler) ListExamples(ctx *fiber.Ctx) error {
	errHandler := handlerUtil.New(h.log)
	return errHandler.HandleSuccess(ctx, fiber.StatusOK, prediction.ExamplesResponse{
		Data: h.predictionService.ListExamples(),
	})
}

func (h *PredictionHandler) ApplyExample(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	example, err := h.predictionService.ApplyExample(ctx.Params("name"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "apply_example")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, prediction.ExampleResponse{
		Data: *example,
	})
}

func (h *PredictionHandler) ListSpecies(ctx *fiber.Ctx) error {
	errHandler := handlerUtil.New(h.log)
	return errHandler.HandleSuccess(ctx, fiber.StatusOK, prediction.SpeciesListResponse{
		Data: h.predictionService.ListSpecies(),
	})
}

func (h *PredictionHandler) GetSpecies(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	species, err := h.predictionService.GetSpecies(ctx.Params("name"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_species")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, prediction.SpeciesResponse{
		Data: *species,
	})
}
