package handlerUtil

import (
	"IrisProject/internal/api/prediction"
	"IrisProject/pkg/classifier"
	"IrisProject/pkg/log"
	"IrisProject/pkg/response"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
)

// Static troubleshooting text attached to request errors, shown to the user
// alongside the error itself.
const classifierGuidance = "Make sure the prediction service is running and reachable, then try again."

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	var respErr *response.Error
	if errors.As(err, &respErr) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"code":       respErr.Code,
			"path":       path,
			"operation":  operation,
		}).Warn("Operation failed with error response")
		return c.Status(respErr.Code).JSON(fiber.Map{"error": err.Error()})
	}

	// Classifier boundary errors carry a typed kind instead of requiring
	// message inspection.
	var clsErr *classifier.Error
	if errors.As(err, &clsErr) {
		fields := log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"kind":       string(clsErr.Kind),
			"path":       path,
			"operation":  operation,
		}
		if clsErr.Status != 0 {
			fields["upstream_status"] = clsErr.Status
		}

		switch clsErr.Kind {
		case classifier.KindNetwork:
			h.logger.WithFields(fields).Error("Prediction service unreachable")
			return c.Status(fiber.StatusGatewayTimeout).JSON(ErrorResponse{
				Error:   clsErr.Message,
				Code:    "CLASSIFIER_UNREACHABLE",
				Details: classifierGuidance,
			})
		case classifier.KindDecode:
			h.logger.WithFields(fields).Error("Prediction service returned a malformed response")
			return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
				Error:   clsErr.Message,
				Code:    "CLASSIFIER_MALFORMED_RESPONSE",
				Details: classifierGuidance,
			})
		default:
			h.logger.WithFields(fields).Warn("Prediction service rejected the request")
			return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
				Error:   clsErr.Message,
				Code:    "CLASSIFIER_ERROR",
				Details: classifierGuidance,
			})
		}
	}

	traceID := log.ErrorWithTraceID(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}, "Unexpected error")

	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error:   "An unexpected error occurred",
		Details: "trace_id: " + traceID,
	})
}

// HandleFieldViolations renders all validation violations as one combined
// message plus the structured list.
func (h *ErrorHandler) HandleFieldViolations(c *fiber.Ctx, requestID string, violations []prediction.FieldViolation, path string) error {
	messages := make([]string, 0, len(violations))
	for _, v := range violations {
		messages = append(messages, v.Message)
	}

	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"violations": strings.Join(messages, "; "),
		"path":       path,
	}).Warn("Validation failed")

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":      "Validation failed: " + strings.Join(messages, "; "),
		"code":       "VALIDATION_ERROR",
		"violations": violations,
	})
}

func (h *ErrorHandler) HandleInvalidBody(c *fiber.Ctx, requestID string, err error, path string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
	}).Warn("Request body could not be parsed")

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "All measurements must be valid numbers",
		"code":  "INVALID_BODY",
	})
}

func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusRequestTimeout).JSON(utils.StatusMessage(fiber.StatusRequestTimeout))
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, data interface{}) error {
	if data == nil {
		return c.SendStatus(statusCode)
	}
	return c.Status(statusCode).JSON(data)
}
