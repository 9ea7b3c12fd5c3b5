package predictionService

import (
	"IrisProject/internal/api/prediction"
	"IrisProject/internal/entity"
	contextPkg "IrisProject/pkg/context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// Validate checks all four fields and reports every violation at once so the
// caller can render a single combined message. A nil result means the
// measurement may be sent upstream.
func (s *predictionService) Validate(req prediction.PredictRequest) []prediction.FieldViolation {
	if err := s.validator.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return []prediction.FieldViolation{{Field: "", Message: err.Error()}}
		}

		violations := make([]prediction.FieldViolation, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			violations = append(violations, prediction.FieldViolation{
				Field:   fe.Field(),
				Message: violationMessage(fe),
			})
		}
		return violations
	}

	if !req.Measurement().IsFinite() {
		return []prediction.FieldViolation{{Field: "", Message: "all measurements must be finite numbers"}}
	}

	return nil
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required and must be a number", fe.Field())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s cm", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// Predict performs the single upstream call for an already validated request
// and renders the result view. While one submission is in flight any further
// submission is refused with ErrSubmissionInFlight; the gate reopens on every
// outcome.
func (s *predictionService) Predict(ctx context.Context, req prediction.PredictRequest) (*prediction.PredictionView, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if !s.inFlight.CompareAndSwap(false, true) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Submission refused, another prediction is in flight")
		return nil, prediction.ErrSubmissionInFlight
	}
	defer s.inFlight.Store(false)

	measurement := req.Measurement()

	start := time.Now()
	result, err := s.classifier.Predict(ctx, measurement)
	if err != nil {
		s.metrics.ObserveLatency("failure", time.Since(start))
		s.metrics.RecordSubmission("failure", "")
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Prediction request failed")
		return nil, err
	}
	s.metrics.ObserveLatency("success", time.Since(start))
	s.metrics.RecordSubmission("success", result.Prediction)

	view := &prediction.PredictionView{
		Prediction:      result.Prediction,
		PredictionIndex: result.PredictionIndex,
		Confidence:      result.Confidence,
		InputData:       result.InputData,
		AllClasses:      result.AllClasses,
	}
	if result.Confidence != nil {
		view.ConfidenceLabel = s.utils.FormatConfidence(*result.Confidence)
	}
	if species, ok := entity.SpeciesByName(result.Prediction); ok {
		view.Species = &species
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"prediction": result.Prediction,
		"index":      result.PredictionIndex,
	}).Info("Prediction received from classifier")

	return view, nil
}
