package predictionService

import (
	"IrisProject/internal/api/prediction"
	"IrisProject/internal/entity"
	"IrisProject/pkg/classifier"
	"IrisProject/pkg/metrics"
	"IrisProject/pkg/utils"
	"sync/atomic"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IPredictionService interface {
	Validate(req prediction.PredictRequest) []prediction.FieldViolation
	Predict(ctx context.Context, req prediction.PredictRequest) (*prediction.PredictionView, error)
	ApplyExample(name string) (*entity.Example, error)
	ListExamples() []entity.Example
	GetSpecies(name string) (*entity.Species, error)
	ListSpecies() []entity.Species
}

type predictionService struct {
	log        *logrus.Logger
	classifier classifier.IClassifier
	validator  *validator.Validate
	metrics    *metrics.PredictionMetrics
	utils      utils.IUtils

	// inFlight is the submission gate: one outstanding upstream request at
	// a time, mirroring the disabled submit control of the form.
	inFlight atomic.Bool
}

func New(
	log *logrus.Logger,
	cls classifier.IClassifier,
	validator *validator.Validate,
	m *metrics.PredictionMetrics,
	utils utils.IUtils,
) IPredictionService {
	return &predictionService{
		log:        log,
		classifier: cls,
		validator:  validator,
		metrics:    m,
		utils:      utils,
	}
}
