package predictionService

import (
	"IrisProject/internal/api/prediction"
	"IrisProject/internal/entity"

	"github.com/sirupsen/logrus"
)

// ApplyExample returns the named preset, re-validated the same way a manual
// submission would be. Presets are static, so a validation failure here means
// the presets and the bounds have drifted apart.
func (s *predictionService) ApplyExample(name string) (*entity.Example, error) {
	example, ok := entity.ExampleByName(name)
	if !ok {
		return nil, prediction.ErrExampleNotFound
	}

	if violations := s.Validate(prediction.RequestFromMeasurement(example.Measurement)); len(violations) > 0 {
		s.log.WithFields(logrus.Fields{
			"example":    example.Name,
			"violations": violations,
		}).Error("Preset example failed validation")
		return nil, prediction.ErrInternalServer
	}

	return &example, nil
}

func (s *predictionService) ListExamples() []entity.Example {
	return entity.Examples
}

func (s *predictionService) GetSpecies(name string) (*entity.Species, error) {
	species, ok := entity.SpeciesByName(name)
	if !ok {
		return nil, prediction.ErrSpeciesNotFound
	}
	return &species, nil
}

func (s *predictionService) ListSpecies() []entity.Species {
	return entity.IrisSpecies
}
