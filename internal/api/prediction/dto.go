package prediction

import "IrisProject/internal/entity"

// PredictRequest carries the four measurements of one flower. Pointer fields
// let the validator tell a missing field apart from an explicit zero; the
// upper bounds mirror the sanity limits in internal/entity.
type PredictRequest struct {
	SepalLength *float64 `json:"sepal_length" validate:"required,gt=0,lte=20"`
	SepalWidth  *float64 `json:"sepal_width" validate:"required,gt=0,lte=10"`
	PetalLength *float64 `json:"petal_length" validate:"required,gt=0,lte=15"`
	PetalWidth  *float64 `json:"petal_width" validate:"required,gt=0,lte=8"`
}

func (r PredictRequest) Measurement() entity.Measurement {
	deref := func(v *float64) float64 {
		if v == nil {
			return 0
		}
		return *v
	}
	return entity.Measurement{
		SepalLength: deref(r.SepalLength),
		SepalWidth:  deref(r.SepalWidth),
		PetalLength: deref(r.PetalLength),
		PetalWidth:  deref(r.PetalWidth),
	}
}

func RequestFromMeasurement(m entity.Measurement) PredictRequest {
	return PredictRequest{
		SepalLength: &m.SepalLength,
		SepalWidth:  &m.SepalWidth,
		PetalLength: &m.PetalLength,
		PetalWidth:  &m.PetalWidth,
	}
}

// FieldViolation names one invalid field. Validation reports every violation
// in a single pass so the combined message can be shown at once.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// PredictionView is the rendered success panel: the upstream result enriched
// with the static species description.
type PredictionView struct {
	Prediction      string             `json:"prediction"`
	PredictionIndex int                `json:"prediction_index"`
	Confidence      *float64           `json:"confidence,omitempty"`
	ConfidenceLabel string             `json:"confidence_label,omitempty"`
	InputData       entity.Measurement `json:"input_data"`
	AllClasses      []string           `json:"all_classes"`
	Species         *entity.Species    `json:"species,omitempty"`
}

// PredictionEnvelope holds exactly one of a result or an error message.
type PredictionEnvelope struct {
	Data  *PredictionView `json:"data,omitempty"`
	Error string          `json:"error,omitempty"`
}

type ExampleResponse struct {
	Data entity.Example `json:"data"`
}

type ExamplesResponse struct {
	Data []entity.Example `json:"data"`
}

type SpeciesResponse struct {
	Data entity.Species `json:"data"`
}

type SpeciesListResponse struct {
	Data []entity.Species `json:"data"`
}
