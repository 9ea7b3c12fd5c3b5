package entity

type PredictionResult struct {
	Prediction      string      `json:"prediction"`
	PredictionIndex int         `json:"prediction_index"`
	Confidence      *float64    `json:"confidence"`
	InputData       Measurement `json:"input_data"`
	AllClasses      []string    `json:"all_classes"`
}
