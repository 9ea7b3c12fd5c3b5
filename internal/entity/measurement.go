package entity

import "math"

// Upper sanity bounds for a single flower measurement, in centimeters.
// Values above these are rejected before anything is sent upstream.
const (
	MaxSepalLengthCm = 20.0
	MaxSepalWidthCm  = 10.0
	MaxPetalLengthCm = 15.0
	MaxPetalWidthCm  = 8.0
)

type Measurement struct {
	SepalLength float64 `json:"sepal_length"`
	SepalWidth  float64 `json:"sepal_width"`
	PetalLength float64 `json:"petal_length"`
	PetalWidth  float64 `json:"petal_width"`
}

// IsFinite reports whether every field holds a real number.
func (m Measurement) IsFinite() bool {
	for _, v := range []float64{m.SepalLength, m.SepalWidth, m.PetalLength, m.PetalWidth} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
