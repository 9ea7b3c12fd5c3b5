package classifier

// Wire types for the external prediction service. The request keys are fixed
// by the service's contract and mirror entity.Measurement one to one.
type predictRequest struct {
	SepalLength float64 `json:"sepal_length"`
	SepalWidth  float64 `json:"sepal_width"`
	PetalLength float64 `json:"petal_length"`
	PetalWidth  float64 `json:"petal_width"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status      string `json:"status"`
	ModelStatus string `json:"model_status"`
}
