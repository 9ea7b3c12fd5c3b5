package predictionHandler_test

import (
	predictionHandler "IrisProject/internal/api/prediction/handler"
	predictionService "IrisProject/internal/api/prediction/service"
	"IrisProject/internal/config"
	"IrisProject/internal/entity"
	"IrisProject/internal/middleware"
	"IrisProject/pkg/classifier"
	"IrisProject/pkg/log"
	"IrisProject/pkg/utils"
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

func TestMain(m *testing.M) {
	os.Setenv("APP_ENV", "test")
	os.Exit(m.Run())
}

type stubClassifier struct {
	result *entity.PredictionResult
	err    error
}

func (s *stubClassifier) Predict(_ context.Context, _ entity.Measurement) (*entity.PredictionResult, error) {
	return s.result, s.err
}

func (s *stubClassifier) Health(_ context.Context) error {
	return nil
}

func newTestApp(cls classifier.IClassifier) *fiber.App {
	logger := log.NewLogger()
	mw := middleware.New(logger)

	app := config.NewFiber(logger)
	app.Use(mw.NewRequestIDMiddleware())

	svc := predictionService.New(logger, cls, config.NewValidator(), nil, utils.New())
	handler := predictionHandler.New(logger, mw, svc)
	handler.Start(app.Group("/api/v1"))

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (int, map[string]interface{}) {
	t.Helper()

	var reqBody io.Reader
	if body != "" {
		reqBody = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, reqBody)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)

	return resp.StatusCode, decoded
}

func confidence(v float64) *float64 {
	return &v
}

func TestPredict_RendersResultAndNoError(t *testing.T) {
	app := newTestApp(&stubClassifier{
		result: &entity.PredictionResult{
			Prediction:      "Setosa",
			PredictionIndex: 0,
			Confidence:      confidence(0.97),
			InputData:       entity.Measurement{SepalLength: 5.1, SepalWidth: 3.5, PetalLength: 1.4, PetalWidth: 0.2},
			AllClasses:      []string{"Setosa", "Versicolor", "Virginica"},
		},
	})

	status, body := doJSON(t, app, http.MethodPost, "/api/v1/predict",
		`{"sepal_length": 5.1, "sepal_width": 3.5, "petal_length": 1.4, "petal_width": 0.2}`)

	require.Equal(t, http.StatusOK, status)

	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok, "success envelope must carry data")
	assert.Equal(t, "Setosa", data["prediction"])

	// Result and error are mutually exclusive.
	_, hasError := body["error"]
	assert.False(t, hasError)
}

func TestPredict_UpstreamErrorRendersErrorOnly(t *testing.T) {
	app := newTestApp(&stubClassifier{
		err: &classifier.Error{Kind: classifier.KindUpstream, Status: http.StatusBadRequest, Message: "bad input"},
	})

	status, body := doJSON(t, app, http.MethodPost, "/api/v1/predict",
		`{"sepal_length": 5.1, "sepal_width": 3.5, "petal_length": 1.4, "petal_width": 0.2}`)

	require.Equal(t, http.StatusBadGateway, status)
	assert.Contains(t, body["error"], "bad input")

	_, hasData := body["data"]
	assert.False(t, hasData)
}

func TestPredict_NetworkErrorRendersGuidance(t *testing.T) {
	app := newTestApp(&stubClassifier{
		err: &classifier.Error{Kind: classifier.KindNetwork, Message: "prediction service unreachable: connection refused"},
	})

	status, body := doJSON(t, app, http.MethodPost, "/api/v1/predict",
		`{"sepal_length": 5.1, "sepal_width": 3.5, "petal_length": 1.4, "petal_width": 0.2}`)

	require.Equal(t, http.StatusGatewayTimeout, status)
	assert.Contains(t, body["error"], "unreachable")
	assert.Contains(t, body["details"], "prediction service")
}

func TestPredict_ValidationNamesEveryField(t *testing.T) {
	app := newTestApp(&stubClassifier{})

	status, body := doJSON(t, app, http.MethodPost, "/api/v1/predict",
		`{"sepal_length": 25, "sepal_width": 3.5, "petal_length": -1, "petal_width": 0.2}`)

	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
	assert.Contains(t, body["error"], "sepal_length")
	assert.Contains(t, body["error"], "petal_length")

	violations, ok := body["violations"].([]interface{})
	require.True(t, ok)
	assert.Len(t, violations, 2)

	_, hasData := body["data"]
	assert.False(t, hasData)
}

func TestPredict_NonNumericBody(t *testing.T) {
	app := newTestApp(&stubClassifier{})

	status, body := doJSON(t, app, http.MethodPost, "/api/v1/predict",
		`{"sepal_length": "five", "sepal_width": 3.5, "petal_length": 1.4, "petal_width": 0.2}`)

	require.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["error"], "valid numbers")
}

func TestApplyExample_Versicolor(t *testing.T) {
	app := newTestApp(&stubClassifier{})

	status, body := doJSON(t, app, http.MethodGet, "/api/v1/examples/versicolor", "")
	require.Equal(t, http.StatusOK, status)

	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "versicolor", data["name"])

	measurement, ok := data["measurement"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 6.2, measurement["sepal_length"])
	assert.Equal(t, 2.9, measurement["sepal_width"])
	assert.Equal(t, 4.3, measurement["petal_length"])
	assert.Equal(t, 1.3, measurement["petal_width"])
}

func TestApplyExample_Unknown(t *testing.T) {
	app := newTestApp(&stubClassifier{})

	status, body := doJSON(t, app, http.MethodGet, "/api/v1/examples/daisy", "")
	require.Equal(t, http.StatusNotFound, status)
	assert.NotEmpty(t, body["error"])
}

func TestListExamplesAndSpecies(t *testing.T) {
	app := newTestApp(&stubClassifier{})

	status, body := doJSON(t, app, http.MethodGet, "/api/v1/examples", "")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["data"], 3)

	status, body = doJSON(t, app, http.MethodGet, "/api/v1/species", "")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["data"], 3)

	status, body = doJSON(t, app, http.MethodGet, "/api/v1/species/setosa", "")
	require.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Setosa", data["name"])
	assert.NotEmpty(t, data["description"])
}
