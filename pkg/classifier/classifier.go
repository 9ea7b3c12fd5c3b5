package classifier

import (
	"IrisProject/internal/entity"
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const (
	defaultBaseURL = "http://127.0.0.1:5000"
	defaultTimeout = 10 * time.Second
)

type IClassifier interface {
	Predict(ctx context.Context, m entity.Measurement) (*entity.PredictionResult, error)
	Health(ctx context.Context) error
}

type classifierClient struct {
	baseURL string
	client  *http.Client
	log     *logrus.Logger
}

func New(log *logrus.Logger) IClassifier {
	baseURL := os.Getenv("CLASSIFIER_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	timeout := defaultTimeout
	if raw := os.Getenv("CLASSIFIER_TIMEOUT"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			log.WithFields(logrus.Fields{
				"value": raw,
				"error": err.Error(),
			}).Warn("Invalid CLASSIFIER_TIMEOUT, using default")
		} else {
			timeout = parsed
		}
	}

	return &classifierClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

// NewWithBaseURL builds a client against a fixed base URL. Used by tests and
// by callers that resolve configuration themselves.
func NewWithBaseURL(log *logrus.Logger, baseURL string, timeout time.Duration) IClassifier {
	return &classifierClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

func (c *classifierClient) Predict(ctx context.Context, m entity.Measurement) (*entity.PredictionResult, error) {
	payload, err := jsoniter.Marshal(predictRequest{
		SepalLength: m.SepalLength,
		SepalWidth:  m.SepalWidth,
		PetalLength: m.PetalLength,
		PetalWidth:  m.PetalWidth,
	})
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: fmt.Sprintf("failed to encode request: %s", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(payload))
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: fmt.Sprintf("failed to create request: %s", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.WithFields(logrus.Fields{
			"base_url": c.baseURL,
			"error":    err.Error(),
		}).Error("Prediction request failed to reach classifier")
		return nil, &Error{Kind: KindNetwork, Message: fmt.Sprintf("prediction service unreachable: %s", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Status: resp.StatusCode, Message: fmt.Sprintf("failed to read prediction response: %s", err)}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respErr := upstreamError(resp.StatusCode, body)
		c.log.WithFields(logrus.Fields{
			"status":  resp.StatusCode,
			"message": respErr.Message,
		}).Warn("Classifier rejected prediction request")
		return nil, respErr
	}

	var result entity.PredictionResult
	if err := jsoniter.Unmarshal(body, &result); err != nil {
		return nil, &Error{Kind: KindDecode, Status: resp.StatusCode, Message: fmt.Sprintf("malformed prediction response: %s", err)}
	}
	if result.Prediction == "" {
		return nil, &Error{Kind: KindDecode, Status: resp.StatusCode, Message: "prediction response is missing the predicted class"}
	}

	return &result, nil
}

func (c *classifierClient) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: fmt.Sprintf("failed to create request: %s", err)}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: fmt.Sprintf("prediction service unreachable: %s", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindNetwork, Status: resp.StatusCode, Message: fmt.Sprintf("failed to read health response: %s", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return upstreamError(resp.StatusCode, body)
	}

	var health healthResponse
	if err := jsoniter.Unmarshal(body, &health); err != nil {
		return &Error{Kind: KindDecode, Status: resp.StatusCode, Message: fmt.Sprintf("malformed health response: %s", err)}
	}
	if health.ModelStatus != "" && health.ModelStatus != "loaded" {
		return &Error{Kind: KindUpstream, Status: resp.StatusCode, Message: fmt.Sprintf("classifier model is %s", health.ModelStatus)}
	}

	return nil
}

// upstreamError turns a non-2xx response into a typed error, preferring the
// structured {"error": ...} body and falling back to the status line.
func upstreamError(status int, body []byte) *Error {
	var payload errorResponse
	if err := jsoniter.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return &Error{Kind: KindUpstream, Status: status, Message: payload.Error}
	}
	return &Error{Kind: KindUpstream, Status: status, Message: fmt.Sprintf("prediction service returned %d %s", status, http.StatusText(status))}
}
