package prediction

import (
	"IrisProject/pkg/response"
	"net/http"
)

var (
	ErrSubmissionInFlight = response.NewError(http.StatusTooManyRequests, "a prediction is already in progress")
	ErrExampleNotFound    = response.NewError(http.StatusNotFound, "unknown example")
	ErrSpeciesNotFound    = response.NewError(http.StatusNotFound, "unknown species")
	ErrInternalServer     = response.NewError(http.StatusInternalServerError, "internal server error")
)
