// Package server provides the HTTP REST API for the job search assistant.
package server

import (
	"errors"
	"net/http"

	"github.com/jobscout/jobscout/internal/provider"
)

// HTTPStatus returns the appropriate HTTP status code for an error. Only
// invalid requests and the exhausted case ever reach a handler; recoverable
// provider failures are absorbed inside the pipeline.
func HTTPStatus(err error) int {
	var invalid *provider.InvalidRequestError
	var exhausted *provider.AllSourcesExhaustedError
	var unconfigured *provider.UnconfiguredError
	switch {
	case errors.As(err, &invalid):
		return http.StatusBadRequest
	case errors.As(err, &exhausted):
		return http.StatusBadGateway
	case errors.As(err, &unconfigured):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
