package service

import (
	"encoding/json"
	"errors"

	"storyfeed/internal/api"
)

const genericErrorMessage = "request failed, please try again"

// errorMessage turns a fault into the short string users see. Transport
// faults carry the backend envelope in their body; when that body does
// not parse the generic message is used instead of crashing.
func errorMessage(err error) string {
	var transport *api.TransportError
	if errors.As(err, &transport) {
		var env api.Envelope
		if jsonErr := json.Unmarshal(transport.Body, &env); jsonErr == nil && env.Message != "" {
			return env.Message
		}
		return genericErrorMessage
	}
	if err != nil {
		return err.Error()
	}
	return genericErrorMessage
}
