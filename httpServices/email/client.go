// Package emailapi holds the outbound HTTP clients for transactional email
// providers. Each client makes a single attempt with a bounded timeout and
// surfaces non-2xx responses as APIError with a truncated body excerpt.
package emailapi

import (
	"fmt"

	"ziada-travel/utils"
)

// maxBodyExcerpt bounds how much of a provider response is kept for diagnostics.
const maxBodyExcerpt = 300

// Message is one rendered email handed to a provider API.
type Message struct {
	SenderName  string
	SenderEmail string
	To          []string
	Subject     string
	HTML        string
}

// APIError is a non-2xx response from a provider API.
type APIError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s api returned status %d: %s", e.Provider, e.StatusCode, e.Body)
}

func newAPIError(provider string, statusCode int, body []byte) *APIError {
	return &APIError{
		Provider:   provider,
		StatusCode: statusCode,
		Body:       utils.Truncate(string(body), maxBodyExcerpt),
	}
}
