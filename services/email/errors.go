package email

import (
	"fmt"
)

// DispatchError is a failed single-attempt send: network error, timeout or a
// non-2xx provider response. StatusCode is zero for non-HTTP failures; Detail
// carries a truncated response body when the provider returned one.
type DispatchError struct {
	Provider   string
	StatusCode int
	Detail     string
	Err        error
}

func (e *DispatchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s dispatch failed with status %d: %s", e.Provider, e.StatusCode, e.Detail)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s dispatch failed: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("%s dispatch failed: %s", e.Provider, e.Detail)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

// ConfigurationError means the selected provider was invoked with missing or
// placeholder credentials. It is raised when the provider is used, not at
// startup.
type ConfigurationError struct {
	Provider string
	Reason   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s is not configured: %s", e.Provider, e.Reason)
}
