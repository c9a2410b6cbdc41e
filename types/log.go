package types

import "time"

// LogEntry is a request log record queued for asynchronous persistence.
type LogEntry struct {
	Method       string
	URL          string
	RequestBody  string
	ResponseBody string
	StatusCode   int
	CreatedAt    time.Time
}
