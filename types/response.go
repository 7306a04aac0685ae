package types

import "time"

type ApiResponse struct {
	Message string      `json:"message"`
	Status  int         `json:"status"`
	Data    interface{} `json:"data,omitempty"`
}

// LogEntry is the in-flight shape of a request log row before the async
// logger persists it.
type LogEntry struct {
	Method     string
	Path       string
	Form       string
	StatusCode int
	CreatedAt  time.Time
}
