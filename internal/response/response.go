// Package response defines the uniform success/error envelope returned by
// every API handler.
package response

// Envelope wraps a handler outcome. Data is present only on success; the
// numeric code mirrors the HTTP status the handler responds with.
type Envelope struct {
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func Success(code int, message string, data any) Envelope {
	return Envelope{Status: "success", Code: code, Message: message, Data: data}
}

func Error(code int, message string) Envelope {
	return Envelope{Status: "error", Code: code, Message: message}
}
