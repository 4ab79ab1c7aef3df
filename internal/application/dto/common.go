package dto

// ErrorResponse cuerpo de error HTTP.
// UserMessage, Recoverable y Retryable solo se llenan para errores clasificados de reportes.
type ErrorResponse struct {
	Code        string `json:"code"`
	Message     string `json:"message"`
	UserMessage string `json:"user_message,omitempty"`
	Recoverable bool   `json:"recoverable,omitempty"`
	Retryable   bool   `json:"retryable,omitempty"`
}
