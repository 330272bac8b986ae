package dto

// Response is the success/failure envelope every endpoint speaks.
// Failures are never silent: the message is always human-readable.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

func Fail(message string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message}
}

func FailWith(message string, details map[string]string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message, Details: details}
}
