package dto

// APIResponse is the uniform response envelope.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OK builds a success envelope.
func OK(message string, data any) APIResponse {
	return APIResponse{Success: true, Message: message, Data: data}
}

// Fail builds a failure envelope; code carries the error taxonomy code.
func Fail(message, code string) APIResponse {
	return APIResponse{Success: false, Message: message, Error: code}
}
