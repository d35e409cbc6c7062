package dto

// ErrorDetail carries the error message and its underlying cause
type ErrorDetail struct {
	Message string `json:"message"`
	Cause   string `json:"cause"`
}

// ErrorResponse is the envelope every error funnels through:
// {"error": {"message": ..., "cause": ...}}
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
