package dto

// RegisterRequest represents the request payload for user registration.
// The min-length rules mirror the user schema.
type RegisterRequest struct {
	FirstName       string `json:"firstName" validate:"required,min=3"`
	LastName        string `json:"lastName" validate:"required,min=3"`
	Email           string `json:"email" validate:"required,min=3"`
	Password        string `json:"password" validate:"required,min=3"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// LoginRequest represents the request payload for user login
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by registration and login on success
type AuthResponse struct {
	Message   string `json:"message"`
	Token     string `json:"token"`
	UserID    string `json:"userId"`
	UserEmail string `json:"userEmail"`
}

// MessageResponse wraps a plain confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}
