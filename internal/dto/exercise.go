package dto

// ExerciseRequest represents the payload for creating or updating an exercise
type ExerciseRequest struct {
	Username    string `json:"username" validate:"required"`
	Description string `json:"description" validate:"required"`
	// Duration in minutes
	Duration int `json:"duration" validate:"required,gt=0"`
	// Date in RFC3339 or YYYY-MM-DD form
	Date string `json:"date" validate:"required"`
}

// ExerciseResponse wraps a confirmation message together with the record
type ExerciseResponse struct {
	Message  string `json:"message"`
	Exercise any    `json:"exercise"`
}
