package dto

// ErrorDTO represents a data transfer object (DTO) for an error.
type ErrorDTO struct {
	Error string `json:"error"`
}

// SuccessDTO represents a data transfer object (DTO) for an acknowledged write.
type SuccessDTO struct {
	Success bool `json:"success"`
}
