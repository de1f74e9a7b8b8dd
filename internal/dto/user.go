package dto

// UserDTO represents a data transfer object (DTO) for a user as listed by the API.
type UserDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UserCreateDTO represents a data transfer object (DTO) for creating a user request.
type UserCreateDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}
