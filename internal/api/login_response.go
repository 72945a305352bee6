package api

// swagger:model api.LoginResponse
type LoginResponse struct {
	Token string       `json:"token" example:"eyJhbGciOi..."`
	User  UserResponse `json:"user"`
}
