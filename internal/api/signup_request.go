package api

// SignupRequest 註冊請求 (JSON body)
// role 留空時後端預設為 student；未定義的角色值直接拒絕
// swagger:model api.SignupRequest
type SignupRequest struct {
	Name     string `json:"name" validate:"required" example:"Alex"`
	Email    string `json:"email" validate:"required,email" example:"a@x.com"`
	Password string `json:"password" validate:"required" example:"secret123"`
	Role     string `json:"role" validate:"omitempty,oneof=admin mentor student" example:"student"`
}
