package api

// UserResponse 對外的使用者資訊，永不包含密碼哈希
// swagger:model api.UserResponse
type UserResponse struct {
	ID    int    `json:"id" example:"1"`
	Name  string `json:"name" example:"Alex"`
	Email string `json:"email" example:"a@x.com"`
	Role  string `json:"role" example:"student"`
}
