package api

// ResetPasswordRequest email 是否存在不影響回應內容，避免帳號枚舉
// swagger:model api.ResetPasswordRequest
type ResetPasswordRequest struct {
	Email string `json:"email" example:"a@x.com"`
}
