package api

// PredictRequest 轉送給外部 ML 服務的風險預測請求
// 學生 ID 從 1 起算，缺漏或 0 都視為無效
// swagger:model api.PredictRequest
type PredictRequest struct {
	StudentID int `json:"student_id" validate:"min=1" example:"42"`
}
