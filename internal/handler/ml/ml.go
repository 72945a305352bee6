// File: internal/handler/ml/ml.go
package ml

import (
	"context"
	"net/http"

	"studentdrop/internal/api"
	"studentdrop/internal/mlclient"
	"studentdrop/internal/worker"

	"github.com/labstack/echo/v4"
)

// PredictHandler 轉送風險預測請求給外部 ML 服務
// @Summary     學生輟學風險預測
// @Description 代理外部 ML 服務的 /ml/predict，需登入
// @Tags        ml
// @Accept      json
// @Produce     json
// @Param       request body api.PredictRequest true "學生 ID"
// @Success     200 {object} mlclient.PredictResult
// @Failure     400 {object} api.ErrorResponse
// @Failure     502 {object} api.ErrorResponse "ML 服務無法連線"
// @Security    ApiKeyAuth
// @Router      /ml/predict [post]
func PredictHandler(client *mlclient.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.PredictRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		result, err := client.Predict(c.Request().Context(), req.StudentID)
		if err != nil {
			return c.JSON(http.StatusBadGateway, api.ErrorResponse{Message: "ml service unavailable"})
		}
		return c.JSON(http.StatusOK, result)
	}
}

// StatusHandler 查詢模型狀態
// @Summary     模型狀態
// @Description 代理外部 ML 服務的 /ml/status，需登入
// @Tags        ml
// @Produce     json
// @Success     200 {object} mlclient.Status
// @Failure     502 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /ml/status [get]
func StatusHandler(client *mlclient.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		status, err := client.GetStatus(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusBadGateway, api.ErrorResponse{Message: "ml service unavailable"})
		}
		return c.JSON(http.StatusOK, status)
	}
}

// TrainHandler 觸發模型重新訓練
// 訓練耗時，丟進工作池背景執行後立即回 202；
// 工作池滿載時不阻塞請求，改回 409
// @Summary     重新訓練模型
// @Description 僅 admin 與 mentor 可觸發；訓練於背景執行
// @Tags        ml
// @Produce     json
// @Success     202 {object} api.MessageResponse
// @Failure     409 {object} api.ErrorResponse "訓練已在進行中"
// @Security    ApiKeyAuth
// @Router      /ml/train [post]
func TrainHandler(client *mlclient.Client, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		logger := c.Echo().Logger
		ok := wp.TrySubmit(func() {
			result, err := client.Train(context.Background())
			if err != nil {
				logger.Errorf("model training failed: %v", err)
				return
			}
			logger.Infof("model trained: accuracy=%.2f", result.Accuracy)
		})
		if !ok {
			return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "Model training already in progress"})
		}
		return c.JSON(http.StatusAccepted, api.MessageResponse{Message: "Model training started"})
	}
}
