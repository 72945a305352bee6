// File: internal/handler/health.go
package handler

import (
	"net/http"

	"studentdrop/internal/api"
	"studentdrop/internal/database"

	"github.com/labstack/echo/v4"
)

// HealthHandler 健康檢查
// @Summary     Health Check
// @Description 回傳 ok，並檢查資料庫連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} api.HealthResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /health [get]
func HealthHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "database unhealthy"})
		}
		return c.JSON(http.StatusOK, api.HealthResponse{Status: "ok"})
	}
}
