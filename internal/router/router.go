// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"studentdrop/internal/cache"
	"studentdrop/internal/config"
	"studentdrop/internal/database"
	"studentdrop/internal/handler"
	"studentdrop/internal/handler/auth"
	"studentdrop/internal/handler/ml"
	"studentdrop/internal/middleware"
	"studentdrop/internal/mlclient"
	"studentdrop/internal/model"
	"studentdrop/internal/service"
	"studentdrop/internal/worker"
)

// Setup 註冊所有路由與中介層
// rdb 可為 nil，表示未啟用 Redis，黑名單退回 no-op
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, wp worker.Pool, cfg *config.Config) {
	ts := service.NewTokenService(cfg.JWTSecret)

	var bl service.TokenBlacklist = service.NoopBlacklist{}
	if rdb != nil {
		bl = service.NewRedisBlacklist(rdb)
	}

	requireAuth := middleware.RequireAuth(ts, bl)

	// 健康檢查（公開）
	e.GET("/health", handler.HealthHandler(db))

	// 註冊、登入等皆為公開端點
	apiAuth := e.Group("/auth")
	apiAuth.POST("/signup", auth.SignupHandler(db))
	apiAuth.POST("/login", auth.LoginHandler(db, ts, cfg.JWTExpiry))
	apiAuth.POST("/logout", auth.LogoutHandler())
	apiAuth.POST("/reset-password", auth.ResetPasswordHandler())

	// ML 代理端點需登入；重新訓練僅限 admin/mentor
	mlClient := mlclient.New(cfg.MLServiceURL)
	apiML := e.Group("/ml", requireAuth)
	apiML.POST("/predict", ml.PredictHandler(mlClient))
	apiML.GET("/status", ml.StatusHandler(mlClient))
	apiML.POST("/train", ml.TrainHandler(mlClient, wp), middleware.RequireRole(model.RoleAdmin, model.RoleMentor))
}
