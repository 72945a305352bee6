// File: internal/handler/auth/auth.go
package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"studentdrop/internal/api"
	"studentdrop/internal/database"
	"studentdrop/internal/model"
	"studentdrop/internal/service"
	"studentdrop/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

var (
	hashPassword    = service.HashPassword
	comparePassword = service.ComparePassword
	createUser      = store.CreateUser
	getUserByEmail  = store.GetUserByEmail
)

// SignupHandler 建立新帳號
// @Summary     註冊使用者
// @Description 接收 JSON 註冊資料並建立新帳號 (Email 會自動轉小寫)；role 省略時預設 student
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.SignupRequest true "註冊資料"
// @Success     201 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse "欄位缺漏或角色未定義"
// @Failure     409 {object} api.ErrorResponse "Email 已註冊"
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/signup [post]
func SignupHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SignupRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		// Email 轉為小寫以確保唯一性判斷一致
		req.Email = strings.ToLower(req.Email)

		role := model.Role(req.Role)
		if req.Role == "" {
			role = model.RoleStudent
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		// 不做 check-then-insert；重複 email 由唯一索引擋下後對應到 409
		user, err := createUser(c.Request().Context(), db, &model.User{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: hash,
			Role:         role,
		})
		if err != nil {
			if store.IsUniqueViolation(err) {
				return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "Email already exists"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusCreated, api.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  string(user.Role),
		})
	}
}

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// @Summary     登入使用者
// @Description 使用 Email 與 Password 進行驗證，回傳存取令牌與使用者資訊
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.LoginRequest true "登入資料"
// @Success     200 {object} api.LoginResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse "帳號不存在與密碼錯誤回應相同"
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(db database.DB, ts *service.TokenService, ttl time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		// 查無帳號與密碼錯誤必須回完全相同的訊息，避免帳號枚舉；
		// 資料庫故障不屬於認證失敗，回 500
		user, err := getUserByEmail(c.Request().Context(), db, strings.ToLower(req.Email))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Invalid credentials"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		if err := comparePassword(user.PasswordHash, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Invalid credentials"})
		}

		token, err := ts.Issue(*user, ttl)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusOK, api.LoginResponse{
			Token: token,
			User: api.UserResponse{
				ID:    user.ID,
				Name:  user.Name,
				Email: user.Email,
				Role:  string(user.Role),
			},
		})
	}
}

// LogoutHandler 無狀態登出
// @Summary     登出
// @Description 無狀態 JWT：由客戶端自行移除令牌，伺服器不做撤銷
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.MessageResponse
// @Router      /auth/logout [post]
func LogoutHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Logged out"})
	}
}

// ResetPasswordHandler 密碼重設 stub
// @Summary     重設密碼
// @Description 無論 email 是否存在皆回相同訊息，避免帳號枚舉；實際寄信流程尚未接上
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.ResetPasswordRequest false "重設資料"
// @Success     200 {object} api.MessageResponse
// @Router      /auth/reset-password [post]
func ResetPasswordHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ResetPasswordRequest
		// body 可有可無，綁定失敗也照樣回覆
		_ = c.Bind(&req)
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Password reset link sent if email exists"})
	}
}
