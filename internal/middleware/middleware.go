package middleware

import (
	"net/http"
	"strings"

	"studentdrop/internal/model"
	"studentdrop/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

// extractClaims 自 Authorization 標頭取出 Bearer 令牌並驗證
// 前綴必須是完整的 "Bearer "，驗證失敗與被撤銷皆回 401
func extractClaims(c echo.Context, ts *service.TokenService, bl service.TokenBlacklist) (*service.Claims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}
	tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok || tokenString == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}
	claims, err := ts.Verify(tokenString)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}
	revoked, err := bl.IsRevoked(c.Request().Context(), tokenString)
	if err != nil || revoked {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}
	return claims, nil
}

// RequireAuth 驗證 Bearer 令牌並將 Claims 放入請求 context
func RequireAuth(ts *service.TokenService, bl service.TokenBlacklist) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c, ts, bl)
			if err != nil {
				return err
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}

// RequireRole 檢查已驗證身份的角色，必須接在 RequireAuth 之後
// 未經 RequireAuth 進入時視為未授權（防禦性檢查）
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(ContextUserKey).(*service.Claims)
			if !ok || claims == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}
			for _, r := range roles {
				if claims.Role == r {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "Forbidden")
		}
	}
}
