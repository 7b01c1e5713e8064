package middleware

import (
	"net/http"
	"strings"

	"StudyHub/pkg/context"
	"StudyHub/pkg/jwt"
	"StudyHub/pkg/log"
	"StudyHub/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// Auth 需要登录
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			response.Abort(c, http.StatusUnauthorized, "authentication required")
			return
		}
		token, ok := bearerToken(c)
		if !ok {
			response.Abort(c, http.StatusUnauthorized, "malformed authorization header")
			return
		}

		claims, err := jwt.ParseToken(secret, jwt.TokenTypeAccess, token)
		if err != nil {
			log.L.Debug("invalid token", zap.Error(err))
			response.Abort(c, http.StatusUnauthorized, "invalid token")
			return
		}
		c.Set(context.CtxUserID, claims.UserID)

		c.Next()
	}
}

// OptionalAuth 带了合法 token 就解析用户，否则按游客处理
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if claims, err := jwt.ParseToken(secret, jwt.TokenTypeAccess, token); err == nil {
				c.Set(context.CtxUserID, claims.UserID)
			}
		}
		c.Next()
	}
}
