package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/lawbridge/lawbridge-backend/pkg/helpers"
	"github.com/lawbridge/lawbridge-backend/pkg/response"
)

// Auth validates the access token and ensures an active session exists in
// Redis. It sets accountID, userEmail, emailVerified and role in the Gin
// context on success.
func Auth(rdb *redis.Client, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			response.AbortError(c, http.StatusUnauthorized, "missing access token", nil)
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "invalid access token", nil)
			return
		}

		key := "account:session:" + claims.AccountID
		data, err := rdb.HGetAll(c.Request.Context(), key).Result()
		if err != nil || len(data) == 0 {
			response.AbortError(c, http.StatusUnauthorized, "session not found", nil)
			return
		}

		c.Set("accountID", claims.AccountID)
		c.Set("userEmail", data["email"])
		c.Set("emailVerified", data["email_verified"] == "true")
		c.Set("role", data["role"])
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	if t, err := c.Cookie("access_token"); err == nil && t != "" {
		return t
	}
	h := c.GetHeader("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return ""
}
