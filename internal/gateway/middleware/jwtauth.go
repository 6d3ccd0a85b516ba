package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"retail-crud/internal/gateway/render"
	"retail-crud/internal/utils"
)

const OperatorKey = "operator"

// JWTAuth requires "Authorization: Bearer <token>" signed with secret. An
// empty secret disables the check.
func JWTAuth(secret string) gin.HandlerFunc {
	if secret == "" {
		return func(c *gin.Context) { c.Next() }
	}
	key := []byte(secret)

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenStr == "" {
			render.Error(c, http.StatusUnauthorized, "missing bearer token")
			return
		}

		claims, err := utils.ParseToken(key, tokenStr)
		if err != nil {
			render.Error(c, http.StatusUnauthorized, "invalid token")
			return
		}

		c.Set(OperatorKey, claims.Operator)
		c.Next()
	}
}
