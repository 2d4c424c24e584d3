package middleware

import (
	"net/http"

	"boardhub/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const principalKey = "principal_id"

// PrincipalMiddleware reads the acting user from the X-User-ID header.
// Authentication happens upstream; the gateway is trusted to have
// verified the identity it forwards here.
func PrincipalMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		principalID := c.GetHeader("X-User-ID")
		if principalID == "" || uuid.Validate(principalID) != nil {
			lang := GetLang(c)
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgMissingPrincipal, lang),
			)
			return
		}
		c.Set(principalKey, principalID)
		c.Next()
	}
}

func GetPrincipal(c *gin.Context) string {
	if id, exists := c.Get(principalKey); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}
