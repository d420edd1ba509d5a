package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// serviceUserID identifies requests authenticated with the shared API key.
const serviceUserID = "service"

// APIKeyAuth authenticates service-to-service calls carrying an x-api-key header
// whose bcrypt hash matches keyHash. Requests without the header, or with a
// non-matching key, fall through to the JWT middleware.
func APIKeyAuth(keyHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("x-api-key")
		if keyHash == "" || apiKey == "" {
			c.Next()
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(keyHash), []byte(apiKey)); err != nil {
			GetLoggerFromCtx(c.Request.Context()).Warn("API key rejected")
			c.Next()
			return
		}

		withPrincipal(c, serviceUserID, nil, "api_key")
		c.Next()
	}
}
