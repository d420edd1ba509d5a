package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

const (
	// userIDKey is the key used to store the authenticated user's ID.
	userIDKey = contextKey("userID")
	// tenantIDsKey holds the tenants the caller may access. A nil value means all.
	tenantIDsKey = contextKey("tenantIDs")
	// authMethodKey records which middleware authenticated the request.
	authMethodKey = contextKey("authMethod")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		// check in the request context as well
		if userID, ok := c.Request.Context().Value(userIDKey).(string); ok && userID != "" {
			return userID, true
		}
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}

	return userID, true
}

// withPrincipal stores the authenticated caller on both the gin and request contexts.
func withPrincipal(c *gin.Context, userID string, tenantIDs []string, method string) {
	c.Set(string(userIDKey), userID)
	c.Set(string(authMethodKey), method)
	if tenantIDs != nil {
		c.Set(string(tenantIDsKey), tenantIDs)
	}

	logger := GetLoggerFromCtx(c.Request.Context()).With("user_id", userID)
	ctx := context.WithValue(c.Request.Context(), userIDKey, userID)
	ctx = WithLogger(ctx, logger)
	c.Request = c.Request.WithContext(ctx)
}
