package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// contextKey is the type of keys this package stores in contexts.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	userIDKey    = contextKey("userID")
)

// SystemUserID is recorded as the actor when authentication is disabled or work
// is started outside an HTTP request.
const SystemUserID = "system"

// WithUserID returns a copy of ctx carrying userID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if userIDVal, exists := c.Get(string(userIDKey)); exists {
		userID, ok := userIDVal.(string)
		return userID, ok && userID != ""
	}
	// check in the request context as well
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	return userID, ok && userID != ""
}
