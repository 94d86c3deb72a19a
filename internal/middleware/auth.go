package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": msg})
}

// AuthMiddleware creates a Gin middleware handler that validates JWT bearer tokens.
// The token subject becomes the acting user id. An empty issuer skips the issuer check.
func AuthMiddleware(jwtSecret, issuer string) gin.HandlerFunc {
	parserOpts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(issuer))
	}

	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			abortUnauthorized(c, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			abortUnauthorized(c, "Authorization header format must be Bearer {token}")
			return
		}

		token, err := jwt.ParseWithClaims(parts[1], &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
			return []byte(jwtSecret), nil
		}, parserOpts...)
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			abortUnauthorized(c, msg)
			return
		}

		claims, ok := token.Claims.(*jwt.RegisteredClaims)
		if !ok || !token.Valid || claims.Subject == "" {
			logger.Warn("Invalid token claims or token is not valid")
			abortUnauthorized(c, "Invalid token claims")
			return
		}

		setActor(c, logger, claims.Subject)
		c.Next()
	}
}

// NoAuthMiddleware attributes every request to SystemUserID. Used when AUTH_ENABLED is false.
func NoAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		setActor(c, GetLoggerFromCtx(c.Request.Context()), SystemUserID)
		c.Next()
	}
}

func setActor(c *gin.Context, logger *slog.Logger, userID string) {
	ctx := WithUserID(c.Request.Context(), userID)
	ctx = WithLogger(ctx, logger.With(slog.String("user_id", userID)))
	c.Request = c.Request.WithContext(ctx)
}
