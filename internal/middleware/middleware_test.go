package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, claims jwt.RegisteredClaims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func newAuthRouter(auth gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(StructuredLoggingMiddleware(NewLogger("error")), auth)
	r.GET("/whoami", func(c *gin.Context) {
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, userID)
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	r := newAuthRouter(AuthMiddleware(testSecret, "grn-tracker"))
	valid := jwt.RegisteredClaims{
		Subject:   "user-1",
		Issuer:    "grn-tracker",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"valid token", "Bearer " + signToken(t, valid, testSecret), http.StatusOK, "user-1"},
		{"missing header", "", http.StatusUnauthorized, "Authorization header required"},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, "Bearer"},
		{"wrong secret", "Bearer " + signToken(t, valid, "other"), http.StatusUnauthorized, "Invalid token"},
		{"expired", "Bearer " + signToken(t, jwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    "grn-tracker",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		}, testSecret), http.StatusUnauthorized, "Token has expired"},
		{"wrong issuer", "Bearer " + signToken(t, jwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}, testSecret), http.StatusUnauthorized, "Invalid token"},
		{"no subject", "Bearer " + signToken(t, jwt.RegisteredClaims{
			Issuer:    "grn-tracker",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}, testSecret), http.StatusUnauthorized, "Invalid token claims"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}

func TestNoAuthMiddleware(t *testing.T) {
	r := newAuthRouter(NoAuthMiddleware())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, SystemUserID, w.Body.String())
}

func TestRateLimit_MemoryStore(t *testing.T) {
	lim, err := NewRateLimiter(context.Background(), "2-M", "")
	require.NoError(t, err)

	r := gin.New()
	r.Use(RateLimit(lim))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestNewRateLimiter_InvalidRate(t *testing.T) {
	_, err := NewRateLimiter(context.Background(), "lots", "")
	assert.Error(t, err)
}

func TestGetLoggerFromCtx_FallsBackToDefault(t *testing.T) {
	assert.NotNil(t, GetLoggerFromCtx(context.Background()))

	logger := NewLogger("debug")
	assert.Same(t, logger, GetLoggerFromCtx(WithLogger(context.Background(), logger)))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", ParseLevel("debug").String())
	assert.Equal(t, "WARN", ParseLevel("WARNING").String())
	assert.Equal(t, "INFO", ParseLevel("").String())
}
