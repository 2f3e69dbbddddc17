package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbersmart-admin/internal/config"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func authRouter() *gin.Engine {
	r := gin.New()
	r.Use(AuthMiddleware(&config.Config{JWTSecret: testSecret}))
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user": c.GetString(ContextUserID),
			"role": c.GetString(ContextUserRole),
		})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		header func(t *testing.T) string
		status int
		code   string
		user   string
	}{
		{
			name:   "missing header",
			header: func(t *testing.T) string { return "" },
			status: http.StatusUnauthorized,
			code:   "missing_authorization_header",
		},
		{
			name:   "not bearer",
			header: func(t *testing.T) string { return "Basic abc" },
			status: http.StatusUnauthorized,
			code:   "invalid_authorization_header",
		},
		{
			name: "wrong secret",
			header: func(t *testing.T) string {
				return "Bearer " + signToken(t, jwt.MapClaims{"sub": 1, "role": "admin"}, "other")
			},
			status: http.StatusUnauthorized,
			code:   "invalid_token",
		},
		{
			name: "no subject",
			header: func(t *testing.T) string {
				return "Bearer " + signToken(t, jwt.MapClaims{"role": "admin"}, testSecret)
			},
			status: http.StatusUnauthorized,
			code:   "invalid_token_payload",
		},
		{
			name: "client role",
			header: func(t *testing.T) string {
				return "Bearer " + signToken(t, jwt.MapClaims{"sub": 5, "role": "cliente"}, testSecret)
			},
			status: http.StatusForbidden,
			code:   "admin_role_required",
		},
		{
			name: "numeric subject",
			header: func(t *testing.T) string {
				return "Bearer " + signToken(t, jwt.MapClaims{"sub": 12, "role": "admin"}, testSecret)
			},
			status: http.StatusOK,
			user:   "12",
		},
		{
			name: "spanish role and id claim",
			header: func(t *testing.T) string {
				return "Bearer " + signToken(t, jwt.MapClaims{"id": "7", "role": "Administrador"}, testSecret)
			},
			status: http.StatusOK,
			user:   "7",
		},
	}

	r := authRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if h := tt.header(t); h != "" {
				req.Header.Set("Authorization", h)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.code != "" {
				assert.Contains(t, rec.Body.String(), `"error_code":"`+tt.code+`"`)
				assert.Contains(t, rec.Body.String(), `"message":`)
			}
			if tt.user != "" {
				assert.Contains(t, rec.Body.String(), `"user":"`+tt.user+`"`)
			}
		})
	}
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"http://console.test"}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://console.test")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "http://console.test", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://evil.test")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextRequestID))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := rec.Header().Get(HeaderRequestID)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "my-custom-id")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "my-custom-id", rec.Header().Get(HeaderRequestID))
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), Logger(zerolog.Nop()), Recovery(zerolog.Nop()))
	r.GET("/", func(c *gin.Context) { panic("boom") })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error_code":"internal_error"`)
}
