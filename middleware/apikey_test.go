package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func apiKeyTestRouter(configuredKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/checkin", APIKeyMiddleware(configuredKey), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return router
}

func TestAPIKeyMiddleware(t *testing.T) {
	tests := []struct {
		name          string
		configuredKey string
		setup         func(req *http.Request)
		wantStatus    int
	}{
		{
			name:          "no key configured lets everything through",
			configuredKey: "",
			setup:         func(req *http.Request) {},
			wantStatus:    http.StatusOK,
		},
		{
			name:          "missing key is rejected",
			configuredKey: "secret",
			setup:         func(req *http.Request) {},
			wantStatus:    http.StatusUnauthorized,
		},
		{
			name:          "x-api-key header",
			configuredKey: "secret",
			setup: func(req *http.Request) {
				req.Header.Set("X-Api-Key", "secret")
			},
			wantStatus: http.StatusOK,
		},
		{
			name:          "bearer token",
			configuredKey: "secret",
			setup: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer secret")
			},
			wantStatus: http.StatusOK,
		},
		{
			name:          "bearer prefix is case-insensitive",
			configuredKey: "secret",
			setup: func(req *http.Request) {
				req.Header.Set("Authorization", "bearer secret")
			},
			wantStatus: http.StatusOK,
		},
		{
			name:          "raw authorization header",
			configuredKey: "secret",
			setup: func(req *http.Request) {
				req.Header.Set("Authorization", "secret")
			},
			wantStatus: http.StatusOK,
		},
		{
			name:          "query parameter",
			configuredKey: "secret",
			setup: func(req *http.Request) {
				q := req.URL.Query()
				q.Set("key", "secret")
				req.URL.RawQuery = q.Encode()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:          "wrong key is rejected",
			configuredKey: "secret",
			setup: func(req *http.Request) {
				req.Header.Set("X-Api-Key", "guess")
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:          "header outranks query",
			configuredKey: "secret",
			setup: func(req *http.Request) {
				req.Header.Set("X-Api-Key", "wrong")
				q := req.URL.Query()
				q.Set("key", "secret")
				req.URL.RawQuery = q.Encode()
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := apiKeyTestRouter(tt.configuredKey)
			req := httptest.NewRequest(http.MethodPost, "/checkin", nil)
			tt.setup(req)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
