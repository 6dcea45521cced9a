package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// captureLog redirects the global logger into a buffer for one test
func captureLog(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })
	return &buf
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	return entry
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		target    string
		status    int
		wantLevel string
	}{
		{name: "successful query", method: "GET", target: "/api/v1/hosts?limit=10", status: http.StatusOK, wantLevel: "info"},
		{name: "accepted ingest", method: "POST", target: "/api/v1/logs", status: http.StatusCreated, wantLevel: "info"},
		{name: "client error", method: "GET", target: "/api/v1/report?run_id=missing", status: http.StatusNotFound, wantLevel: "warn"},
		{name: "server error", method: "GET", target: "/api/v1/report", status: http.StatusInternalServerError, wantLevel: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLog(t)

			router := gin.New()
			router.Use(RequestID(), Logger())
			router.Handle(tt.method, strings.Split(tt.target, "?")[0], func(c *gin.Context) {
				c.JSON(tt.status, gin.H{"message": "done"})
			})

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(tt.method, tt.target, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)

			entry := lastEntry(t, buf)
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, "API request", entry["message"])
			assert.Equal(t, tt.method, entry["method"])
			assert.Equal(t, float64(tt.status), entry["status"])
			assert.Equal(t, w.Header().Get(RequestIDHeader), entry["request_id"])
		})
	}
}

func TestLogger_Query(t *testing.T) {
	buf := captureLog(t)

	router := gin.New()
	router.Use(Logger())
	router.GET("/api/v1/report", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/report?run_id=abc", nil)
	router.ServeHTTP(w, req)

	entry := lastEntry(t, buf)
	assert.Equal(t, "/api/v1/report", entry["path"])
	assert.Equal(t, "run_id=abc", entry["query"])
	assert.Equal(t, "", entry["request_id"])
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})

	t.Run("assigns an id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/test", nil)
		router.ServeHTTP(w, req)

		id := w.Header().Get(RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("keeps the caller id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/test", nil)
		req.Header.Set(RequestIDHeader, "upstream-1")
		router.ServeHTTP(w, req)

		assert.Equal(t, "upstream-1", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "upstream-1", w.Body.String())
	})
}
