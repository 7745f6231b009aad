//go:build !integration

package middleware

import (
	"bufio"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/savings-service/internal/logger"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.InitWithWriter(&buf, "debug", false)
	t.Cleanup(func() { logger.Init("info", false) })
	return &buf
}

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var lines []map[string]interface{}
	scanner := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	for scanner.Scan() {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		lines = append(lines, entry)
	}
	return lines
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name          string
		status        int
		expectedLevel string
	}{
		{name: "success logs info", status: http.StatusOK, expectedLevel: "info"},
		{name: "client error logs warn", status: http.StatusNotFound, expectedLevel: "warn"},
		{name: "server error logs error", status: http.StatusInternalServerError, expectedLevel: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)

			router := gin.New()
			router.Use(RequestID(), RequestLogger())
			router.GET("/api/sessions/:id", func(c *gin.Context) {
				c.Status(tt.status)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/sessions/abc", nil)
			req.Header.Set(RequestIDHeader, "req-1")
			req.Header.Set("User-Agent", "test-agent")
			router.ServeHTTP(httptest.NewRecorder(), req)

			lines := logLines(t, buf)
			require.Len(t, lines, 1)
			entry := lines[0]
			assert.Equal(t, tt.expectedLevel, entry["level"])
			assert.Equal(t, "req-1", entry["request_id"])
			assert.Equal(t, "GET", entry["method"])
			assert.Equal(t, "/api/sessions/abc", entry["path"])
			assert.Equal(t, "/api/sessions/:id", entry["route"])
			assert.Equal(t, float64(tt.status), entry["status_code"])
			assert.Equal(t, "test-agent", entry["user_agent"])
			assert.Contains(t, entry, "duration_ms")
		})
	}
}

func TestRequestLogger_SkipPaths(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := captureLogs(t)

	router := gin.New()
	router.Use(RequestLogger("/healthz"))
	router.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/api/tools", func(c *gin.Context) { c.Status(http.StatusOK) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Empty(t, logLines(t, buf))

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/tools", nil))
	assert.Len(t, logLines(t, buf), 1)
}
