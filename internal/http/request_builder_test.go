//go:build !integration

package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/savings-service/internal/domain/dto"
	"github.com/guttosm/savings-service/internal/middleware"
)

func newTestContext(method, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, "/test", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	middleware.RequestID()(c)
	return c, w
}

func TestBuildRequest(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		expectErr bool
		expected  dto.EstimateRequest
	}{
		{
			name:     "valid body",
			body:     `{"headcount": 100, "active_tool_count": 3}`,
			expected: dto.EstimateRequest{Headcount: 100, ActiveToolCount: 3},
		},
		{
			name:     "missing fields default to zero",
			body:     `{}`,
			expected: dto.EstimateRequest{},
		},
		{name: "malformed", body: `{"headcount":`, expectErr: true},
		{name: "wrong type", body: `{"headcount": "ten"}`, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(http.MethodPost, tt.body)

			req, err := BuildRequest[dto.EstimateRequest](c)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, req)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, *req)
		})
	}
}

func TestResponseBuilder_Success(t *testing.T) {
	tests := []struct {
		name   string
		send   func(*ResponseBuilder)
		status int
	}{
		{name: "ok", send: func(b *ResponseBuilder) { b.SuccessOK(gin.H{"a": 1}) }, status: http.StatusOK},
		{name: "created", send: func(b *ResponseBuilder) { b.SuccessCreated(gin.H{"a": 1}) }, status: http.StatusCreated},
		{name: "custom", send: func(b *ResponseBuilder) { b.Success(http.StatusAccepted, gin.H{"a": 1}) }, status: http.StatusAccepted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(http.MethodGet, "")

			tt.send(NewResponseBuilder(c))

			assert.Equal(t, tt.status, w.Code)
			data := decodeData[map[string]int](t, w)
			assert.Equal(t, 1, data["a"])
		})
	}
}

func TestResponseBuilder_Error(t *testing.T) {
	c, w := newTestContext(http.MethodGet, "")
	cause := errors.New("session not found")

	NewResponseBuilder(c).Error(http.StatusNotFound, dto.MsgSessionNotFound, cause)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.True(t, c.IsAborted())
	require.Len(t, c.Errors, 1)
	assert.ErrorIs(t, c.Errors[0].Err, cause)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrCodeNotFound, resp.Error)
	assert.Equal(t, dto.MsgSessionNotFound, resp.Message)
	assert.Equal(t, middleware.GetRequestID(c), resp.RequestID)
	assert.NotZero(t, resp.Timestamp)
}

func TestResponseBuilder_ErrorWithoutCause(t *testing.T) {
	c, w := newTestContext(http.MethodGet, "")

	NewResponseBuilder(c).Error(http.StatusBadRequest, "bad", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, c.Errors)
}
