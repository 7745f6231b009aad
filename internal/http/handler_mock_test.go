//go:build !integration

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/savings-service/internal/catalog"
	"github.com/guttosm/savings-service/internal/domain/dto"
	"github.com/guttosm/savings-service/internal/domain/model"
	"github.com/guttosm/savings-service/internal/mocks"
	"github.com/guttosm/savings-service/internal/service"
)

func setupRouterWithMocks(t *testing.T) (*gin.Engine, *mocks.MockSavingsEstimator, *mocks.MockSessionService) {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)

	estimator := mocks.NewMockSavingsEstimator(t)
	sessions := mocks.NewMockSessionService(t)

	router, err := NewRouter(
		NewHandler(cat, estimator, sessions),
		NewPageHandler(estimator, sessions),
		NewHealthHandler(),
		DefaultRouterConfig(),
	)
	require.NoError(t, err)
	return router, estimator, sessions
}

func TestEstimate_UsesEstimator(t *testing.T) {
	router, estimator, _ := setupRouterWithMocks(t)

	estimator.EXPECT().Estimate(40, 2).Return(model.Estimate{
		Headcount:       40,
		ActiveToolCount: 2,
		Tier:            model.TierBasic,
		AnnualSavings:   decimal.NewFromInt(76800),
		Currency:        "USD",
	}).Once()

	w := serve(router, http.MethodPost, "/api/estimate", `{"headcount": 47, "active_tool_count": 2}`)

	require.Equal(t, http.StatusOK, w.Code)
	est := decodeData[dto.EstimateView](t, w)
	assert.Equal(t, "76800", est.AnnualSavings.String())
	assert.Equal(t, 10, est.Step)
}

func TestSessionHandlers_ServiceErrors(t *testing.T) {
	tests := []struct {
		name            string
		method          string
		path            string
		body            string
		setup           func(*mocks.MockSessionService)
		expectedStatus  int
		expectedCode    string
		expectedMessage string
	}{
		{
			name:   "create fails",
			method: http.MethodPost,
			path:   "/api/sessions",
			setup: func(m *mocks.MockSessionService) {
				m.EXPECT().Create(mock.Anything).Return(model.Session{}, errors.New("store unavailable")).Once()
			},
			expectedStatus:  http.StatusInternalServerError,
			expectedCode:    dto.ErrCodeInternal,
			expectedMessage: dto.MsgInternalError,
		},
		{
			name:   "get deadline exceeded",
			method: http.MethodGet,
			path:   "/api/sessions/s1",
			setup: func(m *mocks.MockSessionService) {
				m.EXPECT().Get(mock.Anything, "s1").Return(model.Session{}, context.DeadlineExceeded).Once()
			},
			expectedStatus:  http.StatusGatewayTimeout,
			expectedCode:    dto.ErrCodeTimeout,
			expectedMessage: dto.MsgRequestTimeout,
		},
		{
			name:   "toggle wrapped not found",
			method: http.MethodPost,
			path:   "/api/sessions/s1/tools/4/toggle",
			setup: func(m *mocks.MockSessionService) {
				m.EXPECT().ToggleTool(mock.Anything, "s1", 4).
					Return(model.Session{}, model.ToggleOutcome{}, fmt.Errorf("toggle: %w", service.ErrToolNotFound)).Once()
			},
			expectedStatus:  http.StatusNotFound,
			expectedCode:    dto.ErrCodeNotFound,
			expectedMessage: dto.MsgToolNotFound,
		},
		{
			name:   "set headcount session gone",
			method: http.MethodPut,
			path:   "/api/sessions/s1/headcount",
			body:   `{"headcount": 20}`,
			setup: func(m *mocks.MockSessionService) {
				m.EXPECT().SetHeadcount(mock.Anything, "s1", 20).Return(model.Session{}, service.ErrSessionNotFound).Once()
			},
			expectedStatus:  http.StatusNotFound,
			expectedCode:    dto.ErrCodeNotFound,
			expectedMessage: dto.MsgSessionNotFound,
		},
		{
			name:   "delete fails",
			method: http.MethodDelete,
			path:   "/api/sessions/s1",
			setup: func(m *mocks.MockSessionService) {
				m.EXPECT().Delete(mock.Anything, "s1").Return(errors.New("boom")).Once()
			},
			expectedStatus:  http.StatusInternalServerError,
			expectedCode:    dto.ErrCodeInternal,
			expectedMessage: dto.MsgInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _, sessions := setupRouterWithMocks(t)
			tt.setup(sessions)

			w := serve(router, tt.method, tt.path, tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, tt.expectedCode, resp.Error)
			assert.Equal(t, tt.expectedMessage, resp.Message)
		})
	}
}

func TestToggleTool_RefusedOutcome(t *testing.T) {
	router, estimator, sessions := setupRouterWithMocks(t)

	session := model.Session{
		ID:        "s1",
		Headcount: 100,
		Tools: []model.Tool{
			{ID: 1, Name: "Slack", Checked: true},
			{ID: 2, Name: "Zoom", Checked: true},
			{ID: 3, Name: "Google Drive", Checked: true},
		},
		CreatedAt: time.Now(),
	}
	sessions.EXPECT().ToggleTool(mock.Anything, "s1", 2).
		Return(session, model.ToggleOutcome{Accepted: false, ActiveCount: 3}, nil).Once()
	estimator.EXPECT().Estimate(100, 3).Return(model.Estimate{
		Tier:          model.TierPro,
		TierCost:      90,
		AnnualSavings: decimal.NewFromInt(180000),
		Currency:      "USD",
	}).Once()

	w := serve(router, http.MethodPost, "/api/sessions/s1/tools/2/toggle", "")

	require.Equal(t, http.StatusOK, w.Code)
	view := decodeData[dto.ToggleView](t, w)
	assert.False(t, view.Accepted)
	assert.Equal(t, "Pro", view.Session.Tier)
	for _, tool := range view.Session.Tools {
		assert.True(t, tool.Locked, tool.Name)
	}
}
