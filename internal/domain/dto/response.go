package dto

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
)

// Messages returned in ErrorResponse.Message.
const (
	MsgInvalidRequestBody = "invalid request body"
	MsgInvalidToolID      = "tool_id must be a positive integer"
	MsgSessionNotFound    = "session not found"
	MsgToolNotFound       = "tool not found"
	MsgInternalError      = "internal server error"
	MsgRateLimitExceeded  = "rate limit exceeded, retry later"
	MsgRequestTimeout     = "request timed out"
	MsgIdempotencyBusy    = "a request with this idempotency key is already in progress"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data (SessionView, EstimateView or []Tool)
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"active_tool_count: must not be negative"`
	// Details contains additional error details (optional)
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
	TraceID   string            `json:"trace_id,omitempty" example:"trace-123"`
} // @name ErrorResponse

// DigitStrip is one scrolling digit of the animated tool counter.
type DigitStrip struct {
	Digit int `json:"digit" example:"3"`
	// OffsetPx is the vertical translation that brings Digit into view.
	OffsetPx int `json:"offset_px" example:"-96"`
} // @name DigitStrip

// ToolView is a catalog tool as seen inside a session.
type ToolView struct {
	ID      int    `json:"id" example:"1"`
	Name    string `json:"name" example:"Slack"`
	Img     string `json:"img" example:"/static/tools/slack.svg"`
	Checked bool   `json:"checked" example:"true"`
	// Locked is true when unchecking this tool would be rejected.
	Locked bool `json:"locked" example:"true"`
} // @name ToolView

// EstimateView is the result of the stateless estimate endpoint.
// @Description Savings estimate
type EstimateView struct {
	Headcount             int             `json:"headcount" example:"100"`
	Step                  int             `json:"step" example:"100"`
	ActiveToolCount       int             `json:"active_tool_count" example:"3"`
	Tier                  string          `json:"tier" example:"Pro"`
	TierCost              int             `json:"tier_cost" example:"90"`
	MonthlySavingsPerSeat int             `json:"monthly_savings_per_seat" example:"150"`
	AnnualSavings         decimal.Decimal `json:"annual_savings" swaggertype:"string" example:"180000"`
	Currency              string          `json:"currency" example:"USD"`
} // @name EstimateView

// SessionView is the full derived state of a calculator session.
// @Description Calculator session with derived display values
type SessionView struct {
	ID              string          `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Headcount       int             `json:"headcount" example:"100"`
	Step            int             `json:"step" example:"100"`
	Tier            string          `json:"tier" example:"Pro"`
	TierCost        int             `json:"tier_cost" example:"90"`
	AnnualSavings   decimal.Decimal `json:"annual_savings" swaggertype:"string" example:"180000"`
	Currency        string          `json:"currency" example:"USD"`
	ActiveToolCount int             `json:"active_tool_count" example:"3"`
	MinActiveTools  int             `json:"min_active_tools" example:"3"`
	BelowFloor      bool            `json:"below_floor" example:"false"`
	Digits          []DigitStrip    `json:"digits"`
	Tools           []ToolView      `json:"tools"`
} // @name SessionView

// ToggleView is returned by the toggle endpoint.
// Accepted is false when the selection floor blocked the toggle.
type ToggleView struct {
	Accepted bool        `json:"accepted" example:"true"`
	Session  SessionView `json:"session"`
} // @name ToggleView

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}
