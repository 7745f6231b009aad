package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/savings-service/internal/catalog"
	"github.com/guttosm/savings-service/internal/domain/dto"
	"github.com/guttosm/savings-service/internal/service"
)

// Handler provides the JSON API handlers for the calculator.
type Handler struct {
	catalog   *catalog.Catalog
	sessions  service.SessionService
	presenter presenter
}

// NewHandler creates a new Handler instance.
func NewHandler(cat *catalog.Catalog, estimator service.SavingsEstimator, sessions service.SessionService) *Handler {
	return &Handler{
		catalog:   cat,
		sessions:  sessions,
		presenter: presenter{estimator: estimator},
	}
}

// ListTools handles GET /api/tools requests.
//
// @Summary      List tools
// @Description  Returns the tool catalog with the default selection.
// @Tags         Calculator
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]model.Tool} "Tool catalog"
// @Router       /api/tools [get]
func (h *Handler) ListTools(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(h.catalog.Tools())
}

// Estimate handles POST /api/estimate requests.
//
// @Summary      Estimate savings
// @Description  Computes annual savings for a headcount and a number of active tools. The headcount is clamped to [1, 1000] and snapped to the slider step. Results can be negative.
// @Tags         Calculator
// @Accept       json
// @Produce      json
// @Param        request body dto.EstimateRequest true "Headcount and active tool count"
// @Success      200 {object} dto.SuccessResponse{data=dto.EstimateView} "Estimate"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      429 {object} dto.ErrorResponse "Rate limit exceeded"
// @Router       /api/estimate [post]
func (h *Handler) Estimate(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.EstimateRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, dto.MsgInvalidRequestBody, err)
		return
	}
	if err := req.Validate(h.catalog.Size()); err != nil {
		builder.Error(http.StatusBadRequest, err.Error(), err)
		return
	}

	builder.SuccessOK(h.presenter.estimateView(service.Quantize(req.Headcount), req.ActiveToolCount))
}

// CreateSession handles POST /api/sessions requests.
//
// @Summary      Create session
// @Description  Opens a calculator session with the default headcount and the catalog's default selection.
// @Tags         Sessions
// @Produce      json
// @Success      201 {object} dto.SuccessResponse{data=dto.SessionView} "Session created"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/sessions [post]
func (h *Handler) CreateSession(c *gin.Context) {
	session, err := h.sessions.Create(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	NewResponseBuilder(c).SuccessCreated(h.presenter.sessionView(session))
}

// GetSession handles GET /api/sessions/:id requests.
//
// @Summary      Get session
// @Description  Returns the session with all derived display values.
// @Tags         Sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.SessionView} "Session"
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Router       /api/sessions/{id} [get]
func (h *Handler) GetSession(c *gin.Context) {
	session, err := h.sessions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	NewResponseBuilder(c).SuccessOK(h.presenter.sessionView(session))
}

// ToggleTool handles POST /api/sessions/:id/tools/:tool_id/toggle requests.
//
// @Summary      Toggle tool
// @Description  Flips a tool in the session's selection. Unchecking is refused while 3 or fewer tools are active; the response then has accepted=false and the session is unchanged. Supports idempotency via Idempotency-Key header.
// @Tags         Sessions
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        id path string true "Session ID"
// @Param        tool_id path int true "Tool ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.ToggleView} "Toggle outcome"
// @Failure      400 {object} dto.ErrorResponse "Invalid tool id"
// @Failure      404 {object} dto.ErrorResponse "Session or tool not found"
// @Failure      409 {object} dto.ErrorResponse "Same idempotency key in progress"
// @Router       /api/sessions/{id}/tools/{tool_id}/toggle [post]
func (h *Handler) ToggleTool(c *gin.Context) {
	toolID, err := parseToolID(c)
	if err != nil {
		NewResponseBuilder(c).Error(http.StatusBadRequest, dto.MsgInvalidToolID, err)
		return
	}

	session, outcome, err := h.sessions.ToggleTool(c.Request.Context(), c.Param("id"), toolID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	NewResponseBuilder(c).SuccessOK(dto.ToggleView{
		Accepted: outcome.Accepted,
		Session:  h.presenter.sessionView(session),
	})
}

// SetHeadcount handles PUT /api/sessions/:id/headcount requests.
//
// @Summary      Set headcount
// @Description  Stores the slider value on the session. The value is clamped to [1, 1000] and snapped to the slider step.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        request body dto.HeadcountRequest true "Headcount"
// @Success      200 {object} dto.SuccessResponse{data=dto.SessionView} "Session"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Router       /api/sessions/{id}/headcount [put]
func (h *Handler) SetHeadcount(c *gin.Context) {
	req, err := BuildRequest[dto.HeadcountRequest](c)
	if err != nil {
		NewResponseBuilder(c).Error(http.StatusBadRequest, dto.MsgInvalidRequestBody, err)
		return
	}

	session, err := h.sessions.SetHeadcount(c.Request.Context(), c.Param("id"), req.Headcount)
	if err != nil {
		h.writeError(c, err)
		return
	}
	NewResponseBuilder(c).SuccessOK(h.presenter.sessionView(session))
}

// DeleteSession handles DELETE /api/sessions/:id requests.
//
// @Summary      Delete session
// @Description  Tears the session down.
// @Tags         Sessions
// @Param        id path string true "Session ID"
// @Success      204 "Session deleted"
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Router       /api/sessions/{id} [delete]
func (h *Handler) DeleteSession(c *gin.Context) {
	if err := h.sessions.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// writeError maps service errors to the error envelope.
func (h *Handler) writeError(c *gin.Context, err error) {
	builder := NewResponseBuilder(c)
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		builder.Error(http.StatusNotFound, dto.MsgSessionNotFound, err)
	case errors.Is(err, service.ErrToolNotFound):
		builder.Error(http.StatusNotFound, dto.MsgToolNotFound, err)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		builder.Error(http.StatusGatewayTimeout, dto.MsgRequestTimeout, err)
	default:
		builder.Error(http.StatusInternalServerError, dto.MsgInternalError, err)
	}
}

func parseToolID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("tool_id"))
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errors.New("tool_id must be positive")
	}
	return id, nil
}
