package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/savings-service/internal/domain/dto"
	"github.com/guttosm/savings-service/internal/domain/model"
	"github.com/guttosm/savings-service/internal/logger"
	"github.com/guttosm/savings-service/internal/middleware"
	"github.com/guttosm/savings-service/internal/service"
	"github.com/guttosm/savings-service/internal/view"
)

// SessionCookie carries the visitor's session id between page requests.
const SessionCookie = "calc_session"

// PageHandler serves the server-rendered calculator page and its form posts.
type PageHandler struct {
	sessions     service.SessionService
	presenter    presenter
	cookieMaxAge time.Duration
	secureCookie bool
}

// PageOption configures a PageHandler.
type PageOption func(*PageHandler)

// WithCookieMaxAge sets the session cookie lifetime, normally the session TTL.
func WithCookieMaxAge(d time.Duration) PageOption {
	return func(h *PageHandler) {
		h.cookieMaxAge = d
	}
}

// WithSecureCookie marks the session cookie Secure.
func WithSecureCookie(secure bool) PageOption {
	return func(h *PageHandler) {
		h.secureCookie = secure
	}
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(estimator service.SavingsEstimator, sessions service.SessionService, opts ...PageOption) *PageHandler {
	h := &PageHandler{
		sessions:     sessions,
		presenter:    presenter{estimator: estimator},
		cookieMaxAge: 30 * time.Minute,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Show handles GET /. A missing or stale cookie starts a new session.
// The cookie is re-sent on every successful request so it expires with the
// session's idle TTL rather than at a fixed time after the first visit.
func (h *PageHandler) Show(c *gin.Context) {
	session, err := h.currentSession(c)
	if errors.Is(err, service.ErrSessionNotFound) {
		session, err = h.sessions.Create(c.Request.Context())
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	h.setCookie(c, session.ID)

	c.HTML(http.StatusOK, view.PageTemplate, view.NewPage(h.presenter.sessionView(session)))
}

// ToggleTool handles POST /tools/:tool_id/toggle and redirects back to the page.
func (h *PageHandler) ToggleTool(c *gin.Context) {
	toolID, err := parseToolID(c)
	if err != nil {
		c.String(http.StatusBadRequest, dto.MsgInvalidToolID)
		return
	}

	id, ok := h.sessionID(c)
	if !ok {
		h.redirect(c)
		return
	}

	_, outcome, err := h.sessions.ToggleTool(c.Request.Context(), id, toolID)
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		// stale cookie, Show starts a new session
	case errors.Is(err, service.ErrToolNotFound):
		c.String(http.StatusNotFound, dto.MsgToolNotFound)
		return
	case err != nil:
		h.fail(c, err)
		return
	default:
		h.setCookie(c, id)
		if !outcome.Accepted {
			log := logger.Logger()
			log.Debug().
				Str("request_id", middleware.GetRequestID(c)).
				Str("session_id", id).
				Int("tool_id", toolID).
				Int("active_tool_count", outcome.ActiveCount).
				Msg("Toggle refused by selection floor")
		}
	}
	h.redirect(c)
}

// SetHeadcount handles POST /headcount and redirects back to the page.
func (h *PageHandler) SetHeadcount(c *gin.Context) {
	headcount, err := strconv.Atoi(c.PostForm("headcount"))
	if err != nil {
		c.String(http.StatusBadRequest, dto.MsgInvalidRequestBody)
		return
	}

	id, ok := h.sessionID(c)
	if !ok {
		h.redirect(c)
		return
	}

	_, err = h.sessions.SetHeadcount(c.Request.Context(), id, headcount)
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		// stale cookie, Show starts a new session
	case err != nil:
		h.fail(c, err)
		return
	default:
		h.setCookie(c, id)
	}
	h.redirect(c)
}

func (h *PageHandler) currentSession(c *gin.Context) (model.Session, error) {
	id, ok := h.sessionID(c)
	if !ok {
		return model.Session{}, service.ErrSessionNotFound
	}
	return h.sessions.Get(c.Request.Context(), id)
}

func (h *PageHandler) sessionID(c *gin.Context) (string, bool) {
	id, err := c.Cookie(SessionCookie)
	if err != nil || id == "" {
		return "", false
	}
	return id, true
}

func (h *PageHandler) setCookie(c *gin.Context, id string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, id, int(h.cookieMaxAge.Seconds()), "/", "", h.secureCookie, true)
}

func (h *PageHandler) redirect(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *PageHandler) fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.String(http.StatusInternalServerError, dto.MsgInternalError)
}
