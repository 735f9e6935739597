package httpapi

import (
	"fmt"
	"net/http"

	"github.com/bnema/remote-assist-console/internal/adapters/events"
	"github.com/bnema/remote-assist-console/internal/application"
	"github.com/bnema/remote-assist-console/internal/domain"
	"github.com/gin-gonic/gin"
)

type handlers struct {
	service *application.Service
	events  *events.Recorder
}

type actionResponse struct {
	Outcome application.Outcome  `json:"outcome"`
	State   application.Snapshot `json:"state"`
	Error   string               `json:"error,omitempty"`
}

type modeRequest struct {
	Mode domain.Mode `json:"mode"`
}

type pointRequest struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

type locationRequest struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

type nudgeRequest struct {
	Action domain.NudgeAction `json:"action"`
}

type scopeRequest struct {
	Scope domain.Scope `json:"scope"`
}

type blockerActionRequest struct {
	Action domain.BlockerAction `json:"action"`
}

type reasonRequest struct {
	Reason string `json:"reason"`
}

func registerRoutes(router *gin.Engine, h *handlers) {
	api := router.Group("/api")

	api.GET("/state", h.state)
	api.GET("/tickets", h.tickets)
	api.GET("/readiness", h.readiness)
	api.GET("/events", h.recentEvents)

	api.POST("/tickets/:id/select", h.ticketAction(application.ActionSelectTicket))
	api.POST("/tickets/:id/take", h.ticketAction(application.ActionTakeTask))
	api.POST("/tickets/:id/confirm-take", h.ticketAction(application.ActionConfirmTake))
	api.POST("/tickets/:id/release", h.ticketAction(application.ActionReleaseTask))
	api.POST("/confirmation/cancel", h.simple(application.ActionCancelTake))

	api.POST("/mode", h.selectMode)
	api.POST("/path", h.addWaypoint)
	api.DELETE("/path", h.simple(application.ActionClearPath))
	api.POST("/nudge", h.selectNudge)
	api.POST("/pickup", h.location(application.ActionSetPickup))
	api.DELETE("/pickup", h.simple(application.ActionClearPickup))
	api.POST("/quick/:action", h.quick)

	api.POST("/scope", h.setScope)
	api.POST("/fleet/action", h.selectBlocker)
	api.DELETE("/fleet/action", h.simple(application.ActionClearBlocker))
	api.POST("/fleet/blocker", h.location(application.ActionPlaceBlocker))

	api.POST("/reason", h.setReason)
	api.DELETE("/reason", h.simple(application.ActionClearReason))

	api.POST("/dispatch", h.simple(application.ActionDispatch))
	api.POST("/fleet/confirm", h.simple(application.ActionConfirmFleet))
	api.POST("/fleet/decline", h.simple(application.ActionDeclineFleet))
}

func (h *handlers) state(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Snapshot())
}

func (h *handlers) tickets(c *gin.Context) {
	snap := h.service.Snapshot()
	c.JSON(http.StatusOK, gin.H{"tickets": snap.Tickets, "queue": snap.Queue})
}

func (h *handlers) readiness(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Readiness())
}

func (h *handlers) recentEvents(c *gin.Context) {
	if h.events == nil {
		c.JSON(http.StatusOK, gin.H{"events": []domain.Event{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": h.events.Recent()})
}

func (h *handlers) ticketAction(kind application.ActionKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.execute(c, application.Action{Kind: kind, TicketID: domain.TicketID(c.Param("id"))})
	}
}

func (h *handlers) simple(kind application.ActionKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.execute(c, application.Action{Kind: kind})
	}
}

func (h *handlers) selectMode(c *gin.Context) {
	var req modeRequest
	if !bind(c, &req) {
		return
	}
	h.execute(c, application.Action{Kind: application.ActionSelectMode, Mode: req.Mode})
}

func (h *handlers) addWaypoint(c *gin.Context) {
	var req pointRequest
	if !bind(c, &req) {
		return
	}
	if req.X == nil || req.Y == nil {
		abort(c, fmt.Errorf("%w: x and y are required", errBadRequest))
		return
	}
	h.execute(c, application.Action{Kind: application.ActionAddWaypoint, Point: domain.Point{X: *req.X, Y: *req.Y}})
}

func (h *handlers) selectNudge(c *gin.Context) {
	var req nudgeRequest
	if !bind(c, &req) {
		return
	}
	h.execute(c, application.Action{Kind: application.ActionSelectNudge, Nudge: req.Action})
}

func (h *handlers) location(kind application.ActionKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req locationRequest
		if !bind(c, &req) {
			return
		}
		if req.Lat == nil || req.Lng == nil {
			abort(c, fmt.Errorf("%w: lat and lng are required", errBadRequest))
			return
		}
		h.execute(c, application.Action{Kind: kind, Location: domain.LatLng{Lat: *req.Lat, Lng: *req.Lng}})
	}
}

func (h *handlers) quick(c *gin.Context) {
	var kind application.ActionKind
	switch c.Param("action") {
	case "hold":
		kind = application.ActionToggleHold
	case "hazards":
		kind = application.ActionToggleHazards
	case "honk":
		kind = application.ActionHonk
	case "flash":
		kind = application.ActionFlashLights
	default:
		abort(c, fmt.Errorf("%w: unknown quick action %q", errBadRequest, c.Param("action")))
		return
	}
	h.execute(c, application.Action{Kind: kind})
}

func (h *handlers) setScope(c *gin.Context) {
	var req scopeRequest
	if !bind(c, &req) {
		return
	}
	h.execute(c, application.Action{Kind: application.ActionSetScope, Scope: req.Scope})
}

func (h *handlers) selectBlocker(c *gin.Context) {
	var req blockerActionRequest
	if !bind(c, &req) {
		return
	}
	h.execute(c, application.Action{Kind: application.ActionSelectBlocker, Blocker: req.Action})
}

func (h *handlers) setReason(c *gin.Context) {
	var req reasonRequest
	if !bind(c, &req) {
		return
	}
	reason, err := domain.ParseIncidentReason(req.Reason)
	if err != nil {
		abort(c, err)
		return
	}
	h.execute(c, application.Action{Kind: application.ActionSetReason, Reason: reason})
}

// execute runs the action and answers with the outcome and the new state.
// A command that was issued but could not be forwarded is reported as 502
// with the outcome, since the console already counts it as sent.
func (h *handlers) execute(c *gin.Context, action application.Action) {
	outcome, err := h.service.Execute(c.Request.Context(), action)
	if err != nil {
		if outcome.Command != nil {
			c.JSON(http.StatusBadGateway, actionResponse{
				Outcome: outcome,
				State:   h.service.Snapshot(),
				Error:   err.Error(),
			})
			return
		}
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, actionResponse{Outcome: outcome, State: h.service.Snapshot()})
}

func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		abort(c, fmt.Errorf("%w: %v", errBadRequest, err))
		return false
	}
	return true
}

func abort(c *gin.Context, err error) {
	c.AbortWithStatusJSON(statusFor(err), gin.H{"error": err.Error()})
}
