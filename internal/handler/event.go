package handler

import (
	"net/http"
	"time"

	"github.com/vivekmohanraj/EventSphere/internal/domain"
	"github.com/vivekmohanraj/EventSphere/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	eventTime, err := time.Parse(time.RFC3339, req.EventTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "event_time must be RFC3339"})
		return
	}

	event, err := h.events.Create(c.Request.Context(), callerID(c), callerRole(c), domain.CreateEventInput{
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
		Audience:    req.Audience,
		IsPaid:      req.IsPaid,
		Price:       req.Price,
		EventTime:   eventTime,
		Capacity:    req.Capacity,
		VenueID:     req.VenueID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.events.List(c.Request.Context(), callerRole(c), callerID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	out := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, out)
}

func (h *Handler) GetEvent(c *ginext.Context) {
	event, err := h.events.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) GetEventDetails(c *ginext.Context) {
	details, err := h.events.Details(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) CancelEvent(c *ginext.Context) {
	h.transitionEvent(c, domain.EventStatusCanceled)
}

func (h *Handler) PostponeEvent(c *ginext.Context) {
	h.transitionEvent(c, domain.EventStatusPostponed)
}

// ReopenEvent moves a postponed event back to upcoming.
func (h *Handler) ReopenEvent(c *ginext.Context) {
	h.transitionEvent(c, domain.EventStatusUpcoming)
}

func (h *Handler) transitionEvent(c *ginext.Context, target domain.EventStatus) {
	event, err := h.events.Transition(c.Request.Context(), callerID(c), callerRole(c), c.Param("id"), target)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}
