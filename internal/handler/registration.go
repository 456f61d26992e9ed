package handler

import (
	"net/http"

	"github.com/vivekmohanraj/EventSphere/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) RegisterForEvent(c *ginext.Context) {
	reg, err := h.registrations.Register(c.Request.Context(), c.Param("id"), callerID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRegistrationResponse(reg))
}

func (h *Handler) CancelRegistration(c *ginext.Context) {
	if err := h.registrations.Cancel(c.Request.Context(), c.Param("id"), callerID(c), callerRole(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "canceled"})
}

func (h *Handler) MarkAttended(c *ginext.Context) {
	if err := h.registrations.MarkAttended(c.Request.Context(), c.Param("id"), callerRole(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "attended"})
}

func (h *Handler) EventCapacity(c *ginext.Context) {
	snapshot, err := h.registrations.Snapshot(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCapacityResponse(snapshot))
}

func (h *Handler) MyRegistrations(c *ginext.Context) {
	regs, err := h.registrations.ListByUser(c.Request.Context(), callerID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	out := make([]dto.RegistrationResponse, 0, len(regs))
	for _, r := range regs {
		out = append(out, dto.ToRegistrationResponse(r))
	}

	c.JSON(http.StatusOK, out)
}

func (h *Handler) EventRegistrations(c *ginext.Context) {
	regs, err := h.registrations.ListByEvent(c.Request.Context(), c.Param("id"), callerRole(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	out := make([]dto.RegistrationResponse, 0, len(regs))
	for _, r := range regs {
		out = append(out, dto.ToRegistrationResponse(r))
	}

	c.JSON(http.StatusOK, out)
}
