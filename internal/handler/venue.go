package handler

import (
	"net/http"
	"strconv"

	"github.com/vivekmohanraj/EventSphere/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) ListVenues(c *ginext.Context) {
	venues, err := h.venues.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	out := make([]dto.VenueResponse, 0, len(venues))
	for _, v := range venues {
		out = append(out, dto.ToVenueResponse(v))
	}

	c.JSON(http.StatusOK, out)
}

func (h *Handler) QuoteVenue(c *ginext.Context) {
	// Default matches the standard booking block used by payment initiation.
	hours := 3
	if raw := c.Query("hours"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "hours must be a positive integer"})
			return
		}
		hours = parsed
	}

	venueID := c.Param("id")
	amount, err := h.venues.Quote(c.Request.Context(), venueID, hours)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuoteResponse{
		VenueID: venueID,
		Hours:   hours,
		Amount:  amount,
	})
}
