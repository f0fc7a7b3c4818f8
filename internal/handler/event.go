package handler

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/ginext"
	"github.com/wenderson1/VibraTicket/internal/domain"
	"github.com/wenderson1/VibraTicket/internal/handler/dto"
)

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startDate, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_date format, expected RFC3339"})
		return
	}
	endDate, err := time.Parse(time.RFC3339, req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_date format, expected RFC3339"})
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), domain.CreateEventInput{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   startDate,
		EndDate:     endDate,
		BannerURL:   req.BannerURL,
		MinimumAge:  req.MinimumAge,
		VenueID:     req.VenueID,
		AffiliateID: req.AffiliateID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	details, err := h.eventService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

// GetEventByTicket resolves a ticket id to its event, venue and affiliate in
// one call, for gate staff scanning tickets.
func (h *Handler) GetEventByTicket(c *ginext.Context) {
	ticketID, ok := pathUUID(c, "ticketID")
	if !ok {
		return
	}

	details, err := h.eventService.GetDetailsByTicketID(c.Request.Context(), ticketID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	patch := domain.EventPatch{
		Name:        req.Name,
		Description: req.Description,
		BannerURL:   req.BannerURL,
		MinimumAge:  req.MinimumAge,
		VenueID:     req.VenueID,
		AffiliateID: req.AffiliateID,
	}
	if req.StartDate != nil {
		startDate, err := time.Parse(time.RFC3339, *req.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_date format, expected RFC3339"})
			return
		}
		patch.StartDate = &startDate
	}
	if req.EndDate != nil {
		endDate, err := time.Parse(time.RFC3339, *req.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_date format, expected RFC3339"})
			return
		}
		patch.EndDate = &endDate
	}
	if req.Status != nil {
		status := domain.EventStatus(*req.Status)
		patch.Status = &status
	}

	event, err := h.eventService.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Sectors

func (h *Handler) CreateSector(c *ginext.Context) {
	var req dto.CreateSectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid price"})
		return
	}

	sector, err := h.sectorService.Create(c.Request.Context(), domain.CreateSectorInput{
		Name:             req.Name,
		Price:            price,
		Capacity:         req.Capacity,
		AvailableTickets: req.AvailableTickets,
		EventID:          req.EventID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSectorResponse(sector))
}

func (h *Handler) GetSector(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	sector, err := h.sectorService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSectorResponse(sector))
}

func (h *Handler) UpdateSector(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateSectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	patch := domain.SectorPatch{
		Name:             req.Name,
		Capacity:         req.Capacity,
		AvailableTickets: req.AvailableTickets,
	}
	if req.Price != nil {
		price, err := decimal.NewFromString(*req.Price)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid price"})
			return
		}
		patch.Price = &price
	}

	sector, err := h.sectorService.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSectorResponse(sector))
}

// Tickets

func (h *Handler) IssueTickets(c *ginext.Context) {
	eventID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.IssueTicketsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	tickets, err := h.ticketService.Issue(c.Request.Context(), domain.IssueTicketsInput{
		EventID:  eventID,
		SectorID: req.SectorID,
		Quantity: req.Quantity,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		resp = append(resp, dto.ToTicketResponse(t))
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) GetTicket(c *ginext.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	ticket, err := h.ticketService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTicketResponse(ticket))
}

func (h *Handler) UseTicket(c *ginext.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	ticket, err := h.ticketService.Use(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTicketResponse(ticket))
}
