package handler

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/ginext"
	"github.com/wenderson1/VibraTicket/internal/domain"
	"github.com/wenderson1/VibraTicket/internal/handler/dto"
)

// Venues

func (h *Handler) CreateVenue(c *ginext.Context) {
	var req dto.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	venue, err := h.venueService.Create(c.Request.Context(), domain.CreateVenueInput{
		Name:      req.Name,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		ZipCode:   req.ZipCode,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Capacity:  req.Capacity,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToVenueResponse(venue))
}

func (h *Handler) GetVenue(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	venue, err := h.venueService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVenueResponse(venue))
}

func (h *Handler) UpdateVenue(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	venue, err := h.venueService.Update(c.Request.Context(), id, domain.VenuePatch{
		Name:      req.Name,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		ZipCode:   req.ZipCode,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Capacity:  req.Capacity,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVenueResponse(venue))
}

func (h *Handler) DeleteVenue(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.venueService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Affiliates

func (h *Handler) CreateAffiliate(c *ginext.Context) {
	var req dto.CreateAffiliateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	rate := decimal.Zero
	if req.DefaultCommissionRate != "" {
		var err error
		rate, err = decimal.NewFromString(req.DefaultCommissionRate)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid default_commission_rate"})
			return
		}
	}

	affiliate, err := h.affiliateService.Create(c.Request.Context(), domain.CreateAffiliateInput{
		Name:                  req.Name,
		FullName:              req.FullName,
		Document:              req.Document,
		Email:                 req.Email,
		Phone:                 req.Phone,
		BankName:              req.BankName,
		BankAccount:           req.BankAccount,
		BankBranch:            req.BankBranch,
		DefaultCommissionRate: rate,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAffiliateResponse(affiliate))
}

func (h *Handler) GetAffiliate(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	affiliate, err := h.affiliateService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAffiliateResponse(affiliate))
}

func (h *Handler) GetAffiliateByDocument(c *ginext.Context) {
	document := c.Param("document")
	if document == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid document"})
		return
	}

	affiliate, err := h.affiliateService.GetActiveByDocument(c.Request.Context(), document)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAffiliateResponse(affiliate))
}

func (h *Handler) UpdateAffiliate(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateAffiliateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	patch := domain.AffiliatePatch{
		Name:        req.Name,
		FullName:    req.FullName,
		Document:    req.Document,
		Email:       req.Email,
		Phone:       req.Phone,
		BankName:    req.BankName,
		BankAccount: req.BankAccount,
		BankBranch:  req.BankBranch,
		Active:      req.Active,
	}
	if req.DefaultCommissionRate != nil {
		rate, err := decimal.NewFromString(*req.DefaultCommissionRate)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid default_commission_rate"})
			return
		}
		patch.DefaultCommissionRate = &rate
	}

	affiliate, err := h.affiliateService.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAffiliateResponse(affiliate))
}

func (h *Handler) DeactivateAffiliate(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.affiliateService.Deactivate(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deactivated"})
}

// Customers

func (h *Handler) CreateCustomer(c *ginext.Context) {
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid birth_date format, expected YYYY-MM-DD"})
		return
	}

	customer, err := h.customerService.Create(c.Request.Context(), domain.CreateCustomerInput{
		FullName:  req.FullName,
		Name:      req.Name,
		Email:     req.Email,
		Document:  req.Document,
		Phone:     req.Phone,
		BirthDate: birthDate,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		ZipCode:   req.ZipCode,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

func (h *Handler) GetCustomer(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	customer, err := h.customerService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

func (h *Handler) GetCustomerByEmail(c *ginext.Context) {
	email := c.Param("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid email"})
		return
	}

	customer, err := h.customerService.GetActiveByEmail(c.Request.Context(), email)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

func (h *Handler) GetCustomerByDocument(c *ginext.Context) {
	document := c.Param("document")
	if document == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid document"})
		return
	}

	customer, err := h.customerService.GetActiveByDocument(c.Request.Context(), document)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

func (h *Handler) UpdateCustomer(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	patch := domain.CustomerPatch{
		FullName: req.FullName,
		Name:     req.Name,
		Email:    req.Email,
		Document: req.Document,
		Phone:    req.Phone,
		Address:  req.Address,
		City:     req.City,
		State:    req.State,
		ZipCode:  req.ZipCode,
		Active:   req.Active,
	}
	if req.BirthDate != nil {
		birthDate, err := time.Parse("2006-01-02", *req.BirthDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid birth_date format, expected YYYY-MM-DD"})
			return
		}
		patch.BirthDate = &birthDate
	}

	customer, err := h.customerService.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

func (h *Handler) DeactivateCustomer(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.customerService.Deactivate(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deactivated"})
}
