package handler

import (
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/ginext"
	"github.com/wenderson1/VibraTicket/internal/domain"
	"github.com/wenderson1/VibraTicket/internal/handler/dto"
)

// Orders

func (h *Handler) CreateOrder(c *ginext.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	order, err := h.orderService.Create(c.Request.Context(), domain.CreateOrderInput{
		CustomerID: req.CustomerID,
		TicketIDs:  req.TicketIDs,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

func (h *Handler) GetOrder(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	order, err := h.orderService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

func (h *Handler) UpdateOrder(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	patch := domain.OrderPatch{Active: req.Active}
	if req.Status != nil {
		status := domain.OrderStatus(*req.Status)
		patch.Status = &status
	}

	order, err := h.orderService.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// ListOrderPayments returns every payment attempt against the order, newest
// first.
func (h *Handler) ListOrderPayments(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	payments, err := h.paymentService.ListByOrder(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		resp = append(resp, dto.ToPaymentResponse(p))
	}

	c.JSON(http.StatusOK, resp)
}

// Payments

func (h *Handler) CreatePayment(c *ginext.Context) {
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid amount"})
		return
	}

	payment, err := h.paymentService.Create(c.Request.Context(), domain.CreatePaymentInput{
		OrderID:         req.OrderID,
		Amount:          amount,
		Method:          domain.PaymentMethod(req.Method),
		TransactionID:   req.TransactionID,
		GatewayResponse: req.GatewayResponse,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

func (h *Handler) GetPayment(c *ginext.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	payment, err := h.paymentService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

func (h *Handler) SettlePayment(c *ginext.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req dto.SettlePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	payment, err := h.paymentService.Settle(
		c.Request.Context(),
		id,
		domain.PaymentStatus(req.Status),
		req.TransactionID,
		req.GatewayResponse,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}
