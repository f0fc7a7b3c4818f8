package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateVenue(c *ginext.Context)
	GetVenue(c *ginext.Context)
	UpdateVenue(c *ginext.Context)
	DeleteVenue(c *ginext.Context)

	CreateAffiliate(c *ginext.Context)
	GetAffiliate(c *ginext.Context)
	GetAffiliateByDocument(c *ginext.Context)
	UpdateAffiliate(c *ginext.Context)
	DeactivateAffiliate(c *ginext.Context)

	CreateCustomer(c *ginext.Context)
	GetCustomer(c *ginext.Context)
	GetCustomerByEmail(c *ginext.Context)
	GetCustomerByDocument(c *ginext.Context)
	UpdateCustomer(c *ginext.Context)
	DeactivateCustomer(c *ginext.Context)

	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	GetEventByTicket(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	IssueTickets(c *ginext.Context)

	CreateSector(c *ginext.Context)
	GetSector(c *ginext.Context)
	UpdateSector(c *ginext.Context)

	GetTicket(c *ginext.Context)
	UseTicket(c *ginext.Context)

	CreateOrder(c *ginext.Context)
	GetOrder(c *ginext.Context)
	UpdateOrder(c *ginext.Context)
	ListOrderPayments(c *ginext.Context)

	CreatePayment(c *ginext.Context)
	GetPayment(c *ginext.Context)
	SettlePayment(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Venues
		api.POST("/venues", h.CreateVenue)
		api.GET("/venues/:id", h.GetVenue)
		api.PATCH("/venues/:id", h.UpdateVenue)
		api.DELETE("/venues/:id", h.DeleteVenue)

		// Affiliates
		api.POST("/affiliates", h.CreateAffiliate)
		api.GET("/affiliates/:id", h.GetAffiliate)
		api.GET("/affiliates/document/:document", h.GetAffiliateByDocument)
		api.PATCH("/affiliates/:id", h.UpdateAffiliate)
		api.DELETE("/affiliates/:id", h.DeactivateAffiliate)

		// Customers
		api.POST("/customers", h.CreateCustomer)
		api.GET("/customers/:id", h.GetCustomer)
		api.GET("/customers/email/:email", h.GetCustomerByEmail)
		api.GET("/customers/document/:document", h.GetCustomerByDocument)
		api.PATCH("/customers/:id", h.UpdateCustomer)
		api.DELETE("/customers/:id", h.DeactivateCustomer)

		// Events
		api.POST("/events", h.CreateEvent)
		api.GET("/events/:id", h.GetEvent)
		api.GET("/events/by-ticket/:ticketID", h.GetEventByTicket)
		api.PATCH("/events/:id", h.UpdateEvent)
		api.DELETE("/events/:id", h.DeleteEvent)
		api.POST("/events/:id/tickets", h.IssueTickets)

		// Sectors
		api.POST("/sectors", h.CreateSector)
		api.GET("/sectors/:id", h.GetSector)
		api.PATCH("/sectors/:id", h.UpdateSector)

		// Tickets
		api.GET("/tickets/:id", h.GetTicket)
		api.POST("/tickets/:id/use", h.UseTicket)

		// Orders
		api.POST("/orders", h.CreateOrder)
		api.GET("/orders/:id", h.GetOrder)
		api.PATCH("/orders/:id", h.UpdateOrder)
		api.GET("/orders/:id/payments", h.ListOrderPayments)

		// Payments
		api.POST("/payments", h.CreatePayment)
		api.GET("/payments/:id", h.GetPayment)
		api.POST("/payments/:id/settle", h.SettlePayment)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
