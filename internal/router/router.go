package router

import (
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Health(c *ginext.Context)

	RegisterUser(c *ginext.Context)
	Login(c *ginext.Context)

	CreateEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	GetEvent(c *ginext.Context)
	GetEventDetails(c *ginext.Context)
	CancelEvent(c *ginext.Context)
	PostponeEvent(c *ginext.Context)
	ReopenEvent(c *ginext.Context)

	RegisterForEvent(c *ginext.Context)
	CancelRegistration(c *ginext.Context)
	MarkAttended(c *ginext.Context)
	EventCapacity(c *ginext.Context)
	MyRegistrations(c *ginext.Context)
	EventRegistrations(c *ginext.Context)

	InitiatePayment(c *ginext.Context)
	ConfirmPayment(c *ginext.Context)
	FailPayment(c *ginext.Context)
	ListPayments(c *ginext.Context)

	ListVenues(c *ginext.Context)
	QuoteVenue(c *ginext.Context)
}

func InitRouter(mode string, h Handler, auth, optionalAuth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	router.GET("/health", h.Health)

	api := router.Group("/api")
	{
		api.POST("/auth/register", h.RegisterUser)
		api.POST("/auth/login", h.Login)

		// Public reads. Listing is role-scoped, so the caller identity is
		// picked up when a token is present.
		public := api.Group("")
		public.Use(optionalAuth)
		{
			public.GET("/events", h.ListEvents)
			public.GET("/events/:id", h.GetEvent)
			public.GET("/events/:id/capacity", h.EventCapacity)
			public.GET("/venues", h.ListVenues)
			public.GET("/venues/:id/quote", h.QuoteVenue)
		}

		protected := api.Group("")
		protected.Use(auth)
		{
			protected.POST("/events", h.CreateEvent)
			protected.GET("/events/:id/details", h.GetEventDetails)
			protected.POST("/events/:id/cancel", h.CancelEvent)
			protected.POST("/events/:id/postpone", h.PostponeEvent)
			protected.POST("/events/:id/reopen", h.ReopenEvent)

			protected.POST("/events/:id/register", h.RegisterForEvent)
			protected.GET("/events/:id/registrations", h.EventRegistrations)
			protected.POST("/registrations/:id/cancel", h.CancelRegistration)
			protected.POST("/registrations/:id/attended", h.MarkAttended)
			protected.GET("/me/registrations", h.MyRegistrations)

			protected.POST("/events/:id/payments", h.InitiatePayment)
			protected.POST("/payments/:id/confirm", h.ConfirmPayment)
			protected.POST("/payments/:id/fail", h.FailPayment)
			protected.GET("/payments", h.ListPayments)
		}
	}

	return router
}
