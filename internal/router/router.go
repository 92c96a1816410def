package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	GetEventMetadata(c *ginext.Context)
	GetEventDetails(c *ginext.Context)
	ListEvents(c *ginext.Context)
	Reserve(c *ginext.Context)
	CheckIn(c *ginext.Context)
	Sweep(c *ginext.Context)
	GetReservation(c *ginext.Context)
	ListEventReservations(c *ginext.Context)
	ListParticipantReservations(c *ginext.Context)
	Deposit(c *ginext.Context)
	Withdraw(c *ginext.Context)
	GetWallet(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Event registry
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEventMetadata)
		api.GET("/events/:id/details", h.GetEventDetails)

		// Settlement
		api.POST("/events/:id/reserve", h.Reserve)
		api.POST("/events/:id/checkin", h.CheckIn)
		api.POST("/events/:id/sweep", h.Sweep)
		api.GET("/events/:id/reservations", h.ListEventReservations)
		api.GET("/events/:id/reservations/:participant", h.GetReservation)
		api.GET("/participants/:id/reservations", h.ListParticipantReservations)

		// Wallet custody
		api.POST("/wallets/:id/deposit", h.Deposit)
		api.POST("/wallets/:id/withdraw", h.Withdraw)
		api.GET("/wallets/:id", h.GetWallet)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	metricsHandler := promhttp.Handler()
	router.GET("/metrics", func(c *ginext.Context) {
		metricsHandler.ServeHTTP(c.Writer, c.Request)
	})

	return router
}
