package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateHost(c *ginext.Context)
	GetHost(c *ginext.Context)
	UpdateHostConfig(c *ginext.Context)
	CreateRule(c *ginext.Context)
	ListRules(c *ginext.Context)
	UpdateRule(c *ginext.Context)
	DeleteRule(c *ginext.Context)
	GetSlots(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	ListHostBookings(c *ginext.Context)
	GetBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	RescheduleBooking(c *ginext.Context)
}

// CORS returns the policy for the booking UI. An empty origin list allows any origin.
func CORS(allowedOrigins []string) ginext.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID", "Retry-After"},
		MaxAge:        12 * time.Hour,
	}
	if len(allowedOrigins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowedOrigins
	}
	return ginext.HandlerFunc(cors.New(cfg))
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Hosts
		api.POST("/hosts", h.CreateHost)
		api.GET("/hosts/:id", h.GetHost)
		api.PUT("/hosts/:id/config", h.UpdateHostConfig)

		// Availability rules
		api.GET("/hosts/:id/rules", h.ListRules)
		api.POST("/hosts/:id/rules", h.CreateRule)
		api.PUT("/hosts/:id/rules/:rule_id", h.UpdateRule)
		api.DELETE("/hosts/:id/rules/:rule_id", h.DeleteRule)

		// Slots and bookings
		api.GET("/hosts/:id/slots", h.GetSlots)
		api.POST("/hosts/:id/bookings", h.CreateBooking)
		api.GET("/hosts/:id/bookings", h.ListHostBookings)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.POST("/bookings/:id/reschedule", h.RescheduleBooking)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
