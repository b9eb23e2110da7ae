package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	handlers "github.com/jeffleon2/draftea-checkout-gateway/internal/handlers"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Sessions *handlers.SessionHandler
	Checkout *handlers.CheckoutHandler
	Payments *handlers.PaymentHandler
	Auth     handlers.Authenticator
}

func RegisterRoutes(router *gin.Engine, h Handlers) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")

	merchant := api.Group("", handlers.RequireAPIKey(h.Auth))
	merchant.POST("/checkout/sessions", h.Sessions.CreateSession)
	merchant.GET("/checkout/sessions/:id", h.Sessions.GetSession)
	merchant.GET("/payments", h.Payments.ListPayments)
	merchant.GET("/payments/:id", h.Payments.GetPayment)

	api.POST("/payments/:id/confirm", h.Checkout.Confirm)
}
