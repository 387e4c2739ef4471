// Package rest wires the HTTP surface: checkout redirects, webhook intake and
// the gateway catalog.
package rest

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Khaled152/tutor-kashier-integration/internal/controller/rest/handlers"
)

type Router struct {
	checkout handlers.CheckoutHandler
	webhook  handlers.WebhookHandler
	catalog  handlers.CatalogHandler

	// hostAPIRoot mirrors the host's REST namespace so webhook URLs registered
	// with Kashier keep working unchanged, e.g. "tutor/v1".
	hostAPIRoot string
}

func NewRouter(checkout handlers.CheckoutHandler, webhook handlers.WebhookHandler, catalog handlers.CatalogHandler, hostAPIRoot string) *Router {
	return &Router{
		checkout:    checkout,
		webhook:     webhook,
		catalog:     catalog,
		hostAPIRoot: strings.Trim(hostAPIRoot, "/"),
	}
}

func (r *Router) SetUp(engine *gin.Engine) {
	engine.POST("/checkout/:gateway/pay", r.checkout.Pay)
	engine.POST("/checkout/:gateway/renew/:order_id", r.checkout.Renew)

	engine.GET("/gateways", r.catalog.List)

	// Kashier calls the same endpoint for server pushes and browser returns.
	api := engine.Group("/" + r.hostAPIRoot)
	api.GET("/ecommerce-webhook/:gateway", r.webhook.Receive)
	api.POST("/ecommerce-webhook/:gateway", r.webhook.Receive)
}
