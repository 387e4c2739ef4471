package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Khaled152/tutor-kashier-integration/internal/domain/checkout"
	"github.com/Khaled152/tutor-kashier-integration/internal/domain/gateway"
)

type CatalogHandler struct {
	webhookURL checkout.WebhookURLFunc
}

func NewCatalogHandler(webhookURL checkout.WebhookURLFunc) CatalogHandler {
	return CatalogHandler{webhookURL: webhookURL}
}

type gatewayEntry struct {
	GatewayKey  string              `json:"gateway_key"`
	Label       string              `json:"label"`
	Description string              `json:"description"`
	Token       string              `json:"token"`
	Fields      []gateway.FieldSpec `json:"fields"`
}

// List returns the registration schema for every supported variant, including
// the webhook URL merchants paste into the Kashier dashboard.
func (h *CatalogHandler) List(c *gin.Context) {
	methods := gateway.Methods()
	entries := make([]gatewayEntry, 0, len(methods))

	for _, m := range methods {
		entries = append(entries, gatewayEntry{
			GatewayKey:  m.GatewayKey,
			Label:       m.Label,
			Description: m.Description,
			Token:       m.Token,
			Fields:      m.SettingsFields(h.webhookURL(m.GatewayKey)),
		})
	}

	c.JSON(http.StatusOK, gin.H{"gateways": entries})
}
