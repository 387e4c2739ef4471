package handlers

import (
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Khaled152/tutor-kashier-integration/internal/domain/notification"
)

type WebhookHandler struct {
	service *notification.Service
}

func NewWebhookHandler(s *notification.Service) WebhookHandler {
	return WebhookHandler{service: s}
}

// Receive accepts a Kashier notification on any of its transports. The
// response always acknowledges: Kashier retries on non-2xx, and a delivery we
// could not interpret still normalized to a failed result.
func (h *WebhookHandler) Receive(c *gin.Context) {
	in := notification.Inbound{
		Query:         c.Request.URL.Query(),
		BrowserReturn: c.Request.Method == http.MethodGet,
	}

	// The raw body is read once; form deliveries are parsed from it so the
	// JSON fallback still sees the original bytes.
	body, err := io.ReadAll(c.Request.Body)
	if err == nil && len(body) > 0 {
		in.Body = body
		if isFormContentType(c.ContentType()) {
			if form, err := url.ParseQuery(string(body)); err == nil {
				in.Form = form
			}
		}
	}

	result := h.service.Handle(c.Request.Context(), c.Param("gateway"), in)

	if in.BrowserReturn && result.RedirectURL != "" {
		c.Redirect(http.StatusFound, result.RedirectURL)
		return
	}

	c.JSON(http.StatusOK, result)
}

func isFormContentType(contentType string) bool {
	return strings.HasPrefix(contentType, "application/x-www-form-urlencoded")
}
