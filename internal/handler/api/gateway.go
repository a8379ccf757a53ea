package api

import (
	"net/http"

	"kelurahan-booking/internal/infra/notify"

	"github.com/gin-gonic/gin"
)

type GatewayHandler struct {
	gateway *notify.WhatsAppGateway
}

func NewGatewayHandler(gateway *notify.WhatsAppGateway) *GatewayHandler {
	return &GatewayHandler{gateway: gateway}
}

// @Summary WhatsApp gateway status
// @Description Report the message gateway connection state
// @Tags gateway
// @Produce json
// @Success 200 {object} map[string]string
// @Router /wa/status [get]
func (h *GatewayHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": string(h.gateway.Status()),
	})
}
