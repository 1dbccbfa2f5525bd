package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandleHealth reports liveness and the resolved faucet mode.
func (h *Handler) HandleHealth(c *gin.Context) {
	response := gin.H{
		"status": "ok",
		"mode":   h.cfg.Mode().String(),
	}
	if h.gateway != nil {
		response["signer"] = h.gateway.Address()
	}
	c.JSON(http.StatusOK, response)
}
