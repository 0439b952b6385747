package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"item-checklist/internal/item"
	"item-checklist/pkg/response"
)

const (
	HealthVersion = "1.0.0"
	ServiceName   = "item-checklist"
)

func healthPayload(status string) gin.H {
	return gin.H{
		"status":  status,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, healthPayload("healthy"))
}

// readyCheck reports ready once the item store answers a one-row listing.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Failure 503 {object} response.Resp "Item store unavailable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()
	if _, err := srv.itemUC.List(ctx, item.ListItemsInput{Limit: 1}); err != nil {
		srv.l.Warnf(ctx, "readyCheck: %v", err)
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "not ready",
			Data:      healthPayload("unavailable"),
		})
		return
	}
	response.OK(c, healthPayload("ready"))
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, healthPayload("alive"))
}
