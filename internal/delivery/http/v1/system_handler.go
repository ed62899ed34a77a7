package v1

import (
	"net/http"

	"interview-marketplace-backend/internal/delivery/http/response"
	"interview-marketplace-backend/internal/domain"
	"interview-marketplace-backend/internal/usecase"
	"interview-marketplace-backend/pkg/logger"
	"interview-marketplace-backend/pkg/ws"

	"github.com/gin-gonic/gin"
)

type SystemHandler struct {
	healthUC usecase.HealthUsecase
	hub      *ws.Hub
}

func NewSystemHandler(public, protected *gin.RouterGroup, healthUC usecase.HealthUsecase, hub *ws.Hub) {
	handler := &SystemHandler{healthUC: healthUC, hub: hub}

	public.GET("/health", handler.Health)
	protected.GET("/ws", handler.Realtime)
}

// Health godoc
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  response.Response{data=map[string]string}
// @Failure      503  {object}  response.Response
// @Router       /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	if h.healthUC == nil {
		response.Success(c, http.StatusOK, "System operational", nil)
		return
	}

	status, healthy := h.healthUC.Check(c.Request.Context())
	if !healthy {
		response.Error(c, http.StatusServiceUnavailable, "System degraded", status)
		return
	}

	response.Success(c, http.StatusOK, "System operational", status)
}

// Realtime godoc
// @Summary      Realtime notifications
// @Description  Upgrades to a WebSocket that receives interview and feedback events for the caller. Browsers pass the token as ?access_token=.
// @Tags         system
// @Success      101
// @Failure      401  {object}  response.Response
// @Router       /ws [get]
// @Security     BearerAuth
func (h *SystemHandler) Realtime(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	if err := h.hub.Serve(c.Writer, c.Request, userID); err != nil {
		logger.Log.Warn("websocket upgrade failed", "user_id", userID, "error", err)
		// The upgrader writes its own failure response.
		if !c.Writer.Written() {
			response.Error(c, http.StatusServiceUnavailable, "Realtime channel unavailable", nil)
		}
	}
}
