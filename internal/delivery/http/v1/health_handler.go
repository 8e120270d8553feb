package v1

import (
	"net/http"

	"edu-finder-backend/internal/delivery/http/response"
	"edu-finder-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthUC usecase.HealthUsecase
}

func NewHealthHandler(r *gin.RouterGroup, healthUC usecase.HealthUsecase) {
	handler := &HealthHandler{healthUC: healthUC}
	r.GET("/health", handler.Health)
}

// Health godoc
// @Summary      Health check
// @Description  Reports whether the slot store is reachable
// @Tags         system
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	status, ok := h.healthUC.Check(c.Request.Context())
	if !ok {
		response.Error(c, http.StatusServiceUnavailable, "Storage unavailable", status)
		return
	}
	response.Success(c, http.StatusOK, "System operational", status)
}
