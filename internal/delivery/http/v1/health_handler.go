package v1

import (
	"net/http"

	"ai-marketing-backend/internal/delivery/http/response"
	"ai-marketing-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthUC usecase.HealthUsecase
}

func NewHealthHandler(public *gin.RouterGroup, healthUC usecase.HealthUsecase) {
	handler := &HealthHandler{healthUC: healthUC}
	public.GET("/health", handler.Health)
}

// Health godoc
// @Summary      Health Check
// @Tags         system
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response.Success(c, http.StatusOK, "System operational", h.healthUC.Check(c.Request.Context()))
}
