package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/ahtasham/user-directory/internal/interface/http"
)

// HealthModule exposes a liveness probe that checks store connectivity.
type HealthModule struct {
	Handler *handlers.HealthHandler
}

func NewHealthModule(h *handlers.HealthHandler) *HealthModule {
	return &HealthModule{Handler: h}
}

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/health", m.Handler.Check)
}
