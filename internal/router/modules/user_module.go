package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/ahtasham/user-directory/internal/interface/http"
)

// UserModule wires the user CRUD routes:
// GET    /api/users          list, paginated/filtered/sorted
// GET    /api/users/active   active users only
// GET    /api/users/:id      fetch one
// POST   /api/users          create
// PUT    /api/users/:id      update
// DELETE /api/users/:id      delete
type UserModule struct {
	Handler *handlers.UserHandler
	Limiter gin.HandlerFunc
}

func NewUserModule(h *handlers.UserHandler, limiter gin.HandlerFunc) *UserModule {
	return &UserModule{Handler: h, Limiter: limiter}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	if m.Limiter != nil {
		users.Use(m.Limiter)
	}
	users.GET("", m.Handler.List)
	users.GET("/active", m.Handler.ListActive)
	users.GET("/:id", m.Handler.GetByID)
	users.POST("", m.Handler.Create)
	users.PUT("/:id", m.Handler.Update)
	users.DELETE("/:id", m.Handler.Delete)
}
