package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/ahtasham/user-directory/internal/interface/http"
)

// PostModule wires the read-only posts listing (authors joined in).
type PostModule struct {
	Handler *handlers.PostHandler
	Limiter gin.HandlerFunc
}

func NewPostModule(h *handlers.PostHandler, limiter gin.HandlerFunc) *PostModule {
	return &PostModule{Handler: h, Limiter: limiter}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	posts := rg.Group("/posts")
	if m.Limiter != nil {
		posts.Use(m.Limiter)
	}
	posts.GET("", m.Handler.List)
}
