package router

import "github.com/gin-gonic/gin"

// Module is one feature area of the API (users, posts, health) that knows
// how to register its own routes on the shared /api group.
type Module interface {
	Register(rg *gin.RouterGroup)
}
