package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/ahtasham/user-directory/pkg/response"
)

type HealthHandler struct {
	Mongo *mongo.Client
	Env   string
}

func NewHealthHandler(client *mongo.Client, env string) *HealthHandler {
	return &HealthHandler{Mongo: client, Env: env}
}

func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := h.Mongo.Ping(ctx, readpref.Primary()); err != nil {
		response.FailDetail(c, http.StatusServiceUnavailable, "Database unreachable", err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"status": "ok", "env": h.Env}, "")
}
