package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ahtasham/user-directory/internal/application"
	"github.com/ahtasham/user-directory/pkg/response"
)

// PostHandler exposes the read-only posts listing with authors joined in.
type PostHandler struct {
	Svc    *application.PostService
	Logger *logrus.Logger
}

func NewPostHandler(svc *application.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Svc: svc, Logger: logger}
}

func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.Svc.List(c.Request.Context())
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("Error fetching posts")
		}
		response.FailDetail(c, http.StatusInternalServerError, "Error fetching posts", err)
		return
	}
	response.SuccessCount(c, http.StatusOK, posts, len(posts))
}
