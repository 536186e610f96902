package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ahtasham/user-directory/internal/application"
	"github.com/ahtasham/user-directory/internal/domain/repository"
	"github.com/ahtasham/user-directory/pkg/response"
)

type UserHandler struct {
	Svc         *application.Service
	Logger      *logrus.Logger
	MaxPageSize int
}

func NewUserHandler(svc *application.Service, logger *logrus.Logger, maxPageSize int) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger, MaxPageSize: maxPageSize}
}

type createUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Age       *int   `json:"age"`
	Role      string `json:"role"`
}

type updateUserRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Age       *int    `json:"age"`
	Role      *string `json:"role"`
	IsActive  *bool   `json:"isActive"`
}

// parseListParams parses page/limit/sort/order/search. Non-numeric or
// non-positive page/limit are rejected rather than silently coerced; limit
// is clamped to the configured cap.
func parseListParams(c *gin.Context, maxLimit int) (application.ListParams, error) {
	p := application.ListParams{
		Page:   application.DefaultPage,
		Limit:  application.DefaultLimit,
		Sort:   c.DefaultQuery("sort", application.DefaultSort),
		Order:  c.DefaultQuery("order", application.DefaultOrder),
		Search: c.Query("search"),
	}
	if v := c.Query("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return p, fmt.Errorf("invalid query parameter page: %q", v)
		}
		p.Page = n
	}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return p, fmt.Errorf("invalid query parameter limit: %q", v)
		}
		p.Limit = n
	}
	if maxLimit > 0 && p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	return p, nil
}

// fail translates the error taxonomy into a status code and envelope.
// Branching is on error identity, never on message text.
func (h *UserHandler) fail(c *gin.Context, err error, fallback string) {
	var verr *application.ValidationError
	switch {
	case errors.As(err, &verr):
		response.FailValidation(c, http.StatusBadRequest, "Validation error", verr.Messages)
	case errors.Is(err, repository.ErrDuplicateEmail):
		response.Fail(c, http.StatusBadRequest, "User with this email already exists")
	case errors.Is(err, repository.ErrInvalidID):
		response.Fail(c, http.StatusBadRequest, "Invalid user ID format")
	case errors.Is(err, repository.ErrNotFound):
		response.Fail(c, http.StatusNotFound, "User not found")
	default:
		if h.Logger != nil {
			h.Logger.WithError(err).Error(fallback)
		}
		response.FailDetail(c, http.StatusInternalServerError, fallback, err)
	}
}

func (h *UserHandler) List(c *gin.Context) {
	params, err := parseListParams(c, h.MaxPageSize)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	users, pg, err := h.Svc.List(c.Request.Context(), params)
	if err != nil {
		h.fail(c, err, "Error fetching users")
		return
	}
	response.SuccessPage(c, http.StatusOK, users, pg)
}

func (h *UserHandler) GetByID(c *gin.Context) {
	u, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "Error fetching user")
		return
	}
	response.Success(c, http.StatusOK, u.Info(), "")
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	u, err := h.Svc.Create(c.Request.Context(), application.CreateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Age:       req.Age,
		Role:      req.Role,
	})
	if err != nil {
		h.fail(c, err, "Error creating user")
		return
	}
	response.Success(c, http.StatusCreated, u.Info(), "User created successfully")
}

func (h *UserHandler) Update(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	u, err := h.Svc.Update(c.Request.Context(), c.Param("id"), application.UpdateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Age:       req.Age,
		Role:      req.Role,
		IsActive:  req.IsActive,
	})
	if err != nil {
		h.fail(c, err, "Error updating user")
		return
	}
	response.Success(c, http.StatusOK, u.Info(), "User updated successfully")
}

func (h *UserHandler) Delete(c *gin.Context) {
	summary, err := h.Svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "Error deleting user")
		return
	}
	response.Success(c, http.StatusOK, summary, "User deleted successfully")
}

func (h *UserHandler) ListActive(c *gin.Context) {
	users, count, err := h.Svc.ListActive(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Error fetching active users")
		return
	}
	response.SuccessCount(c, http.StatusOK, users, count)
}
