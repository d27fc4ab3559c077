package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sellerhub/backoffice-api/internal/api/dto"
	"github.com/sellerhub/backoffice-api/pkg/utils"
)

//go:generate mockery --name UserService --output ../mocks
type UserService interface {
	Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.UserResponse, error)
	Update(ctx context.Context, id int64, req dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, q dto.ListUsersQuery) ([]dto.UserResponse, utils.Pagination, error)
}

// UserHandler serves the admin-only user management endpoints.
type UserHandler struct {
	*BaseHandler
	service UserService
}

func NewUserHandler(service UserService, base *BaseHandler) *UserHandler {
	return &UserHandler{BaseHandler: base, service: service}
}

// CreateUser godoc
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateUserRequest true "User data"
// @Success 201 {object} dto.SuccessResponse{registers=dto.UserResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	resp, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.respond(c, http.StatusCreated, resp)
}

// GetUser godoc
// @Summary Get a user by id
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.SuccessResponse{registers=dto.UserResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := h.pathID(c)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	resp, err := h.service.GetByID(h.RequestCtx(c), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.respond(c, http.StatusOK, resp)
}

// ListUsers godoc
// @Summary List users with pagination
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param search query string false "Match against name or email"
// @Param roleId query int false "Filter by role"
// @Success 200 {object} dto.PaginatedResponse{registers=[]dto.UserResponse}
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	var q dto.ListUsersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.badRequest(c, err)
		return
	}

	users, paginate, err := h.service.List(h.RequestCtx(c), q)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.respondPaginated(c, users, paginate)
}

// UpdateUser godoc
// @Summary Update a user (partial)
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param body body dto.UpdateUserRequest true "Fields to update"
// @Success 200 {object} dto.SuccessResponse{registers=dto.UserResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := h.pathID(c)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	resp, err := h.service.Update(h.RequestCtx(c), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.respond(c, http.StatusOK, resp)
}

// DeleteUser godoc
// @Summary Deactivate a user (soft delete)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := h.pathID(c)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	if err := h.service.Delete(h.RequestCtx(c), id); err != nil {
		h.respondError(c, err)
		return
	}

	h.respond(c, http.StatusOK, nil)
}

func (h *BaseHandler) pathID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
