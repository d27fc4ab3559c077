package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sellerhub/backoffice-api/internal/api/dto"
	"github.com/sellerhub/backoffice-api/internal/utils"
)

//go:generate mockery --name AuthService --output ../mocks
type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(ctx context.Context, req dto.RefreshRequest) (*dto.AuthResponse, error)
	Me(ctx context.Context, userID int64) (*dto.UserResponse, error)
}

type AuthHandler struct {
	*BaseHandler
	service AuthService
}

func NewAuthHandler(service AuthService, base *BaseHandler) *AuthHandler {
	return &AuthHandler{BaseHandler: base, service: service}
}

// Register godoc
// @Summary Register a new account
// @Description Create an account with the default gestor role and return a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.RegisterRequest true "Registration data"
// @Success 201 {object} dto.SuccessResponse{registers=dto.AuthResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	resp, err := h.service.Register(h.RequestCtx(c), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.respond(c, http.StatusCreated, resp)
}

// Login godoc
// @Summary Authenticate with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.SuccessResponse{registers=dto.AuthResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	resp, err := h.service.Login(h.RequestCtx(c), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.respond(c, http.StatusOK, resp)
}

// Refresh godoc
// @Summary Exchange a refresh token for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.RefreshRequest true "Refresh token"
// @Success 200 {object} dto.SuccessResponse{registers=dto.AuthResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	resp, err := h.service.Refresh(h.RequestCtx(c), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.respond(c, http.StatusOK, resp)
}

// Me godoc
// @Summary Get the authenticated user's profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse{registers=dto.UserResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(h.RequestCtx(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp, err := h.service.Me(h.RequestCtx(c), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.respond(c, http.StatusOK, resp)
}
