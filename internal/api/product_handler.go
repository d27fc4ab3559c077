package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sellerhub/backoffice-api/internal/api/dto"
	"github.com/sellerhub/backoffice-api/internal/service"
)

//go:generate mockery --name ProductService --output ../mocks
type ProductService interface {
	Create(ctx context.Context, actor service.Actor, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error)
	Update(ctx context.Context, actor service.Actor, id int64, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, actor service.Actor, id int64) error
	List(ctx context.Context, actor service.Actor) ([]dto.ProductResponse, error)
}

type ProductHandler struct {
	*BaseHandler
	service ProductService
}

func NewProductHandler(service ProductService, base *BaseHandler) *ProductHandler {
	return &ProductHandler{BaseHandler: base, service: service}
}

// CreateProduct godoc
// @Summary Create a product owned by the caller
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateProductRequest true "Product data"
// @Success 201 {object} dto.SuccessResponse{registers=dto.ProductResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	actor, err := h.actor(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	resp, err := h.service.Create(h.RequestCtx(c), actor, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.respond(c, http.StatusCreated, resp)
}

// GetProduct godoc
// @Summary Get a product by id
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} dto.SuccessResponse{registers=dto.ProductResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
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

// ListProducts godoc
// @Summary List products
// @Description Admins see every product, other users only their own
// @Tags products
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse{registers=[]dto.ProductResponse}
// @Router /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	actor, err := h.actor(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	products, err := h.service.List(h.RequestCtx(c), actor)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.respond(c, http.StatusOK, products)
}

// UpdateProduct godoc
// @Summary Update a product (partial)
// @Description Owned products may only be changed by their owner; house products by anyone
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param body body dto.UpdateProductRequest true "Fields to update"
// @Success 200 {object} dto.SuccessResponse{registers=dto.ProductResponse}
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	actor, err := h.actor(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	id, err := h.pathID(c)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	resp, err := h.service.Update(h.RequestCtx(c), actor, id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.respond(c, http.StatusOK, resp)
}

// DeleteProduct godoc
// @Summary Delete a product (soft delete, forced inactive)
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	actor, err := h.actor(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	id, err := h.pathID(c)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	if err := h.service.Delete(h.RequestCtx(c), actor, id); err != nil {
		h.respondError(c, err)
		return
	}

	h.respond(c, http.StatusOK, nil)
}
