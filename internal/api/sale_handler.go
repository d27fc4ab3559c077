package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/sellerhub/backoffice-api/internal/api/dto"
	"github.com/sellerhub/backoffice-api/pkg/utils"
)

//go:generate mockery --name SaleQueryService --output ../mocks
type SaleQueryService interface {
	List(ctx context.Context, q dto.ListSalesQuery) ([]dto.SaleResponse, utils.Pagination, error)
}

type SaleHandler struct {
	*BaseHandler
	service SaleQueryService
}

func NewSaleHandler(service SaleQueryService, base *BaseHandler) *SaleHandler {
	return &SaleHandler{BaseHandler: base, service: service}
}

// ListSales godoc
// @Summary List recorded sales
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param status query string false "Filter by status" Enums(completed, refunded)
// @Param productId query string false "Filter by product"
// @Param startDate query string false "Created from, RFC3339 or YYYY-MM-DD"
// @Param endDate query string false "Created until, RFC3339 or YYYY-MM-DD"
// @Success 200 {object} dto.PaginatedResponse{registers=[]dto.SaleResponse}
// @Failure 403 {object} dto.ErrorResponse
// @Router /sales [get]
func (h *SaleHandler) ListSales(c *gin.Context) {
	var q dto.ListSalesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.badRequest(c, err)
		return
	}

	sales, paginate, err := h.service.List(h.RequestCtx(c), q)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.respondPaginated(c, sales, paginate)
}
