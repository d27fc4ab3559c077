package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/sellerhub/backoffice-api/internal/api/dto"
	"github.com/sellerhub/backoffice-api/internal/domain"
	"github.com/sellerhub/backoffice-api/internal/repository"
	"github.com/sellerhub/backoffice-api/pkg/logger"
	"github.com/sellerhub/backoffice-api/pkg/utils"
)

//go:generate mockery --name SalePublisher --output ../mocks
type SalePublisher interface {
	Publish(ctx context.Context, sale *dto.SaleResponse) error
}

// SaleService applies normalized webhook events to the sales table. The
// order id is the upsert key; the only legal transition is completed to
// refunded.
type SaleService struct {
	repo      repository.Repository
	publisher SalePublisher
	log       *logger.Logger
}

func NewSaleService(repo repository.Repository, log *logger.Logger) *SaleService {
	return &SaleService{repo: repo, log: log}
}

// SetPublisher wires the live-feed publisher; without one sales are applied
// silently.
func (s *SaleService) SetPublisher(publisher SalePublisher) {
	s.publisher = publisher
}

// ApplyEvent upserts the sale an event describes. Events that would cause
// an illegal transition are dropped with a warning rather than retried:
// redelivery would fail the same way forever.
func (s *SaleService) ApplyEvent(ctx context.Context, event domain.SaleEvent) error {
	existing, err := s.repo.Sale().GetByOrderID(ctx, event.OrderID)
	if err != nil {
		return fmt.Errorf("failed to look up sale: %w", err)
	}

	var sale *domain.Sale
	if existing == nil {
		sale, err = domain.NewSale(uuid.NewString(), event.OrderID, event.ProductID, event.CustomerID, event.Amount, event.Status)
		if err != nil {
			s.log.Warnf("Dropping event %s: %v", event.EventID, err)
			return nil
		}
		if sale, err = s.repo.Sale().Create(ctx, sale); err != nil {
			return fmt.Errorf("failed to create sale: %w", err)
		}
	} else {
		if err := existing.Transition(event.Status); err != nil {
			var vErr *domain.ValidationError
			if errors.As(err, &vErr) {
				s.log.Warnf("Dropping event %s for order %s: %v", event.EventID, event.OrderID, err)
				return nil
			}
			return err
		}
		if err := s.repo.Sale().Update(ctx, existing); err != nil {
			return fmt.Errorf("failed to update sale: %w", err)
		}
		sale = existing
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, dto.FromSale(sale)); err != nil {
			s.log.Errorf("Failed to publish sale %s: %v", sale.ID, err)
		}
	}

	return nil
}

func (s *SaleService) GetByOrderID(ctx context.Context, orderID string) (*dto.SaleResponse, error) {
	sale, err := s.repo.Sale().GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up sale: %w", err)
	}
	if sale == nil {
		return nil, ErrSaleNotFound
	}
	return dto.FromSale(sale), nil
}

func (s *SaleService) List(ctx context.Context, q dto.ListSalesQuery) ([]dto.SaleResponse, utils.Pagination, error) {
	page := utils.NewPageQuery(q.Page, q.Limit)

	filter := domain.SaleFilter{Limit: page.Limit, Offset: page.Offset}
	if q.Status != "" {
		status := domain.SaleStatus(q.Status)
		if status != domain.SaleStatusCompleted && status != domain.SaleStatusRefunded {
			return nil, utils.Pagination{}, domain.NewValidationError("status", "status must be completed or refunded")
		}
		filter.Status = &status
	}
	if q.ProductID != "" {
		filter.ProductID = &q.ProductID
	}
	if q.StartDate != "" {
		from, err := utils.ParseUserTime(q.StartDate, false)
		if err != nil {
			return nil, utils.Pagination{}, domain.NewValidationError("startDate", err.Error())
		}
		filter.From = &from
	}
	if q.EndDate != "" {
		to, err := utils.ParseUserTime(q.EndDate, true)
		if err != nil {
			return nil, utils.Pagination{}, domain.NewValidationError("endDate", err.Error())
		}
		filter.To = &to
	}

	sales, total, err := s.repo.Sale().List(ctx, filter)
	if err != nil {
		return nil, utils.Pagination{}, fmt.Errorf("failed to list sales: %w", err)
	}

	return dto.FromSales(sales), utils.BuildPaginate(total, page.Page, page.Limit), nil
}
