package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/sellerhub/backoffice-api/internal/api/dto"
	"github.com/sellerhub/backoffice-api/internal/domain"
	"github.com/sellerhub/backoffice-api/internal/mocks"
	"github.com/sellerhub/backoffice-api/pkg/logger"
)

type mockSalePublisher struct {
	mock.Mock
}

func (m *mockSalePublisher) Publish(ctx context.Context, sale *dto.SaleResponse) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

type SaleServiceTestSuite struct {
	suite.Suite
	mockRepo      *mocks.Repository
	mockSales     *mocks.SaleRepository
	mockPublisher *mockSalePublisher
	service       *SaleService
}

func (s *SaleServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockSales = new(mocks.SaleRepository)
	s.mockPublisher = new(mockSalePublisher)

	s.mockRepo.On("Sale").Return(s.mockSales)

	s.service = NewSaleService(s.mockRepo, logger.NewNop())
	s.service.SetPublisher(s.mockPublisher)
}

func TestSaleService(t *testing.T) {
	suite.Run(t, new(SaleServiceTestSuite))
}

func completedEvent() domain.SaleEvent {
	return domain.SaleEvent{
		EventID:    "evt-1",
		Source:     domain.WebhookSourceKiwify,
		OrderID:    "order-1",
		ProductID:  "prod-1",
		CustomerID: "maria@example.com",
		Amount:     197.90,
		Status:     domain.SaleStatusCompleted,
		OccurredAt: time.Now(),
	}
}

func (s *SaleServiceTestSuite) TestApplyEvent_CreatesNewSale() {
	ctx := context.Background()
	event := completedEvent()

	s.mockSales.On("GetByOrderID", ctx, "order-1").Return(nil, nil)
	s.mockSales.On("Create", ctx, mock.AnythingOfType("*domain.Sale")).
		Return(func(_ context.Context, sale *domain.Sale) *domain.Sale { return sale }, nil)
	s.mockPublisher.On("Publish", ctx, mock.AnythingOfType("*dto.SaleResponse")).Return(nil)

	err := s.service.ApplyEvent(ctx, event)

	s.NoError(err)
	s.mockSales.AssertExpectations(s.T())
	s.mockPublisher.AssertExpectations(s.T())

	created := s.mockSales.Calls[1].Arguments.Get(1).(*domain.Sale)
	s.Equal("order-1", created.OrderID)
	s.Equal(domain.SaleStatusCompleted, created.Status)
	s.InDelta(197.90, created.Amount, 0.001)
}

func (s *SaleServiceTestSuite) TestApplyEvent_TransitionsToRefunded() {
	ctx := context.Background()
	event := completedEvent()
	event.Status = domain.SaleStatusRefunded

	existing, err := domain.NewSale("sale-1", "order-1", "prod-1", "maria@example.com", 197.90, domain.SaleStatusCompleted)
	s.Require().NoError(err)

	s.mockSales.On("GetByOrderID", ctx, "order-1").Return(existing, nil)
	s.mockSales.On("Update", ctx, existing).Return(nil)
	s.mockPublisher.On("Publish", ctx, mock.AnythingOfType("*dto.SaleResponse")).Return(nil)

	s.NoError(s.service.ApplyEvent(ctx, event))
	s.Equal(domain.SaleStatusRefunded, existing.Status)
	s.mockSales.AssertExpectations(s.T())
}

func (s *SaleServiceTestSuite) TestApplyEvent_DropsIllegalTransition() {
	ctx := context.Background()
	event := completedEvent() // refunded -> completed is illegal

	existing, err := domain.NewSale("sale-1", "order-1", "prod-1", "maria@example.com", 197.90, domain.SaleStatusRefunded)
	s.Require().NoError(err)

	s.mockSales.On("GetByOrderID", ctx, "order-1").Return(existing, nil)

	// Dropped, not retried: the event is acknowledged without an update.
	s.NoError(s.service.ApplyEvent(ctx, event))
	s.mockSales.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
	s.mockPublisher.AssertNotCalled(s.T(), "Publish", mock.Anything, mock.Anything)
}

func (s *SaleServiceTestSuite) TestApplyEvent_DuplicateStatusIsIdempotent() {
	ctx := context.Background()
	event := completedEvent()

	existing, err := domain.NewSale("sale-1", "order-1", "prod-1", "maria@example.com", 197.90, domain.SaleStatusCompleted)
	s.Require().NoError(err)

	s.mockSales.On("GetByOrderID", ctx, "order-1").Return(existing, nil)
	s.mockSales.On("Update", ctx, existing).Return(nil)
	s.mockPublisher.On("Publish", ctx, mock.AnythingOfType("*dto.SaleResponse")).Return(nil)

	s.NoError(s.service.ApplyEvent(ctx, event))
	s.Equal(domain.SaleStatusCompleted, existing.Status)
}

func (s *SaleServiceTestSuite) TestApplyEvent_LookupFailurePropagates() {
	ctx := context.Background()

	s.mockSales.On("GetByOrderID", ctx, "order-1").Return(nil, errors.New("connection reset"))

	err := s.service.ApplyEvent(ctx, completedEvent())
	s.Error(err)
}

func (s *SaleServiceTestSuite) TestApplyEvent_PublishFailureDoesNotFailApply() {
	ctx := context.Background()

	s.mockSales.On("GetByOrderID", ctx, "order-1").Return(nil, nil)
	s.mockSales.On("Create", ctx, mock.AnythingOfType("*domain.Sale")).
		Return(func(_ context.Context, sale *domain.Sale) *domain.Sale { return sale }, nil)
	s.mockPublisher.On("Publish", ctx, mock.AnythingOfType("*dto.SaleResponse")).Return(errors.New("redis down"))

	s.NoError(s.service.ApplyEvent(ctx, completedEvent()))
}

func (s *SaleServiceTestSuite) TestList_FiltersAndPaginates() {
	ctx := context.Background()

	sale, err := domain.NewSale("sale-1", "order-1", "prod-1", "maria@example.com", 197.90, domain.SaleStatusCompleted)
	s.Require().NoError(err)

	s.mockSales.On("List", ctx, mock.MatchedBy(func(f domain.SaleFilter) bool {
		return f.Status != nil && *f.Status == domain.SaleStatusCompleted &&
			f.Limit == 10 && f.Offset == 10
	})).Return([]domain.Sale{*sale}, int64(11), nil)

	sales, paginate, err := s.service.List(ctx, dto.ListSalesQuery{Page: 2, Limit: 10, Status: "completed"})

	s.NoError(err)
	s.Len(sales, 1)
	s.Equal(int64(11), paginate.Total)
	s.Equal(2, paginate.CurrentPage)
}

func (s *SaleServiceTestSuite) TestList_RejectsUnknownStatus() {
	_, _, err := s.service.List(context.Background(), dto.ListSalesQuery{Status: "pending"})

	var vErr *domain.ValidationError
	s.ErrorAs(err, &vErr)
}

func (s *SaleServiceTestSuite) TestList_RejectsBadDate() {
	_, _, err := s.service.List(context.Background(), dto.ListSalesQuery{StartDate: "20-01-2024"})

	var vErr *domain.ValidationError
	s.ErrorAs(err, &vErr)
}
