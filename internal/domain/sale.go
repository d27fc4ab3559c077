package domain

import "time"

type SaleStatus string

const (
	SaleStatusCompleted SaleStatus = "completed"
	SaleStatusRefunded  SaleStatus = "refunded"
)

// Sale records a payment-platform order. OrderID is the external upsert
// key; the only legal status transition is completed -> refunded.
type Sale struct {
	ID         string
	OrderID    string
	ProductID  string
	CustomerID string
	Status     SaleStatus
	Amount     float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// SaleFilter narrows a sales listing. Nil fields are ignored.
type SaleFilter struct {
	Status    *SaleStatus
	ProductID *string
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

func NewSale(id, orderID, productID, customerID string, amount float64, status SaleStatus) (*Sale, error) {
	if orderID == "" {
		return nil, NewValidationError("order_id", "order id is required")
	}
	if status != SaleStatusCompleted && status != SaleStatusRefunded {
		return nil, NewValidationError("status", "status must be completed or refunded")
	}
	if amount < 0 {
		return nil, NewValidationError("amount", "amount must be non-negative")
	}

	now := time.Now()
	return &Sale{
		ID:         id,
		OrderID:    orderID,
		ProductID:  productID,
		CustomerID: customerID,
		Status:     status,
		Amount:     amount,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Transition moves the sale to the given status, rejecting anything other
// than completed -> refunded. Refunded is terminal.
func (s *Sale) Transition(to SaleStatus) error {
	if s.Status == to {
		return nil
	}
	if s.Status == SaleStatusCompleted && to == SaleStatusRefunded {
		s.Status = to
		s.UpdatedAt = time.Now()
		return nil
	}
	return NewValidationError("status", "invalid sale status transition")
}
