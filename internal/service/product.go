package service

import (
	"context"
	"fmt"

	"github.com/sellerhub/backoffice-api/internal/api/dto"
	"github.com/sellerhub/backoffice-api/internal/domain"
	"github.com/sellerhub/backoffice-api/internal/repository"
)

// ProductService enforces the ownership rule on every mutation: house
// products (no owner) are open to all authenticated users, owned products
// only to their owner. Admins bypass the rule.
type ProductService struct {
	repo repository.Repository
}

func NewProductService(repo repository.Repository) *ProductService {
	return &ProductService{repo: repo}
}

// Actor identifies the authenticated caller for ownership checks.
type Actor struct {
	UserID  int64
	IsAdmin bool
}

func (s *ProductService) Create(ctx context.Context, actor Actor, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	in := domain.NewProductInput{
		UserID:      &actor.UserID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Metadata:    req.Metadata,
	}
	if req.Price != nil {
		price, err := domain.NewPrice(*req.Price)
		if err != nil {
			return nil, err
		}
		in.Price = &price
	}
	if req.Currency != nil {
		currency, err := domain.NewCurrency(*req.Currency)
		if err != nil {
			return nil, err
		}
		in.Currency = &currency
	}
	if req.Status != nil {
		status, err := domain.ParseProductStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		in.Status = status
	}

	product, err := domain.NewProduct(in)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Product().Create(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return dto.FromProduct(created), nil
}

func (s *ProductService) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := s.repo.Product().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up product: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return dto.FromProduct(product), nil
}

func (s *ProductService) Update(ctx context.Context, actor Actor, id int64, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := s.loadModifiable(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	update := domain.ProductUpdate{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Metadata:    req.Metadata,
	}
	if req.Price != nil {
		price, err := domain.NewPrice(*req.Price)
		if err != nil {
			return nil, err
		}
		update.Price = &price
	}
	if req.Currency != nil {
		currency, err := domain.NewCurrency(*req.Currency)
		if err != nil {
			return nil, err
		}
		update.Currency = &currency
	}
	if req.Status != nil {
		status := domain.ProductStatus(*req.Status)
		update.Status = &status
	}

	if err := product.Apply(update); err != nil {
		return nil, err
	}

	updated, err := s.repo.Product().Update(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return dto.FromProduct(updated), nil
}

// Delete soft-deletes the product and forces it inactive in one go.
func (s *ProductService) Delete(ctx context.Context, actor Actor, id int64) error {
	product, err := s.loadModifiable(ctx, actor, id)
	if err != nil {
		return err
	}

	product.MarkDeleted()
	if err := s.repo.Product().Delete(ctx, product); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// List returns every product for admins and only the caller's products for
// everyone else.
func (s *ProductService) List(ctx context.Context, actor Actor) ([]dto.ProductResponse, error) {
	var (
		products []domain.Product
		err      error
	)
	if actor.IsAdmin {
		products, err = s.repo.Product().ListAll(ctx)
	} else {
		products, err = s.repo.Product().ListByUser(ctx, actor.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return dto.FromProducts(products), nil
}

func (s *ProductService) loadModifiable(ctx context.Context, actor Actor, id int64) (*domain.Product, error) {
	product, err := s.repo.Product().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up product: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if !actor.IsAdmin && !product.CanBeModifiedBy(actor.UserID) {
		return nil, ErrForbidden
	}
	return product, nil
}
