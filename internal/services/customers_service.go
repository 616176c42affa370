package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/zeeshankeerio/texstock/internal/models"
	"github.com/zeeshankeerio/texstock/internal/repositories"
)

type CustomerService interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	Update(ctx context.Context, customer *models.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.Customer, error)
}

type customerService struct {
	customerRepo repositories.CustomerRepository
}

func NewCustomerService(customerRepo repositories.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) Create(ctx context.Context, customer *models.Customer) error {
	if customer.Name == "" {
		return fmt.Errorf("%w: customer name is required", models.ErrInvalidInput)
	}

	if existing, err := s.customerRepo.GetByName(ctx, customer.Name); err == nil && existing != nil {
		return fmt.Errorf("%w: customer %q already exists", models.ErrInvalidInput, customer.Name)
	}

	customer.ID = uuid.New()
	customer.Active = true
	return s.customerRepo.Create(ctx, customer)
}

func (s *customerService) GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

func (s *customerService) Update(ctx context.Context, customer *models.Customer) error {
	if customer.Name == "" {
		return fmt.Errorf("%w: customer name is required", models.ErrInvalidInput)
	}
	return s.customerRepo.Update(ctx, customer)
}

// Delete refuses to remove a customer with recorded sales orders.
func (s *customerService) Delete(ctx context.Context, id uuid.UUID) error {
	referenced, err := s.customerRepo.HasSalesOrders(ctx, id)
	if err != nil {
		return err
	}
	if referenced {
		return fmt.Errorf("%w: customer has sales orders", models.ErrHasDependents)
	}
	return s.customerRepo.Delete(ctx, id)
}

func (s *customerService) List(ctx context.Context, limit, offset int) ([]*models.Customer, error) {
	return s.customerRepo.List(ctx, limit, offset)
}
