package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/zeeshankeerio/texstock/internal/models"
	"github.com/zeeshankeerio/texstock/internal/repositories"
)

type VendorService interface {
	Create(ctx context.Context, vendor *models.Vendor) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Vendor, error)
	Update(ctx context.Context, vendor *models.Vendor) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.Vendor, error)
}

type vendorService struct {
	vendorRepo repositories.VendorRepository
}

func NewVendorService(vendorRepo repositories.VendorRepository) VendorService {
	return &vendorService{vendorRepo: vendorRepo}
}

func (s *vendorService) Create(ctx context.Context, vendor *models.Vendor) error {
	if vendor.Name == "" {
		return fmt.Errorf("%w: vendor name is required", models.ErrInvalidInput)
	}

	// Reject duplicate names up front; the unique index is the backstop.
	if existing, err := s.vendorRepo.GetByName(ctx, vendor.Name); err == nil && existing != nil {
		return fmt.Errorf("%w: vendor %q already exists", models.ErrInvalidInput, vendor.Name)
	}

	vendor.ID = uuid.New()
	vendor.Active = true
	return s.vendorRepo.Create(ctx, vendor)
}

func (s *vendorService) GetByID(ctx context.Context, id uuid.UUID) (*models.Vendor, error) {
	return s.vendorRepo.GetByID(ctx, id)
}

func (s *vendorService) Update(ctx context.Context, vendor *models.Vendor) error {
	if vendor.Name == "" {
		return fmt.Errorf("%w: vendor name is required", models.ErrInvalidInput)
	}
	return s.vendorRepo.Update(ctx, vendor)
}

// Delete refuses to remove a vendor that thread purchases still reference.
func (s *vendorService) Delete(ctx context.Context, id uuid.UUID) error {
	referenced, err := s.vendorRepo.HasThreadPurchases(ctx, id)
	if err != nil {
		return err
	}
	if referenced {
		return fmt.Errorf("%w: vendor has thread purchases", models.ErrHasDependents)
	}
	return s.vendorRepo.Delete(ctx, id)
}

func (s *vendorService) List(ctx context.Context, limit, offset int) ([]*models.Vendor, error) {
	return s.vendorRepo.List(ctx, limit, offset)
}
