package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/zeeshankeerio/texstock/internal/models"
	"github.com/zeeshankeerio/texstock/internal/repositories"
)

// TypesService manages the thread and fabric classification records. Most
// types are created explicitly here; the reconciliation resolver may also
// create them on the fly.
type TypesService interface {
	CreateThreadType(ctx context.Context, threadType *models.ThreadType) error
	GetThreadType(ctx context.Context, id uuid.UUID) (*models.ThreadType, error)
	ListThreadTypes(ctx context.Context, limit, offset int) ([]*models.ThreadType, error)

	CreateFabricType(ctx context.Context, fabricType *models.FabricType) error
	GetFabricType(ctx context.Context, id uuid.UUID) (*models.FabricType, error)
	ListFabricTypes(ctx context.Context, limit, offset int) ([]*models.FabricType, error)
}

type typesService struct {
	threadTypeRepo repositories.ThreadTypeRepository
	fabricTypeRepo repositories.FabricTypeRepository
}

func NewTypesService(
	threadTypeRepo repositories.ThreadTypeRepository,
	fabricTypeRepo repositories.FabricTypeRepository,
) TypesService {
	return &typesService{
		threadTypeRepo: threadTypeRepo,
		fabricTypeRepo: fabricTypeRepo,
	}
}

func (s *typesService) CreateThreadType(ctx context.Context, threadType *models.ThreadType) error {
	if threadType.Name == "" {
		return fmt.Errorf("%w: name is required", models.ErrInvalidInput)
	}
	if _, err := s.threadTypeRepo.GetByName(ctx, threadType.Name); err == nil {
		return fmt.Errorf("%w: thread type %q already exists", models.ErrInvalidInput, threadType.Name)
	} else if !errors.Is(err, models.ErrNotFound) {
		return err
	}
	threadType.ID = uuid.New()
	if threadType.Units == "" {
		threadType.Units = "kg"
	}
	return s.threadTypeRepo.Create(ctx, threadType)
}

func (s *typesService) GetThreadType(ctx context.Context, id uuid.UUID) (*models.ThreadType, error) {
	return s.threadTypeRepo.GetByID(ctx, id)
}

func (s *typesService) ListThreadTypes(ctx context.Context, limit, offset int) ([]*models.ThreadType, error) {
	return s.threadTypeRepo.List(ctx, limit, offset)
}

func (s *typesService) CreateFabricType(ctx context.Context, fabricType *models.FabricType) error {
	if fabricType.Name == "" {
		return fmt.Errorf("%w: name is required", models.ErrInvalidInput)
	}
	if _, err := s.fabricTypeRepo.GetByName(ctx, fabricType.Name); err == nil {
		return fmt.Errorf("%w: fabric type %q already exists", models.ErrInvalidInput, fabricType.Name)
	} else if !errors.Is(err, models.ErrNotFound) {
		return err
	}
	fabricType.ID = uuid.New()
	if fabricType.Units == "" {
		fabricType.Units = "meters"
	}
	return s.fabricTypeRepo.Create(ctx, fabricType)
}

func (s *typesService) GetFabricType(ctx context.Context, id uuid.UUID) (*models.FabricType, error) {
	return s.fabricTypeRepo.GetByID(ctx, id)
}

func (s *typesService) ListFabricTypes(ctx context.Context, limit, offset int) ([]*models.FabricType, error) {
	return s.fabricTypeRepo.List(ctx, limit, offset)
}
