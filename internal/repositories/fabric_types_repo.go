package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/zeeshankeerio/texstock/internal/models"
)

type FabricTypeRepository interface {
	Create(ctx context.Context, fabricType *models.FabricType) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.FabricType, error)
	GetByName(ctx context.Context, name string) (*models.FabricType, error)
	List(ctx context.Context, limit, offset int) ([]*models.FabricType, error)
}

type fabricTypeRepo struct {
	db DB
}

func NewFabricTypeRepository(db DB) FabricTypeRepository {
	return &fabricTypeRepo{db: db}
}

func (r *fabricTypeRepo) Create(ctx context.Context, fabricType *models.FabricType) error {
	query := `
		INSERT INTO fabric_types (id, name, units, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, fabricType.ID, fabricType.Name, fabricType.Units, fabricType.Description)
	return err
}

func (r *fabricTypeRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.FabricType, error) {
	fabricType := &models.FabricType{}
	query := `
		SELECT id, name, units, description, created_at, updated_at
		FROM fabric_types
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&fabricType.ID, &fabricType.Name, &fabricType.Units, &fabricType.Description, &fabricType.CreatedAt, &fabricType.UpdatedAt)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return fabricType, nil
}

func (r *fabricTypeRepo) GetByName(ctx context.Context, name string) (*models.FabricType, error) {
	fabricType := &models.FabricType{}
	query := `
		SELECT id, name, units, description, created_at, updated_at
		FROM fabric_types
		WHERE LOWER(name) = LOWER($1)
	`
	err := r.db.QueryRow(ctx, query, name).Scan(&fabricType.ID, &fabricType.Name, &fabricType.Units, &fabricType.Description, &fabricType.CreatedAt, &fabricType.UpdatedAt)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return fabricType, nil
}

func (r *fabricTypeRepo) List(ctx context.Context, limit, offset int) ([]*models.FabricType, error) {
	query := `
		SELECT id, name, units, description, created_at, updated_at
		FROM fabric_types
		ORDER BY name
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fabricTypes []*models.FabricType
	for rows.Next() {
		fabricType := &models.FabricType{}
		if err := rows.Scan(&fabricType.ID, &fabricType.Name, &fabricType.Units, &fabricType.Description, &fabricType.CreatedAt, &fabricType.UpdatedAt); err != nil {
			return nil, err
		}
		fabricTypes = append(fabricTypes, fabricType)
	}
	return fabricTypes, rows.Err()
}
