package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/zeeshankeerio/texstock/internal/models"
)

type ThreadTypeRepository interface {
	Create(ctx context.Context, threadType *models.ThreadType) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ThreadType, error)
	GetByName(ctx context.Context, name string) (*models.ThreadType, error)
	List(ctx context.Context, limit, offset int) ([]*models.ThreadType, error)
}

type threadTypeRepo struct {
	db DB
}

func NewThreadTypeRepository(db DB) ThreadTypeRepository {
	return &threadTypeRepo{db: db}
}

func (r *threadTypeRepo) Create(ctx context.Context, threadType *models.ThreadType) error {
	query := `
		INSERT INTO thread_types (id, name, units, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, threadType.ID, threadType.Name, threadType.Units, threadType.Description)
	return err
}

func (r *threadTypeRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.ThreadType, error) {
	threadType := &models.ThreadType{}
	query := `
		SELECT id, name, units, description, created_at, updated_at
		FROM thread_types
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&threadType.ID, &threadType.Name, &threadType.Units, &threadType.Description, &threadType.CreatedAt, &threadType.UpdatedAt)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return threadType, nil
}

// GetByName matches case-insensitively so the resolver never creates
// duplicate types differing only in casing.
func (r *threadTypeRepo) GetByName(ctx context.Context, name string) (*models.ThreadType, error) {
	threadType := &models.ThreadType{}
	query := `
		SELECT id, name, units, description, created_at, updated_at
		FROM thread_types
		WHERE LOWER(name) = LOWER($1)
	`
	err := r.db.QueryRow(ctx, query, name).Scan(&threadType.ID, &threadType.Name, &threadType.Units, &threadType.Description, &threadType.CreatedAt, &threadType.UpdatedAt)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return threadType, nil
}

func (r *threadTypeRepo) List(ctx context.Context, limit, offset int) ([]*models.ThreadType, error) {
	query := `
		SELECT id, name, units, description, created_at, updated_at
		FROM thread_types
		ORDER BY name
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var threadTypes []*models.ThreadType
	for rows.Next() {
		threadType := &models.ThreadType{}
		if err := rows.Scan(&threadType.ID, &threadType.Name, &threadType.Units, &threadType.Description, &threadType.CreatedAt, &threadType.UpdatedAt); err != nil {
			return nil, err
		}
		threadTypes = append(threadTypes, threadType)
	}
	return threadTypes, rows.Err()
}
