package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/zeeshankeerio/texstock/internal/models"
)

type FabricProductionRepository interface {
	Create(ctx context.Context, production *models.FabricProduction) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.FabricProduction, error)
	Update(ctx context.Context, production *models.FabricProduction) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.FabricProduction, error)
	SetInventoryStatus(ctx context.Context, id uuid.UUID, status models.InventoryStatus) error
}

type fabricProductionRepo struct {
	db DB
}

func NewFabricProductionRepository(db DB) FabricProductionRepository {
	return &fabricProductionRepo{db: db}
}

const fabricProductionColumns = `id, thread_purchase_id, dyeing_process_id, fabric_type_name, color, dimensions, quantity_produced, thread_used, unit_of_measure, production_cost, labor_cost, total_cost, status, completion_date, inventory_status, created_at, updated_at`

func scanFabricProduction(row interface{ Scan(...any) error }) (*models.FabricProduction, error) {
	f := &models.FabricProduction{}
	err := row.Scan(&f.ID, &f.ThreadPurchaseID, &f.DyeingProcessID, &f.FabricTypeName, &f.Color, &f.Dimensions, &f.QuantityProduced, &f.ThreadUsed, &f.UnitOfMeasure, &f.ProductionCost, &f.LaborCost, &f.TotalCost, &f.Status, &f.CompletionDate, &f.InventoryStatus, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return f, nil
}

func (r *fabricProductionRepo) Create(ctx context.Context, production *models.FabricProduction) error {
	query := `
		INSERT INTO fabric_productions (id, thread_purchase_id, dyeing_process_id, fabric_type_name, color, dimensions, quantity_produced, thread_used, unit_of_measure, production_cost, labor_cost, total_cost, status, completion_date, inventory_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, production.ID, production.ThreadPurchaseID, production.DyeingProcessID, production.FabricTypeName, production.Color, production.Dimensions, production.QuantityProduced, production.ThreadUsed, production.UnitOfMeasure, production.ProductionCost, production.LaborCost, production.TotalCost, production.Status, production.CompletionDate, production.InventoryStatus)
	return err
}

func (r *fabricProductionRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.FabricProduction, error) {
	query := `SELECT ` + fabricProductionColumns + ` FROM fabric_productions WHERE id = $1`
	return scanFabricProduction(r.db.QueryRow(ctx, query, id))
}

func (r *fabricProductionRepo) Update(ctx context.Context, production *models.FabricProduction) error {
	query := `
		UPDATE fabric_productions
		SET fabric_type_name = $1, color = $2, dimensions = $3, quantity_produced = $4, thread_used = $5, unit_of_measure = $6, production_cost = $7, labor_cost = $8, total_cost = $9, status = $10, completion_date = $11, inventory_status = $12, updated_at = NOW()
		WHERE id = $13
	`
	_, err := r.db.Exec(ctx, query, production.FabricTypeName, production.Color, production.Dimensions, production.QuantityProduced, production.ThreadUsed, production.UnitOfMeasure, production.ProductionCost, production.LaborCost, production.TotalCost, production.Status, production.CompletionDate, production.InventoryStatus, production.ID)
	return err
}

func (r *fabricProductionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM fabric_productions WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *fabricProductionRepo) List(ctx context.Context, limit, offset int) ([]*models.FabricProduction, error) {
	query := `SELECT ` + fabricProductionColumns + ` FROM fabric_productions ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var productions []*models.FabricProduction
	for rows.Next() {
		production, err := scanFabricProduction(rows)
		if err != nil {
			return nil, err
		}
		productions = append(productions, production)
	}
	return productions, rows.Err()
}

func (r *fabricProductionRepo) SetInventoryStatus(ctx context.Context, id uuid.UUID, status models.InventoryStatus) error {
	query := `UPDATE fabric_productions SET inventory_status = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.Exec(ctx, query, status, id)
	return err
}
