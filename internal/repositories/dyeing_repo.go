package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/zeeshankeerio/texstock/internal/models"
)

type DyeingProcessRepository interface {
	Create(ctx context.Context, process *models.DyeingProcess) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.DyeingProcess, error)
	Update(ctx context.Context, process *models.DyeingProcess) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, threadPurchaseID *uuid.UUID, limit, offset int) ([]*models.DyeingProcess, error)
	SetInventoryStatus(ctx context.Context, id uuid.UUID, status models.InventoryStatus) error
}

type dyeingProcessRepo struct {
	db DB
}

func NewDyeingProcessRepository(db DB) DyeingProcessRepository {
	return &dyeingProcessRepo{db: db}
}

const dyeingColumns = `id, thread_purchase_id, color_name, color_code, dye_quantity, output_quantity, labor_cost, dye_material_cost, total_cost, result_status, completion_date, inventory_status, created_at, updated_at`

func scanDyeingProcess(row interface{ Scan(...any) error }) (*models.DyeingProcess, error) {
	d := &models.DyeingProcess{}
	err := row.Scan(&d.ID, &d.ThreadPurchaseID, &d.ColorName, &d.ColorCode, &d.DyeQuantity, &d.OutputQuantity, &d.LaborCost, &d.DyeMaterialCost, &d.TotalCost, &d.ResultStatus, &d.CompletionDate, &d.InventoryStatus, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return d, nil
}

func (r *dyeingProcessRepo) Create(ctx context.Context, process *models.DyeingProcess) error {
	query := `
		INSERT INTO dyeing_processes (id, thread_purchase_id, color_name, color_code, dye_quantity, output_quantity, labor_cost, dye_material_cost, total_cost, result_status, completion_date, inventory_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, process.ID, process.ThreadPurchaseID, process.ColorName, process.ColorCode, process.DyeQuantity, process.OutputQuantity, process.LaborCost, process.DyeMaterialCost, process.TotalCost, process.ResultStatus, process.CompletionDate, process.InventoryStatus)
	return err
}

func (r *dyeingProcessRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.DyeingProcess, error) {
	query := `SELECT ` + dyeingColumns + ` FROM dyeing_processes WHERE id = $1`
	return scanDyeingProcess(r.db.QueryRow(ctx, query, id))
}

func (r *dyeingProcessRepo) Update(ctx context.Context, process *models.DyeingProcess) error {
	query := `
		UPDATE dyeing_processes
		SET color_name = $1, color_code = $2, dye_quantity = $3, output_quantity = $4, labor_cost = $5, dye_material_cost = $6, total_cost = $7, result_status = $8, completion_date = $9, inventory_status = $10, updated_at = NOW()
		WHERE id = $11
	`
	_, err := r.db.Exec(ctx, query, process.ColorName, process.ColorCode, process.DyeQuantity, process.OutputQuantity, process.LaborCost, process.DyeMaterialCost, process.TotalCost, process.ResultStatus, process.CompletionDate, process.InventoryStatus, process.ID)
	return err
}

func (r *dyeingProcessRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM dyeing_processes WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *dyeingProcessRepo) List(ctx context.Context, threadPurchaseID *uuid.UUID, limit, offset int) ([]*models.DyeingProcess, error) {
	query := `SELECT ` + dyeingColumns + ` FROM dyeing_processes`
	args := []any{}
	if threadPurchaseID != nil {
		query += ` WHERE thread_purchase_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
		args = append(args, *threadPurchaseID, limit, offset)
	} else {
		query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var processes []*models.DyeingProcess
	for rows.Next() {
		process, err := scanDyeingProcess(rows)
		if err != nil {
			return nil, err
		}
		processes = append(processes, process)
	}
	return processes, rows.Err()
}

func (r *dyeingProcessRepo) SetInventoryStatus(ctx context.Context, id uuid.UUID, status models.InventoryStatus) error {
	query := `UPDATE dyeing_processes SET inventory_status = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.Exec(ctx, query, status, id)
	return err
}
