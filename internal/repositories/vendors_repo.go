package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/zeeshankeerio/texstock/internal/models"
)

type VendorRepository interface {
	Create(ctx context.Context, vendor *models.Vendor) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Vendor, error)
	GetByName(ctx context.Context, name string) (*models.Vendor, error)
	Update(ctx context.Context, vendor *models.Vendor) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.Vendor, error)
	HasThreadPurchases(ctx context.Context, id uuid.UUID) (bool, error)
}

type vendorRepo struct {
	db DB
}

func NewVendorRepository(db DB) VendorRepository {
	return &vendorRepo{db: db}
}

const vendorColumns = `id, name, contact_name, contact_email, contact_phone, address, city, notes, active, created_at, updated_at`

func scanVendor(row interface{ Scan(...any) error }) (*models.Vendor, error) {
	vendor := &models.Vendor{}
	err := row.Scan(&vendor.ID, &vendor.Name, &vendor.ContactName, &vendor.ContactEmail, &vendor.ContactPhone, &vendor.Address, &vendor.City, &vendor.Notes, &vendor.Active, &vendor.CreatedAt, &vendor.UpdatedAt)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return vendor, nil
}

func (r *vendorRepo) Create(ctx context.Context, vendor *models.Vendor) error {
	query := `
		INSERT INTO vendors (id, name, contact_name, contact_email, contact_phone, address, city, notes, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, vendor.ID, vendor.Name, vendor.ContactName, vendor.ContactEmail, vendor.ContactPhone, vendor.Address, vendor.City, vendor.Notes, vendor.Active)
	return err
}

func (r *vendorRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE id = $1`
	return scanVendor(r.db.QueryRow(ctx, query, id))
}

func (r *vendorRepo) GetByName(ctx context.Context, name string) (*models.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE LOWER(name) = LOWER($1)`
	return scanVendor(r.db.QueryRow(ctx, query, name))
}

func (r *vendorRepo) Update(ctx context.Context, vendor *models.Vendor) error {
	query := `
		UPDATE vendors
		SET name = $1, contact_name = $2, contact_email = $3, contact_phone = $4, address = $5, city = $6, notes = $7, active = $8, updated_at = NOW()
		WHERE id = $9
	`
	_, err := r.db.Exec(ctx, query, vendor.Name, vendor.ContactName, vendor.ContactEmail, vendor.ContactPhone, vendor.Address, vendor.City, vendor.Notes, vendor.Active, vendor.ID)
	return err
}

func (r *vendorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM vendors WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *vendorRepo) List(ctx context.Context, limit, offset int) ([]*models.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vendors []*models.Vendor
	for rows.Next() {
		vendor, err := scanVendor(rows)
		if err != nil {
			return nil, err
		}
		vendors = append(vendors, vendor)
	}
	return vendors, rows.Err()
}

func (r *vendorRepo) HasThreadPurchases(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM thread_purchases WHERE vendor_id = $1)`
	err := r.db.QueryRow(ctx, query, id).Scan(&exists)
	return exists, err
}
