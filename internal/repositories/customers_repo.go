package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/zeeshankeerio/texstock/internal/models"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	GetByName(ctx context.Context, name string) (*models.Customer, error)
	Update(ctx context.Context, customer *models.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.Customer, error)
	HasSalesOrders(ctx context.Context, id uuid.UUID) (bool, error)
}

type customerRepo struct {
	db DB
}

func NewCustomerRepository(db DB) CustomerRepository {
	return &customerRepo{db: db}
}

const customerColumns = `id, name, contact_name, contact_email, contact_phone, address, city, notes, active, created_at, updated_at`

func scanCustomer(row interface{ Scan(...any) error }) (*models.Customer, error) {
	customer := &models.Customer{}
	err := row.Scan(&customer.ID, &customer.Name, &customer.ContactName, &customer.ContactEmail, &customer.ContactPhone, &customer.Address, &customer.City, &customer.Notes, &customer.Active, &customer.CreatedAt, &customer.UpdatedAt)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return customer, nil
}

func (r *customerRepo) Create(ctx context.Context, customer *models.Customer) error {
	query := `
		INSERT INTO customers (id, name, contact_name, contact_email, contact_phone, address, city, notes, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, customer.ID, customer.Name, customer.ContactName, customer.ContactEmail, customer.ContactPhone, customer.Address, customer.City, customer.Notes, customer.Active)
	return err
}

func (r *customerRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	return scanCustomer(r.db.QueryRow(ctx, query, id))
}

func (r *customerRepo) GetByName(ctx context.Context, name string) (*models.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE LOWER(name) = LOWER($1)`
	return scanCustomer(r.db.QueryRow(ctx, query, name))
}

func (r *customerRepo) Update(ctx context.Context, customer *models.Customer) error {
	query := `
		UPDATE customers
		SET name = $1, contact_name = $2, contact_email = $3, contact_phone = $4, address = $5, city = $6, notes = $7, active = $8, updated_at = NOW()
		WHERE id = $9
	`
	_, err := r.db.Exec(ctx, query, customer.Name, customer.ContactName, customer.ContactEmail, customer.ContactPhone, customer.Address, customer.City, customer.Notes, customer.Active, customer.ID)
	return err
}

func (r *customerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM customers WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *customerRepo) List(ctx context.Context, limit, offset int) ([]*models.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*models.Customer
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}
	return customers, rows.Err()
}

func (r *customerRepo) HasSalesOrders(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM sales_orders WHERE customer_id = $1)`
	err := r.db.QueryRow(ctx, query, id).Scan(&exists)
	return exists, err
}
