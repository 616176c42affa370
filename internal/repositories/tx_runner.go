package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TxRepos bundles repositories bound to one database transaction. Every
// repository in the bundle sees and joins the same uncommitted state.
type TxRepos struct {
	Vendors           VendorRepository
	Customers         CustomerRepository
	ThreadTypes       ThreadTypeRepository
	FabricTypes       FabricTypeRepository
	ThreadPurchases   ThreadPurchaseRepository
	DyeingProcesses   DyeingProcessRepository
	FabricProductions FabricProductionRepository
	Inventory         InventoryRepository
	Transactions      InventoryTransactionRepository
	SalesOrders       SalesOrderRepository
	Payments          PaymentRepository
	ReconcileTasks    ReconcileTaskRepository
}

// TxRunner executes a callback inside a single database transaction,
// handing it transaction-bound repositories. Commit on nil, rollback on
// error. This is what makes the ledger writer atomic by construction.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos TxRepos) error) error
}

type pgxTxRunner struct {
	pool *pgxpool.Pool
}

func NewTxRunner(pool *pgxpool.Pool) TxRunner {
	return &pgxTxRunner{pool: pool}
}

func (r *pgxTxRunner) Run(ctx context.Context, fn func(repos TxRepos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := TxRepos{
		Vendors:           NewVendorRepository(tx),
		Customers:         NewCustomerRepository(tx),
		ThreadTypes:       NewThreadTypeRepository(tx),
		FabricTypes:       NewFabricTypeRepository(tx),
		ThreadPurchases:   NewThreadPurchaseRepository(tx),
		DyeingProcesses:   NewDyeingProcessRepository(tx),
		FabricProductions: NewFabricProductionRepository(tx),
		Inventory:         NewInventoryRepository(tx),
		Transactions:      NewInventoryTransactionRepository(tx),
		SalesOrders:       NewSalesOrderRepository(tx),
		Payments:          NewPaymentRepository(tx),
		ReconcileTasks:    NewReconcileTaskRepository(tx),
	}

	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
