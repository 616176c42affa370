package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/zeeshankeerio/texstock/internal/caching"
	"github.com/zeeshankeerio/texstock/internal/models"
	"github.com/zeeshankeerio/texstock/internal/reconcile"
	"github.com/zeeshankeerio/texstock/internal/repositories"
)

type SalesService interface {
	CreateOrder(ctx context.Context, order *models.SalesOrder) error
	GetOrder(ctx context.Context, id uuid.UUID) (*models.SalesOrder, error)
	ListOrders(ctx context.Context, customerID *uuid.UUID, limit, offset int) ([]*models.SalesOrder, error)
}

type salesService struct {
	salesRepo    repositories.SalesOrderRepository
	customerRepo repositories.CustomerRepository
	txRunner     repositories.TxRunner
	writer       *reconcile.LedgerWriter
	cache        caching.CacheService
	log          zerolog.Logger
}

func NewSalesService(
	salesRepo repositories.SalesOrderRepository,
	customerRepo repositories.CustomerRepository,
	txRunner repositories.TxRunner,
	markups reconcile.Markups,
	cache caching.CacheService,
	log zerolog.Logger,
) SalesService {
	return &salesService{
		salesRepo:    salesRepo,
		customerRepo: customerRepo,
		txRunner:     txRunner,
		writer:       reconcile.NewLedgerWriter(markups),
		cache:        cache,
		log:          log,
	}
}

func (s *salesService) validate(order *models.SalesOrder) error {
	if order.CustomerID == uuid.Nil {
		return fmt.Errorf("%w: customer is required", models.ErrInvalidInput)
	}
	if len(order.Items) == 0 {
		return fmt.Errorf("%w: order must contain at least one item", models.ErrInvalidInput)
	}
	for i, line := range order.Items {
		if line.ItemID == uuid.Nil {
			return fmt.Errorf("%w: line %d: item is required", models.ErrInvalidInput, i+1)
		}
		if !line.Quantity.IsPositive() {
			return fmt.Errorf("%w: line %d: quantity must be positive", models.ErrInvalidInput, i+1)
		}
		if line.UnitPrice.IsNegative() {
			return fmt.Errorf("%w: line %d: unit price cannot be negative", models.ErrInvalidInput, i+1)
		}
	}
	if order.Discount != nil && order.Discount.IsNegative() {
		return fmt.Errorf("%w: discount cannot be negative", models.ErrInvalidInput)
	}
	return nil
}

// CreateOrder persists the order, its lines and one outbound SALES ledger
// line per item in a single transaction. Any line without sufficient stock
// rejects the whole order; nothing is partially shipped.
func (s *salesService) CreateOrder(ctx context.Context, order *models.SalesOrder) error {
	if err := s.validate(order); err != nil {
		return err
	}
	if _, err := s.customerRepo.GetByID(ctx, order.CustomerID); err != nil {
		return fmt.Errorf("%w: customer not found", models.ErrInvalidInput)
	}

	order.ID = uuid.New()
	if order.OrderNumber == "" {
		order.OrderNumber = generateOrderNumber(order.ID)
	}
	if order.OrderDate.IsZero() {
		order.OrderDate = time.Now()
	}
	order.PaymentStatus = models.PaymentStatusPending

	total := decimal.Zero
	for _, line := range order.Items {
		line.ID = uuid.New()
		line.SalesOrderID = order.ID
		line.Subtotal = line.Quantity.Mul(line.UnitPrice).Round(2)
		total = total.Add(line.Subtotal)
	}
	if order.Discount != nil {
		total = total.Sub(*order.Discount)
		if total.IsNegative() {
			return fmt.Errorf("%w: discount exceeds order total", models.ErrInvalidInput)
		}
	}
	order.TotalAmount = total.Round(2)

	err := s.txRunner.Run(ctx, func(repos repositories.TxRepos) error {
		if err := repos.SalesOrders.Create(ctx, order); err != nil {
			return err
		}
		for _, line := range order.Items {
			if err := repos.SalesOrders.CreateItem(ctx, line); err != nil {
				return err
			}

			item, err := repos.Inventory.GetForUpdate(ctx, line.ItemID)
			if err != nil {
				return fmt.Errorf("item %s: %w", line.ItemID, err)
			}
			_, err = s.writer.Apply(ctx, repos, reconcile.LedgerEntry{
				Item:         item,
				Type:         models.TransactionSales,
				Quantity:     line.Quantity.Neg(),
				SalesOrderID: &order.ID,
				Date:         order.OrderDate,
			})
			if err != nil {
				return fmt.Errorf("item %s: %w", item.ItemCode, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, line := range order.Items {
		if cacheErr := s.cache.DeleteItem(ctx, line.ItemID); cacheErr != nil {
			s.log.Warn().Err(cacheErr).Str("item_id", line.ItemID.String()).Msg("inventory cache invalidation failed")
		}
	}
	if cacheErr := s.cache.InvalidateLowStock(ctx); cacheErr != nil {
		s.log.Warn().Err(cacheErr).Msg("low-stock cache invalidation failed")
	}
	return nil
}

func (s *salesService) GetOrder(ctx context.Context, id uuid.UUID) (*models.SalesOrder, error) {
	order, err := s.salesRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Items, err = s.salesRepo.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *salesService) ListOrders(ctx context.Context, customerID *uuid.UUID, limit, offset int) ([]*models.SalesOrder, error) {
	return s.salesRepo.List(ctx, customerID, limit, offset)
}

// generateOrderNumber derives a human-facing order number from the order id.
func generateOrderNumber(id uuid.UUID) string {
	fragment := strings.ToUpper(strings.SplitN(id.String(), "-", 2)[0])
	return fmt.Sprintf("SO-%s-%s", time.Now().Format("20060102"), fragment)
}
