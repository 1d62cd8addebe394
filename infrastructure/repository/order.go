package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/lwisniewski/retail-analytics-api/infrastructure/database/postgres"
	"github.com/lwisniewski/retail-analytics-api/infrastructure/migration"
	"github.com/lwisniewski/retail-analytics-api/internal/domain"
)

type OrderRepository interface {
	ReplaceAll(ctx context.Context, orders []domain.Order) (int64, error)
	Count() (int64, error)
}

// defaultLoadBatchSize bounds the COPY buffer when the config carries no
// usable ETL_BATCH_SIZE.
const defaultLoadBatchSize = 1000

type orderRepository struct {
	conn      *postgres.Connection
	batchSize int
}

func NewOrderRepository(conn *postgres.Connection, batchSize int) OrderRepository {
	if batchSize <= 0 {
		batchSize = defaultLoadBatchSize
	}
	return &orderRepository{
		conn:      conn,
		batchSize: batchSize,
	}
}

// ReplaceAll drops and recreates the orders schema and bulk-loads the
// cleaned rows via COPY in configured-size batches, all in one
// transaction. Returns the loaded count.
func (r *orderRepository) ReplaceAll(ctx context.Context, orders []domain.Order) (int64, error) {
	var loaded int64

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := migration.ResetOrdersSchema(tx); err != nil {
			return fmt.Errorf("failed to reset orders schema: %w", err)
		}

		for _, batch := range chunkOrders(orders, r.batchSize) {
			if err := copyOrderBatch(tx, batch); err != nil {
				return err
			}
		}

		if err := migration.CreateSupportingObjects(tx); err != nil {
			return fmt.Errorf("failed to recreate supporting objects: %w", err)
		}

		loaded = int64(len(orders))
		return nil
	})
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return 0, fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return 0, err
	}

	return loaded, nil
}

// copyOrderBatch buffers one batch through a COPY statement and flushes it.
func copyOrderBatch(tx *sql.Tx, batch []domain.Order) error {
	stmt, err := tx.Prepare(pq.CopyIn("orders",
		"order_id", "order_date", "ship_mode", "segment", "country",
		"city", "state", "postal_code", "region", "category",
		"sub_category", "product_id", "cost_price", "list_price",
		"quantity", "discount_percent", "discount", "sale_price",
		"profit", "profit_margin", "year", "month", "month_name", "quarter",
	))
	if err != nil {
		return fmt.Errorf("failed to prepare COPY statement: %w", err)
	}

	for i := range batch {
		o := &batch[i]
		_, err := stmt.Exec(
			o.OrderID, o.OrderDate, o.ShipMode, nullable(o.Segment), nullable(o.Country),
			nullable(o.City), nullable(o.State), o.PostalCode, nullable(o.Region), nullable(o.Category),
			nullable(o.SubCategory), nullable(o.ProductID), o.CostPrice, o.ListPrice,
			o.Quantity, o.DiscountPercent, o.Discount, o.SalePrice,
			o.Profit, o.ProfitMargin, o.Year, o.Month, o.MonthName, o.Quarter,
		)
		if err != nil {
			return fmt.Errorf("failed to buffer order %d for COPY: %w", o.OrderID, err)
		}
	}

	// Flush the COPY buffer.
	if _, err := stmt.Exec(); err != nil {
		return fmt.Errorf("failed to flush COPY: %w", err)
	}
	if err := stmt.Close(); err != nil {
		return fmt.Errorf("failed to close COPY statement: %w", err)
	}

	return nil
}

// chunkOrders splits the cleaned rows into size-bounded batches. A size of
// zero or less yields a single batch.
func chunkOrders(orders []domain.Order, size int) [][]domain.Order {
	if len(orders) == 0 {
		return nil
	}
	if size <= 0 {
		return [][]domain.Order{orders}
	}

	batches := make([][]domain.Order, 0, (len(orders)+size-1)/size)
	for start := 0; start < len(orders); start += size {
		end := start + size
		if end > len(orders) {
			end = len(orders)
		}
		batches = append(batches, orders[start:end])
	}
	return batches
}

func (r *orderRepository) Count() (int64, error) {
	var count int64
	if err := r.conn.QueryRow("SELECT COUNT(*) FROM orders").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

// nullable maps empty cleaned strings to SQL NULL.
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
