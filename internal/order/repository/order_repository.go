package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"fmt"

	"checkout/internal/domain"
	"checkout/internal/errors"

	"github.com/go-sql-driver/mysql"
)

const mysqlErrDuplicateEntry = 1062

type MySQLOrderRepository struct {
	db    *sql.DB
	items *MySQLOrderItemRepository
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db, items: NewMySQLOrderItemRepository(db)}
}

// Save writes the order and its line items in one transaction. A duplicate id is
// reported as a ConflictError.
func (r *MySQLOrderRepository) Save(ctx context.Context, order domain.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO Orders (id, addressId, courierId, paymentMethod, subtotal, shippingCost,
		                    total, status, createdAt, updatedAt)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = tx.ExecContext(ctx, query,
		order.ID, order.AddressID, order.CourierID, order.PaymentMethod,
		amountValue(order.Subtotal), amountValue(order.ShippingCost), amountValue(order.Total), order.Status,
		order.CreatedAt.Time, order.UpdatedAt.Time,
	)
	if isDuplicateEntry(err) {
		return errors.NewConflictError(fmt.Sprintf("order %s already exists", order.ID))
	}
	if err != nil {
		return fmt.Errorf("inserting order: %w", err)
	}

	for i, item := range order.Products {
		if err := r.items.Insert(ctx, tx, order.ID, i, item); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing order: %w", err)
	}

	return nil
}

func (r *MySQLOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `
		SELECT id, addressId, courierId, paymentMethod, subtotal, shippingCost,
		       total, status, createdAt, updatedAt
		FROM Orders
		WHERE id = ?
	`

	var order domain.Order
	var subtotal, shippingCost, total sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&order.ID, &order.AddressID, &order.CourierID, &order.PaymentMethod,
		&subtotal, &shippingCost, &total, &order.Status,
		&order.CreatedAt.Time, &order.UpdatedAt.Time,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}

	order.Subtotal = json.Number(subtotal.String)
	order.ShippingCost = json.Number(shippingCost.String)
	order.Total = json.Number(total.String)
	order.CreatedAt = domain.NewTimestamp(order.CreatedAt.Time)
	order.UpdatedAt = domain.NewTimestamp(order.UpdatedAt.Time)

	order.Products, err = r.items.FindByOrderID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func amountValue(n json.Number) sql.NullString {
	return sql.NullString{String: n.String(), Valid: n != ""}
}

func isDuplicateEntry(err error) bool {
	var myErr *mysql.MySQLError
	return stderrors.As(err, &myErr) && myErr.Number == mysqlErrDuplicateEntry
}
