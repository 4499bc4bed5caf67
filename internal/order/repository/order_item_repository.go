package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"checkout/internal/domain"
)

type MySQLOrderItemRepository struct {
	db *sql.DB
}

func NewMySQLOrderItemRepository(db *sql.DB) *MySQLOrderItemRepository {
	return &MySQLOrderItemRepository{db: db}
}

// Insert stores the item as its JSON payload so it reads back exactly as submitted.
func (r *MySQLOrderItemRepository) Insert(ctx context.Context, tx *sql.Tx, orderID string, position int, item domain.LineItem) error {
	payload, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("encoding order item: %w", err)
	}

	query := `
		INSERT INTO OrderItems (orderId, position, productId, payload)
		VALUES (?, ?, ?, ?)
	`

	_, err = tx.ExecContext(ctx, query, orderID, position, item.ID, string(payload))
	if err != nil {
		return fmt.Errorf("inserting order item: %w", err)
	}

	return nil
}

func (r *MySQLOrderItemRepository) FindByOrderID(ctx context.Context, orderID string) ([]domain.LineItem, error) {
	query := `
		SELECT payload
		FROM OrderItems
		WHERE orderId = ?
		ORDER BY position ASC
	`

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("querying order items: %w", err)
	}
	defer rows.Close()

	items := []domain.LineItem{}
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scanning order item row: %w", err)
		}

		var item domain.LineItem
		if err := json.Unmarshal(payload, &item); err != nil {
			return nil, fmt.Errorf("decoding order item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order item rows: %w", err)
	}

	return items, nil
}
