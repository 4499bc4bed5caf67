package mysql

import (
	"context"
	"database/sql"
	"fmt"
)

// Amounts are stored as the number text the caller sent. Item payloads are TEXT rather
// than JSON because MySQL rewrites JSON documents.
var schema = []struct {
	name  string
	query string
}{
	{
		name: "Orders",
		query: `
		CREATE TABLE IF NOT EXISTS Orders (
			id VARCHAR(40) NOT NULL PRIMARY KEY,
			addressId VARCHAR(64) NOT NULL,
			courierId VARCHAR(64) NOT NULL,
			paymentMethod VARCHAR(64) NOT NULL,
			subtotal VARCHAR(40) NULL,
			shippingCost VARCHAR(40) NULL,
			total VARCHAR(40) NULL,
			status VARCHAR(32) NOT NULL DEFAULT 'pending',
			createdAt DATETIME(3) NOT NULL,
			updatedAt DATETIME(3) NOT NULL,
			INDEX idx_created (createdAt)
		)`,
	},
	{
		name: "OrderItems",
		query: `
		CREATE TABLE IF NOT EXISTS OrderItems (
			orderId VARCHAR(40) NOT NULL,
			position INT NOT NULL,
			productId VARCHAR(64) NOT NULL,
			payload MEDIUMTEXT NOT NULL,
			PRIMARY KEY (orderId, position),
			FOREIGN KEY (orderId) REFERENCES Orders(id) ON DELETE CASCADE
		)`,
	},
}

// Migrate creates the order tables when they do not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, tbl := range schema {
		if _, err := db.ExecContext(ctx, tbl.query); err != nil {
			return fmt.Errorf("creating table %s: %w", tbl.name, err)
		}
	}
	return nil
}
