package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"checkout/internal/domain"
	"checkout/internal/errors"
)

type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]domain.Order
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{orders: make(map[string]domain.Order)}
}

// Save refuses to replace an order already stored under the same id.
func (r *MemoryOrderRepository) Save(ctx context.Context, order domain.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	order.Products = slices.Clone(order.Products)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[order.ID]; exists {
		return errors.NewConflictError(fmt.Sprintf("order %s already exists", order.ID))
	}
	r.orders[order.ID] = order

	return nil
}

func (r *MemoryOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	order, ok := r.orders[id]
	r.mu.RUnlock()

	if !ok {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order %s not found", id))
	}

	order.Products = slices.Clone(order.Products)
	return &order, nil
}

// PruneCreatedBefore drops orders created before cutoff and reports how many were removed.
func (r *MemoryOrderRepository) PruneCreatedBefore(cutoff time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, order := range r.orders {
		if order.CreatedAt.Before(cutoff) {
			delete(r.orders, id)
			removed++
		}
	}
	return removed
}

func (r *MemoryOrderRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}
