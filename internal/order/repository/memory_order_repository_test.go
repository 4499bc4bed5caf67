package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checkout/internal/domain"
	"checkout/internal/errors"
)

func sampleOrder(id string, createdAt time.Time) domain.Order {
	return domain.Order{
		ID:            id,
		AddressID:     "1",
		Products:      []domain.LineItem{{ID: "1", Name: "iPhone", Price: "24999000", Quantity: "1", Image: "https://img.test/iphone.png"}},
		CourierID:     "jne",
		PaymentMethod: "transfer",
		Subtotal:      "24999000",
		ShippingCost:  "15000",
		Total:         "25014000",
		Status:        domain.OrderStatusPending,
		CreatedAt:     domain.NewTimestamp(createdAt),
		UpdatedAt:     domain.NewTimestamp(createdAt),
	}
}

func TestMemoryOrderRepository_SaveAndFind(t *testing.T) {
	repo := NewMemoryOrderRepository()
	order := sampleOrder("ORD1", time.Now())

	require.NoError(t, repo.Save(context.Background(), order))

	found, err := repo.FindByID(context.Background(), "ORD1")
	require.NoError(t, err)
	assert.Equal(t, order, *found)
}

func TestMemoryOrderRepository_FindByID_NotFound(t *testing.T) {
	repo := NewMemoryOrderRepository()

	found, err := repo.FindByID(context.Background(), "ORD404")
	assert.Nil(t, found)

	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestMemoryOrderRepository_IsolatesCallerSlices(t *testing.T) {
	repo := NewMemoryOrderRepository()
	order := sampleOrder("ORD1", time.Now())
	require.NoError(t, repo.Save(context.Background(), order))

	order.Products[0].Quantity = "99"
	found, err := repo.FindByID(context.Background(), "ORD1")
	require.NoError(t, err)
	assert.Equal(t, json.Number("1"), found.Products[0].Quantity)

	found.Products[0].Quantity = "7"
	again, err := repo.FindByID(context.Background(), "ORD1")
	require.NoError(t, err)
	assert.Equal(t, json.Number("1"), again.Products[0].Quantity)
}

func TestMemoryOrderRepository_KeepsEmptyProducts(t *testing.T) {
	repo := NewMemoryOrderRepository()
	order := sampleOrder("ORD1", time.Now())
	order.Products = []domain.LineItem{}
	require.NoError(t, repo.Save(context.Background(), order))

	found, err := repo.FindByID(context.Background(), "ORD1")
	require.NoError(t, err)
	assert.NotNil(t, found.Products)
	assert.Empty(t, found.Products)
}

func TestMemoryOrderRepository_Save_DuplicateIDIsConflict(t *testing.T) {
	repo := NewMemoryOrderRepository()
	first := sampleOrder("ORD1", time.Now())
	require.NoError(t, repo.Save(context.Background(), first))

	second := sampleOrder("ORD1", time.Now())
	second.CourierID = "sicepat"
	err := repo.Save(context.Background(), second)

	_, ok := errors.IsConflictError(err)
	assert.True(t, ok)

	found, err := repo.FindByID(context.Background(), "ORD1")
	require.NoError(t, err)
	assert.Equal(t, "jne", found.CourierID)
}

func TestMemoryOrderRepository_CanceledContext(t *testing.T) {
	repo := NewMemoryOrderRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, repo.Save(ctx, sampleOrder("ORD1", time.Now())), context.Canceled)
	assert.Equal(t, 0, repo.Len())
}

func TestMemoryOrderRepository_PruneCreatedBefore(t *testing.T) {
	repo := NewMemoryOrderRepository()
	now := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(context.Background(), sampleOrder("OLD", now.Add(-48*time.Hour))))
	require.NoError(t, repo.Save(context.Background(), sampleOrder("NEW", now.Add(-time.Hour))))

	removed := repo.PruneCreatedBefore(now.Add(-24 * time.Hour))

	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, repo.Len())
	_, err := repo.FindByID(context.Background(), "NEW")
	assert.NoError(t, err)
}

func TestMemoryOrderRepository_ConcurrentSaves(t *testing.T) {
	repo := NewMemoryOrderRepository()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = repo.Save(context.Background(), sampleOrder(fmt.Sprintf("ORD%d", i), time.Now()))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, repo.Len())
}
