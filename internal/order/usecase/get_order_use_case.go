package usecase

import (
	"context"

	"checkout/internal/domain"
	apperrors "checkout/internal/errors"
)

type OrderFinder interface {
	FindByID(ctx context.Context, id string) (*domain.Order, error)
}

type GetOrderUseCase struct {
	orders OrderFinder
}

func NewGetOrderUseCase(orders OrderFinder) *GetOrderUseCase {
	return &GetOrderUseCase{orders: orders}
}

func (uc *GetOrderUseCase) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := uc.orders.FindByID(ctx, orderID)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, err
		}
		return nil, apperrors.NewInternalError("loading order", err)
	}
	return order, nil
}
