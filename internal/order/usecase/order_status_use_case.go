package usecase

import (
	"context"

	"checkout/internal/dto"
	apperrors "checkout/internal/errors"
	"checkout/internal/order/service"

	"go.uber.org/zap"
)

type OrderStatusUseCase struct {
	logger *zap.Logger
}

func NewOrderStatusUseCase(logger *zap.Logger) *OrderStatusUseCase {
	return &OrderStatusUseCase{logger: logger}
}

// GetStatus returns the demo snapshot and timeline for any non-empty id. No stored
// state is consulted.
func (uc *OrderStatusUseCase) GetStatus(ctx context.Context, orderID string) (*dto.OrderStatusResult, error) {
	if orderID == "" {
		return nil, apperrors.NewValidationError("Order ID is required", apperrors.ValidationDetail{
			Field:   "orderId",
			Message: "orderId is required",
		})
	}

	uc.logger.Debug("order status requested", zap.String("orderId", orderID))

	return &dto.OrderStatusResult{
		Order:         service.DemoSnapshot(orderID),
		StatusHistory: service.DemoStatusHistory(),
	}, nil
}
