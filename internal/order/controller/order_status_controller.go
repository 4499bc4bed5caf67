package controller

import (
	"context"
	"net/http"

	"checkout/internal/domain"
	"checkout/internal/dto"
	"checkout/internal/respond"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type OrderStatusUseCase interface {
	GetStatus(ctx context.Context, orderID string) (*dto.OrderStatusResult, error)
}

type GetOrderUseCase interface {
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
}

type OrderStatusController struct {
	status OrderStatusUseCase
	orders GetOrderUseCase
	logger *zap.Logger
}

func NewOrderStatusController(status OrderStatusUseCase, orders GetOrderUseCase, logger *zap.Logger) *OrderStatusController {
	return &OrderStatusController{
		status: status,
		orders: orders,
		logger: logger,
	}
}

// Status handles GET /api/order/status?orderId=.
func (c *OrderStatusController) Status(w http.ResponseWriter, r *http.Request) {
	logger := respond.Trace(w, c.logger)

	result, err := c.status.GetStatus(r.Context(), r.URL.Query().Get("orderId"))
	if err != nil {
		respond.Error(w, err, logger)
		return
	}

	respond.JSON(w, http.StatusOK, dto.OrderStatusResponse{Success: true, Data: *result}, logger)
}

// GetOrder handles GET /api/orders/{orderId} against the order store.
func (c *OrderStatusController) GetOrder(w http.ResponseWriter, r *http.Request) {
	logger := respond.Trace(w, c.logger)

	order, err := c.orders.GetOrder(r.Context(), chi.URLParam(r, "orderId"))
	if err != nil {
		respond.Error(w, err, logger)
		return
	}

	respond.JSON(w, http.StatusOK, dto.StoredOrderResponse{
		Success: true,
		Data:    dto.StoredOrderData{Order: *order},
	}, logger)
}
