package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"checkout/internal/catalog"
	"checkout/internal/clock"
	"checkout/internal/domain"
	"checkout/internal/dto"
	apperrors "checkout/internal/errors"

	"go.uber.org/zap"
)

type OrderRepository interface {
	Save(ctx context.Context, order domain.Order) error
}

type OrderIDGenerator interface {
	NewID(now time.Time) string
}

type DeliveryEstimator interface {
	Estimate(courierID string, now time.Time) string
}

type PriceQuoter interface {
	Quote(courierID string, items []catalog.QuoteItem) (catalog.Quote, error)
}

type SubmitOrderUseCase struct {
	orderRepo      OrderRepository
	ids            OrderIDGenerator
	estimator      DeliveryEstimator
	quoter         PriceQuoter
	clock          clock.Clock
	paymentBaseURL string
	logger         *zap.Logger
}

func NewSubmitOrderUseCase(
	orderRepo OrderRepository,
	ids OrderIDGenerator,
	estimator DeliveryEstimator,
	quoter PriceQuoter,
	clk clock.Clock,
	paymentBaseURL string,
	logger *zap.Logger,
) *SubmitOrderUseCase {
	return &SubmitOrderUseCase{
		orderRepo:      orderRepo,
		ids:            ids,
		estimator:      estimator,
		quoter:         quoter,
		clock:          clk,
		paymentBaseURL: strings.TrimSuffix(paymentBaseURL, "/"),
		logger:         logger,
	}
}

// Submit creates a pending order from an already validated request. Amounts are echoed
// as supplied; a disagreement with catalog prices is only logged.
func (uc *SubmitOrderUseCase) Submit(ctx context.Context, req dto.CheckoutRequest) (*dto.CheckoutResult, error) {
	now := uc.clock.Now().Truncate(time.Millisecond)

	order := domain.Order{
		ID:            uc.ids.NewID(now),
		AddressID:     req.AddressID,
		Products:      req.Products,
		CourierID:     req.CourierID,
		PaymentMethod: req.PaymentMethod,
		Subtotal:      req.Subtotal,
		ShippingCost:  req.ShippingCost,
		Total:         req.Total,
		Status:        domain.OrderStatusPending,
		CreatedAt:     domain.NewTimestamp(now),
		UpdatedAt:     domain.NewTimestamp(now),
	}

	logger := uc.logger.With(zap.String("orderId", order.ID))
	logger.Info("checkout started",
		zap.String("courierId", order.CourierID),
		zap.String("paymentMethod", order.PaymentMethod),
		zap.Int("itemCount", len(order.Products)),
	)

	uc.checkTotals(order, logger)

	err := uc.orderRepo.Save(ctx, order)
	if _, conflict := apperrors.IsConflictError(err); conflict {
		// Retry once with a fresh id.
		previous := order.ID
		order.ID = uc.ids.NewID(now)
		logger = uc.logger.With(zap.String("orderId", order.ID))
		logger.Warn("order id collision, retrying with a new id", zap.String("previousOrderId", previous))
		err = uc.orderRepo.Save(ctx, order)
	}
	if err != nil {
		return nil, apperrors.NewInternalError("saving order", err)
	}

	result := &dto.CheckoutResult{
		Order:             order,
		PaymentURL:        uc.paymentURL(order),
		EstimatedDelivery: uc.estimator.Estimate(order.CourierID, now),
	}

	logger.Info("order created", zap.String("total", order.Total.String()), zap.String("estimatedDelivery", result.EstimatedDelivery))

	return result, nil
}

func (uc *SubmitOrderUseCase) paymentURL(order domain.Order) *string {
	if order.PaymentMethod == domain.PaymentMethodCOD {
		return nil
	}
	url := uc.paymentBaseURL + "/" + order.ID
	return &url
}

func (uc *SubmitOrderUseCase) checkTotals(order domain.Order, logger *zap.Logger) {
	items := make([]catalog.QuoteItem, len(order.Products))
	for i, p := range order.Products {
		units, ok := p.Units()
		if !ok {
			logger.Warn("cannot price order from catalog", zap.String("productId", p.ID), zap.String("quantity", p.Quantity.String()))
			return
		}
		items[i] = catalog.QuoteItem{ProductID: p.ID, Quantity: units}
	}

	quote, err := uc.quoter.Quote(order.CourierID, items)
	if err != nil {
		logger.Warn("cannot price order from catalog", zap.Error(err))
		return
	}

	if !amountIs(order.Subtotal, quote.Subtotal) || !amountIs(order.ShippingCost, quote.ShippingCost) || !amountIs(order.Total, quote.Total) {
		logger.Warn("client totals differ from catalog prices",
			zap.String("clientSubtotal", order.Subtotal.String()),
			zap.Int64("catalogSubtotal", quote.Subtotal),
			zap.String("clientShippingCost", order.ShippingCost.String()),
			zap.Int64("catalogShippingCost", quote.ShippingCost),
			zap.String("clientTotal", order.Total.String()),
			zap.Int64("catalogTotal", quote.Total),
		)
	}
}

func amountIs(n json.Number, want int64) bool {
	got, err := n.Int64()
	return err == nil && got == want
}
