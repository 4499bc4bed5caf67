package order

import (
	"checkout/internal/catalog"
	"checkout/internal/clock"
	"checkout/internal/config"
	"checkout/internal/order/controller"
	"checkout/internal/order/service"
	"checkout/internal/order/usecase"
	"checkout/internal/validation"

	"go.uber.org/zap"
)

// Repository is what the order module needs from an order store.
type Repository interface {
	usecase.OrderRepository
	usecase.OrderFinder
}

type Module struct {
	Checkout *controller.CheckoutController
	Status   *controller.OrderStatusController
}

func NewModule(repo Repository, cat *catalog.Catalog, cfg config.OrderConfig, clk clock.Clock, logger *zap.Logger) *Module {
	orderLogger := logger.Named("order")
	v := validation.New()

	submitUC := usecase.NewSubmitOrderUseCase(
		repo,
		service.NewOrderIDGenerator(),
		service.NewDeliveryEstimator(),
		cat,
		clk,
		cfg.PaymentBaseURL,
		orderLogger,
	)
	quoteUC := usecase.NewQuoteUseCase(cat)
	statusUC := usecase.NewOrderStatusUseCase(orderLogger)
	getUC := usecase.NewGetOrderUseCase(repo)

	return &Module{
		Checkout: controller.NewCheckoutController(submitUC, quoteUC, v, orderLogger),
		Status:   controller.NewOrderStatusController(statusUC, getUC, orderLogger),
	}
}
