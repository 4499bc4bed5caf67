package server

import (
	"net/http"

	"checkout/internal/catalog"
	"checkout/internal/order"
	"checkout/internal/respond"
	"checkout/internal/tracking"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func NewRouter(orders *order.Module, catalogCtrl *catalog.Controller, trackingCtrl *tracking.Controller, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(logger.Named("http")))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, map[string]string{"status": "ok"}, logger)
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/checkout", orders.Checkout.Checkout)
		r.Post("/checkout/quote", orders.Checkout.Quote)

		r.Get("/order/status", orders.Status.Status)
		r.Get("/order/tracking", trackingCtrl.HandleTracking)
		r.Get("/orders/{orderId}", orders.Status.GetOrder)

		r.Get("/catalog", catalogCtrl.HandleCatalog)
		r.Post("/catalog/products/search", catalogCtrl.HandleSearchProducts)
	})

	return r
}
