package dto

import (
	"encoding/json"

	"checkout/internal/domain"
)

// CheckoutRequest amounts are taken as supplied by the caller, fractions included.
type CheckoutRequest struct {
	AddressID     string            `json:"addressId" validate:"required"`
	Products      []domain.LineItem `json:"products" validate:"required"`
	CourierID     string            `json:"courierId" validate:"required"`
	PaymentMethod string            `json:"paymentMethod" validate:"required"`
	Subtotal      json.Number       `json:"subtotal"`
	ShippingCost  json.Number       `json:"shippingCost"`
	Total         json.Number       `json:"total"`
}

type QuoteRequest struct {
	CourierID string      `json:"courierId" validate:"required"`
	Products  []QuoteItem `json:"products" validate:"required,dive"`
}

type QuoteItem struct {
	ID       string `json:"id" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=1,lte=10000"`
}
