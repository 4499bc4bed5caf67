package dto

import "checkout/internal/domain"

type CheckoutResult struct {
	Order             domain.Order `json:"order"`
	PaymentURL        *string      `json:"paymentUrl"`
	EstimatedDelivery string       `json:"estimatedDelivery"`
}

type CheckoutResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    CheckoutResult `json:"data"`
}

type QuoteResponse struct {
	Success bool      `json:"success"`
	Data    QuoteData `json:"data"`
}

type QuoteData struct {
	Subtotal     int64 `json:"subtotal"`
	ShippingCost int64 `json:"shippingCost"`
	Total        int64 `json:"total"`
}
