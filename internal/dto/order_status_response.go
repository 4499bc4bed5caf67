package dto

import "checkout/internal/domain"

type OrderStatusResult struct {
	Order         domain.OrderSnapshot        `json:"order"`
	StatusHistory []domain.StatusHistoryEntry `json:"statusHistory"`
}

type OrderStatusResponse struct {
	Success bool              `json:"success"`
	Data    OrderStatusResult `json:"data"`
}

type StoredOrderResponse struct {
	Success bool            `json:"success"`
	Data    StoredOrderData `json:"data"`
}

type StoredOrderData struct {
	Order domain.Order `json:"order"`
}
