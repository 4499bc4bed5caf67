package domain

import "time"

// StatusHistoryEntry is one step of the delivery timeline shown on the tracking page.
type StatusHistoryEntry struct {
	ID             int    `json:"id"`
	Status         string `json:"status"`
	Time           string `json:"time"`
	Description    string `json:"description"`
	Completed      bool   `json:"completed"`
	Icon           string `json:"icon"`
	TrackingNumber string `json:"trackingNumber,omitempty"`
}

// OrderSnapshot is the denormalized order view returned by the status lookup.
type OrderSnapshot struct {
	ID            string          `json:"id"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	Subtotal      int64           `json:"subtotal"`
	ShippingCost  int64           `json:"shippingCost"`
	Total         int64           `json:"total"`
	PaymentMethod string          `json:"paymentMethod"`
	Courier       ShipmentCourier `json:"courier"`
	Address       ShipmentAddress `json:"address"`
	Products      []LineItem      `json:"products"`
}

type ShipmentCourier struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	TrackingNumber string `json:"trackingNumber"`
}

type ShipmentAddress struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}
