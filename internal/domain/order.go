package domain

import (
	"bytes"
	"encoding/json"
)

// Order amounts are kept as the caller wrote them; an amount the caller left out stays
// out of the echo.
type Order struct {
	ID            string      `json:"id"`
	AddressID     string      `json:"addressId"`
	Products      []LineItem  `json:"products"`
	CourierID     string      `json:"courierId"`
	PaymentMethod string      `json:"paymentMethod"`
	Subtotal      json.Number `json:"subtotal,omitempty"`
	ShippingCost  json.Number `json:"shippingCost,omitempty"`
	Total         json.Number `json:"total,omitempty"`
	Status        string      `json:"status"`
	CreatedAt     Timestamp   `json:"createdAt"`
	UpdatedAt     Timestamp   `json:"updatedAt"`
}

// LineItem is a cart entry as submitted by the caller. An item decoded from JSON marshals
// back to the exact bytes it came from, unknown fields included.
type LineItem struct {
	ID       string      `json:"id"`
	Name     string      `json:"name,omitempty"`
	Price    json.Number `json:"price,omitempty"`
	Quantity json.Number `json:"quantity,omitempty"`
	Image    string      `json:"image,omitempty"`
	Variant  string      `json:"variant,omitempty"`
	ShopName string      `json:"shopName,omitempty"`

	raw json.RawMessage
}

type lineItemFields LineItem

func (li *LineItem) UnmarshalJSON(data []byte) error {
	var fields lineItemFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*li = LineItem(fields)
	if !bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		li.raw = append(json.RawMessage(nil), data...)
	}
	return nil
}

func (li LineItem) MarshalJSON() ([]byte, error) {
	if len(li.raw) > 0 {
		return li.raw, nil
	}
	return json.Marshal(lineItemFields(li))
}

// Units returns the quantity as a whole number of units. ok is false for a missing or
// fractional quantity.
func (li LineItem) Units() (units int, ok bool) {
	n, err := li.Quantity.Int64()
	if err != nil {
		return 0, false
	}
	return int(n), true
}

const (
	OrderStatusPending    = "pending"
	OrderStatusPaid       = "paid"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
)

const PaymentMethodCOD = "cod"
