package catalog

import (
	"strconv"

	apperrors "checkout/internal/errors"
)

type QuoteItem struct {
	ProductID string
	Quantity  int
}

type Quote struct {
	Subtotal     int64
	ShippingCost int64
	Total        int64
}

// Quote prices items and shipping from catalog data only. An unknown courier ships for
// free, matching what the checkout page shows.
func (c *Catalog) Quote(courierID string, items []QuoteItem) (Quote, error) {
	var details []apperrors.ValidationDetail
	var subtotal int64

	for idx, item := range items {
		p, ok := c.Product(item.ProductID)
		if !ok {
			details = append(details, apperrors.ValidationDetail{
				Field:   "products[" + strconv.Itoa(idx) + "].id",
				Message: "unknown product " + item.ProductID,
			})
			continue
		}
		subtotal += p.Price * int64(item.Quantity)
	}

	if len(details) > 0 {
		return Quote{}, apperrors.NewValidationError("Unknown products", details...)
	}

	var shipping int64
	if courier, ok := c.Courier(courierID); ok {
		shipping = courier.Price
	}

	return Quote{
		Subtotal:     subtotal,
		ShippingCost: shipping,
		Total:        subtotal + shipping,
	}, nil
}
