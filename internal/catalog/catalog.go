package catalog

import (
	"checkout/internal/domain"
)

// Catalog holds the reference data the checkout page offers.
type Catalog struct {
	Addresses      []domain.Address       `json:"addresses" yaml:"addresses"`
	Products       []domain.Product       `json:"products" yaml:"products"`
	Couriers       []domain.Courier       `json:"couriers" yaml:"couriers"`
	PaymentMethods []domain.PaymentMethod `json:"paymentMethods" yaml:"paymentMethods"`
}

func (c *Catalog) Address(id string) (domain.Address, bool) {
	for _, a := range c.Addresses {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Address{}, false
}

func (c *Catalog) Product(id string) (domain.Product, bool) {
	for _, p := range c.Products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func (c *Catalog) Courier(id string) (domain.Courier, bool) {
	for _, cr := range c.Couriers {
		if cr.ID == id {
			return cr, true
		}
	}
	return domain.Courier{}, false
}

func (c *Catalog) PaymentMethod(id string) (domain.PaymentMethod, bool) {
	for _, pm := range c.PaymentMethods {
		if pm.ID == id {
			return pm, true
		}
	}
	return domain.PaymentMethod{}, false
}

// Default returns the demo catalog shown on the checkout page.
func Default() *Catalog {
	return &Catalog{
		Addresses: []domain.Address{
			{
				ID:        "1",
				Name:      "John Doe",
				Phone:     "0812-3456-7890",
				Address:   "Jl. Sudirman No. 123, RT 001/RW 002, Kel. Senayan, Kec. Kebayoran Baru, Jakarta Selatan, DKI Jakarta, 12190",
				IsDefault: true,
			},
			{
				ID:      "2",
				Name:    "Jane Smith",
				Phone:   "0856-9876-5432",
				Address: "Jl. Thamrin No. 456, RT 003/RW 004, Kel. Menteng, Kec. Menteng, Jakarta Pusat, DKI Jakarta, 10310",
			},
		},
		Products: []domain.Product{
			{
				ID:       "1",
				Name:     "iPhone 15 Pro Max 256GB Natural Titanium",
				Price:    24999000,
				Quantity: 1,
				Image:    "https://via.placeholder.com/80x80/242a2e/ffffff?text=iPhone",
				ShopName: "Apple Official Store",
				Variant:  "256GB, Natural Titanium",
			},
			{
				ID:       "2",
				Name:     "AirPods Pro 2nd Generation with MagSafe Case",
				Price:    3299000,
				Quantity: 2,
				Image:    "https://via.placeholder.com/80x80/242a2e/ffffff?text=AirPods",
				ShopName: "Apple Official Store",
				Variant:  "White",
			},
		},
		Couriers: []domain.Courier{
			{ID: "jne", Name: "JNE Express", Price: 15000, Estimated: "2-3 hari"},
			{ID: "sicepat", Name: "SiCepat Express", Price: 12000, Estimated: "1-2 hari"},
			{ID: "jnt", Name: "J&T Express", Price: 13000, Estimated: "2-3 hari"},
		},
		PaymentMethods: []domain.PaymentMethod{
			{ID: "cod", Name: "Cash on Delivery (COD)", Icon: "truck"},
			{ID: "transfer", Name: "Transfer Bank", Icon: "credit-card"},
			{ID: "ewallet", Name: "E-Wallet", Icon: "credit-card"},
		},
	}
}
