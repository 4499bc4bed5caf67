package domain

type Address struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Phone     string `json:"phone" yaml:"phone"`
	Address   string `json:"address" yaml:"address"`
	IsDefault bool   `json:"isDefault" yaml:"isDefault"`
}

type Product struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Price    int64  `json:"price" yaml:"price"`
	Quantity int    `json:"quantity" yaml:"quantity"`
	Image    string `json:"image" yaml:"image"`
	ShopName string `json:"shopName" yaml:"shopName"`
	Variant  string `json:"variant" yaml:"variant"`
}

// Courier carries a flat shipping rate and the estimate phrase shown to the buyer.
type Courier struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Price     int64  `json:"price" yaml:"price"`
	Estimated string `json:"estimated" yaml:"estimated"`
}

type PaymentMethod struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Icon string `json:"icon" yaml:"icon"`
}
