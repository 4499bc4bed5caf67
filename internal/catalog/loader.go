package catalog

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// LoadFile reads a catalog from YAML. Sections missing from the file keep the defaults.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var parsed Catalog
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}

	cat := Default()
	if len(parsed.Addresses) > 0 {
		cat.Addresses = parsed.Addresses
	}
	if len(parsed.Products) > 0 {
		cat.Products = parsed.Products
	}
	if len(parsed.Couriers) > 0 {
		cat.Couriers = parsed.Couriers
	}
	if len(parsed.PaymentMethods) > 0 {
		cat.PaymentMethods = parsed.PaymentMethods
	}

	return cat, nil
}

// Load returns the default catalog when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
