package catalog

import "checkout/internal/domain"

// SearchProducts splits ids into catalog products and ids the catalog does not know.
func (c *Catalog) SearchProducts(ids []string) ([]domain.Product, []string) {
	found := make([]domain.Product, 0, len(ids))
	notFound := []string{}

	for _, id := range ids {
		if p, ok := c.Product(id); ok {
			found = append(found, p)
			continue
		}
		notFound = append(notFound, id)
	}

	return found, notFound
}
