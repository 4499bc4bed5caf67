package catalog

import (
	"net/http"

	"checkout/internal/domain"
	apperrors "checkout/internal/errors"
	"checkout/internal/respond"

	"go.uber.org/zap"
)

const maxSearchIDs = 100

type Controller struct {
	catalog *Catalog
	logger  *zap.Logger
}

func NewController(catalog *Catalog, logger *zap.Logger) *Controller {
	return &Controller{
		catalog: catalog,
		logger:  logger,
	}
}

type catalogResponse struct {
	Success bool     `json:"success"`
	Data    *Catalog `json:"data"`
}

type SearchProductsRequest struct {
	ProductIDs []string `json:"productIds"`
}

type SearchProductsResponse struct {
	Products []domain.Product `json:"products"`
	NotFound []string         `json:"notFound"`
}

// HandleCatalog serves GET /api/catalog.
func (c *Controller) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, catalogResponse{Success: true, Data: c.catalog}, c.logger)
}

// HandleSearchProducts serves POST /api/catalog/products/search.
func (c *Controller) HandleSearchProducts(w http.ResponseWriter, r *http.Request) {
	logger := respond.Trace(w, c.logger)

	var req SearchProductsRequest
	if err := respond.DecodeJSON(w, r, &req); err != nil {
		respond.Error(w, err, logger)
		return
	}

	if err := validateSearchRequest(req); err != nil {
		respond.Error(w, err, logger)
		return
	}

	found, notFound := c.catalog.SearchProducts(req.ProductIDs)
	respond.JSON(w, http.StatusOK, SearchProductsResponse{Products: found, NotFound: notFound}, logger)
}

func validateSearchRequest(req SearchProductsRequest) error {
	if len(req.ProductIDs) == 0 {
		return apperrors.NewValidationError("productIds is required", apperrors.ValidationDetail{
			Field:   "productIds",
			Message: "productIds must not be empty",
		})
	}

	if len(req.ProductIDs) > maxSearchIDs {
		msg := "productIds exceeds maximum of 100"
		return apperrors.NewValidationError(msg, apperrors.ValidationDetail{
			Field:   "productIds",
			Message: msg,
		})
	}

	for _, id := range req.ProductIDs {
		if id == "" {
			msg := "each productId must be non-empty"
			return apperrors.NewValidationError(msg, apperrors.ValidationDetail{
				Field:   "productIds",
				Message: msg,
			})
		}
	}

	return nil
}
