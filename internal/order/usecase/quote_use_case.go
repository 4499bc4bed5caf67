package usecase

import (
	"context"

	"checkout/internal/catalog"
	"checkout/internal/dto"
)

type QuoteUseCase struct {
	quoter PriceQuoter
}

func NewQuoteUseCase(quoter PriceQuoter) *QuoteUseCase {
	return &QuoteUseCase{quoter: quoter}
}

func (uc *QuoteUseCase) Quote(ctx context.Context, req dto.QuoteRequest) (*dto.QuoteData, error) {
	items := make([]catalog.QuoteItem, len(req.Products))
	for i, p := range req.Products {
		items[i] = catalog.QuoteItem{ProductID: p.ID, Quantity: p.Quantity}
	}

	quote, err := uc.quoter.Quote(req.CourierID, items)
	if err != nil {
		return nil, err
	}

	return &dto.QuoteData{
		Subtotal:     quote.Subtotal,
		ShippingCost: quote.ShippingCost,
		Total:        quote.Total,
	}, nil
}
