package controller

import (
	"context"
	"net/http"

	"checkout/internal/dto"
	"checkout/internal/respond"
	"checkout/internal/validation"

	"go.uber.org/zap"
)

const msgMissingFields = "Missing required fields"

type SubmitOrderUseCase interface {
	Submit(ctx context.Context, req dto.CheckoutRequest) (*dto.CheckoutResult, error)
}

type QuoteUseCase interface {
	Quote(ctx context.Context, req dto.QuoteRequest) (*dto.QuoteData, error)
}

type CheckoutController struct {
	submit    SubmitOrderUseCase
	quote     QuoteUseCase
	validator *validation.Validator
	logger    *zap.Logger
}

func NewCheckoutController(submit SubmitOrderUseCase, quote QuoteUseCase, validator *validation.Validator, logger *zap.Logger) *CheckoutController {
	return &CheckoutController{
		submit:    submit,
		quote:     quote,
		validator: validator,
		logger:    logger,
	}
}

// Checkout handles POST /api/checkout.
func (c *CheckoutController) Checkout(w http.ResponseWriter, r *http.Request) {
	logger := respond.Trace(w, c.logger)

	var req dto.CheckoutRequest
	if err := respond.DecodeJSON(w, r, &req); err != nil {
		respond.Error(w, err, logger)
		return
	}

	if err := c.validator.Struct(req, msgMissingFields); err != nil {
		respond.Error(w, err, logger)
		return
	}

	result, err := c.submit.Submit(r.Context(), req)
	if err != nil {
		respond.Error(w, err, logger)
		return
	}

	respond.JSON(w, http.StatusOK, dto.CheckoutResponse{
		Success: true,
		Message: "Order created successfully",
		Data:    *result,
	}, logger)
}

// Quote handles POST /api/checkout/quote.
func (c *CheckoutController) Quote(w http.ResponseWriter, r *http.Request) {
	logger := respond.Trace(w, c.logger)

	var req dto.QuoteRequest
	if err := respond.DecodeJSON(w, r, &req); err != nil {
		respond.Error(w, err, logger)
		return
	}

	if err := c.validator.Struct(req, "Invalid quote request"); err != nil {
		respond.Error(w, err, logger)
		return
	}

	data, err := c.quote.Quote(r.Context(), req)
	if err != nil {
		respond.Error(w, err, logger)
		return
	}

	respond.JSON(w, http.StatusOK, dto.QuoteResponse{Success: true, Data: *data}, logger)
}
