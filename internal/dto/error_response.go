package dto

import apperrors "checkout/internal/errors"

type ErrorResponse struct {
	Error   string                       `json:"error"`
	Details []apperrors.ValidationDetail `json:"details,omitempty"`
}
