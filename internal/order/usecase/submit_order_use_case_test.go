package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"checkout/internal/catalog"
	"checkout/internal/clock"
	"checkout/internal/domain"
	"checkout/internal/dto"
	apperrors "checkout/internal/errors"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// Mock implementations
type mockOrderRepository struct {
	SaveFunc func(ctx context.Context, order domain.Order) error
}

func (m *mockOrderRepository) Save(ctx context.Context, order domain.Order) error {
	return m.SaveFunc(ctx, order)
}

type fixedIDs struct{ id string }

func (f fixedIDs) NewID(now time.Time) string { return f.id }

type sequenceIDs struct {
	ids  []string
	next int
}

func (s *sequenceIDs) NewID(now time.Time) string {
	id := s.ids[s.next]
	s.next++
	return id
}

type stubEstimator struct{ calledWith string }

func (s *stubEstimator) Estimate(courierID string, now time.Time) string {
	s.calledWith = courierID
	return "2-3 hari (17/1/2024)"
}

var testNow = time.Date(2024, 1, 15, 3, 0, 0, 0, time.UTC)

func newTestSubmitUseCase(repo OrderRepository, logger *zap.Logger) (*SubmitOrderUseCase, *stubEstimator) {
	est := &stubEstimator{}
	return NewSubmitOrderUseCase(
		repo,
		fixedIDs{id: "ORD1705287600000123"},
		est,
		catalog.Default(),
		clock.NewFixed(testNow),
		"https://payment.example.com/pay/",
		logger,
	), est
}

func okRepo() *mockOrderRepository {
	return &mockOrderRepository{SaveFunc: func(ctx context.Context, order domain.Order) error { return nil }}
}

func exampleRequest() dto.CheckoutRequest {
	return dto.CheckoutRequest{
		AddressID:     "1",
		Products:      []domain.LineItem{{ID: "1", Price: "1000", Quantity: "1"}},
		CourierID:     "jne",
		PaymentMethod: "transfer",
		Subtotal:      "1000",
		ShippingCost:  "15000",
		Total:         "16000",
	}
}

// Tests

func TestSubmit_BuildsPendingOrder(t *testing.T) {
	var saved domain.Order
	repo := &mockOrderRepository{SaveFunc: func(ctx context.Context, order domain.Order) error {
		saved = order
		return nil
	}}

	uc, est := newTestSubmitUseCase(repo, zap.NewNop())

	result, err := uc.Submit(context.Background(), exampleRequest())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if result.Order.ID != "ORD1705287600000123" {
		t.Errorf("unexpected order id %s", result.Order.ID)
	}
	if result.Order.Status != domain.OrderStatusPending {
		t.Errorf("expected pending status, got %s", result.Order.Status)
	}
	if !result.Order.CreatedAt.Equal(testNow) || !result.Order.UpdatedAt.Equal(testNow) {
		t.Errorf("expected timestamps to equal %v, got %v / %v", testNow, result.Order.CreatedAt, result.Order.UpdatedAt)
	}
	if result.Order.Subtotal != "1000" || result.Order.ShippingCost != "15000" || result.Order.Total != "16000" {
		t.Errorf("expected amounts echoed unmodified, got %+v", result.Order)
	}
	if saved.ID != result.Order.ID {
		t.Errorf("expected saved order %s, got %s", result.Order.ID, saved.ID)
	}
	if est.calledWith != "jne" {
		t.Errorf("expected estimator called with jne, got %q", est.calledWith)
	}
	if result.EstimatedDelivery != "2-3 hari (17/1/2024)" {
		t.Errorf("unexpected estimated delivery %q", result.EstimatedDelivery)
	}
}

func TestSubmit_PaymentURL(t *testing.T) {
	tests := []struct {
		method  string
		wantURL *string
	}{
		{method: "cod", wantURL: nil},
		{method: "transfer", wantURL: strPtr("https://payment.example.com/pay/ORD1705287600000123")},
		{method: "ewallet", wantURL: strPtr("https://payment.example.com/pay/ORD1705287600000123")},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			uc, _ := newTestSubmitUseCase(okRepo(), zap.NewNop())
			req := exampleRequest()
			req.PaymentMethod = tt.method

			result, err := uc.Submit(context.Background(), req)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			switch {
			case tt.wantURL == nil && result.PaymentURL != nil:
				t.Errorf("expected nil payment url, got %s", *result.PaymentURL)
			case tt.wantURL != nil && result.PaymentURL == nil:
				t.Errorf("expected payment url %s, got nil", *tt.wantURL)
			case tt.wantURL != nil && *result.PaymentURL != *tt.wantURL:
				t.Errorf("expected payment url %s, got %s", *tt.wantURL, *result.PaymentURL)
			}
		})
	}
}

func TestSubmit_SaveFailureIsInternalError(t *testing.T) {
	cause := errors.New("connection refused")
	repo := &mockOrderRepository{SaveFunc: func(ctx context.Context, order domain.Order) error { return cause }}

	uc, _ := newTestSubmitUseCase(repo, zap.NewNop())

	_, err := uc.Submit(context.Background(), exampleRequest())

	var ie *apperrors.InternalError
	if !errors.As(err, &ie) {
		t.Fatalf("expected InternalError, got %T", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be preserved")
	}
}

func TestSubmit_WarnsWhenTotalsDisagreeWithCatalog(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	uc, _ := newTestSubmitUseCase(okRepo(), zap.New(core))

	// product 1 costs 24999000 in the catalog, the client claims 1000
	if _, err := uc.Submit(context.Background(), exampleRequest()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if logs.FilterMessage("client totals differ from catalog prices").Len() != 1 {
		t.Errorf("expected a totals mismatch warning, got %v", logs.All())
	}
}

func TestSubmit_NoWarningWhenTotalsMatch(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	uc, _ := newTestSubmitUseCase(okRepo(), zap.New(core))

	req := exampleRequest()
	req.Products = []domain.LineItem{{ID: "2", Price: "3299000", Quantity: "2"}}
	req.Subtotal = "6598000"
	req.ShippingCost = "15000"
	req.Total = "6613000"

	if _, err := uc.Submit(context.Background(), req); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if logs.Len() != 0 {
		t.Errorf("expected no warnings, got %v", logs.All())
	}
}

func TestSubmit_KeepsFractionalAndMissingAmounts(t *testing.T) {
	uc, _ := newTestSubmitUseCase(okRepo(), zap.NewNop())

	req := exampleRequest()
	req.Products = []domain.LineItem{{ID: "1", Price: "1000.5", Quantity: "1"}}
	req.Subtotal = "1000.5"
	req.ShippingCost = ""
	req.Total = ""

	result, err := uc.Submit(context.Background(), req)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if result.Order.Subtotal != "1000.5" {
		t.Errorf("expected subtotal 1000.5, got %q", result.Order.Subtotal)
	}
	if result.Order.ShippingCost != "" || result.Order.Total != "" {
		t.Errorf("expected missing amounts to stay missing, got %q / %q", result.Order.ShippingCost, result.Order.Total)
	}
}

func TestSubmit_RetriesOnceOnIDCollision(t *testing.T) {
	var attempts []string
	repo := &mockOrderRepository{SaveFunc: func(ctx context.Context, order domain.Order) error {
		attempts = append(attempts, order.ID)
		if len(attempts) == 1 {
			return apperrors.NewConflictError("order " + order.ID + " already exists")
		}
		return nil
	}}

	uc := NewSubmitOrderUseCase(
		repo,
		&sequenceIDs{ids: []string{"ORD1705287600000123", "ORD1705287600000456"}},
		&stubEstimator{},
		catalog.Default(),
		clock.NewFixed(testNow),
		"https://payment.example.com/pay",
		zap.NewNop(),
	)

	result, err := uc.Submit(context.Background(), exampleRequest())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(attempts) != 2 {
		t.Fatalf("expected 2 save attempts, got %d", len(attempts))
	}
	if result.Order.ID != "ORD1705287600000456" {
		t.Errorf("expected the regenerated id, got %s", result.Order.ID)
	}
	if result.PaymentURL == nil || *result.PaymentURL != "https://payment.example.com/pay/ORD1705287600000456" {
		t.Errorf("expected payment url for the regenerated id, got %v", result.PaymentURL)
	}
}

func TestSubmit_SecondCollisionIsInternalError(t *testing.T) {
	calls := 0
	repo := &mockOrderRepository{SaveFunc: func(ctx context.Context, order domain.Order) error {
		calls++
		return apperrors.NewConflictError("order " + order.ID + " already exists")
	}}

	uc := NewSubmitOrderUseCase(
		repo,
		&sequenceIDs{ids: []string{"ORD1", "ORD2"}},
		&stubEstimator{},
		catalog.Default(),
		clock.NewFixed(testNow),
		"https://payment.example.com/pay",
		zap.NewNop(),
	)

	_, err := uc.Submit(context.Background(), exampleRequest())

	var ie *apperrors.InternalError
	if !errors.As(err, &ie) {
		t.Fatalf("expected InternalError, got %T", err)
	}
	if calls != 2 {
		t.Errorf("expected 2 save attempts, got %d", calls)
	}
}

func TestSubmit_FractionalQuantitySkipsCatalogCheck(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	uc, _ := newTestSubmitUseCase(okRepo(), zap.New(core))

	req := exampleRequest()
	req.Products = []domain.LineItem{{ID: "1", Price: "1000", Quantity: "0.5"}}

	if _, err := uc.Submit(context.Background(), req); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if logs.FilterMessage("cannot price order from catalog").Len() != 1 {
		t.Errorf("expected an unpriceable order warning, got %v", logs.All())
	}
}

func strPtr(s string) *string { return &s }
