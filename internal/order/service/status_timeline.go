package service

import (
	"time"

	"checkout/internal/domain"
)

const demoTrackingNumber = "JNE1234567890"

// DemoSnapshot is the order shown by the tracking page. Only the id comes from the caller.
func DemoSnapshot(orderID string) domain.OrderSnapshot {
	return domain.OrderSnapshot{
		ID:            orderID,
		Status:        domain.OrderStatusShipped,
		CreatedAt:     time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		UpdatedAt:     time.Date(2024, 1, 16, 9, 15, 0, 0, time.UTC),
		Subtotal:      50000,
		ShippingCost:  15000,
		Total:         65000,
		PaymentMethod: "transfer",
		Courier: domain.ShipmentCourier{
			ID:             "jne",
			Name:           "JNE Express",
			TrackingNumber: demoTrackingNumber,
		},
		Address: domain.ShipmentAddress{
			Name:    "Bahlil",
			Phone:   "0812-3456-7890",
			Address: "Jl. Sudirman No. 123, RT 001/RW 002, Kel. Senayan, Kec. Kebayoran Baru, Jakarta Selatan, DKI Jakarta, 12190",
		},
		Products: []domain.LineItem{
			{
				ID:       "1",
				Name:     "Jasa Service Laptop & PC",
				Price:    "50000",
				Quantity: "1",
				Variant:  "Jasa Service Laptop",
			},
		},
	}
}

// DemoStatusHistory returns a fresh copy of the five-step timeline; the last step is still open.
func DemoStatusHistory() []domain.StatusHistoryEntry {
	return []domain.StatusHistoryEntry{
		{
			ID:          1,
			Status:      "Menunggu Pembayaran",
			Time:        "2024-01-15 10:30",
			Description: "Menunggu konfirmasi pembayaran dari pembeli",
			Completed:   true,
			Icon:        "clock",
		},
		{
			ID:          2,
			Status:      "Pembayaran Berhasil",
			Time:        "2024-01-15 11:45",
			Description: "Pembayaran telah dikonfirmasi",
			Completed:   true,
			Icon:        "check-circle",
		},
		{
			ID:          3,
			Status:      "Sedang Diproses",
			Time:        "2024-01-15 14:20",
			Description: "Pesanan sedang disiapkan oleh penjual",
			Completed:   true,
			Icon:        "package",
		},
		{
			ID:             4,
			Status:         "Dikirim",
			Time:           "2024-01-16 09:15",
			Description:    "Pesanan telah dikirim dengan resi " + demoTrackingNumber,
			Completed:      true,
			Icon:           "truck",
			TrackingNumber: demoTrackingNumber,
		},
		{
			ID:          5,
			Status:      "Sampai Tujuan",
			Time:        "Estimasi: 2024-01-17",
			Description: "Pesanan sedang dalam perjalanan ke alamat tujuan",
			Completed:   false,
			Icon:        "check-circle",
		},
	}
}
