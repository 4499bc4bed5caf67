package tracking

import "checkout/internal/domain"

type StatusLabel struct {
	Status string `json:"status"`
	Text   string `json:"text"`
	Color  string `json:"color"`
}

var statusLabels = map[string]StatusLabel{
	domain.OrderStatusPending:    {Text: "Menunggu Pembayaran", Color: "yellow"},
	domain.OrderStatusPaid:       {Text: "Pembayaran Berhasil", Color: "blue"},
	domain.OrderStatusProcessing: {Text: "Sedang Diproses", Color: "purple"},
	domain.OrderStatusShipped:    {Text: "Dikirim", Color: "indigo"},
	domain.OrderStatusDelivered:  {Text: "Sampai Tujuan", Color: "green"},
}

// LabelFor returns the display text and colour for a status. Unknown statuses are shown as-is in grey.
func LabelFor(status string) StatusLabel {
	label, ok := statusLabels[status]
	if !ok {
		return StatusLabel{Status: status, Text: status, Color: "gray"}
	}
	label.Status = status
	return label
}
