package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"orderdesk/internal/domain"
)

func ptr(s string) *string { return &s }

// SampleOrders returns the demo dataset served by the in-memory store.
func SampleOrders() []domain.Order {
	return []domain.Order{
		{
			ID:             "ORD001",
			InvoiceNo:      "INV-2024-001",
			TotalPrice:     decimal.RequireFromString("2499.99"),
			TeamStatus:     ptr("accounting"),
			AssignedMember: ptr("Alice Johnson"),
			PaymentType:    domain.PaymentOnline,
			CreatedAt:      time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
			Buyers:         []domain.Buyer{{Name: "John Doe", Email: "john@example.com"}},
			Delivery:       domain.DeliveryContact{MobileNumber: "+1234567890"},
			Item: domain.LineItem{
				ProductName: "Premium Widget",
				Quantity:    2,
				UnitPrice:   decimal.RequireFromString("1249.99"),
			},
			Status: domain.OrderStatusInProgress,
		},
		{
			ID:             "ORD002",
			InvoiceNo:      "INV-2024-002",
			TotalPrice:     decimal.RequireFromString("1899.50"),
			TeamStatus:     ptr("designing"),
			AssignedMember: ptr("Carol Davis"),
			PaymentType:    domain.PaymentCOD,
			CreatedAt:      time.Date(2024, 1, 14, 14, 20, 0, 0, time.UTC),
			Buyers:         []domain.Buyer{{Name: "Jane Smith", Email: "jane@example.com"}},
			Delivery:       domain.DeliveryContact{MobileNumber: "+1234567891"},
			Item: domain.LineItem{
				ProductName: "Custom Design Package",
				Quantity:    1,
				UnitPrice:   decimal.RequireFromString("1899.50"),
			},
			Status: domain.OrderStatusCompleted,
		},
		{
			ID:          "ORD003",
			InvoiceNo:   "INV-2024-003",
			TotalPrice:  decimal.RequireFromString("750.00"),
			PaymentType: domain.PaymentOnline,
			CreatedAt:   time.Date(2024, 1, 16, 9, 15, 0, 0, time.UTC),
			Buyers:      []domain.Buyer{{Name: "Mike Johnson", Email: "mike@example.com"}},
			Delivery:    domain.DeliveryContact{MobileNumber: "+1234567892"},
			Item: domain.LineItem{
				ProductName: "Standard Service",
				Quantity:    3,
				UnitPrice:   decimal.RequireFromString("250.00"),
			},
			Status: domain.OrderStatusPending,
		},
	}
}
