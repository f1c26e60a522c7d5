package service

import (
	"strings"

	"orderdesk/internal/domain"
)

// Filter keeps orders whose invoice number, primary buyer name or product
// name contains the query, ignoring case. An empty query keeps everything.
// The input slice is not modified and its order is preserved.
func Filter(orders []domain.Order, query string) []domain.Order {
	out := make([]domain.Order, 0, len(orders))
	if query == "" {
		return append(out, orders...)
	}

	q := strings.ToLower(query)
	for _, o := range orders {
		if matches(o, q) {
			out = append(out, o)
		}
	}
	return out
}

func matches(o domain.Order, lowerQuery string) bool {
	fields := []string{o.InvoiceNo, o.PrimaryBuyer().Name, o.Item.ProductName}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), lowerQuery) {
			return true
		}
	}
	return false
}
