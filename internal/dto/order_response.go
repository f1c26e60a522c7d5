package dto

import (
	"time"

	"orderdesk/internal/domain"
)

type BuyerDTO struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type LineItemDTO struct {
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
}

type OrderView struct {
	ID             string                    `json:"id"`
	InvoiceNo      string                    `json:"invoiceNo"`
	TotalPrice     string                    `json:"totalPrice"`
	TeamStatus     *string                   `json:"teamStatus"`
	Team           *domain.Team              `json:"team"`
	AssignedMember *string                   `json:"assignedMember"`
	PaymentType    string                    `json:"paymentType"`
	PaymentLabel   string                    `json:"paymentLabel"`
	CreatedAt      time.Time                 `json:"createdAt"`
	Buyer          BuyerDTO                  `json:"buyer"`
	MobileNumber   string                    `json:"mobileNumber"`
	Item           LineItemDTO               `json:"item"`
	Status         string                    `json:"status"`
	StatusBadge    domain.StatusPresentation `json:"statusBadge"`
}

type ListOrdersResponse struct {
	TraceID string      `json:"traceId"`
	Query   string      `json:"query"`
	Count   int         `json:"count"`
	Orders  []OrderView `json:"orders"`
}

type StatsResponse struct {
	TraceID string       `json:"traceId"`
	Stats   domain.Stats `json:"stats"`
}

// NewOrderView projects an order for display. teamLookup resolves the team
// reference and may return nil.
func NewOrderView(o domain.Order, teamLookup func(id *string) *domain.Team) OrderView {
	buyer := o.PrimaryBuyer()
	return OrderView{
		ID:             o.ID,
		InvoiceNo:      o.InvoiceNo,
		TotalPrice:     o.TotalPrice.StringFixed(2),
		TeamStatus:     o.TeamStatus,
		Team:           teamLookup(o.TeamStatus),
		AssignedMember: o.AssignedMember,
		PaymentType:    string(o.PaymentType),
		PaymentLabel:   o.PaymentType.Label(),
		CreatedAt:      o.CreatedAt,
		Buyer:          BuyerDTO{Name: buyer.Name, Email: buyer.Email},
		MobileNumber:   o.Delivery.MobileNumber,
		Item: LineItemDTO{
			ProductName: o.Item.ProductName,
			Quantity:    o.Item.Quantity,
			UnitPrice:   o.Item.UnitPrice.StringFixed(2),
		},
		Status:      string(o.Status),
		StatusBadge: domain.PresentStatus(o.Status),
	}
}
