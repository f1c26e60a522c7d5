package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder() Order {
	return Order{
		ID:          "ORD003",
		InvoiceNo:   "INV-2024-003",
		TotalPrice:  decimal.RequireFromString("750.00"),
		PaymentType: PaymentOnline,
		CreatedAt:   time.Date(2024, 1, 16, 9, 15, 0, 0, time.UTC),
		Buyers:      []Buyer{{Name: "Mike Johnson", Email: "mike@example.com"}},
		Delivery:    DeliveryContact{MobileNumber: "+1234567892"},
		Item: LineItem{
			ProductName: "Standard Service",
			Quantity:    3,
			UnitPrice:   decimal.RequireFromString("250.00"),
		},
		Status: OrderStatusPending,
	}
}

func strPtr(s string) *string { return &s }

func TestOrder_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(o *Order)
		wantErr error
	}{
		{"valid unassigned", func(o *Order) {}, nil},
		{"valid assigned", func(o *Order) {
			o.TeamStatus = strPtr("accounting")
			o.AssignedMember = strPtr("Alice Johnson")
		}, nil},
		{"missing id", func(o *Order) { o.ID = "" }, ErrMissingID},
		{"missing invoice", func(o *Order) { o.InvoiceNo = "" }, ErrMissingInvoice},
		{"no buyers", func(o *Order) { o.Buyers = nil }, ErrBuyerCount},
		{"two buyers", func(o *Order) { o.Buyers = append(o.Buyers, Buyer{Name: "x"}) }, ErrBuyerCount},
		{"negative price", func(o *Order) { o.TotalPrice = decimal.NewFromInt(-1) }, ErrNegativePrice},
		{"zero quantity", func(o *Order) { o.Item.Quantity = 0 }, ErrInvalidQuantity},
		{"team without member", func(o *Order) { o.TeamStatus = strPtr("quality") }, ErrPartialAssignment},
		{"member without team", func(o *Order) { o.AssignedMember = strPtr("Eve Brown") }, ErrPartialAssignment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newOrder()
			tt.mutate(&o)
			assert.ErrorIs(t, o.Validate(), tt.wantErr)
		})
	}
}

func TestOrder_Assign(t *testing.T) {
	o := newOrder()

	require.NoError(t, o.Assign("accounting", "Alice Johnson"))

	assert.True(t, o.IsAssigned())
	assert.Equal(t, "accounting", *o.TeamStatus)
	assert.Equal(t, "Alice Johnson", *o.AssignedMember)
	assert.Equal(t, OrderStatusInProgress, o.Status)
	assert.NoError(t, o.Validate())
}

func TestOrder_Assign_AlreadyAssigned(t *testing.T) {
	o := newOrder()
	require.NoError(t, o.Assign("accounting", "Alice Johnson"))

	err := o.Assign("delivery", "Ivy Chen")

	assert.ErrorIs(t, err, ErrAlreadyAssigned)
	assert.Equal(t, "accounting", *o.TeamStatus)
}

func TestOrder_Assign_EmptyArguments(t *testing.T) {
	o := newOrder()

	assert.ErrorIs(t, o.Assign("", "Alice Johnson"), ErrEmptyAssignmentArg)
	assert.ErrorIs(t, o.Assign("accounting", ""), ErrEmptyAssignmentArg)
	assert.False(t, o.IsAssigned())
}

func TestOrder_Clone_IsIndependent(t *testing.T) {
	o := newOrder()
	o.TeamStatus = strPtr("designing")
	o.AssignedMember = strPtr("Carol Davis")

	c := o.Clone()
	*c.TeamStatus = "delivery"
	c.Buyers[0].Name = "Someone Else"

	assert.Equal(t, "designing", *o.TeamStatus)
	assert.Equal(t, "Mike Johnson", o.Buyers[0].Name)
}

func TestOrder_PrimaryBuyer(t *testing.T) {
	o := newOrder()
	assert.Equal(t, "Mike Johnson", o.PrimaryBuyer().Name)

	o.Buyers = nil
	assert.Equal(t, Buyer{}, o.PrimaryBuyer())
}

func TestPaymentType_Label(t *testing.T) {
	assert.Equal(t, "Online", PaymentOnline.Label())
	assert.Equal(t, "COD", PaymentCOD.Label())
	assert.Equal(t, "COD", PaymentType("wire").Label())
}

func TestPresentStatus(t *testing.T) {
	assert.Equal(t, StatusPresentation{Label: "COMPLETED", Color: "success", Icon: "check-circle"}, PresentStatus(OrderStatusCompleted))
	assert.Equal(t, StatusPresentation{Label: "IN PROGRESS", Color: "warning", Icon: "clock"}, PresentStatus(OrderStatusInProgress))
	assert.Equal(t, StatusPresentation{Label: "PENDING", Color: "destructive", Icon: "alert-circle"}, PresentStatus(OrderStatusPending))
	assert.Equal(t, StatusPresentation{Label: "ON HOLD", Color: "muted", Icon: "clock"}, PresentStatus(Status("on_hold")))
}
