package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	OrderStatusPending    Status = "pending"
	OrderStatusInProgress Status = "in_progress"
	OrderStatusCompleted  Status = "completed"
)

type PaymentType string

const (
	PaymentOnline PaymentType = "online"
	PaymentCOD    PaymentType = "cod"
)

// Label returns the display text for the payment type. Anything other than
// online is treated as cash on delivery.
func (p PaymentType) Label() string {
	if p == PaymentOnline {
		return "Online"
	}
	return "COD"
}

type Buyer struct {
	Name  string
	Email string
}

type DeliveryContact struct {
	MobileNumber string
}

type LineItem struct {
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

type Order struct {
	ID             string
	InvoiceNo      string
	TotalPrice     decimal.Decimal
	TeamStatus     *string
	AssignedMember *string
	PaymentType    PaymentType
	CreatedAt      time.Time
	Buyers         []Buyer
	Delivery       DeliveryContact
	Item           LineItem
	Status         Status
}

var (
	ErrMissingID          = errors.New("order id is required")
	ErrMissingInvoice     = errors.New("invoice number is required")
	ErrBuyerCount         = errors.New("order must have exactly one buyer")
	ErrNegativePrice      = errors.New("total price must not be negative")
	ErrInvalidQuantity    = errors.New("item quantity must be at least 1")
	ErrPartialAssignment  = errors.New("team and member must be set together")
	ErrAlreadyAssigned    = errors.New("order is already assigned")
	ErrEmptyAssignmentArg = errors.New("team and member are required")
)

func (o Order) Validate() error {
	if o.ID == "" {
		return ErrMissingID
	}
	if o.InvoiceNo == "" {
		return ErrMissingInvoice
	}
	if len(o.Buyers) != 1 {
		return ErrBuyerCount
	}
	if o.TotalPrice.IsNegative() {
		return ErrNegativePrice
	}
	if o.Item.Quantity < 1 {
		return ErrInvalidQuantity
	}
	if (o.TeamStatus == nil) != (o.AssignedMember == nil) {
		return ErrPartialAssignment
	}
	return nil
}

// PrimaryBuyer returns the first buyer, or a zero Buyer when there is none.
func (o Order) PrimaryBuyer() Buyer {
	if len(o.Buyers) == 0 {
		return Buyer{}
	}
	return o.Buyers[0]
}

func (o Order) IsAssigned() bool {
	return o.TeamStatus != nil
}

// Assign sets team, member and status in one step. Only unassigned orders
// can be assigned.
func (o *Order) Assign(teamID, memberName string) error {
	if teamID == "" || memberName == "" {
		return ErrEmptyAssignmentArg
	}
	if o.IsAssigned() {
		return ErrAlreadyAssigned
	}
	o.TeamStatus = &teamID
	o.AssignedMember = &memberName
	o.Status = OrderStatusInProgress
	return nil
}

// Clone returns a deep copy so callers cannot mutate stored state.
func (o Order) Clone() Order {
	c := o
	if o.TeamStatus != nil {
		team := *o.TeamStatus
		c.TeamStatus = &team
	}
	if o.AssignedMember != nil {
		member := *o.AssignedMember
		c.AssignedMember = &member
	}
	c.Buyers = append([]Buyer(nil), o.Buyers...)
	return c
}
