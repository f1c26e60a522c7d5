package repository

import (
	"context"
	"fmt"
	"sync"

	"orderdesk/internal/domain"
	"orderdesk/internal/errors"
)

// MemoryOrderRepository keeps orders in insertion order behind a mutex.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders []domain.Order
	index  map[string]int
}

func NewMemoryOrderRepository(orders []domain.Order) (*MemoryOrderRepository, error) {
	r := &MemoryOrderRepository{
		orders: make([]domain.Order, 0, len(orders)),
		index:  make(map[string]int, len(orders)),
	}

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, fmt.Errorf("invalid order %q: %w", o.ID, err)
		}
		if _, dup := r.index[o.ID]; dup {
			return nil, fmt.Errorf("duplicate order id %q", o.ID)
		}
		r.index[o.ID] = len(r.orders)
		r.orders = append(r.orders, o.Clone())
	}

	return r, nil
}

func (r *MemoryOrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Order, len(r.orders))
	for i, o := range r.orders {
		out[i] = o.Clone()
	}
	return out, nil
}

func (r *MemoryOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order %s not found", id))
	}
	o := r.orders[i].Clone()
	return &o, nil
}

// AssignTeamMember applies the assignment only if the order is still unassigned.
func (r *MemoryOrderRepository) AssignTeamMember(ctx context.Context, orderID, teamID, memberName string) (*domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[orderID]
	if !ok {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order %s not found", orderID))
	}

	updated := r.orders[i].Clone()
	if err := updated.Assign(teamID, memberName); err != nil {
		if err == domain.ErrAlreadyAssigned {
			return nil, errors.NewConflictError(errors.CodeAlreadyAssigned, fmt.Sprintf("order %s is already assigned", orderID))
		}
		return nil, errors.NewValidationError(err.Error())
	}
	r.orders[i] = updated

	out := updated.Clone()
	return &out, nil
}
