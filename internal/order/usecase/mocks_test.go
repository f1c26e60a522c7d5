package usecase

import (
	"context"
	"sync"

	"orderdesk/internal/domain"
	"orderdesk/internal/notify"
)

type mockOrderRepository struct {
	ListFunc             func(ctx context.Context) ([]domain.Order, error)
	FindByIDFunc         func(ctx context.Context, id string) (*domain.Order, error)
	AssignTeamMemberFunc func(ctx context.Context, orderID, teamID, memberName string) (*domain.Order, error)
}

func (m *mockOrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	return m.ListFunc(ctx)
}

func (m *mockOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockOrderRepository) AssignTeamMember(ctx context.Context, orderID, teamID, memberName string) (*domain.Order, error) {
	return m.AssignTeamMemberFunc(ctx, orderID, teamID, memberName)
}

type recordingNotifier struct {
	mu    sync.Mutex
	items []notify.Notification
	err   error
}

func (n *recordingNotifier) Notify(_ context.Context, item notify.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.items = append(n.items, item)
	return n.err
}

func (n *recordingNotifier) all() []notify.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notify.Notification(nil), n.items...)
}

type recordingMetrics struct {
	mu          sync.Mutex
	assignments []string
	exports     []int
}

func (m *recordingMetrics) RecordAssignment(result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assignments = append(m.assignments, result)
}

func (m *recordingMetrics) RecordExport(rows int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.exports = append(m.exports, rows)
}
