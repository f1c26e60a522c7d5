package service

import "orderdesk/internal/domain"

func ComputeStats(orders []domain.Order) domain.Stats {
	s := domain.Stats{Total: len(orders)}
	for _, o := range orders {
		switch o.Status {
		case domain.OrderStatusCompleted:
			s.Completed++
		case domain.OrderStatusInProgress:
			s.InProgress++
		}
		if !o.IsAssigned() {
			s.Unassigned++
		}
	}
	return s
}
