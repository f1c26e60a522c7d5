package usecase

import (
	"context"

	"orderdesk/internal/assignment"
	"orderdesk/internal/domain"
	"orderdesk/internal/notify"
)

type OrderRepository interface {
	List(ctx context.Context) ([]domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	AssignTeamMember(ctx context.Context, orderID, teamID, memberName string) (*domain.Order, error)
}

type ReferenceData interface {
	FindTeam(id string) (domain.Team, bool)
	Members(teamID string) []domain.TeamMember
}

type SessionStore interface {
	Open() string
	Get(id string) (*assignment.Flow, error)
}

type MetricsRecorder interface {
	RecordAssignment(result string)
	RecordExport(rows int)
}

type Notifier = notify.Sink
