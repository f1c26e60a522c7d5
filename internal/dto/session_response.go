package dto

import (
	"time"

	"orderdesk/internal/assignment"
	"orderdesk/internal/domain"
	apperrors "orderdesk/internal/errors"
)

type SessionResponse struct {
	SessionID string `json:"sessionId"`
	assignment.Snapshot
}

type SelectTeamResponse struct {
	TraceID   string              `json:"traceId"`
	SessionID string              `json:"sessionId"`
	OrderID   string              `json:"orderId"`
	Team      domain.Team         `json:"team"`
	Members   []domain.TeamMember `json:"members"`
}

type AssignMemberResponse struct {
	TraceID string    `json:"traceId"`
	Message string    `json:"message"`
	Order   OrderView `json:"order"`
}

type ErrorResponse struct {
	TraceID   string                       `json:"traceId"`
	Status    int                          `json:"status"`
	Code      string                       `json:"code"`
	Message   string                       `json:"message"`
	Details   []apperrors.ValidationDetail `json:"details,omitempty"`
	Timestamp time.Time                    `json:"timestamp"`
}
