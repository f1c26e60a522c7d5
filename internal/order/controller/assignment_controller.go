package controller

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"orderdesk/internal/assignment"
	"orderdesk/internal/domain"
	"orderdesk/internal/dto"
)

type AssignmentUseCase interface {
	OpenSession() string
	Session(sessionID string) (assignment.Snapshot, error)
	SelectTeam(ctx context.Context, sessionID, orderID, teamID string) ([]domain.TeamMember, error)
	AssignMember(ctx context.Context, sessionID, memberID, memberName string) (*domain.Order, error)
	CancelSelection(sessionID string) error
}

type AssignmentController struct {
	responder
	useCase AssignmentUseCase
	teams   TeamLookup
}

func NewAssignmentController(useCase AssignmentUseCase, teams TeamLookup, logger *zap.Logger) *AssignmentController {
	return &AssignmentController{
		responder: newResponder(logger),
		useCase:   useCase,
		teams:     teams,
	}
}

func (c *AssignmentController) CreateSession(w http.ResponseWriter, r *http.Request) {
	id := c.useCase.OpenSession()

	snap, err := c.useCase.Session(id)
	if err != nil {
		traceID := uuid.New().String()
		c.handleUseCaseError(w, traceID, err, c.logger.With(zap.String("traceId", traceID)))
		return
	}

	c.writeJSON(w, http.StatusCreated, dto.SessionResponse{SessionID: id, Snapshot: snap})
}

func (c *AssignmentController) GetSession(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))
	sessionID := chi.URLParam(r, "sessionId")

	snap, err := c.useCase.Session(sessionID)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.SessionResponse{SessionID: sessionID, Snapshot: snap})
}

func (c *AssignmentController) SelectTeam(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	sessionID := chi.URLParam(r, "sessionId")
	logger := c.logger.With(zap.String("traceId", traceID), zap.String("sessionId", sessionID))

	var req dto.SelectTeamRequest
	if err := c.decode(w, r, &req); err != nil {
		logger.Warn("invalid select team request", zap.Error(err))
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	members, err := c.useCase.SelectTeam(r.Context(), sessionID, req.OrderID, req.TeamID)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	team, _ := c.teams.FindTeam(req.TeamID)
	if members == nil {
		members = []domain.TeamMember{}
	}

	c.writeJSON(w, http.StatusOK, dto.SelectTeamResponse{
		TraceID:   traceID,
		SessionID: sessionID,
		OrderID:   req.OrderID,
		Team:      team,
		Members:   members,
	})
}

func (c *AssignmentController) AssignMember(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	sessionID := chi.URLParam(r, "sessionId")
	logger := c.logger.With(zap.String("traceId", traceID), zap.String("sessionId", sessionID))

	var req dto.AssignMemberRequest
	if err := c.decode(w, r, &req); err != nil {
		logger.Warn("invalid assign member request", zap.Error(err))
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	order, err := c.useCase.AssignMember(r.Context(), sessionID, req.MemberID, req.MemberName)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.AssignMemberResponse{
		TraceID: traceID,
		Message: "Order " + order.ID + " has been assigned to " + *order.AssignedMember,
		Order:   dto.NewOrderView(*order, c.teams.Team),
	})
}

func (c *AssignmentController) CancelSelection(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	sessionID := chi.URLParam(r, "sessionId")
	logger := c.logger.With(zap.String("traceId", traceID), zap.String("sessionId", sessionID))

	if err := c.useCase.CancelSelection(sessionID); err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
