package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"orderdesk/internal/assignment"
	"orderdesk/internal/domain"
	apperrors "orderdesk/internal/errors"
	"orderdesk/internal/metrics"
	"orderdesk/internal/notify"
)

const (
	titleAssignSuccess = "Assignment Successful"
	titleAssignFailed  = "Assignment Failed"
	messageAssignRetry = "Failed to assign order. Please try again."
)

// Backoff per attempt: attempt 1 (0ms), attempt 2 (100ms), attempt 3+ (200ms).
var retryBackoffs = []time.Duration{0, 100 * time.Millisecond, 200 * time.Millisecond}

type AssignmentUseCase struct {
	orders           OrderRepository
	teams            ReferenceData
	sessions         SessionStore
	notifier         Notifier
	metrics          MetricsRecorder
	logger           *zap.Logger
	timeout          time.Duration
	maxRetryAttempts int
	now              func() time.Time
}

func NewAssignmentUseCase(
	orders OrderRepository,
	teams ReferenceData,
	sessions SessionStore,
	notifier Notifier,
	metrics MetricsRecorder,
	logger *zap.Logger,
	timeout time.Duration,
	maxRetryAttempts int,
) *AssignmentUseCase {
	if maxRetryAttempts < 1 {
		maxRetryAttempts = 1
	}
	return &AssignmentUseCase{
		orders:           orders,
		teams:            teams,
		sessions:         sessions,
		notifier:         notifier,
		metrics:          metrics,
		logger:           logger,
		timeout:          timeout,
		maxRetryAttempts: maxRetryAttempts,
		now:              time.Now,
	}
}

func (uc *AssignmentUseCase) OpenSession() string {
	id := uc.sessions.Open()
	uc.logger.Debug("assignment session opened", zap.String("sessionId", id))
	return id
}

func (uc *AssignmentUseCase) Session(sessionID string) (assignment.Snapshot, error) {
	flow, err := uc.sessions.Get(sessionID)
	if err != nil {
		return assignment.Snapshot{}, err
	}
	return flow.Snapshot(), nil
}

// SelectTeam validates the order and team and records them on the session.
// It returns the roster to pick a member from. No order is modified.
func (uc *AssignmentUseCase) SelectTeam(ctx context.Context, sessionID, orderID, teamID string) ([]domain.TeamMember, error) {
	flow, err := uc.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	if _, ok := uc.teams.FindTeam(teamID); !ok {
		return nil, apperrors.NewValidationError("unknown team", apperrors.ValidationDetail{
			Field:   "teamId",
			Message: fmt.Sprintf("team %q does not exist", teamID),
		})
	}

	order, err := uc.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.IsAssigned() {
		return nil, apperrors.NewConflictError(apperrors.CodeAlreadyAssigned, fmt.Sprintf("order %s is already assigned", orderID))
	}

	members := uc.teams.Members(teamID)
	if err := flow.SelectTeam(orderID, teamID, members); err != nil {
		return nil, err
	}

	uc.logger.Info("team selected", zap.String("sessionId", sessionID), zap.String("orderId", orderID), zap.String("teamId", teamID))
	return members, nil
}

// AssignMember assigns the selected order to a member of the selected team.
// On failure the selection is kept so the call can be retried.
func (uc *AssignmentUseCase) AssignMember(ctx context.Context, sessionID, memberID, memberName string) (*domain.Order, error) {
	flow, err := uc.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	sel, err := flow.Begin()
	if err != nil {
		return nil, err
	}

	// Every exit short of Complete, panics included, releases the flow.
	completed := false
	defer func() {
		if !completed {
			flow.Fail()
		}
	}()

	member, err := findMember(sel.Members, memberID, memberName)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("assignment started",
		zap.String("sessionId", sessionID),
		zap.String("orderId", sel.OrderID),
		zap.String("teamId", sel.TeamID),
		zap.String("memberId", member.ID),
	)

	assignCtx := ctx
	if uc.timeout > 0 {
		var cancel context.CancelFunc
		assignCtx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	order, err := uc.assignWithRetry(assignCtx, sel.OrderID, sel.TeamID, member.Name)
	if err != nil {
		uc.recordFailure(ctx, sel.OrderID, err)
		return nil, err
	}

	completed = true
	flow.Complete()
	uc.metrics.RecordAssignment(metrics.ResultSuccess)
	uc.notify(ctx, notify.Notification{
		Title:    titleAssignSuccess,
		Message:  fmt.Sprintf("Order %s has been assigned to %s", sel.OrderID, member.Name),
		Severity: notify.SeveritySuccess,
		OrderID:  sel.OrderID,
	})
	uc.logger.Info("assignment completed", zap.String("orderId", sel.OrderID), zap.String("member", member.Name))

	return order, nil
}

// CancelSelection closes the member picker without assigning.
func (uc *AssignmentUseCase) CancelSelection(sessionID string) error {
	flow, err := uc.sessions.Get(sessionID)
	if err != nil {
		return err
	}
	return flow.Cancel()
}

func findMember(members []domain.TeamMember, memberID, memberName string) (domain.TeamMember, error) {
	for _, m := range members {
		if m.ID != memberID {
			continue
		}
		if memberName != "" && memberName != m.Name {
			return domain.TeamMember{}, apperrors.NewValidationError("member name mismatch", apperrors.ValidationDetail{
				Field:   "memberName",
				Message: fmt.Sprintf("member %s is %q", memberID, m.Name),
			})
		}
		return m, nil
	}
	return domain.TeamMember{}, apperrors.NewValidationError("unknown member", apperrors.ValidationDetail{
		Field:   "memberId",
		Message: fmt.Sprintf("member %q is not part of the selected team", memberID),
	})
}

func (uc *AssignmentUseCase) assignWithRetry(ctx context.Context, orderID, teamID, memberName string) (*domain.Order, error) {
	for attempt := 1; attempt <= uc.maxRetryAttempts; attempt++ {
		order, err := uc.orders.AssignTeamMember(ctx, orderID, teamID, memberName)
		if err == nil {
			return order, nil
		}

		if !isDeadlockError(err) {
			return nil, err
		}
		if attempt == uc.maxRetryAttempts {
			break
		}

		uc.logger.Warn("deadlock detected, retrying", zap.Int("attempt", attempt), zap.Int("maxAttempts", uc.maxRetryAttempts), zap.String("orderId", orderID))
		if err := sleep(ctx, backoff(attempt)); err != nil {
			return nil, err
		}
	}

	return nil, apperrors.NewDeadlockError("max retries exceeded")
}

// backoff returns the wait after a failed attempt with ±20% jitter.
func backoff(attempt int) time.Duration {
	i := attempt
	if i >= len(retryBackoffs) {
		i = len(retryBackoffs) - 1
	}
	base := retryBackoffs[i]
	return time.Duration(float64(base) * (0.8 + rand.Float64()*0.4))
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func isDeadlockError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1213 || mysqlErr.Number == 1205
	}
	return false
}

func (uc *AssignmentUseCase) recordFailure(ctx context.Context, orderID string, err error) {
	result := metrics.ResultFailure
	if _, ok := apperrors.IsConflictError(err); ok {
		result = metrics.ResultConflict
	}
	uc.metrics.RecordAssignment(result)
	uc.logger.Warn("assignment failed", zap.String("orderId", orderID), zap.Error(err))

	uc.notify(ctx, notify.Notification{
		Title:    titleAssignFailed,
		Message:  messageAssignRetry,
		Severity: notify.SeverityError,
		OrderID:  orderID,
	})
}

func (uc *AssignmentUseCase) notify(ctx context.Context, n notify.Notification) {
	n.Timestamp = uc.now().UTC()
	if err := uc.notifier.Notify(ctx, n); err != nil {
		uc.logger.Error("failed to deliver notification", zap.String("title", n.Title), zap.Error(err))
	}
}
