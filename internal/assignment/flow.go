package assignment

import (
	"sync"

	"orderdesk/internal/domain"
	"orderdesk/internal/errors"
)

type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseTeamChosen Phase = "team_chosen"
	PhaseAssigning  Phase = "assigning"
)

// Selection is the order and team picked in the first step of the flow.
type Selection struct {
	OrderID string              `json:"orderId"`
	TeamID  string              `json:"teamId"`
	Members []domain.TeamMember `json:"members"`
}

// Snapshot is a point-in-time copy of a flow.
type Snapshot struct {
	Phase     Phase      `json:"phase"`
	Selection *Selection `json:"selection,omitempty"`
	Busy      bool       `json:"busy"`
}

// Flow tracks a single operator's two-step assignment. The order list is
// never stored here.
type Flow struct {
	mu        sync.Mutex
	phase     Phase
	selection *Selection
}

func NewFlow() *Flow {
	return &Flow{phase: PhaseIdle}
}

// SelectTeam records the order and team, replacing any previous choice.
func (f *Flow) SelectTeam(orderID, teamID string, members []domain.TeamMember) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.phase == PhaseAssigning {
		return errors.NewConflictError(errors.CodeAssignmentInFlight, "an assignment is already in progress")
	}

	f.selection = &Selection{
		OrderID: orderID,
		TeamID:  teamID,
		Members: append([]domain.TeamMember(nil), members...),
	}
	f.phase = PhaseTeamChosen
	return nil
}

// Begin moves a chosen selection into Assigning and returns it.
func (f *Flow) Begin() (Selection, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.phase {
	case PhaseIdle:
		return Selection{}, errors.NewConflictError(errors.CodeNoSelection, "no order and team selected")
	case PhaseAssigning:
		return Selection{}, errors.NewConflictError(errors.CodeAssignmentInFlight, "an assignment is already in progress")
	}

	f.phase = PhaseAssigning
	return *f.selection, nil
}

// Complete ends a successful assignment and clears the selection.
func (f *Flow) Complete() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.phase = PhaseIdle
	f.selection = nil
}

// Fail returns to TeamChosen with the selection kept so the operator can retry.
func (f *Flow) Fail() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.phase != PhaseAssigning {
		return
	}
	f.phase = PhaseTeamChosen
}

// Cancel discards the selection. It is rejected while an assignment is running.
func (f *Flow) Cancel() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.phase == PhaseAssigning {
		return errors.NewConflictError(errors.CodeAssignmentInFlight, "an assignment is already in progress")
	}
	f.phase = PhaseIdle
	f.selection = nil
	return nil
}

func (f *Flow) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	s := Snapshot{
		Phase: f.phase,
		Busy:  f.phase == PhaseAssigning,
	}
	if f.selection != nil {
		sel := *f.selection
		sel.Members = append([]domain.TeamMember(nil), f.selection.Members...)
		s.Selection = &sel
	}
	return s
}
