package assignment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderdesk/internal/domain"
	"orderdesk/internal/errors"
)

var accountingMembers = []domain.TeamMember{
	{ID: "1", Name: "Alice Johnson", Email: "alice@company.com"},
	{ID: "2", Name: "Bob Smith", Email: "bob@company.com"},
}

func conflictCode(t *testing.T, err error) string {
	t.Helper()
	ce, ok := errors.IsConflictError(err)
	require.True(t, ok, "expected ConflictError, got %v", err)
	return ce.Code
}

func TestFlow_StartsIdle(t *testing.T) {
	s := NewFlow().Snapshot()

	assert.Equal(t, PhaseIdle, s.Phase)
	assert.Nil(t, s.Selection)
	assert.False(t, s.Busy)
}

func TestFlow_HappyPath(t *testing.T) {
	f := NewFlow()

	require.NoError(t, f.SelectTeam("ORD003", "accounting", accountingMembers))
	s := f.Snapshot()
	assert.Equal(t, PhaseTeamChosen, s.Phase)
	assert.Equal(t, "ORD003", s.Selection.OrderID)
	assert.Len(t, s.Selection.Members, 2)

	sel, err := f.Begin()
	require.NoError(t, err)
	assert.Equal(t, "accounting", sel.TeamID)
	assert.True(t, f.Snapshot().Busy)

	f.Complete()
	assert.Equal(t, PhaseIdle, f.Snapshot().Phase)
	assert.Nil(t, f.Snapshot().Selection)
}

func TestFlow_SelectTeamReplacesSelection(t *testing.T) {
	f := NewFlow()

	require.NoError(t, f.SelectTeam("ORD003", "accounting", accountingMembers))
	require.NoError(t, f.SelectTeam("ORD003", "delivery", nil))

	assert.Equal(t, "delivery", f.Snapshot().Selection.TeamID)
}

func TestFlow_BeginWithoutSelectionIsNoOp(t *testing.T) {
	f := NewFlow()

	_, err := f.Begin()

	assert.Equal(t, errors.CodeNoSelection, conflictCode(t, err))
	assert.Equal(t, PhaseIdle, f.Snapshot().Phase)
}

func TestFlow_RejectsWhileAssigning(t *testing.T) {
	f := NewFlow()
	require.NoError(t, f.SelectTeam("ORD003", "accounting", accountingMembers))
	_, err := f.Begin()
	require.NoError(t, err)

	_, err = f.Begin()
	assert.Equal(t, errors.CodeAssignmentInFlight, conflictCode(t, err))

	err = f.SelectTeam("ORD003", "delivery", nil)
	assert.Equal(t, errors.CodeAssignmentInFlight, conflictCode(t, err))

	err = f.Cancel()
	assert.Equal(t, errors.CodeAssignmentInFlight, conflictCode(t, err))

	assert.Equal(t, "accounting", f.Snapshot().Selection.TeamID)
}

func TestFlow_FailKeepsSelectionForRetry(t *testing.T) {
	f := NewFlow()
	require.NoError(t, f.SelectTeam("ORD003", "accounting", accountingMembers))
	_, err := f.Begin()
	require.NoError(t, err)

	f.Fail()

	s := f.Snapshot()
	assert.Equal(t, PhaseTeamChosen, s.Phase)
	assert.False(t, s.Busy)
	assert.Equal(t, "ORD003", s.Selection.OrderID)

	_, err = f.Begin()
	assert.NoError(t, err)
}

func TestFlow_FailOutsideAssigningIsIgnored(t *testing.T) {
	f := NewFlow()
	f.Fail()
	assert.Equal(t, PhaseIdle, f.Snapshot().Phase)
}

func TestFlow_Cancel(t *testing.T) {
	f := NewFlow()
	require.NoError(t, f.SelectTeam("ORD003", "accounting", accountingMembers))

	require.NoError(t, f.Cancel())

	assert.Equal(t, PhaseIdle, f.Snapshot().Phase)
	assert.Nil(t, f.Snapshot().Selection)
}

func TestFlow_SnapshotIsCopy(t *testing.T) {
	f := NewFlow()
	require.NoError(t, f.SelectTeam("ORD003", "accounting", accountingMembers))

	s := f.Snapshot()
	s.Selection.Members[0].Name = "changed"
	s.Selection.TeamID = "changed"

	assert.Equal(t, "Alice Johnson", f.Snapshot().Selection.Members[0].Name)
	assert.Equal(t, "accounting", f.Snapshot().Selection.TeamID)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	a := r.Open()
	b := r.Open()
	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, r.Len())

	fa, err := r.Get(a)
	require.NoError(t, err)
	fb, err := r.Get(b)
	require.NoError(t, err)

	require.NoError(t, fa.SelectTeam("ORD003", "accounting", accountingMembers))
	assert.Equal(t, PhaseIdle, fb.Snapshot().Phase)

	_, err = r.Get("missing")
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}
