package catalog

import (
	"fmt"

	"orderdesk/internal/domain"
)

// Catalog holds the fixed set of teams and their rosters. It is immutable
// after construction and safe for concurrent use.
type Catalog struct {
	teams   []domain.Team
	byID    map[string]domain.Team
	members map[string][]domain.TeamMember
}

type TeamEntry struct {
	Team    domain.Team
	Members []domain.TeamMember
}

func New(entries []TeamEntry) (*Catalog, error) {
	c := &Catalog{
		byID:    make(map[string]domain.Team, len(entries)),
		members: make(map[string][]domain.TeamMember, len(entries)),
	}

	memberIDs := make(map[string]string)
	for _, e := range entries {
		if e.Team.ID == "" {
			return nil, fmt.Errorf("team without id")
		}
		if _, dup := c.byID[e.Team.ID]; dup {
			return nil, fmt.Errorf("duplicate team id %q", e.Team.ID)
		}
		for _, m := range e.Members {
			if m.ID == "" || m.Name == "" {
				return nil, fmt.Errorf("team %q has a member without id or name", e.Team.ID)
			}
			if other, dup := memberIDs[m.ID]; dup {
				return nil, fmt.Errorf("member id %q used by teams %q and %q", m.ID, other, e.Team.ID)
			}
			memberIDs[m.ID] = e.Team.ID
		}

		c.teams = append(c.teams, e.Team)
		c.byID[e.Team.ID] = e.Team
		c.members[e.Team.ID] = append([]domain.TeamMember(nil), e.Members...)
	}

	return c, nil
}

// Default returns the built-in five-team catalog.
func Default() *Catalog {
	c, err := New(defaultEntries)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Teams() []domain.Team {
	return append([]domain.Team(nil), c.teams...)
}

func (c *Catalog) FindTeam(id string) (domain.Team, bool) {
	t, ok := c.byID[id]
	return t, ok
}

// Team resolves an optional team reference. Nil or unknown ids yield nil.
func (c *Catalog) Team(id *string) *domain.Team {
	if id == nil {
		return nil
	}
	t, ok := c.byID[*id]
	if !ok {
		return nil
	}
	return &t
}

// Members returns the roster of a team, or nil for an unknown team.
func (c *Catalog) Members(teamID string) []domain.TeamMember {
	m, ok := c.members[teamID]
	if !ok {
		return nil
	}
	return append([]domain.TeamMember(nil), m...)
}

var defaultEntries = []TeamEntry{
	{
		Team: domain.Team{ID: "accounting", Name: "Accounting Team", Color: "blue"},
		Members: []domain.TeamMember{
			{ID: "1", Name: "Alice Johnson", Email: "alice@company.com"},
			{ID: "2", Name: "Bob Smith", Email: "bob@company.com"},
		},
	},
	{
		Team: domain.Team{ID: "designing", Name: "Designing Team", Color: "purple"},
		Members: []domain.TeamMember{
			{ID: "3", Name: "Carol Davis", Email: "carol@company.com"},
			{ID: "4", Name: "David Wilson", Email: "david@company.com"},
		},
	},
	{
		Team: domain.Team{ID: "quality", Name: "Quality Check", Color: "orange"},
		Members: []domain.TeamMember{
			{ID: "5", Name: "Eve Brown", Email: "eve@company.com"},
			{ID: "6", Name: "Frank Miller", Email: "frank@company.com"},
		},
	},
	{
		Team: domain.Team{ID: "production", Name: "Production Team", Color: "green"},
		Members: []domain.TeamMember{
			{ID: "7", Name: "Grace Lee", Email: "grace@company.com"},
			{ID: "8", Name: "Henry Taylor", Email: "henry@company.com"},
		},
	},
	{
		Team: domain.Team{ID: "delivery", Name: "Delivery Team", Color: "red"},
		Members: []domain.TeamMember{
			{ID: "9", Name: "Ivy Chen", Email: "ivy@company.com"},
			{ID: "10", Name: "Jack Anderson", Email: "jack@company.com"},
		},
	},
}
