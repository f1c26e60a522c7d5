package catalog

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"orderdesk/internal/domain"
)

type fileTeam struct {
	domain.Team `yaml:",inline"`
	Members     []domain.TeamMember `yaml:"members"`
}

type file struct {
	Teams []fileTeam `yaml:"teams"`
}

// LoadFile reads a catalog from YAML. An empty path returns the default catalog.
func LoadFile(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}
	if len(f.Teams) == 0 {
		return nil, fmt.Errorf("catalog file defines no teams")
	}

	entries := make([]TeamEntry, len(f.Teams))
	for i, t := range f.Teams {
		entries[i] = TeamEntry{Team: t.Team, Members: t.Members}
	}

	c, err := New(entries)
	if err != nil {
		return nil, fmt.Errorf("building catalog: %w", err)
	}
	return c, nil
}
