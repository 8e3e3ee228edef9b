package store

import (
	"context"

	"github.com/pfrederiksen/nfl-cap-tracker/internal/capdata"
)

// Memory is an in-process store with the same replace-by-team semantics as
// Postgres. It backs --dry-run and tests.
type Memory struct {
	teams   map[string][]capdata.PlayerCapRecord
	ordered []string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		teams: make(map[string][]capdata.PlayerCapRecord),
	}
}

// ReplaceTeam swaps a team's records. A team keeps its original position
// in the read-back order across replacements.
func (m *Memory) ReplaceTeam(_ context.Context, team string, records []capdata.PlayerCapRecord) error {
	if _, seen := m.teams[team]; !seen {
		m.ordered = append(m.ordered, team)
	}
	m.teams[team] = append([]capdata.PlayerCapRecord(nil), records...)
	return nil
}

// AllRecords returns every stored record, team insertion order first, row
// order within team.
func (m *Memory) AllRecords(_ context.Context) ([]capdata.PlayerCapRecord, error) {
	var records []capdata.PlayerCapRecord
	for _, team := range m.ordered {
		records = append(records, m.teams[team]...)
	}
	return records, nil
}
