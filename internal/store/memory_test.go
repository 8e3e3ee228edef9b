package store

import (
	"context"
	"testing"

	"github.com/pfrederiksen/nfl-cap-tracker/internal/capdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryReplaceTeam(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.ReplaceTeam(ctx, "buffalo-bills", []capdata.PlayerCapRecord{
		{Name: strPtr("A"), RosterStatus: "active", Team: "buffalo-bills"},
	}))
	require.NoError(t, m.ReplaceTeam(ctx, "new-york-jets", []capdata.PlayerCapRecord{
		{Name: strPtr("B"), RosterStatus: "active", Team: "new-york-jets"},
	}))

	// Replacing an already-stored team swaps its rows but keeps its slot.
	require.NoError(t, m.ReplaceTeam(ctx, "buffalo-bills", []capdata.PlayerCapRecord{
		{Name: strPtr("C"), RosterStatus: "active", Team: "buffalo-bills"},
		{Name: strPtr("D"), RosterStatus: "dead cap", Team: "buffalo-bills"},
	}))

	records, err := m.AllRecords(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "C", *records[0].Name)
	assert.Equal(t, "D", *records[1].Name)
	assert.Equal(t, "B", *records[2].Name)
}

func TestMemoryIsolation(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	original := []capdata.PlayerCapRecord{{Name: strPtr("A"), RosterStatus: "active", Team: "t"}}
	require.NoError(t, m.ReplaceTeam(ctx, "t", original))

	original[0].RosterStatus = "mutated"

	records, err := m.AllRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, "active", records[0].RosterStatus, "stored records must not alias the caller's slice")
}
