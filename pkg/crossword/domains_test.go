package crossword

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainsSnapshotRestore(t *testing.T) {
	s, err := BuildStructure(grid("___"))
	require.NoError(t, err)
	slot := s.Slots()[0]

	d := NewDomains(s, []string{"CAT", "DOG", "TIE"})
	require.Equal(t, 3, d.Size(slot))

	snap := d.Snapshot()
	d.Remove(slot, "CAT")
	d.Remove(slot, "DOG")
	require.Equal(t, []string{"TIE"}, d.Candidates(slot))

	d.Restore(snap)
	assert.Equal(t, []string{"CAT", "DOG", "TIE"}, d.Candidates(slot))
}

func TestDomainsSnapshotIsolation(t *testing.T) {
	s, err := BuildStructure(grid("___"))
	require.NoError(t, err)
	slot := s.Slots()[0]

	d := NewDomains(s, []string{"CAT", "DOG"})
	snap := d.Snapshot()

	// Mutations after the snapshot must not leak into it.
	d.Remove(slot, "CAT")
	assert.Len(t, snap[slot], 2)

	d.Restore(snap)
	d.Remove(slot, "DOG")
	assert.Len(t, snap[slot], 2)
	assert.True(t, d.Has(slot, "CAT"))
	assert.False(t, d.Has(slot, "DOG"))
}
