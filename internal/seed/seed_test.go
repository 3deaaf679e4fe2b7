package seed

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessorsReturnCopies(t *testing.T) {
	first := Theses()
	require.NotEmpty(t, first)

	// Mutating the returned slice must not leak into later calls.
	first[0].Title = "tampered"
	second := Theses()
	assert.NotEqual(t, "tampered", second[0].Title)
	assert.Equal(t, first[1:], second[1:])
}

func TestOrderIsStable(t *testing.T) {
	a := Books()
	b := Books()
	require.Equal(t, a, b)
	for i := 1; i < len(a); i++ {
		assert.Less(t, a[i-1].ID, a[i].ID, "seed books keep definition order")
	}
}

func TestThesisSeedIdentifiersAreNotUUIDs(t *testing.T) {
	for _, th := range Theses() {
		_, err := uuid.Parse(th.ID)
		assert.Error(t, err, "demo identifier %q must not parse as a UUID", th.ID)
	}
}
