package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFavoritesToggleParity(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		set  Favorites
		id   string
	}{
		{name: "absent id", set: Favorites{"a", "b"}, id: "c"},
		{name: "present id", set: Favorites{"a", "b", "c"}, id: "b"},
		{name: "empty set", set: Favorites{}, id: "a"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			once := tc.set.Toggle(tc.id)
			assert.NotEqual(t, tc.set.Contains(tc.id), once.Contains(tc.id))

			twice := once.Toggle(tc.id)
			assert.ElementsMatch(t, tc.set, twice)
		})
	}
}

func TestFavoritesToggleDoesNotMutate(t *testing.T) {
	t.Parallel()

	orig := Favorites{"a", "b", "c"}
	_ = orig.Toggle("a")
	assert.Equal(t, Favorites{"a", "b", "c"}, orig)
}

func TestRangeContains(t *testing.T) {
	t.Parallel()

	r := Range[float64]{Min: 10, Max: 20}
	assert.True(t, r.Contains(10))
	assert.True(t, r.Contains(20))
	assert.False(t, r.Contains(20.01))

	inverted := Range[int64]{Min: 50, Max: 10}
	assert.False(t, inverted.Contains(30))
}
