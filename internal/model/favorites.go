package model

import "slices"

// Favorites is a set of batch ids kept in the order they were added.
type Favorites []string

func (f Favorites) Contains(id string) bool {
	return slices.Contains(f, id)
}

// Toggle returns a new set with id added when absent or removed when present.
func (f Favorites) Toggle(id string) Favorites {
	if i := slices.Index(f, id); i >= 0 {
		return slices.Delete(slices.Clone(f), i, i+1)
	}
	out := make(Favorites, 0, len(f)+1)
	out = append(out, f...)
	return append(out, id)
}

func (f Favorites) Set() map[string]struct{} {
	set := make(map[string]struct{}, len(f))
	for _, id := range f {
		set[id] = struct{}{}
	}
	return set
}
