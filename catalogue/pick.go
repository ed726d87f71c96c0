package catalogue

import "math/rand"

// FilterByTag returns the entries carrying tag. Comparison is exact: tags
// are stored as typed, so " animal" and "animal" are different tags.
func FilterByTag(entries []Entry, tag string) []Entry {
	var out []Entry
	for _, e := range entries {
		for _, t := range e.Tags {
			if t == tag {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// PickRandom returns a uniformly random entry. ok is false when entries is
// empty.
func PickRandom(entries []Entry, rng *rand.Rand) (e Entry, ok bool) {
	if len(entries) == 0 {
		return Entry{}, false
	}
	return entries[rng.Intn(len(entries))], true
}
