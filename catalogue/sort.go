package catalogue

import (
	"sort"
	"strings"
)

// SortEntries orders entries case-insensitively by word, keeping the
// original relative order of words that compare equal.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Word) < strings.ToLower(entries[j].Word)
	})
}
