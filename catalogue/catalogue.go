package catalogue

import "strings"

// normalizeWord is the canonical form used for duplicate comparison.
func normalizeWord(w string) string {
	return strings.ToLower(w)
}

// ContainsWord reports whether word is already catalogued, comparing
// case-insensitively. Plain O(n) scan, no side effects.
func ContainsWord(entries []Entry, word string) bool {
	key := normalizeWord(word)
	for i := range entries {
		if normalizeWord(entries[i].Word) == key {
			return true
		}
	}
	return false
}

// DuplicateWords returns the words that appear more than once under
// case-insensitive comparison, in first-occurrence order, one per
// duplicated group.
func DuplicateWords(entries []Entry) []string {
	first := make(map[string]string, len(entries))
	reported := make(map[string]struct{})
	var dups []string
	for i := range entries {
		key := normalizeWord(entries[i].Word)
		if w, ok := first[key]; ok {
			if _, done := reported[key]; !done {
				dups = append(dups, w)
				reported[key] = struct{}{}
			}
			continue
		}
		first[key] = entries[i].Word
	}
	return dups
}

// SplitTags splits a raw comma-separated tag string into its literal
// segments. There is no trimming and no empty-segment filtering: a trailing
// comma yields a trailing empty tag, exactly as typed.
func SplitTags(raw string) []string {
	return strings.Split(raw, ",")
}

// BuildEntry assembles an Entry verbatim from raw operator input. It never
// fails: any combination of strings forms a valid entry.
func BuildEntry(word, definition, rawTags, sourceName, sourceURL string) Entry {
	return Entry{
		Word:       word,
		Definition: definition,
		Tags:       SplitTags(rawTags),
		Source:     Source{Name: sourceName, URL: sourceURL},
	}
}
