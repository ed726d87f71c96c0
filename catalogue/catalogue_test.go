package catalogue

import (
	"reflect"
	"testing"
)

func TestSplitTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{"a,,c", []string{"a", "", "c"}},
		{"a,", []string{"a", ""}},
		{"", []string{""}},
		{" a , b", []string{" a ", " b"}},
		{"despectiu", []string{"despectiu"}},
	}
	for _, tt := range tests {
		if got := SplitTags(tt.raw); !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("SplitTags(%q)=%v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestContainsWord_CaseInsensitive(t *testing.T) {
	t.Parallel()

	entries := []Entry{
		{Word: "Ruc"},
		{Word: "Gamarús"},
	}

	tests := []struct {
		word string
		want bool
	}{
		{"Ruc", true},
		{"ruc", true},
		{"RUC", true},
		{"Ase", false},
		{"Ruc ", false}, // no trimming on purpose
	}
	for _, tt := range tests {
		if got := ContainsWord(entries, tt.word); got != tt.want {
			t.Fatalf("ContainsWord(%q)=%v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestBuildEntry_Verbatim(t *testing.T) {
	t.Parallel()

	got := BuildEntry("Ruc", "ase", "despectiu,animal", "Viccionari", "http://x")
	want := Entry{
		Word:       "Ruc",
		Definition: "ase",
		Tags:       []string{"despectiu", "animal"},
		Source:     Source{Name: "Viccionari", URL: "http://x"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("BuildEntry=%+v, want %+v", got, want)
	}
}

func TestDuplicateWords(t *testing.T) {
	t.Parallel()

	entries := []Entry{
		{Word: "Ruc"},
		{Word: "Gamarús"},
		{Word: "ruc"},
		{Word: "RUC"},
		{Word: "Tanoca"},
		{Word: "gamarús"},
	}
	got := DuplicateWords(entries)
	want := []string{"Ruc", "Gamarús"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DuplicateWords=%v, want %v", got, want)
	}

	if dups := DuplicateWords([]Entry{{Word: "Ruc"}}); len(dups) != 0 {
		t.Fatalf("DuplicateWords on clean catalogue=%v, want none", dups)
	}
}
