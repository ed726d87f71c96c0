package catalogue

// Entry is one catalogue record: a word, its definition, free-form tags and
// the citation it came from. The JSON names are the catalogue file's Catalan
// vocabulary, and the field order here fixes the on-disk key order.
type Entry struct {
	Word       string   `json:"paraula"`
	Definition string   `json:"definicio"`
	Tags       []string `json:"tags"`
	Source     Source   `json:"font"`
}

// Source is the citation for an entry.
type Source struct {
	Name string `json:"nom"`
	URL  string `json:"url"`
}

// Catalogue is the full entry collection plus the raw document it was loaded
// from. Top-level fields other than "insults" live only in raw and are
// written back untouched.
type Catalogue struct {
	Entries []Entry

	raw []byte
}
