package catalogue

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/insultari/catalogue-tools/catalogue/fileutils"
)

// insultsField is the top-level document field holding the entry array.
const insultsField = "insults"

// ParseError reports a file whose content is not a usable catalogue
// document, as opposed to a file that could not be read at all.
type ParseError struct {
	Path   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %s", e.Path, e.Reason)
}

// Load reads and parses the catalogue document at path. The whole document
// is retained alongside the decoded entries so that Save can round-trip any
// top-level fields this tool knows nothing about.
func Load(path string) (*Catalogue, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Load: read file: %w", err)
	}
	if !gjson.ValidBytes(b) {
		return nil, &ParseError{Path: path, Reason: "not well-formed JSON"}
	}
	res := gjson.GetBytes(b, insultsField)
	if !res.Exists() {
		return nil, &ParseError{Path: path, Reason: `missing "insults" field`}
	}
	if !res.IsArray() {
		return nil, &ParseError{Path: path, Reason: `"insults" is not an array`}
	}

	entries := []Entry{}
	if err := json.Unmarshal([]byte(res.Raw), &entries); err != nil {
		return nil, &ParseError{Path: path, Reason: err.Error()}
	}
	for i := range entries {
		if entries[i].Tags == nil {
			entries[i].Tags = []string{}
		}
	}
	return &Catalogue{Entries: entries, raw: b}, nil
}

// Save serializes the entries back into the original document and overwrites
// path with the result, pretty-printed with 4-space indentation. The write
// goes through a temp file in the target directory so a failure mid-write
// never leaves a truncated catalogue behind.
func Save(path string, c *Catalogue) error {
	arr, err := json.Marshal(c.Entries)
	if err != nil {
		return fmt.Errorf("Save: marshal entries: %w", err)
	}

	doc := c.raw
	if len(doc) == 0 {
		doc = []byte("{}")
	}
	out, err := sjson.SetRawBytes(doc, insultsField, arr)
	if err != nil {
		return fmt.Errorf("Save: splice entries: %w", err)
	}
	out = pretty.PrettyOptions(out, &pretty.Options{Width: 80, Indent: "    "})

	if err := fileutils.WriteFileAtomic(path, out, 0o644); err != nil {
		return fmt.Errorf("Save: write: %w", err)
	}
	return nil
}
