package catalogue

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Sentinel words that end an ingestion session when entered at the word
// prompt. Matching is exact and case-sensitive.
const (
	SentinelStop = "STOP"
	SentinelFi   = "FI"
)

// LineReader yields one line of operator input per call. It exists so the
// ingestion loop can be driven by scripted input in tests as well as by a
// live terminal.
type LineReader interface {
	ReadLine() (string, error)
}

type bufioLineReader struct {
	r *bufio.Reader
}

// NewLineReader wraps r in a LineReader that strips the line terminator
// (\n or \r\n) and still delivers a final unterminated line.
func NewLineReader(r io.Reader) LineReader {
	return &bufioLineReader{r: bufio.NewReader(r)}
}

func (lr *bufioLineReader) ReadLine() (string, error) {
	s, err := lr.r.ReadString('\n')
	if err != nil {
		if err == io.EOF && s != "" {
			return trimLineEnding(s), nil
		}
		return "", err
	}
	return trimLineEnding(s), nil
}

func trimLineEnding(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}

// IngestResult reports what a single ingestion session did.
type IngestResult struct {
	Added    int
	Rejected int
}

// RunIngest prompts on out and reads from in until a sentinel word or the
// end of input, appending each accepted entry to c. A candidate whose word
// is already catalogued is rejected outright and the operator is re-prompted
// for a new word. A record the operator never finished is discarded, never
// half-appended.
func RunIngest(c *Catalogue, in LineReader, out io.Writer) IngestResult {
	var res IngestResult
	for {
		word, err := promptLine(in, out, "Introdueix la paraula: ")
		if err != nil {
			return res
		}
		if word == SentinelStop || word == SentinelFi {
			return res
		}
		if ContainsWord(c.Entries, word) {
			fmt.Fprintln(out, "La paraula ja existeix")
			res.Rejected++
			continue
		}

		definition, err := promptLine(in, out, "Introdueix la definicio: ")
		if err != nil {
			return res
		}
		rawTags, err := promptLine(in, out, "Introdueix els tags separats per comes: ")
		if err != nil {
			return res
		}
		sourceName, err := promptLine(in, out, "Introdueix el nom de la font: ")
		if err != nil {
			return res
		}
		sourceURL, err := promptLine(in, out, "Introdueix la url de la font: ")
		if err != nil {
			return res
		}

		c.Entries = append(c.Entries, BuildEntry(word, definition, rawTags, sourceName, sourceURL))
		res.Added++
	}
}

func promptLine(in LineReader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	return in.ReadLine()
}
