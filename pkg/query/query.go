// Package query prepares local sequence files for submission to the
// search service.
package query

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Input is the transmission-ready form of one or more query files.
type Input struct {
	// Payload is the percent-encoded concatenation of every file's full
	// content, in argument order. Line terminators are encoded too, so
	// the payload is a single line.
	Payload string

	// Basename is the first file's name without its extension. It labels
	// the output record.
	Basename string

	// Sequence is the first file's content with a leading FASTA header
	// dropped and all line breaks removed.
	Sequence string
}

// Load reads the query files and builds the encoded payload. The files are
// not parsed or validated as FASTA; whatever they contain is transmitted,
// and the service is the arbiter of whether it is searchable.
func Load(paths []string) (Input, error) {
	var in Input
	var payload strings.Builder

	for i, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return Input{}, fmt.Errorf("failed to read query file: %w", err)
		}
		payload.WriteString(encode(string(data)))
		if i == 0 {
			in.Basename = Basename(path)
			in.Sequence = bareSequence(string(data))
		}
	}

	in.Payload = payload.String()
	return in, nil
}

// encode percent-encodes the content line by line, newlines included.
func encode(content string) string {
	var b strings.Builder
	for _, line := range strings.SplitAfter(content, "\n") {
		b.WriteString(url.PathEscape(line))
	}
	return b.String()
}

// Basename strips the directory and the final extension from a path.
func Basename(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// bareSequence drops a leading FASTA header line, if present, and removes
// every line break from what remains.
func bareSequence(content string) string {
	lines := strings.SplitAfter(content, "\n")
	if len(lines) > 0 && strings.HasPrefix(lines[0], ">") {
		lines = lines[1:]
	}
	seq := strings.Join(lines, "")
	seq = strings.ReplaceAll(seq, "\r", "")
	return strings.ReplaceAll(seq, "\n", "")
}
