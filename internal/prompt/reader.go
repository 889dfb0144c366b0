package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Reader reads normalized lines from an input stream. Normalization trims
// surrounding whitespace and lowercases the text, so callers compare and
// parse a canonical form. The stream is os.Stdin in production and an
// in-memory reader in tests.
type Reader struct {
	r *bufio.Reader
}

// NewReader creates a Reader over the given stream.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// ReadLine reads one line, strips leading/trailing whitespace, and
// lowercases it.
//
// A read failure or end-of-input is an I/O error, distinct from invalid
// input: it is returned immediately and is never retried. A final line
// delivered together with EOF (no trailing newline) still counts as a
// valid line; EOF with nothing read does not.
func (r *Reader) ReadLine() (string, error) {
	line, err := r.r.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return normalize(line), nil
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return normalize(line), nil
}

// normalize trims whitespace (including the line terminator, CRLF or LF)
// and lowercases the text.
func normalize(line string) string {
	return strings.ToLower(strings.TrimSpace(line))
}
