package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Reader reads command lines from a text source such as stdin
type Reader struct {
	src *bufio.Reader
}

// NewReader wraps r for line-based command input
func NewReader(r io.Reader) *Reader {
	return &Reader{src: bufio.NewReader(r)}
}

// ReadLine reads one line of input, trimmed of surrounding whitespace.
// A final line without a newline is returned before io.EOF.
func (r *Reader) ReadLine() (string, error) {
	line, err := r.src.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimSpace(line), nil
		}
		if err == io.EOF {
			return "", io.EOF
		}
		return "", fmt.Errorf("cannot read input: %w", err)
	}

	return strings.TrimSpace(line), nil
}

// Next reads a line and maps it to an Intent. Unrecognised lines map to
// ActionNone with the raw code preserved.
func (r *Reader) Next() (Intent, error) {
	line, err := r.ReadLine()
	if err != nil {
		return Intent{}, err
	}
	return MapToIntent(RawInput{Code: line}), nil
}
