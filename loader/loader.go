// Package loader reads newline-delimited pattern dictionaries from an
// io.Reader and feeds them to a pattern sink, the external-collaborator
// glue named C9 in the design: everything here is generic line parsing,
// with no knowledge of the automaton itself.
package loader

import (
	"bufio"
	"io"
)

// AddFunc adds one pattern's bytes to whatever sink owns the dictionary
// (typically pattern.Set.Add via a Builder), returning the assigned id.
type AddFunc func([]byte) (id uint32, err error)

// FromLines reads newline-delimited patterns from r (lines separated by
// \n or \r\n), trims leading/trailing ASCII whitespace from each, skips
// blank lines and lines whose first non-whitespace byte is '#', and calls
// add with the rest. Returns how many were accepted before the first
// error from either the scanner or add; patterns already added are
// retained by whatever add's sink is.
func FromLines(r io.Reader, add AddFunc) (int, error) {
	scan := bufio.NewScanner(r)
	scan.Buffer(make([]byte, 64*1024), 1<<20)

	count := 0
	for scan.Scan() {
		line := trimSpace(scan.Bytes())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if _, err := add(line); err != nil {
			return count, err
		}
		count++
	}
	if err := scan.Err(); err != nil {
		return count, err
	}
	return count, nil
}

func trimSpace(b []byte) []byte {
	start := 0
	for start < len(b) && isSpace(b[start]) {
		start++
	}
	end := len(b)
	for end > start && isSpace(b[end-1]) {
		end--
	}
	return b[start:end]
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}
