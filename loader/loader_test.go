package loader

import (
	"errors"
	"strings"
	"testing"
)

func TestFromLinesBasic(t *testing.T) {
	var got [][]byte
	add := func(b []byte) (uint32, error) {
		got = append(got, append([]byte(nil), b...))
		return uint32(len(got) - 1), nil
	}
	n, err := FromLines(strings.NewReader("cat\ndog\nbird\n"), add)
	if err != nil {
		t.Fatalf("FromLines: %v", err)
	}
	if n != 3 {
		t.Fatalf("count = %d, want 3", n)
	}
}

func TestFromLinesSkipsCommentsAndBlankLines(t *testing.T) {
	var got []string
	add := func(b []byte) (uint32, error) {
		got = append(got, string(b))
		return 0, nil
	}
	src := "cat\n# a comment\n\n   \ndog\n"
	n, err := FromLines(strings.NewReader(src), add)
	if err != nil {
		t.Fatalf("FromLines: %v", err)
	}
	if n != 2 {
		t.Fatalf("count = %d, want 2", n)
	}
	if got[0] != "cat" || got[1] != "dog" {
		t.Fatalf("got %v, want [cat dog]", got)
	}
}

func TestFromLinesTrimsWhitespaceAndCR(t *testing.T) {
	var got []string
	add := func(b []byte) (uint32, error) {
		got = append(got, string(b))
		return 0, nil
	}
	_, err := FromLines(strings.NewReader("  cat  \r\n\tdog\t\r\n"), add)
	if err != nil {
		t.Fatalf("FromLines: %v", err)
	}
	if got[0] != "cat" || got[1] != "dog" {
		t.Fatalf("got %v, want [cat dog]", got)
	}
}

func TestFromLinesStopsAtAddError(t *testing.T) {
	wantErr := errors.New("boom")
	calls := 0
	add := func(b []byte) (uint32, error) {
		calls++
		if string(b) == "bad" {
			return 0, wantErr
		}
		return uint32(calls - 1), nil
	}
	n, err := FromLines(strings.NewReader("cat\nbad\ndog\n"), add)
	if err != wantErr {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
	if n != 1 {
		t.Fatalf("count = %d, want 1 (only 'cat' accepted before error)", n)
	}
}

func TestFromLinesCommentLeadingWhitespace(t *testing.T) {
	var got []string
	add := func(b []byte) (uint32, error) {
		got = append(got, string(b))
		return 0, nil
	}
	_, err := FromLines(strings.NewReader("   # still a comment\nreal\n"), add)
	if err != nil {
		t.Fatalf("FromLines: %v", err)
	}
	if len(got) != 1 || got[0] != "real" {
		t.Fatalf("got %v, want [real]", got)
	}
}
