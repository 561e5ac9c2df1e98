// Command acmatch compiles a pattern dictionary and scans a file (or
// stdin) for occurrences, highlighting matched spans the way gogrep
// highlights grep hits.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/coregx/ahocorasick"
)

func main() {
	var (
		patternsPath = flag.String("patterns", "", "path to a newline-delimited pattern file (required)")
		noColor      = flag.Bool("no-color", false, "disable colorized match highlighting")
		maxMatches   = flag.Int("max", 0, "stop after this many matches (0 = unlimited)")
	)
	flag.Parse()

	if *patternsPath == "" {
		fmt.Fprintln(os.Stderr, "acmatch: -patterns is required")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*patternsPath, flag.Args(), *maxMatches, !*noColor); err != nil {
		fmt.Fprintln(os.Stderr, "acmatch:", err)
		os.Exit(1)
	}
}

func run(patternsPath string, files []string, maxMatches int, color bool) error {
	pf, err := os.Open(patternsPath)
	if err != nil {
		return fmt.Errorf("open patterns: %w", err)
	}
	defer pf.Close()

	b := ahocorasick.NewBuilder()
	n, err := b.AddPatternFromLines(pf)
	if err != nil {
		return fmt.Errorf("load patterns: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("no patterns loaded from %s", patternsPath)
	}

	automaton, err := b.Build()
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}

	matchStyle := lipgloss.NewStyle()
	if color {
		matchStyle = matchStyle.Foreground(lipgloss.Color("1")).Bold(true)
	}

	if len(files) == 0 {
		return scanReader(automaton, os.Stdin, "<stdin>", matchStyle, maxMatches)
	}
	for _, path := range files {
		if err := scanFile(automaton, path, matchStyle, maxMatches); err != nil {
			return err
		}
	}
	return nil
}

func scanFile(a *ahocorasick.Automaton, path string, matchStyle lipgloss.Style, maxMatches int) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return scanReader(a, f, path, matchStyle, maxMatches)
}

func scanReader(a *ahocorasick.Automaton, r io.Reader, label string, matchStyle lipgloss.Style, maxMatches int) error {
	text, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read %s: %w", label, err)
	}

	matches := a.FindAll(text, maxMatches)
	if len(matches) == 0 {
		return nil
	}

	fmt.Printf("%s: %d match(es)\n", label, len(matches))
	var cursor uint64
	for _, m := range matches {
		if m.Offset < cursor {
			// Overlapping match already covered by highlighted output;
			// print its span on its own line instead of re-slicing text.
			fmt.Printf("  overlap at %d: %s\n", m.Offset, matchStyle.Render(string(text[m.Offset:m.End()])))
			continue
		}
		os.Stdout.Write(text[cursor:m.Offset])
		fmt.Print(matchStyle.Render(string(text[m.Offset:m.End()])))
		cursor = m.End()
	}
	os.Stdout.Write(text[cursor:])
	fmt.Println()
	return nil
}
