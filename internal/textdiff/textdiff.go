// Package textdiff shows line differences between a file and its
// canonical form.
package textdiff

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Lines returns the line-level diff from a to b.
func Lines(a, b string) []diffpatch.Diff {
	diffCfg := diffpatch.New()
	ca, cb, lines := diffCfg.DiffLinesToChars(a, b)
	diffs := diffCfg.DiffMain(ca, cb, false)
	return diffCfg.DiffCharsToLines(diffs, lines)
}

// Stat counts the inserted and deleted lines of diffs.
func Stat(diffs []diffpatch.Diff) (inserted, deleted int) {
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			inserted += len(splitLines(d.Text))
		case diffpatch.DiffDelete:
			deleted += len(splitLines(d.Text))
		}
	}
	return inserted, deleted
}

// Write prints diffs to w: a header naming the file, then every run of
// changed lines under an "@@ -old +new @@" marker holding the line numbers
// where it starts. Equal lines are not printed. Nothing is written when
// diffs holds no change.
func Write(w io.Writer, name string, diffs []diffpatch.Diff, colored bool) error {
	if ins, del := Stat(diffs); ins == 0 && del == 0 {
		return nil
	}
	hdr := color.New(color.FgCyan)
	del := color.New(color.FgRed)
	ins := color.New(color.FgGreen)
	for _, c := range []*color.Color{hdr, del, ins} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	var b strings.Builder
	b.WriteString(hdr.Sprintf("--- %s", name) + "\n")
	b.WriteString(hdr.Sprintf("+++ %s (formatted)", name) + "\n")
	oldLine, newLine := 1, 1
	inHunk := false
	for _, d := range diffs {
		lines := splitLines(d.Text)
		if d.Type == diffpatch.DiffEqual {
			inHunk = false
			oldLine += len(lines)
			newLine += len(lines)
			continue
		}
		if !inHunk {
			b.WriteString(hdr.Sprintf("@@ -%d +%d @@", oldLine, newLine) + "\n")
			inHunk = true
		}
		prefix, c := "-", del
		if d.Type == diffpatch.DiffInsert {
			prefix, c = "+", ins
			newLine += len(lines)
		} else {
			oldLine += len(lines)
		}
		for _, line := range lines {
			b.WriteString(c.Sprint(prefix+line) + "\n")
		}
	}
	_, err := io.WriteString(w, b.String())
	if err != nil {
		return fmt.Errorf("textdiff: %w", err)
	}
	return nil
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
