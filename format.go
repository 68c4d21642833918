package yso

import (
	"bytes"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/KimNorgaard/go-yso/internal/ast"
	"github.com/KimNorgaard/go-yso/internal/formatter"
	"github.com/KimNorgaard/go-yso/internal/lexer"
	"github.com/KimNorgaard/go-yso/internal/parser"
)

// Format rewrites YSO source in canonical form. Unlike Marshal it works on
// the text itself: comments are kept, including those trailing a value or
// a header, and so are orphan lines unless DisallowOrphans rejects them.
// Repeated keys and sections are left as they are.
//
// With SortKeys, sections are ordered by name and the pairs of each
// section by key. Comments move with the statement below them; the
// comments at the top and bottom of the file stay there. Header is
// ignored.
func Format(src []byte, opts ...Option) ([]byte, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	return format(src, o)
}

// FormatFile formats the file at path in place and reports whether its
// content changed. An unchanged file is not written. Colors are never
// written to files.
func FormatFile(path string, opts ...Option) (bool, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return false, err
	}
	o.colors = nil

	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("yso: format: %w", err)
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("yso: format: %w", err)
	}
	out, err := format(src, o)
	if err != nil {
		return false, err
	}
	if bytes.Equal(src, out) {
		return false, nil
	}
	if err := writeFile(path, out, info.Mode().Perm()); err != nil {
		return false, fmt.Errorf("yso: format: %w", err)
	}
	return true, nil
}

func format(src []byte, o *options) ([]byte, error) {
	p := parser.New(lexer.New(bytes.NewReader(src)))
	p.DisallowOrphans = o.disallowOrphans
	p.KeepComments = true
	file, err := p.Parse()
	if err != nil {
		return nil, err
	}
	if o.sortKeys {
		file.Statements = sortStatements(file.Statements)
	}

	var buf bytes.Buffer
	if err := formatter.New(&buf, o.colors).Format(file); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// unit is a statement together with the comments directly above it.
type unit []ast.Statement

func (u unit) target() ast.Statement { return u[len(u)-1] }

// sortStatements orders section groups by name and the pairs of every
// group by key. Both sorts are stable, so repeated sections and keys keep
// their relative order. Orphans keep their position within a group.
func sortStatements(stmts []ast.Statement) []ast.Statement {
	head := 0
	for head < len(stmts) && isComment(stmts[head]) {
		head++
	}
	tail := len(stmts)
	for tail > head && isComment(stmts[tail-1]) {
		tail--
	}

	groups := [][]unit{nil}
	start := head
	for i := head; i < tail; i++ {
		if isComment(stmts[i]) {
			continue
		}
		u := unit(stmts[start : i+1])
		start = i + 1
		if _, ok := stmts[i].(*ast.SectionStatement); ok {
			groups = append(groups, []unit{u})
			continue
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], u)
	}

	slices.SortStableFunc(groups[1:], func(a, b []unit) int {
		return strings.Compare(a[0].target().(*ast.SectionStatement).Name, b[0].target().(*ast.SectionStatement).Name)
	})
	for _, g := range groups {
		var slots []int
		var pairs []unit
		for i, u := range g {
			if _, ok := u.target().(*ast.PairStatement); ok {
				slots = append(slots, i)
				pairs = append(pairs, u)
			}
		}
		slices.SortStableFunc(pairs, func(a, b unit) int {
			return strings.Compare(a.target().(*ast.PairStatement).Key, b.target().(*ast.PairStatement).Key)
		})
		for i, slot := range slots {
			g[slot] = pairs[i]
		}
	}

	out := make([]ast.Statement, 0, len(stmts))
	out = append(out, stmts[:head]...)
	for _, g := range groups {
		for _, u := range g {
			out = append(out, u...)
		}
	}
	return append(out, stmts[tail:]...)
}

func isComment(stmt ast.Statement) bool {
	_, ok := stmt.(*ast.CommentStatement)
	return ok
}
