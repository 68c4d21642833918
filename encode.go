package yso

import (
	"fmt"
	"io"
	"slices"

	"github.com/KimNorgaard/go-yso/internal/ast"
	"github.com/KimNorgaard/go-yso/internal/formatter"
	"github.com/KimNorgaard/go-yso/internal/token"
)

// Encoder writes YSO documents to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the canonical text of doc to the stream. Nothing is written
// if doc holds a key or scope name that cannot be read back.
func (e *Encoder) Encode(doc *Document) error {
	o, err := applyOptions(e.opts)
	if err != nil {
		return err
	}
	return encode(e.w, doc, o)
}

func encode(w io.Writer, doc *Document, o *options) error {
	if doc == nil {
		return fmt.Errorf("yso: Encode(nil *Document)")
	}
	file, err := buildFile(doc, o)
	if err != nil {
		return err
	}
	return formatter.New(w, o.colors).Format(file)
}

// buildFile lays out doc as statements: header comments, the global keys,
// then every named scope with its keys. A blank line follows the header.
func buildFile(doc *Document, o *options) (*ast.File, error) {
	file := &ast.File{}
	for _, line := range o.header {
		file.Statements = append(file.Statements, &ast.CommentStatement{Text: line})
	}
	first := token.Token{Spaced: len(o.header) > 0}

	names := doc.Names()
	if o.sortKeys {
		slices.Sort(names)
	}
	for _, name := range names {
		s := doc.scopes[name]
		if name != Global {
			if _, err := formatter.FormatName(name); err != nil {
				return nil, err
			}
			file.Statements = append(file.Statements, &ast.SectionStatement{Token: first, Name: name})
			first = token.Token{}
		}
		keys := s.Keys()
		if o.sortKeys {
			slices.Sort(keys)
		}
		for _, k := range keys {
			if _, err := formatter.FormatKey(k); err != nil {
				return nil, fmt.Errorf("%w (scope %q)", err, name)
			}
			file.Statements = append(file.Statements, &ast.PairStatement{Token: first, Key: k, Value: s.values[k]})
			first = token.Token{}
		}
	}
	return file, nil
}
