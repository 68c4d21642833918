package yso

import (
	"bytes"
	"fmt"
	"io"

	"github.com/KimNorgaard/go-yso/internal/ast"
	"github.com/KimNorgaard/go-yso/internal/lexer"
	"github.com/KimNorgaard/go-yso/internal/parser"
)

// Decoder reads a YSO document from an input stream.
type Decoder struct {
	r    io.Reader
	opts []Option
}

// NewDecoder returns a new decoder that reads from r.
//
// It is the caller's responsibility to call Close on r if required.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode reads the whole input, parses it and merges the result into doc:
// scopes are created as needed and keys from the input overwrite keys
// already in doc. If the input does not parse, doc is left untouched and
// the *errors.ParseError is returned.
//
// Note: This is a non-streaming implementation. It reads the entire
// reader into memory first before parsing.
func (d *Decoder) Decode(doc *Document) error {
	if d.r == nil {
		return fmt.Errorf("yso: Decode(nil reader)")
	}
	if doc == nil {
		return fmt.Errorf("yso: Decode(nil *Document)")
	}
	o, err := applyOptions(d.opts)
	if err != nil {
		return err
	}
	data, err := io.ReadAll(d.r)
	if err != nil {
		return fmt.Errorf("yso: reading input: %w", err)
	}

	p := parser.New(lexer.New(bytes.NewReader(data)))
	p.DisallowOrphans = o.disallowOrphans
	file, err := p.Parse()
	if err != nil {
		return err
	}
	doc.Merge(buildDocument(file))
	return nil
}

// buildDocument assigns every pair to the scope opened by the closest
// header above it. Later pairs overwrite earlier ones.
func buildDocument(file *ast.File) *Document {
	doc := New()
	cur := doc.Global()
	for _, stmt := range file.Statements {
		switch s := stmt.(type) {
		case *ast.SectionStatement:
			cur = doc.Scope(s.Name)
		case *ast.PairStatement:
			cur.Set(s.Key, s.Value)
		}
	}
	return doc
}
