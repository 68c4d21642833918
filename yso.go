package yso

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Parse parses data into a new Document. The first syntax error aborts the
// parse and is returned as an *errors.ParseError with no partial Document.
func Parse(data []byte, opts ...Option) (*Document, error) {
	return ParseReader(bytes.NewReader(data), opts...)
}

// ParseString is like Parse but takes a string.
func ParseString(s string, opts ...Option) (*Document, error) {
	return ParseReader(strings.NewReader(s), opts...)
}

// ParseReader reads r to the end and parses its content.
func ParseReader(r io.Reader, opts ...Option) (*Document, error) {
	doc := New()
	if err := NewDecoder(r, opts...).Decode(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// TryParse is like Parse but never panics. On failure it returns an empty
// Document, false and the reason.
func TryParse(data []byte, opts ...Option) (doc *Document, ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc, ok, err = New(), false, fmt.Errorf("yso: parse panicked: %v", r)
		}
	}()
	doc, err = Parse(data, opts...)
	if err != nil {
		return New(), false, err
	}
	return doc, true, nil
}

// Marshal returns the canonical text of doc: the global keys, then every
// named scope as a [name] header followed by its keys, with one blank line
// between groups.
//
// Multi-line values are written as """ blocks, which normalize line
// endings. Values holding a carriage return are written with backslash
// escapes instead so that they read back unchanged, unless they also start
// or end with whitespace: then a CRLF in them reads back as "\n".
func Marshal(doc *Document, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf, opts...).Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
