package ast

import (
	"strings"

	"github.com/KimNorgaard/go-yso/internal/token"
)

// Node is the base interface for all AST nodes.
type Node interface {
	// TokenLiteral returns the literal value of the token associated with the node.
	TokenLiteral() string
	// String returns a string representation of the node.
	String() string
}

// Statement is a node that represents one logical line.
type Statement interface {
	Node
	statementNode()
}

// Style records how a value was written.
type Style int

const (
	Plain        Style = iota // key: value
	Quoted                    // key: "value"
	TripleQuoted              // key: """value"""
	Block                     // key: """ spanning lines """
)

func (s Style) String() string {
	switch s {
	case Quoted:
		return "quoted"
	case TripleQuoted:
		return "triple-quoted"
	case Block:
		return "block"
	default:
		return "plain"
	}
}

// File is the root node of a YSO document.
type File struct {
	Statements []Statement
}

// TokenLiteral returns the literal value of the token associated with the node.
func (f *File) TokenLiteral() string {
	if len(f.Statements) > 0 {
		return f.Statements[0].TokenLiteral()
	}
	return ""
}

// String returns a string representation of the node.
func (f *File) String() string {
	var out strings.Builder
	for _, s := range f.Statements {
		out.WriteString(s.String())
		out.WriteByte('\n')
	}
	return out.String()
}

// SectionStatement switches the current scope. An empty Name switches
// back to the global scope.
type SectionStatement struct {
	Token   token.Token // the token.SECTION token
	Name    string
	Comment string // trailing comment, marker included
}

func (s *SectionStatement) statementNode()       {}
func (s *SectionStatement) TokenLiteral() string { return s.Token.Literal }
func (s *SectionStatement) String() string       { return "[" + s.Name + "]" }

// PairStatement assigns Value to Key in the current scope.
type PairStatement struct {
	Token   token.Token // the token.PAIR or token.BLOCK token
	Key     string
	Value   string
	Style   Style
	Comment string // trailing comment, marker included
}

func (p *PairStatement) statementNode()       {}
func (p *PairStatement) TokenLiteral() string { return p.Token.Literal }
func (p *PairStatement) String() string       { return p.Key + ": " + p.Value }

// CommentStatement is a comment line. Text is written after a "; " marker
// unless it starts with a marker of its own.
type CommentStatement struct {
	Token token.Token
	Text  string
}

func (c *CommentStatement) statementNode()       {}
func (c *CommentStatement) TokenLiteral() string { return c.Token.Literal }
func (c *CommentStatement) String() string       { return "; " + c.Text }

// OrphanStatement is a line that is neither a header, a pair nor a
// comment. It carries no data.
type OrphanStatement struct {
	Token token.Token
	Text  string
}

func (o *OrphanStatement) statementNode()       {}
func (o *OrphanStatement) TokenLiteral() string { return o.Token.Literal }
func (o *OrphanStatement) String() string       { return o.Text }

// Spaced reports whether blank lines preceded stmt in the source.
func Spaced(stmt Statement) bool {
	switch n := stmt.(type) {
	case *SectionStatement:
		return n.Token.Spaced
	case *PairStatement:
		return n.Token.Spaced
	case *CommentStatement:
		return n.Token.Spaced
	case *OrphanStatement:
		return n.Token.Spaced
	}
	return false
}
