package errors

import "fmt"

// Kind classifies a ParseError.
type Kind int

const (
	// UnknownKind is the zero Kind.
	UnknownKind Kind = iota
	// UnterminatedBlock reports a """ block that never closes.
	UnterminatedBlock
	// MalformedHeader reports a section header without a closing ']'.
	// An empty header, [], is valid and reopens the global scope.
	MalformedHeader
	// OrphanLine reports a line that is neither a header, a pair nor a
	// comment. Only produced when orphans are disallowed.
	OrphanLine
)

func (k Kind) String() string {
	switch k {
	case UnterminatedBlock:
		return "unterminated block"
	case MalformedHeader:
		return "malformed section header"
	case OrphanLine:
		return "orphan line"
	default:
		return "unknown"
	}
}

// ParseError represents a syntax error that aborted parsing.
// It includes the position of the error.
type ParseError struct {
	Kind    Kind
	Message string
	Line    int
	Column  int
}

func (p *ParseError) Error() string {
	return fmt.Sprintf("yso: parsing error at line %d, column %d: %s", p.Line, p.Column, p.Message)
}
