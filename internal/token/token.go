package token

import (
	"strings"

	"github.com/KimNorgaard/go-yso/errors"
)

// Type is the type of a token.
type Type string

// Token represents one logical line of YSO source. A BLOCK token covers
// every physical line of a multi-line value.
type Token struct {
	Type Type
	// Literal is the section name, the key, the comment text or the
	// orphan line, still escaped. For ILLEGAL tokens it is the message.
	Literal string
	// Value is the text after the key separator of a PAIR, the raw
	// content of a BLOCK, or a COMMENT line with its marker.
	Value string
	// Comment is the comment trailing a SECTION header or the closing
	// delimiter of a BLOCK, marker included.
	Comment string
	// Spaced is set when blank lines precede the token.
	Spaced bool
	Line   int
	Column int
	// Kind is set on ILLEGAL tokens.
	Kind errors.Kind
}

const (
	// Special tokens
	ILLEGAL Type = "ILLEGAL" // A line that aborts parsing
	EOF     Type = "EOF"     // End of input

	COMMENT Type = "COMMENT" // ; a comment
	SECTION Type = "SECTION" // [name]
	PAIR    Type = "PAIR"    // key: value
	BLOCK   Type = "BLOCK"   // key: """ ... """
	ORPHAN  Type = "ORPHAN"  // anything else
)

// Delim opens and closes triple-quoted values.
const Delim = `"""`

// EscapedDelim is how a literal Delim is written inside a triple-quoted value.
const EscapedDelim = `\` + Delim

// IsComment reports whether b starts a comment.
func IsComment(b byte) bool {
	return b == ';' || b == '#'
}

// IndexDelim returns the index of the first Delim in s that is not
// escaped, or -1.
func IndexDelim(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && strings.HasPrefix(s[i+1:], Delim) {
			i += len(Delim)
			continue
		}
		if strings.HasPrefix(s[i:], Delim) {
			return i
		}
	}
	return -1
}

// IndexUnescaped returns the index of the first c in s that is not
// preceded by a backslash escape, or -1.
func IndexUnescaped(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case c:
			return i
		}
	}
	return -1
}
