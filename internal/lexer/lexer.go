package lexer

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/KimNorgaard/go-yso/errors"
	"github.com/KimNorgaard/go-yso/internal/token"
)

const bom = "\uFEFF"

// Lexer holds the state for tokenizing YSO source. It reads one physical
// line at a time and classifies it; multi-line blocks are gathered into a
// single BLOCK token.
type Lexer struct {
	r    *bufio.Reader
	line int
	done bool
	err  error
}

// New creates and returns a new Lexer.
func New(r io.Reader) *Lexer {
	return &Lexer{r: bufio.NewReader(r)}
}

// Err returns the first read error other than io.EOF.
func (l *Lexer) Err() error {
	return l.err
}

// NextToken scans the input and returns the next token. Blank lines are
// skipped; the token after them is marked Spaced.
func (l *Lexer) NextToken() token.Token {
	spaced := false
	for {
		raw, ok := l.readLine()
		if !ok {
			return token.Token{Type: token.EOF, Line: l.line}
		}
		line := strings.TrimRightFunc(raw, unicode.IsSpace)
		rest := strings.TrimLeftFunc(line, unicode.IsSpace)
		if rest == "" {
			spaced = true
			continue
		}
		tok := l.classify(line, rest)
		tok.Spaced = spaced
		return tok
	}
}

// classify turns one non-blank line into a token. rest is line without
// its indentation.
func (l *Lexer) classify(line, rest string) token.Token {
	column := len(line) - len(rest) + 1
	if token.IsComment(rest[0]) {
		return token.Token{
			Type:    token.COMMENT,
			Literal: strings.TrimLeftFunc(rest[1:], unicode.IsSpace),
			Value:   rest,
			Line:    l.line,
			Column:  column,
		}
	}
	if rest[0] == '[' {
		if tok, ok := l.readSection(rest, column); ok {
			return tok
		}
	}
	if tok, ok := l.readPair(line); ok {
		return tok
	}
	return token.Token{Type: token.ORPHAN, Literal: rest, Line: l.line, Column: column}
}

// readLine returns the next physical line without its terminator.
// A trailing "\r" is dropped so that CRLF input reads like LF input.
func (l *Lexer) readLine() (string, bool) {
	if l.done {
		return "", false
	}
	s, err := l.r.ReadString('\n')
	if err != nil {
		l.done = true
		if err != io.EOF {
			l.err = err
			return "", false
		}
		if s == "" {
			return "", false
		}
	}
	l.line++
	if l.line == 1 {
		s = strings.TrimPrefix(s, bom)
	}
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	return s, true
}

// readSection handles a line starting with '['. It reports false when the
// closing bracket is followed by something other than a comment, in which
// case the line is not a header.
func (l *Lexer) readSection(rest string, column int) (token.Token, bool) {
	tok := token.Token{Type: token.SECTION, Line: l.line, Column: column}
	end := token.IndexUnescaped(rest[1:], ']')
	if end < 0 {
		return l.illegal(tok, errors.MalformedHeader, "expected ']'"), true
	}
	tail := strings.TrimLeftFunc(rest[end+2:], unicode.IsSpace)
	if tail != "" && !token.IsComment(tail[0]) {
		return tok, false
	}
	// An empty name reopens the global scope.
	tok.Literal = strings.TrimSpace(rest[1 : end+1])
	tok.Comment = tail
	return tok, true
}

// readPair splits a line at its first unescaped ':'. A value opening with
// """ and not closing on the same line switches to block mode.
func (l *Lexer) readPair(line string) (token.Token, bool) {
	sep := token.IndexUnescaped(line, ':')
	if sep < 0 {
		return token.Token{}, false
	}
	key := strings.TrimSpace(line[:sep])
	if key == "" {
		return token.Token{}, false
	}
	tok := token.Token{
		Type:    token.PAIR,
		Literal: key,
		Value:   line[sep+1:],
		Line:    l.line,
		Column:  strings.Index(line, key) + 1,
	}

	value := strings.TrimLeftFunc(tok.Value, unicode.IsSpace)
	opening, ok := strings.CutPrefix(value, token.Delim)
	if !ok || token.IndexDelim(opening) >= 0 {
		return tok, true
	}
	return l.readBlock(tok, opening, len(line)-len(value)+1), true
}

// readBlock collects the lines of a multi-line value verbatim up to the
// line holding the closing delimiter. The first and last pieces are
// dropped when blank so that delimiters on lines of their own do not add
// newlines to the value.
func (l *Lexer) readBlock(tok token.Token, first string, column int) token.Token {
	var parts []string
	if strings.TrimSpace(first) != "" {
		parts = append(parts, first)
	}
	for {
		raw, ok := l.readLine()
		if !ok {
			tok.Column = column
			return l.illegal(tok, errors.UnterminatedBlock, "unterminated multi-line block, expected '"+token.Delim+"'")
		}
		if end := token.IndexDelim(raw); end >= 0 {
			if last := raw[:end]; strings.TrimSpace(last) != "" {
				parts = append(parts, last)
			}
			if tail := strings.TrimSpace(raw[end+len(token.Delim):]); tail != "" && token.IsComment(tail[0]) {
				tok.Comment = tail
			}
			tok.Type = token.BLOCK
			tok.Value = strings.Join(parts, "\n")
			return tok
		}
		parts = append(parts, raw)
	}
}

func (l *Lexer) illegal(tok token.Token, kind errors.Kind, msg string) token.Token {
	tok.Type = token.ILLEGAL
	tok.Kind = kind
	tok.Literal = msg
	tok.Value = ""
	return tok
}
