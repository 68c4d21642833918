package parser

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/KimNorgaard/go-yso/errors"
	"github.com/KimNorgaard/go-yso/internal/ast"
	"github.com/KimNorgaard/go-yso/internal/lexer"
	"github.com/KimNorgaard/go-yso/internal/token"
)

// Parser holds the state of the parser.
type Parser struct {
	l *lexer.Lexer

	// DisallowOrphans turns lines that are neither headers, pairs nor
	// comments into errors instead of skipping them.
	DisallowOrphans bool
	// KeepComments makes the parser return comment lines and skipped
	// orphan lines as statements, so that a file can be rewritten without
	// losing them.
	KeepComments bool

	curToken token.Token
}

// New creates a new parser.
func New(l *lexer.Lexer) *Parser {
	return &Parser{l: l}
}

// Parse consumes the whole input and returns the resulting file. The first
// syntax error aborts parsing; no partial file is returned with it. Read
// errors from the underlying reader are returned as they are.
func (p *Parser) Parse() (*ast.File, error) {
	file := &ast.File{Statements: []ast.Statement{}}
	for p.nextToken(); !p.curTokenIs(token.EOF); p.nextToken() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			file.Statements = append(file.Statements, stmt)
		}
	}
	if err := p.l.Err(); err != nil {
		return nil, err
	}
	return file, nil
}

func (p *Parser) nextToken() {
	p.curToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t token.Type) bool {
	return p.curToken.Type == t
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.curToken.Type {
	case token.SECTION:
		return &ast.SectionStatement{
			Token:   p.curToken,
			Name:    unescapeName(p.curToken.Literal),
			Comment: p.curToken.Comment,
		}, nil
	case token.PAIR:
		value, style, comment := resolveValue(p.curToken.Value)
		return &ast.PairStatement{
			Token:   p.curToken,
			Key:     unescapeName(p.curToken.Literal),
			Value:   value,
			Style:   style,
			Comment: comment,
		}, nil
	case token.BLOCK:
		return &ast.PairStatement{
			Token:   p.curToken,
			Key:     unescapeName(p.curToken.Literal),
			Value:   unescapeDelims(p.curToken.Value),
			Style:   ast.Block,
			Comment: p.curToken.Comment,
		}, nil
	case token.COMMENT:
		if p.KeepComments {
			return &ast.CommentStatement{Token: p.curToken, Text: p.curToken.Value}, nil
		}
	case token.ORPHAN:
		if p.DisallowOrphans {
			return nil, p.errorf(errors.OrphanLine, "unexpected line %q", p.curToken.Literal)
		}
		if p.KeepComments {
			return &ast.OrphanStatement{Token: p.curToken, Text: p.curToken.Literal}, nil
		}
	case token.ILLEGAL:
		if err := p.l.Err(); err != nil {
			return nil, err
		}
		return nil, p.errorf(p.curToken.Kind, "%s", p.curToken.Literal)
	}
	return nil, nil
}

// resolveValue interprets the text that follows a key's separator and
// splits off a trailing comment.
func resolveValue(raw string) (value string, style ast.Style, comment string) {
	rest := strings.TrimLeftFunc(raw, unicode.IsSpace)
	if inner, ok := strings.CutPrefix(rest, token.Delim); ok {
		if end := token.IndexDelim(inner); end >= 0 {
			return unescapeDelims(inner[:end]), ast.TripleQuoted, trailingComment(inner[end+len(token.Delim):])
		}
	}
	if strings.HasPrefix(rest, `"`) {
		if inner, tail, ok := unquote(rest); ok {
			return unescapeQuotes(inner), ast.Quoted, trailingComment(tail)
		}
	}
	value, comment = cutComment(raw)
	return unescape(value), ast.Plain, comment
}

func trailingComment(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || !token.IsComment(s[0]) {
		return ""
	}
	return s
}

// unquote returns the text between the opening quote of s and the quote
// that closes it, and what follows the closing quote. The closing quote is
// the first unescaped quote followed only by a comment or nothing; failing
// that, the last quote in s is used under the same condition.
func unquote(s string) (inner, tail string, ok bool) {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if i+1 < len(s) && s[i+1] == '"' {
				i++
			}
		case '"':
			if onlyComment(s[i+1:]) {
				return s[1:i], s[i+1:], true
			}
		}
	}
	if last := strings.LastIndexByte(s, '"'); last > 0 && onlyComment(s[last+1:]) {
		return s[1:last], s[last+1:], true
	}
	return "", "", false
}

func onlyComment(s string) bool {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	return s == "" || token.IsComment(s[0])
}

// cutComment cuts s at the first ';' or '#' preceded by a space or tab and
// trims both halves. Markers elsewhere are kept.
func cutComment(s string) (value, comment string) {
	for i := 1; i < len(s); i++ {
		if token.IsComment(s[i]) && (s[i-1] == ' ' || s[i-1] == '\t') {
			return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i:])
		}
	}
	return strings.TrimSpace(s), ""
}

// unescape resolves backslash escapes in a plain value. Unknown escapes
// are kept as written.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '\\', '"', ';', '#', ':':
			b.WriteByte(s[i])
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// unescapeQuotes turns \" back into " in a quoted value.
func unescapeQuotes(s string) string {
	return strings.ReplaceAll(s, `\"`, `"`)
}

// unescapeDelims turns \""" back into """ in a triple-quoted value.
func unescapeDelims(s string) string {
	if !strings.Contains(s, token.EscapedDelim) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if strings.HasPrefix(s[i:], token.EscapedDelim) {
			b.WriteString(token.Delim)
			i += len(token.Delim)
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// unescapeName resolves backslash escapes in keys and section names:
// a backslash keeps the character after it literally.
func unescapeName(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func (p *Parser) errorf(kind errors.Kind, format string, args ...any) error {
	return &errors.ParseError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Line:    p.curToken.Line,
		Column:  p.curToken.Column,
	}
}
