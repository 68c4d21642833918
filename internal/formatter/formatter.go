package formatter

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/KimNorgaard/go-yso/internal/ast"
	"github.com/KimNorgaard/go-yso/internal/token"
)

// Colors holds the functions used to colorize output. Each function is
// called with "%s" and the text to wrap. A nil field leaves that part
// uncolored.
type Colors struct {
	Comment func(string, ...any) string
	Section func(string, ...any) string
	Key     func(string, ...any) string
	Sep     func(string, ...any) string
	Value   func(string, ...any) string
	Block   func(string, ...any) string
}

// Formatter writes a YSO AST to an output stream in canonical form.
type Formatter struct {
	w      io.Writer
	colors *Colors
}

// New returns a new formatter that writes to w. colors may be nil.
func New(w io.Writer, colors *Colors) *Formatter {
	return &Formatter{w: w, colors: colors}
}

// Format writes every statement of file. Section headers are preceded by
// a blank line, which goes above the comments directly over a header.
// Other blank lines of the source are kept only around comments.
func (f *Formatter) Format(file *ast.File) error {
	for i, stmt := range file.Statements {
		if err := f.writeStatement(stmt, blankBefore(file.Statements, i)); err != nil {
			return err
		}
	}
	return nil
}

func blankBefore(stmts []ast.Statement, i int) bool {
	if i == 0 {
		return false
	}
	_, prevComment := stmts[i-1].(*ast.CommentStatement)
	spaced := ast.Spaced(stmts[i])
	switch stmts[i].(type) {
	case *ast.SectionStatement:
		return !prevComment || spaced
	case *ast.CommentStatement:
		return spaced || (!prevComment && opensSection(stmts[i:]))
	default:
		return prevComment && spaced
	}
}

// opensSection reports whether the comments at the start of stmts are
// followed by a section header.
func opensSection(stmts []ast.Statement) bool {
	for _, stmt := range stmts {
		switch stmt.(type) {
		case *ast.CommentStatement:
		case *ast.SectionStatement:
			return true
		default:
			return false
		}
	}
	return false
}

type part int

const (
	commentPart part = iota
	sectionPart
	keyPart
	sepPart
	valuePart
	blockPart
)

func (f *Formatter) writeStatement(stmt ast.Statement, blank bool) error {
	var line, comment string
	switch n := stmt.(type) {
	case *ast.CommentStatement:
		line = f.paint(commentPart, formatComment(n.Text))
	case *ast.SectionStatement:
		name := ""
		if n.Name != "" {
			var err error
			if name, err = FormatName(n.Name); err != nil {
				return err
			}
		}
		line = f.paint(sectionPart, "["+name+"]")
		comment = n.Comment
	case *ast.PairStatement:
		key, err := FormatKey(n.Key)
		if err != nil {
			return err
		}
		value := FormatValue(n.Value)
		vp := valuePart
		if strings.HasPrefix(value, token.Delim) {
			vp = blockPart
		}
		line = f.paint(keyPart, key) + f.paint(sepPart, ":") + " " + f.paint(vp, value)
		comment = n.Comment
		if strings.HasSuffix(n.Value, `\`) && vp == valuePart && strings.HasPrefix(value, `"`) && strings.Contains(comment, `"`) {
			// A quote in the comment would read as the closing one.
			line = f.paint(commentPart, comment) + "\n" + line
			comment = ""
		}
	case *ast.OrphanStatement:
		line = n.Text
	default:
		return fmt.Errorf("yso: unsupported node type for formatting: %T", n)
	}

	if comment != "" {
		line += " " + f.paint(commentPart, comment)
	}
	if blank {
		line = "\n" + line
	}
	_, err := io.WriteString(f.w, line+"\n")
	return err
}

func (f *Formatter) paint(p part, s string) string {
	if f.colors == nil {
		return s
	}
	var fn func(string, ...any) string
	switch p {
	case commentPart:
		fn = f.colors.Comment
	case sectionPart:
		fn = f.colors.Section
	case keyPart:
		fn = f.colors.Key
	case sepPart:
		fn = f.colors.Sep
	case valuePart:
		fn = f.colors.Value
	case blockPart:
		fn = f.colors.Block
	}
	if fn == nil {
		return s
	}
	return fn("%s", s)
}

func formatComment(text string) string {
	if text != "" && token.IsComment(text[0]) {
		return text
	}
	if text == "" {
		return ";"
	}
	return "; " + text
}

// FormatValue returns the canonical written form of a value:
// values with a newline become """ blocks, values that would not survive
// as plain text are double-quoted, everything else is written as is.
// Values holding a carriage return are written with backslash escapes
// instead, as blocks normalize line endings. When such a value also starts
// or ends with other whitespace the other forms are used, and a CRLF inside a block
// reads back as a plain newline.
func FormatValue(v string) string {
	switch {
	case strings.Contains(v, "\r") && escapable(v):
		return valueEscaper.Replace(v)
	case strings.Contains(v, "\n"):
		return token.Delim + "\n" + strings.ReplaceAll(v, token.Delim, token.EscapedDelim) + "\n" + token.Delim
	case needsQuotes(v):
		return `"` + strings.ReplaceAll(v, `"`, `\"`) + `"`
	default:
		return v
	}
}

var valueEscaper = strings.NewReplacer(
	`\`, `\\`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
	";", `\;`,
	"#", `\#`,
	`"`, `\"`,
	":", `\:`,
)

// escapable reports whether v survives as an escaped plain value: its
// edges must not be whitespace that plain values lose to trimming.
func escapable(v string) bool {
	first, _ := utf8.DecodeRuneInString(v)
	last, _ := utf8.DecodeLastRuneInString(v)
	return !trimmed(first) && !trimmed(last)
}

func trimmed(r rune) bool {
	return unicode.IsSpace(r) && !strings.ContainsRune("\r\n\t", r)
}

func needsQuotes(v string) bool {
	if v == "" {
		return true
	}
	first, _ := utf8.DecodeRuneInString(v)
	last, _ := utf8.DecodeLastRuneInString(v)
	if unicode.IsSpace(first) || unicode.IsSpace(last) {
		return true
	}
	return strings.ContainsAny(v, `:;#"\`)
}

// FormatKey escapes a key so that it reads back unchanged. Keys that
// cannot round-trip are rejected.
func FormatKey(k string) (string, error) {
	if err := checkName("key", k); err != nil {
		return "", err
	}
	var b strings.Builder
	for i := 0; i < len(k); i++ {
		c := k[i]
		switch {
		case c == '\\' || c == ':':
			b.WriteByte('\\')
		case i == 0 && (c == '[' || token.IsComment(c)):
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String(), nil
}

// FormatName escapes a section name for use between brackets.
func FormatName(name string) (string, error) {
	if err := checkName("section name", name); err != nil {
		return "", err
	}
	var b strings.Builder
	for i := 0; i < len(name); i++ {
		if c := name[i]; c == '\\' || c == ']' {
			b.WriteByte('\\')
		}
		b.WriteByte(name[i])
	}
	return b.String(), nil
}

func checkName(what, s string) error {
	switch {
	case s == "":
		return fmt.Errorf("yso: empty %s", what)
	case strings.ContainsAny(s, "\r\n"):
		return fmt.Errorf("yso: %s %q contains a line break", what, s)
	case strings.TrimSpace(s) != s:
		return fmt.Errorf("yso: %s %q has surrounding whitespace", what, s)
	}
	return nil
}
