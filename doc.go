/*
Package yso reads and writes YSO, a small human-readable configuration
notation made of sections of key-value pairs:

	name: Alice                 ; a key in the global scope

	[Pet]
	species: cat
	motto: """
	first line
	second line
	"""
	quoted: "value with : colon"
	# a comment line

Every value is a string. Keys written before the first section header
belong to the global scope, named by the Global constant, which exists in
every Document. An empty header, [], switches back to the global scope. A
repeated key overwrites the earlier value and a repeated header continues
the same scope.

Values are resolved as follows. A value opening with """ is a triple-quoted
value; if it does not close on the same line it spans the following lines
verbatim up to the closing """. A value wrapped in double quotes has the
quotes stripped and \" unescaped. Anything else is a plain value: a ; or #
preceded by whitespace starts a trailing comment, and backslash escapes
such as \n and \t are resolved.

Parsing a document and writing it back:

	doc, err := yso.Parse(data)
	if err != nil {
		// handle *errors.ParseError
	}
	doc.Scope("Pet").Set("species", "dog")
	out, err := yso.Marshal(doc, yso.SortKeys())

Marshal writes the data of a Document and nothing else. To tidy a file
while keeping its comments, use Format or FormatFile, which rewrite the
source text itself.

Callers that load user supplied input without wanting to handle every
failure can use TryParse, which returns an empty Document and false on
failure.

Typed values are read with the Section accessors (Int, Bool, Float,
Duration) or by implementing SectionUnmarshaler and SectionMarshaler for a
type and calling Document.Decode and Document.Encode.
*/
package yso
