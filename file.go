package yso

import (
	"bytes"
	"fmt"
	"os"
	"unicode"
)

// Load reads the file at path and parses it. A file that cannot be read
// yields an error wrapping the underlying *fs.PathError.
func Load(path string, opts ...Option) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("yso: load: %w", err)
	}
	return Parse(data, opts...)
}

// Save writes doc to path. The optional Header comes first, then the
// canonical text trimmed of trailing whitespace and ended by a single
// newline. The file is written to a temporary sibling first and renamed
// into place. Colors are never written to files.
func Save(path string, doc *Document, opts ...Option) error {
	o, err := applyOptions(opts)
	if err != nil {
		return err
	}
	o.colors = nil

	var buf bytes.Buffer
	if err := encode(&buf, doc, o); err != nil {
		return err
	}
	data := bytes.TrimRightFunc(buf.Bytes(), unicode.IsSpace)
	if len(data) > 0 {
		data = append(data, '\n')
	}

	if err := writeFile(path, data, 0o644); err != nil {
		return fmt.Errorf("yso: save: %w", err)
	}
	return nil
}

// writeFile writes data to a temporary sibling of path and renames it into
// place. The temporary file is removed when either step fails.
func writeFile(path string, data []byte, perm os.FileMode) error {
	tempFile := path + ".tmp"
	if err := os.WriteFile(tempFile, data, perm); err != nil {
		os.Remove(tempFile)
		return err
	}
	if err := os.Rename(tempFile, path); err != nil {
		os.Remove(tempFile)
		return err
	}
	return nil
}
