// Package testutil holds YSO fixtures shared by the internal package tests.
package testutil

import (
	"embed"
	"io/fs"
	"path"
	"strings"
	"testing"
)

//go:embed testdata/*.yso
var fixtures embed.FS

// ReadTestData returns the content of the named fixture.
func ReadTestData(name string) ([]byte, error) {
	return fs.ReadFile(fixtures, path.Join("testdata", name))
}

// MustRead returns the named fixture as a string and fails the test if it
// is missing.
func MustRead(t testing.TB, name string) string {
	t.Helper()
	data, err := ReadTestData(name)
	if err != nil {
		t.Fatalf("fixture %s: %v", name, err)
	}
	return string(data)
}

// Names lists the embedded fixtures.
func Names() []string {
	entries, _ := fs.ReadDir(fixtures, "testdata")
	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".yso") {
			names = append(names, e.Name())
		}
	}
	return names
}
