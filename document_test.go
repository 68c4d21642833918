package yso_test

import (
	stderrors "errors"
	"maps"
	"slices"
	"testing"

	"github.com/KimNorgaard/go-yso"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	doc := yso.New()
	require.Equal(t, 1, doc.Len())
	require.True(t, doc.Has(yso.Global))
	require.NotNil(t, doc.Global())
	require.Equal(t, yso.Global, doc.Global().Name())

	s, err := doc.Lookup(yso.Global)
	require.NoError(t, err)
	require.Same(t, doc.Global(), s)
}

func TestLookup(t *testing.T) {
	doc := yso.New()
	doc.Scope("Pet").Set("species", "cat")

	_, err := doc.Lookup("Missing")
	require.ErrorIs(t, err, yso.ErrNotFound)
	require.EqualError(t, err, `yso: scope "Missing" not found`)
	require.False(t, doc.Has("Missing"))

	var lerr *yso.LookupError
	require.True(t, stderrors.As(err, &lerr))
	require.Equal(t, "Missing", lerr.Scope)
	require.Empty(t, lerr.Key)

	pet, err := doc.Lookup("Pet")
	require.NoError(t, err)
	_, err = pet.Get("color")
	require.ErrorIs(t, err, yso.ErrNotFound)
	require.EqualError(t, err, `yso: key "color" not found in scope "Pet"`)

	_, err = doc.Global().Get("name")
	require.EqualError(t, err, `yso: key "name" not found in global scope`)

	v, ok := pet.Lookup("species")
	require.True(t, ok)
	require.Equal(t, "cat", v)
	_, ok = pet.Lookup("color")
	require.False(t, ok)
}

func TestScopeIsCaseSensitive(t *testing.T) {
	doc := yso.New()
	doc.Scope("pet").Set("Name", "a")
	doc.Scope("Pet").Set("name", "b")
	require.Equal(t, []string{yso.Global, "pet", "Pet"}, doc.Names())
	require.True(t, doc.Scope("pet").Has("Name"))
	require.False(t, doc.Scope("pet").Has("name"))
}

func TestSection(t *testing.T) {
	s := yso.New().Scope("S")
	s.Set("b", "1")
	s.Set("a", "2")
	s.Set("c", "3")
	s.Set("b", "4")
	require.Equal(t, []string{"b", "a", "c"}, s.Keys())
	require.Equal(t, 3, s.Len())

	s.Delete("a")
	s.Delete("missing")
	require.Equal(t, []string{"b", "c"}, s.Keys())
	require.False(t, s.Has("a"))

	require.Equal(t, map[string]string{"b": "4", "c": "3"}, maps.Collect(s.All()))

	keys := s.Keys()
	keys[0] = "mutated"
	require.Equal(t, []string{"b", "c"}, s.Keys(), "Keys returns a copy")
}

func TestDocumentIteration(t *testing.T) {
	doc := yso.New()
	doc.Scope("B")
	doc.Scope("A")
	var names []string
	for name, s := range doc.All() {
		require.Equal(t, name, s.Name())
		names = append(names, name)
	}
	require.Equal(t, []string{yso.Global, "B", "A"}, names)

	var first []string
	for name := range doc.All() {
		first = append(first, name)
		break
	}
	require.Equal(t, []string{yso.Global}, first)
}

func TestRemove(t *testing.T) {
	doc := yso.New()
	doc.Global().Set("k", "v")
	doc.Scope("A").Set("x", "1")
	doc.Scope("B")

	doc.Remove("A")
	doc.Remove("Missing")
	require.Equal(t, []string{yso.Global, "B"}, doc.Names())
	require.False(t, doc.Has("A"))

	doc.Remove(yso.Global)
	require.True(t, doc.Has(yso.Global))
	require.Zero(t, doc.Global().Len())
	require.Equal(t, 2, doc.Len())
}

func TestMerge(t *testing.T) {
	a, err := yso.ParseString("[Pet]\nspecies: cat\ncolor: black\n")
	require.NoError(t, err)
	b, err := yso.ParseString("[Pet]\nspecies: dog\n")
	require.NoError(t, err)

	a.Merge(b)
	pet, err := a.Lookup("Pet")
	require.NoError(t, err)
	require.Equal(t, map[string]string{"species": "dog", "color": "black"}, maps.Collect(pet.All()))
	require.Equal(t, []string{"species", "color"}, pet.Keys())
}

func TestMergeOrder(t *testing.T) {
	dst := yso.New()
	dst.Global().Set("keep", "dst")

	one := yso.New()
	one.Global().Set("k", "one")
	one.Scope("Only1").Set("x", "1")
	two := yso.New()
	two.Global().Set("k", "two")
	two.Scope("Empty")

	got := yso.Merge(dst, one, nil, two)
	require.Same(t, dst, got)

	expected := map[string]map[string]string{
		yso.Global: {"keep": "dst", "k": "two"},
		"Only1":    {"x": "1"},
		"Empty":    {},
	}
	if diff := cmp.Diff(expected, dst.Map()); diff != "" {
		t.Fatalf("merge mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, []string{yso.Global, "Only1", "Empty"}, dst.Names())
}

func TestClone(t *testing.T) {
	doc := yso.New()
	doc.Scope("A").Set("x", "1")

	c := doc.Clone()
	require.True(t, doc.Equal(c))

	c.Scope("A").Set("x", "2")
	c.Scope("B")
	v, err := doc.Scope("A").Get("x")
	require.NoError(t, err)
	require.Equal(t, "1", v)
	require.False(t, doc.Has("B"))
	require.False(t, doc.Equal(c))
}

func TestEqual(t *testing.T) {
	a := yso.New()
	a.Scope("A").Set("x", "1")
	a.Scope("B").Set("y", "2")
	b := yso.New()
	b.Scope("B").Set("y", "2")
	b.Scope("A").Set("x", "1")
	require.True(t, a.Equal(b), "order does not matter")

	b.Scope("A").Set("x", "other")
	require.False(t, a.Equal(b))

	c := a.Clone()
	c.Scope("C")
	require.False(t, a.Equal(c))
}

func TestMapRoundTrip(t *testing.T) {
	m := map[string]map[string]string{
		yso.Global: {"z": "1", "a": "2"},
		"Pet":      {"species": "cat"},
		"Empty":    {},
	}
	doc := yso.FromMap(m)
	require.Equal(t, []string{yso.Global, "Empty", "Pet"}, doc.Names())
	require.Equal(t, []string{"a", "z"}, doc.Global().Keys())
	if diff := cmp.Diff(m, doc.Map()); diff != "" {
		t.Fatalf("map mismatch (-want +got):\n%s", diff)
	}

	out := doc.Map()
	out["Pet"]["species"] = "dog"
	v, err := doc.Scope("Pet").Get("species")
	require.NoError(t, err)
	require.Equal(t, "cat", v, "Map returns a copy")

	require.Equal(t, []string{yso.Global}, slices.Collect(maps.Keys(yso.FromMap(nil).Map())))
}

func TestZeroValue(t *testing.T) {
	var doc yso.Document
	require.NotNil(t, doc.Global())
	require.True(t, doc.Has(yso.Global))
	require.Equal(t, []string{yso.Global}, doc.Names())

	doc.Scope("Pet").Set("species", "cat")
	doc.Global().Set("name", "Alice")
	out, err := yso.Marshal(&doc)
	require.NoError(t, err)
	require.Equal(t, scenario, string(out))

	other := new(yso.Document)
	require.Equal(t, 1, other.Len())
	require.True(t, other.Equal(yso.New()))
	other.Merge(&doc)
	require.True(t, other.Equal(&doc))

	var s yso.Section
	s.Set("k", "v")
	v, err := s.Get("k")
	require.NoError(t, err)
	require.Equal(t, "v", v)
	require.Equal(t, []string{"k"}, s.Keys())
}
