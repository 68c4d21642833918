package yso

import (
	"iter"
	"maps"
	"slices"
)

// Global names the scope that holds the keys written before any section
// header. It is present in every Document.
const Global = ""

// Document maps scope names to Sections. Scopes and the keys within them
// keep insertion order. The zero value is an empty Document holding only
// the global scope, like the result of New.
//
// A Document is not safe for concurrent use, including reads of a zero
// value, which set up its global scope.
type Document struct {
	scopes map[string]*Section
	order  []string
}

// New returns an empty Document holding only the global scope.
func New() *Document {
	d := &Document{}
	d.init()
	return d
}

func (d *Document) init() {
	if d.scopes != nil {
		return
	}
	d.scopes = map[string]*Section{Global: newSection(Global)}
	d.order = []string{Global}
}

// Scope returns the named scope, creating it if it does not exist.
func (d *Document) Scope(name string) *Section {
	d.init()
	if s, ok := d.scopes[name]; ok {
		return s
	}
	s := newSection(name)
	d.scopes[name] = s
	d.order = append(d.order, name)
	return s
}

// Lookup returns the named scope. Reading an absent scope returns a
// *LookupError; the global scope is always found.
func (d *Document) Lookup(name string) (*Section, error) {
	d.init()
	s, ok := d.scopes[name]
	if !ok {
		return nil, &LookupError{Scope: name}
	}
	return s, nil
}

// Global returns the global scope.
func (d *Document) Global() *Section {
	d.init()
	return d.scopes[Global]
}

// Has reports whether the named scope exists.
func (d *Document) Has(name string) bool {
	d.init()
	_, ok := d.scopes[name]
	return ok
}

// Names returns the scope names in insertion order. The global scope comes
// first.
func (d *Document) Names() []string {
	d.init()
	return slices.Clone(d.order)
}

// All iterates over the scopes in insertion order.
func (d *Document) All() iter.Seq2[string, *Section] {
	d.init()
	return func(yield func(string, *Section) bool) {
		for _, name := range d.order {
			if !yield(name, d.scopes[name]) {
				return
			}
		}
	}
}

// Len returns the number of scopes, counting the global scope.
func (d *Document) Len() int {
	d.init()
	return len(d.order)
}

// Remove deletes the named scope. Removing the global scope empties it.
func (d *Document) Remove(name string) {
	d.init()
	if name == Global {
		d.scopes[Global] = newSection(Global)
		return
	}
	if _, ok := d.scopes[name]; !ok {
		return
	}
	delete(d.scopes, name)
	d.order = slices.DeleteFunc(d.order, func(n string) bool { return n == name })
}

// Merge applies each source to d in order. Absent scopes are created and
// conflicting keys are overwritten, so the last source wins. Nothing is
// removed from d.
func (d *Document) Merge(srcs ...*Document) {
	for _, src := range srcs {
		if src == nil {
			continue
		}
		for name, s := range src.All() {
			dst := d.Scope(name)
			for k, v := range s.All() {
				dst.Set(k, v)
			}
		}
	}
}

// Merge merges srcs into dst and returns dst.
func Merge(dst *Document, srcs ...*Document) *Document {
	dst.Merge(srcs...)
	return dst
}

// Clone returns a deep copy of d.
func (d *Document) Clone() *Document {
	c := New()
	c.Merge(d)
	return c
}

// Equal reports whether d and o hold the same scopes with the same keys
// and values. Order is not compared.
func (d *Document) Equal(o *Document) bool {
	o.init()
	if d.Len() != o.Len() {
		return false
	}
	for name, s := range d.All() {
		other, ok := o.scopes[name]
		if !ok || !maps.Equal(s.values, other.values) {
			return false
		}
	}
	return true
}

// Map returns the contents of d as nested maps. The global scope is
// stored under Global.
func (d *Document) Map() map[string]map[string]string {
	d.init()
	m := make(map[string]map[string]string, d.Len())
	for name, s := range d.All() {
		m[name] = maps.Clone(s.values)
	}
	return m
}

// FromMap builds a Document from nested maps. Scopes other than the global
// one and the keys within every scope are added in sorted order.
func FromMap(m map[string]map[string]string) *Document {
	d := New()
	for _, name := range slices.Sorted(maps.Keys(m)) {
		s := d.Scope(name)
		values := m[name]
		for _, k := range slices.Sorted(maps.Keys(values)) {
			s.Set(k, values[k])
		}
	}
	return d
}

// Section holds the key-value pairs of one scope. A zero Section is an
// empty scope named Global; Documents hand out named ones.
type Section struct {
	name   string
	values map[string]string
	keys   []string
}

func newSection(name string) *Section {
	return &Section{name: name, values: make(map[string]string)}
}

// Name returns the scope name of s.
func (s *Section) Name() string { return s.name }

// Get returns the value of key, or a *LookupError if it is not set.
func (s *Section) Get(key string) (string, error) {
	v, ok := s.values[key]
	if !ok {
		return "", &LookupError{Scope: s.name, Key: key}
	}
	return v, nil
}

// Lookup returns the value of key and whether it is set.
func (s *Section) Lookup(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Set assigns value to key. A key that is already set keeps its position.
func (s *Section) Set(key, value string) {
	if s.values == nil {
		s.values = make(map[string]string)
	}
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// Has reports whether key is set.
func (s *Section) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Delete removes key.
func (s *Section) Delete(key string) {
	if _, ok := s.values[key]; !ok {
		return
	}
	delete(s.values, key)
	s.keys = slices.DeleteFunc(s.keys, func(k string) bool { return k == key })
}

// Keys returns the keys in insertion order.
func (s *Section) Keys() []string {
	return slices.Clone(s.keys)
}

// Len returns the number of keys.
func (s *Section) Len() int {
	return len(s.keys)
}

// All iterates over the key-value pairs in insertion order.
func (s *Section) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range s.keys {
			if !yield(k, s.values[k]) {
				return
			}
		}
	}
}
