package yso

import (
	"reflect"
	"strconv"
	"time"
)

// SectionUnmarshaler is implemented by types that read their fields from a
// Section.
type SectionUnmarshaler interface {
	UnmarshalSection(s *Section) error
}

// SectionMarshaler is implemented by types that write their fields into a
// Section.
type SectionMarshaler interface {
	MarshalSection(s *Section) error
}

// Decode fills u from the named scope. A missing scope returns a
// *LookupError; a failure inside u is wrapped in a *BindError.
func (d *Document) Decode(scope string, u SectionUnmarshaler) error {
	s, err := d.Lookup(scope)
	if err != nil {
		return err
	}
	if err := u.UnmarshalSection(s); err != nil {
		return &BindError{Scope: scope, Type: reflect.TypeOf(u), Err: err}
	}
	return nil
}

// Encode writes m into the named scope, creating it if needed.
func (d *Document) Encode(scope string, m SectionMarshaler) error {
	if err := m.MarshalSection(d.Scope(scope)); err != nil {
		return &BindError{Scope: scope, Type: reflect.TypeOf(m), Err: err}
	}
	return nil
}

// Int returns the value of key parsed as a base-10 int.
func (s *Section) Int(key string) (int, error) {
	return parseValue(s, key, strconv.Atoi)
}

// Bool returns the value of key parsed by strconv.ParseBool.
func (s *Section) Bool(key string) (bool, error) {
	return parseValue(s, key, strconv.ParseBool)
}

// Float returns the value of key parsed as a float64.
func (s *Section) Float(key string) (float64, error) {
	return parseValue(s, key, func(v string) (float64, error) {
		return strconv.ParseFloat(v, 64)
	})
}

// Duration returns the value of key parsed by time.ParseDuration.
func (s *Section) Duration(key string) (time.Duration, error) {
	return parseValue(s, key, time.ParseDuration)
}

func parseValue[T any](s *Section, key string, parse func(string) (T, error)) (T, error) {
	var zero T
	v, err := s.Get(key)
	if err != nil {
		return zero, err
	}
	t, err := parse(v)
	if err != nil {
		return zero, &ValueError{Scope: s.name, Key: key, Value: v, Err: err}
	}
	return t, nil
}
