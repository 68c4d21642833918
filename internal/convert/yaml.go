// Package convert translates YSO documents to and from YAML.
//
// The YAML side is a single mapping. Scalar entries hold the keys of the
// global scope and mapping entries hold named scopes:
//
//	name: Alice
//	Pet:
//	  species: cat
package convert

import (
	"fmt"
	"strconv"
	"time"

	"github.com/KimNorgaard/go-yso"
	"github.com/goccy/go-yaml"
)

// ToYAML returns the YAML form of doc. Global keys come first, then every
// named scope in document order. A global key that shares its name with a
// scope cannot be represented and is reported as an error.
func ToYAML(doc *yso.Document) ([]byte, error) {
	var root yaml.MapSlice
	for k, v := range doc.Global().All() {
		if k != yso.Global && doc.Has(k) {
			return nil, fmt.Errorf("convert: global key %q collides with scope %q", k, k)
		}
		root = append(root, yaml.MapItem{Key: k, Value: v})
	}
	for name, s := range doc.All() {
		if name == yso.Global {
			continue
		}
		scope := yaml.MapSlice{}
		for k, v := range s.All() {
			scope = append(scope, yaml.MapItem{Key: k, Value: v})
		}
		root = append(root, yaml.MapItem{Key: name, Value: scope})
	}
	if len(root) == 0 {
		return []byte("{}\n"), nil
	}
	return yaml.Marshal(root)
}

// FromYAML builds a document from YAML. Non-string scalars are written in
// their canonical text form, so 1.0 becomes "1". Sequences and mappings
// nested below a scope are rejected.
func FromYAML(data []byte) (*yso.Document, error) {
	var root yaml.MapSlice
	if err := yaml.UnmarshalWithOptions(data, &root, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("convert: %w", err)
	}

	doc := yso.New()
	for _, item := range root {
		name, err := scalarString(item.Key)
		if err != nil {
			return nil, fmt.Errorf("convert: top-level key: %w", err)
		}
		if scope, ok := item.Value.(yaml.MapSlice); ok {
			if err := fillScope(doc.Scope(name), scope); err != nil {
				return nil, err
			}
			continue
		}
		v, err := scalarString(item.Value)
		if err != nil {
			return nil, fmt.Errorf("convert: key %q: %w", name, err)
		}
		doc.Global().Set(name, v)
	}
	return doc, nil
}

func fillScope(s *yso.Section, items yaml.MapSlice) error {
	for _, item := range items {
		k, err := scalarString(item.Key)
		if err != nil {
			return fmt.Errorf("convert: scope %q: %w", s.Name(), err)
		}
		v, err := scalarString(item.Value)
		if err != nil {
			return fmt.Errorf("convert: scope %q, key %q: %w", s.Name(), k, err)
		}
		s.Set(k, v)
	}
	return nil
}

func scalarString(v any) (string, error) {
	switch v := v.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(v), nil
	case time.Time:
		return v.Format(time.RFC3339Nano), nil
	case yaml.MapSlice, map[string]any, []any:
		return "", fmt.Errorf("nested value of type %T is not supported", v)
	default:
		return "", fmt.Errorf("unsupported value of type %T", v)
	}
}
