// Package query evaluates expr-lang expressions against a YSO document.
//
// Every named scope is a variable holding a map of its keys, so
// `Pet.species == "cat"` reads key species of scope Pet. The global scope
// is available as global, and scopes lists every scope by name including
// those whose names are not identifiers. A named scope called global or
// scopes is only reachable through scopes.
package query

import (
	"fmt"

	"github.com/KimNorgaard/go-yso"
	"github.com/expr-lang/expr"
)

const (
	globalVar = "global"
	scopesVar = "scopes"
)

// Env returns the evaluation environment for doc.
func Env(doc *yso.Document) map[string]any {
	scopes := make(map[string]map[string]string, doc.Len())
	env := make(map[string]any, doc.Len()+2)
	for name, s := range doc.All() {
		values := make(map[string]string, s.Len())
		for k, v := range s.All() {
			values[k] = v
		}
		scopes[name] = values
		if name != yso.Global {
			env[name] = values
		}
	}
	env[globalVar] = scopes[yso.Global]
	env[scopesVar] = scopes
	return env
}

func options(doc *yso.Document, env map[string]any) []expr.Option {
	return []expr.Option{
		expr.Env(env),
		expr.Function("lookup", func(params ...any) (any, error) {
			s, err := doc.Lookup(params[0].(string))
			if err != nil {
				return nil, err
			}
			return s.Get(params[1].(string))
		},
			new(func(string, string) string)),
	}
}

// Eval compiles code against doc and returns its result.
func Eval(code string, doc *yso.Document) (any, error) {
	env := Env(doc)
	prg, err := expr.Compile(code, options(doc, env)...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return res, nil
}

// Match evaluates a boolean expression against doc. Expressions of any
// other type fail to compile.
func Match(code string, doc *yso.Document) (bool, error) {
	env := Env(doc)
	prg, err := expr.Compile(code, append(options(doc, env), expr.AsBool())...)
	if err != nil {
		return false, fmt.Errorf("query: %w", err)
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return false, fmt.Errorf("query: %w", err)
	}
	return res.(bool), nil
}

// Format renders an evaluation result for display. Strings are written as
// they are.
func Format(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
