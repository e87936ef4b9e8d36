// Package expr compiles the user supplied pair predicate.
//
// A predicate is a CEL expression evaluated once per pair. It sees four
// variables: a and b, the two elements, and i and j, their indices.
package expr

import (
	"log/slog"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/google/cel-go/cel"
)

type Predicate struct {
	src string
	prg cel.Program
}

var env = sync.OnceValues(func() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable("a", cel.DynType),
		cel.Variable("b", cel.DynType),
		cel.Variable("i", cel.IntType),
		cel.Variable("j", cel.IntType),
	)
})

// Compile parses and checks src. The expression must evaluate to a bool.
func Compile(src string) (*Predicate, error) {
	e, err := env()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create CEL environment")
	}
	ast, iss := e.Compile(src)
	if iss.Err() != nil {
		return nil, errors.Wrapf(iss.Err(), "invalid expression %q", src)
	}
	if t := ast.OutputType(); !t.IsExactType(cel.BoolType) && !t.IsExactType(cel.DynType) {
		return nil, errors.Newf("expression %q must be bool, got %s", src, t)
	}
	prg, err := e.Program(ast)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build program for %q", src)
	}
	slog.Debug("compiled predicate", "expr", src)
	return &Predicate{src: src, prg: prg}, nil
}

// Eval reports whether the pair (i, a), (j, b) satisfies the predicate.
func (p *Predicate) Eval(i int, a any, j int, b any) (bool, error) {
	out, _, err := p.prg.Eval(map[string]any{
		"a": a,
		"b": b,
		"i": int64(i),
		"j": int64(j),
	})
	if err != nil {
		return false, errors.Wrapf(err, "evaluating %q for pair (%d, %d)", p.src, i, j)
	}
	v, ok := out.Value().(bool)
	if !ok {
		return false, errors.Newf("expression %q returned %s for pair (%d, %d), want bool", p.src, out.Type().TypeName(), i, j)
	}
	return v, nil
}

func (p *Predicate) String() string {
	return p.src
}

// CacheKey makes compiled predicates storable in a cache.Cache keyed by source.
func (p *Predicate) CacheKey() string {
	return p.src
}
