package stream

import (
	"fmt"
	"iter"
	"os"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/xj/ir"
)

// Query is a compiled boolean expression over records.  A Query records the
// error stopping its last Filter and so must not be shared between
// goroutines.
type Query struct {
	src string
	prg *vm.Program
	err error
}

// env is what a query expression sees.  Besides these, expressions may use
// the expr-lang builtins such as hasPrefix and the getenv and truthy
// functions.
type env struct {
	Key   string `expr:"key"`
	Path  string `expr:"path"`
	Value any    `expr:"value"`
	Type  string `expr:"type"`
	Depth int    `expr:"depth"`

	GetPath func(string) any `expr:"getpath"`
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Env(env{}),
		expr.AsBool(),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
		expr.Function("truthy", func(params ...any) (any, error) {
			node, err := ir.FromAny(params[0])
			if err != nil {
				return nil, err
			}
			return ir.Truth(node), nil
		},
			new(func(any) bool)),
	}
}

// Compile compiles src, which must evaluate to a boolean.
func Compile(src string) (*Query, error) {
	prg, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", src, err)
	}
	return &Query{src: src, prg: prg}, nil
}

func (q *Query) String() string {
	return q.src
}

func newEnv(r Record) env {
	res := env{
		Key:   r.Key,
		Path:  r.Path,
		Value: ir.ToAny(r.Value),
		Type:  ir.NullType.String(),
		Depth: r.Depth,
	}
	if r.Value != nil {
		res.Type = r.Value.Type.String()
	}
	// getpath resolves against the root of the record's tree
	res.GetPath = func(p string) any {
		if r.Value == nil {
			return nil
		}
		node, err := r.Value.Root().GetPointer(p)
		if err != nil || node == nil {
			return nil
		}
		return ir.ToAny(node)
	}
	return res
}

// Match evaluates the query against r.
func (q *Query) Match(r Record) (bool, error) {
	out, err := expr.Run(q.prg, newEnv(r))
	if err != nil {
		return false, fmt.Errorf("query %q at %s: %w", q.src, r.Path, err)
	}
	b, _ := out.(bool)
	return b, nil
}

// Filter yields the records of seq matching q.  Evaluation stops at the
// first error, which is then returned by Err.
func (q *Query) Filter(seq iter.Seq[Record]) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		q.err = nil
		for r := range seq {
			ok, err := q.Match(r)
			if err != nil {
				q.err = err
				return
			}
			if ok && !yield(r) {
				return
			}
		}
	}
}

// Err returns the error which ended the last Filter, if any.
func (q *Query) Err() error {
	return q.err
}
