package cel

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
	celext "github.com/google/cel-go/ext"
)

// ItemVar is the variable an item predicate sees. "_" is bound to the
// same value as a shorthand.
const ItemVar = "item"

// Evaluator compiles predicates over menu items.
type Evaluator struct {
	env *cel.Env
}

// NewEvaluator creates an evaluator with the standard library and the
// common extension libraries.
func NewEvaluator() (*Evaluator, error) {
	env, err := newStandardCELEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}
	return &Evaluator{env: env}, nil
}

// Environment returns the CEL environment for introspection.
func (e *Evaluator) Environment() *cel.Env {
	return e.env
}

func newStandardCELEnv(opts ...cel.EnvOption) (*cel.Env, error) {
	allOpts := make([]cel.EnvOption, 0, 6+len(opts))
	allOpts = append(allOpts,
		cel.Variable(ItemVar, cel.MapType(cel.StringType, cel.DynType)),
		cel.Variable("_", cel.MapType(cel.StringType, cel.DynType)),
		celext.Strings(),
		celext.Encoders(),
		celext.Lists(),
		celext.Math(),
	)
	allOpts = append(allOpts, opts...)
	return cel.NewEnv(allOpts...)
}

// Predicate is a compiled boolean expression.
type Predicate struct {
	expr string
	prg  cel.Program
}

// Compile parses and type-checks expr. The expression must produce a bool.
func (e *Evaluator) Compile(expr string) (*Predicate, error) {
	ast, issues := e.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compilation error: %w", issues.Err())
	}
	if out := ast.OutputType(); !out.IsExactType(types.BoolType) && !out.IsExactType(types.DynType) {
		return nil, fmt.Errorf("filter %q must evaluate to bool, got %s", expr, out)
	}
	prg, err := e.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %w", err)
	}
	return &Predicate{expr: expr, prg: prg}, nil
}

// Match evaluates the predicate with fields bound to both item and "_".
func (p *Predicate) Match(fields map[string]any) (bool, error) {
	out, _, err := p.prg.Eval(map[string]any{
		ItemVar: fields,
		"_":     fields,
	})
	if err != nil {
		return false, fmt.Errorf("eval error: %w", err)
	}
	return toBool(out)
}

func (p *Predicate) String() string { return p.expr }

func toBool(v ref.Val) (bool, error) {
	b, ok := v.(types.Bool)
	if !ok {
		return false, fmt.Errorf("filter result is %s, not bool", v.Type().TypeName())
	}
	return bool(b), nil
}
