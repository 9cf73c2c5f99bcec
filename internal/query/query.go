// Package query selects nodes from a design tree with boolean
// expressions evaluated against per-node attributes.
package query

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/esd-univr/hif-core-sub003/internal/hif"
)

// Env is the attribute set an expression sees for one node.
type Env map[string]any

// Query is a compiled node-selection expression.
type Query struct {
	src     string
	program *vm.Program
}

// sampleEnv carries every attribute an expression may reference, with
// representative value types. Compiling against it rejects unknown
// attribute names up front while keeping evaluation untyped.
var sampleEnv = Env{
	"kind":     "",
	"name":     "",
	"named":    false,
	"parent":   "",
	"children": 0,
	"props":    []string{},
	"prop":     func(key string) bool { return false },
}

// Compile validates and compiles a selection expression. The
// expression must evaluate to a boolean; available attributes are
// kind, name, named, parent, children, props and prop(key).
func Compile(expression string) (*Query, error) {
	program, err := expr.Compile(expression, expr.Env(sampleEnv), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling query %q: %w", expression, err)
	}

	return &Query{src: expression, program: program}, nil
}

// String returns the source expression.
func (q *Query) String() string { return q.src }

// Select walks the tree under root in declaration order and returns
// every node for which the expression holds. The tree is not modified,
// so the result remains valid until the tree is.
func (q *Query) Select(root hif.Node) ([]hif.Node, error) {
	if root == nil {
		return nil, nil
	}

	var (
		out     []hif.Node
		walkErr error
	)

	g := &hif.GuideVisitor{}
	g.PreVisit = func(n hif.Node) bool {
		if walkErr != nil {
			return true
		}

		match, err := q.eval(n)
		if err != nil {
			walkErr = err
			return true
		}

		if match {
			out = append(out, n)
		}

		return false
	}

	g.Visit(root)

	if walkErr != nil {
		return nil, walkErr
	}

	return out, nil
}

// Match evaluates the expression against a single node.
func (q *Query) Match(n hif.Node) (bool, error) {
	if n == nil {
		return false, nil
	}

	return q.eval(n)
}

// Select compiles expression and gathers the matching nodes under root
// in a single call.
func Select(root hif.Node, expression string) ([]hif.Node, error) {
	q, err := Compile(expression)
	if err != nil {
		return nil, err
	}

	return q.Select(root)
}

func (q *Query) eval(n hif.Node) (bool, error) {
	res, err := vm.Run(q.program, map[string]any(envOf(n)))
	if err != nil {
		return false, fmt.Errorf("evaluating query %q: %w", q.src, err)
	}

	match, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("query %q: result is %T, want bool", q.src, res)
	}

	return match, nil
}

func envOf(n hif.Node) Env {
	name := ""
	if n.Name() != nil {
		name = n.Name().String()
	}

	parent := ""
	if p := n.Parent(); p != nil {
		parent = p.Kind().String()
	}

	children := 0
	for _, f := range n.Fields() {
		if !f.IsEmpty() {
			children++
		}
	}

	for _, l := range n.Lists() {
		children += l.Size()
	}

	props := n.PropertyKeys()
	if props == nil {
		props = []string{}
	}

	return Env{
		"kind":     n.Kind().String(),
		"name":     name,
		"named":    n.Name() != nil,
		"parent":   parent,
		"children": children,
		"props":    props,
		"prop": func(key string) bool {
			return n.HasProperty(key)
		},
	}
}
