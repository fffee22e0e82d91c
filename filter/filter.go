// Package filter selects Tenor posts with expr-lang expressions.
//
// An expression sees the post's properties (Title, Tags, Flags, HasAudio,
// Created, ...) and helper functions (hasTag, hasFormat, formatSize, ...), and
// must evaluate to a boolean:
//
//	IsSticker and formatSize("gif") < 500000
//	hasTag("cat") and daysSince(Created) < 365
//	Title contains "dance" or "dance" in Tags
package filter

import (
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/tenor/tenor"
)

// Filter is a compiled expression. It is safe for concurrent use.
type Filter struct {
	expression string
	program    *vm.Program
}

// CompilerOption configures a Compiler
type CompilerOption func(*Compiler)

// WithCache keeps up to size compiled filters
func WithCache(size int) CompilerOption {
	return func(c *Compiler) {
		if size > 0 {
			c.cache = newLRUCache[*Filter](size)
		}
	}
}

// Compiler compiles filter expressions
type Compiler struct {
	cache *lruCache[*Filter]
}

// NewCompiler creates a new Compiler
func NewCompiler(opts ...CompilerOption) *Compiler {
	c := &Compiler{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile compiles an expression with a default Compiler
func Compile(expression string) (*Filter, error) {
	return NewCompiler().Compile(expression)
}

// Compile type-checks expression against the post environment
func (c *Compiler) Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(newEnvironment(tenor.ResponseObject{})),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	f := &Filter{
		expression: expression,
		program:    program,
	}

	if c.cache != nil {
		c.cache.Put(expression, f)
	}

	return f, nil
}

// CacheLen returns the number of cached filters
func (c *Compiler) CacheLen() int {
	if c.cache == nil {
		return 0
	}
	return c.cache.Len()
}

// Expression returns the source expression
func (f *Filter) Expression() string {
	return f.expression
}

// Evaluate reports whether post matches the filter
func (f *Filter) Evaluate(post tenor.ResponseObject) (bool, error) {
	result, err := expr.Run(f.program, newEnvironment(post))
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			PostID:     post.ID,
			Reason:     "runtime error",
			Err:        err,
		}
	}

	// AsBool guarantees the result type
	return result.(bool), nil
}

// Apply returns the matching posts in their original order
func (f *Filter) Apply(posts []tenor.ResponseObject) ([]tenor.ResponseObject, error) {
	matched := make([]tenor.ResponseObject, 0, len(posts))
	for _, post := range posts {
		ok, err := f.Evaluate(post)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, post)
		}
	}
	return matched, nil
}
