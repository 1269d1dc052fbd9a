package ggstyle

import "github.com/gogpu/ggstyle/function"

// FunctionBuilder turns an interpolation Spec into an evaluation function.
// The default is function.Builder.
type FunctionBuilder interface {
	Build(spec Spec) (function.Func, error)
}

// BuilderFunc adapts an ordinary function to FunctionBuilder.
type BuilderFunc func(spec Spec) (function.Func, error)

// Build calls f(spec).
func (f BuilderFunc) Build(spec Spec) (function.Func, error) { return f(spec) }

// Option configures a Compiler.
//
// Example:
//
//	c := ggstyle.NewCompiler(ggstyle.WithFunctionBuilder(myBuilder))
type Option func(*compilerOptions)

type compilerOptions struct {
	builder FunctionBuilder
	parse   ColorParser
}

func defaultOptions() compilerOptions {
	return compilerOptions{
		builder: function.Builder{},
		parse:   ParseColor,
	}
}

// WithFunctionBuilder replaces the builder used for interpolated entries.
// A nil builder keeps the default.
func WithFunctionBuilder(b FunctionBuilder) Option {
	return func(o *compilerOptions) {
		if b != nil {
			o.builder = b
		}
	}
}

// WithColorParser replaces the parser applied to colour stops before
// interpolation. A nil parser keeps ParseColor.
func WithColorParser(p ColorParser) Option {
	return func(o *compilerOptions) {
		if p != nil {
			o.parse = p
		}
	}
}
