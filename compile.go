package ggstyle

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/gogpu/ggstyle/function"
)

// Feature is the input of a compiled style: the properties that
// property-driven functions read.
type Feature struct {
	ID         any
	Properties map[string]any
}

// StyleFunc resolves a compiled style for one feature at one zoom level.
//
// A StyleFunc keeps no reference to the Description it was compiled from and
// is safe for concurrent use. Styles without function entries return the
// same *Resolved on every call.
type StyleFunc func(f Feature, zoom float64) *Resolved

// Compiler compiles descriptions into StyleFuncs.
type Compiler struct {
	opts compilerOptions
}

// NewCompiler returns a Compiler configured by opts.
func NewCompiler(opts ...Option) *Compiler {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Compiler{opts: o}
}

var defaultCompiler = NewCompiler()

// Compile compiles desc with the default function builder and colour parser.
func Compile(desc Description) (StyleFunc, error) {
	return defaultCompiler.Compile(desc)
}

// Compile merges desc over DefaultStyle and returns its StyleFunc.
//
// Exponential specs have their string stop outputs parsed into colour
// channel vectors so the function builder interpolates colours numerically;
// strings that do not parse are left as they are. Array results are turned
// back into "rgba(r,g,b,a)" strings when the StyleFunc runs.
//
// An error from the function builder is returned with the property name.
func (c *Compiler) Compile(desc Description) (StyleFunc, error) {
	merged := defaultStyle.Clone()
	for k, e := range desc {
		merged[k] = e.clone()
	}

	constants := make(map[string]Value, len(merged))
	var dynamic []string
	for k, e := range merged {
		if e.IsFunction() {
			dynamic = append(dynamic, k)
			continue
		}
		constants[k] = e.Value()
	}

	if len(dynamic) == 0 {
		r := &Resolved{props: constants}
		return func(Feature, float64) *Resolved { return r }, nil
	}

	slices.Sort(dynamic)
	funcs := make([]function.Func, len(dynamic))
	for i, k := range dynamic {
		spec, _ := merged[k].Spec()
		if spec.Interpolated() {
			c.prepareColorStops(k, &spec)
		}
		fn, err := c.opts.builder.Build(spec)
		if err != nil {
			return nil, fmt.Errorf("ggstyle: property %q: %w", k, err)
		}
		funcs[i] = fn
	}

	return func(f Feature, zoom float64) *Resolved {
		props := maps.Clone(constants)
		for i, k := range dynamic {
			props[k] = convertInterpolated(funcs[i](zoom, f.Properties))
		}
		return &Resolved{props: props}
	}, nil
}

// prepareColorStops replaces string stop outputs that parse as colours with
// their channel vectors.
func (c *Compiler) prepareColorStops(key string, spec *Spec) {
	for i, s := range spec.Stops {
		str, ok := s.Output.Str()
		if !ok {
			continue
		}
		ch, ok := c.opts.parse(str)
		if !ok {
			Logger().Debug("ggstyle: stop output is not a colour, passing through",
				"property", key, "stop", i, "color", str)
			continue
		}
		spec.Stops[i].Output = function.ArrayValue(ch[:]...)
	}
}

// convertInterpolated formats array results as rgba() strings. Arrays are
// assumed to be colour channel vectors.
func convertInterpolated(v Value) Value {
	if v.Kind() != function.Array {
		return v
	}
	parts := make([]string, v.Len())
	for i := range parts {
		parts[i] = strconv.FormatInt(roundChannel(v.At(i)), 10)
	}
	return StringValue("rgba(" + strings.Join(parts, ",") + ")")
}

// roundChannel rounds half up. NaN becomes 0 and infinities saturate at the
// int32 range.
func roundChannel(x float64) int64 {
	if math.IsNaN(x) {
		return 0
	}
	return int64(min(max(math.Floor(x+0.5), math.MinInt32), math.MaxInt32))
}
