// Package function evaluates style functions: piecewise mappings from a zoom
// level or a feature property onto style values.
//
// A Spec lists [input, output] stops. Build validates it once and returns a
// Func that is called per feature and frame:
//
//	fn, err := function.Build(function.Spec{
//	    Stops: []function.Stop{
//	        {Input: function.NumberValue(0), Output: function.NumberValue(1)},
//	        {Input: function.NumberValue(10), Output: function.NumberValue(5)},
//	    },
//	})
//	width := fn(5, nil) // 3
//
// Exponential functions interpolate numbers and equal-length numeric arrays
// (colour channel vectors) component-wise. Strings never interpolate; they
// step to the lower stop.
package function

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Errors returned by Build.
var (
	ErrNoStops       = errors.New("function: spec has no stops")
	ErrUnknownType   = errors.New("function: unknown function type")
	ErrUnsortedStops = errors.New("function: stop inputs must be ascending numbers")
	ErrInvalidBase   = errors.New("function: base must be positive")
)

// Func evaluates a style function for a zoom level and feature properties.
type Func func(zoom float64, properties map[string]any) Value

// Builder builds Funcs from Specs. The zero Builder is ready to use.
type Builder struct{}

// Build implements the function builder used by style compilation.
func (Builder) Build(spec Spec) (Func, error) {
	return Build(spec)
}

// Build validates spec and returns its evaluation function.
// The spec is copied; later changes to it do not affect the result.
func Build(spec Spec) (Func, error) {
	spec = spec.Clone()

	base := spec.Base
	if base == 0 {
		base = 1
	}
	if base < 0 || math.IsNaN(base) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBase, spec.Base)
	}

	typ := spec.Type
	if typ == "" {
		typ = Exponential
	}

	var eval func(in Value) Value
	switch typ {
	case Exponential, Interval:
		inputs, err := numericInputs(spec.Stops)
		if err != nil {
			return nil, err
		}
		stops := spec.Stops
		def := spec.Default
		if typ == Exponential {
			eval = func(in Value) Value {
				x, ok := in.Number()
				if !ok || math.IsNaN(x) {
					return def
				}
				return evalExponential(inputs, stops, base, x)
			}
		} else {
			eval = func(in Value) Value {
				x, ok := in.Number()
				if !ok || math.IsNaN(x) {
					return def
				}
				return evalInterval(inputs, stops, x)
			}
		}
	case Categorical:
		if len(spec.Stops) == 0 {
			return nil, ErrNoStops
		}
		stops := spec.Stops
		def := spec.Default
		eval = func(in Value) Value {
			for _, s := range stops {
				if s.Input.Equal(in) {
					return s.Output
				}
			}
			return def
		}
	case Identity:
		def := spec.Default
		eval = func(in Value) Value {
			if in.IsUndefined() {
				return def
			}
			return in
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, spec.Type)
	}

	if spec.Property == "" {
		return func(zoom float64, _ map[string]any) Value {
			return eval(NumberValue(zoom))
		}, nil
	}

	name := spec.Property
	def := spec.Default
	return func(_ float64, properties map[string]any) Value {
		raw, ok := properties[name]
		if !ok {
			return def
		}
		in, err := FromAny(raw)
		if err != nil {
			return def
		}
		return eval(in)
	}, nil
}

func numericInputs(stops []Stop) ([]float64, error) {
	if len(stops) == 0 {
		return nil, ErrNoStops
	}
	inputs := make([]float64, len(stops))
	for i, s := range stops {
		x, ok := s.Input.Number()
		if !ok {
			return nil, fmt.Errorf("%w: stop %d input is %s", ErrUnsortedStops, i, s.Input.Kind())
		}
		if i > 0 && x < inputs[i-1] {
			return nil, fmt.Errorf("%w: stop %d input %v after %v", ErrUnsortedStops, i, x, inputs[i-1])
		}
		inputs[i] = x
	}
	return inputs, nil
}

// upper returns the index of the first stop whose input is greater than x.
func upper(inputs []float64, x float64) int {
	return sort.Search(len(inputs), func(i int) bool { return inputs[i] > x })
}

func evalInterval(inputs []float64, stops []Stop, x float64) Value {
	i := upper(inputs, x)
	if i == 0 {
		return stops[0].Output
	}
	return stops[i-1].Output
}

func evalExponential(inputs []float64, stops []Stop, base, x float64) Value {
	n := len(stops)
	if x <= inputs[0] {
		return stops[0].Output
	}
	if x >= inputs[n-1] {
		return stops[n-1].Output
	}
	i := min(upper(inputs, x), n-1)
	lo, hi := stops[i-1], stops[i]
	t := factor(base, x-inputs[i-1], inputs[i]-inputs[i-1])
	return lerp(lo.Output, hi.Output, t)
}

// factor returns the interpolation factor for progress d over span, in [0, 1].
func factor(base, d, span float64) float64 {
	if span == 0 {
		return 0
	}
	var t float64
	if base == 1 {
		t = d / span
	} else {
		t = (math.Pow(base, d) - 1) / (math.Pow(base, span) - 1)
	}
	// Bases far from 1 overflow math.Pow; the curve then hugs the lower stop.
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return 0
	}
	return min(max(t, 0), 1)
}

func lerp(a, b Value, t float64) Value {
	switch {
	case a.kind == Number && b.kind == Number:
		return NumberValue(a.num + (b.num-a.num)*t)
	case a.kind == Array && b.kind == Array && len(a.arr) == len(b.arr):
		out := make([]float64, len(a.arr))
		for i := range out {
			out[i] = a.arr[i] + (b.arr[i]-a.arr[i])*t
		}
		return Value{kind: Array, arr: out}
	default:
		return a
	}
}
