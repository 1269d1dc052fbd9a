package ggstyle

import "github.com/gogpu/ggstyle/function"

// Style values and function specs are defined in package function so the
// default function builder can share them without an import cycle.
type (
	// Value is a constant or resolved style value.
	Value = function.Value
	// Spec is an interpolation function description.
	Spec = function.Spec
	// Stop is one [input, output] point of a Spec.
	Stop = function.Stop
)

// NumberValue returns a numeric style value.
func NumberValue(f float64) Value { return function.NumberValue(f) }

// StringValue returns a colour or keyword style value.
func StringValue(s string) Value { return function.StringValue(s) }

// ArrayValue returns a numeric sequence such as a dash pattern.
func ArrayValue(xs ...float64) Value { return function.ArrayValue(xs...) }
