package function

import (
	"encoding/json"
	"fmt"
)

// Type selects how a Spec maps its input onto stop outputs.
type Type string

const (
	// Exponential interpolates between the two stops around the input.
	// It is the default when Type is empty.
	Exponential Type = "exponential"
	// Interval steps to the output of the last stop at or below the input.
	Interval Type = "interval"
	// Categorical picks the stop whose input equals the property value.
	Categorical Type = "categorical"
	// Identity returns the property value itself.
	Identity Type = "identity"
)

// Stop is one [input, output] point of a piecewise function.
type Stop struct {
	Input  Value
	Output Value
}

// MarshalJSON encodes the stop as a two-element array.
func (s Stop) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]Value{s.Input, s.Output})
}

// UnmarshalJSON decodes a two-element [input, output] array.
func (s *Stop) UnmarshalJSON(data []byte) error {
	var pair []Value
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("function: stop has %d elements, want 2", len(pair))
	}
	s.Input, s.Output = pair[0], pair[1]
	return nil
}

// Spec describes an interpolation function: a zoom function when Property is
// empty, a feature-property function otherwise.
type Spec struct {
	Type     Type   `json:"type,omitempty" toml:"type"`
	Property string `json:"property,omitempty" toml:"property"`
	// Base is the exponential base. Zero means 1 (linear).
	Base    float64 `json:"base,omitempty" toml:"base"`
	Stops   []Stop  `json:"stops" toml:"stops"`
	Default Value   `json:"default,omitempty" toml:"default"`
}

// Clone returns a deep copy of s.
func (s Spec) Clone() Spec {
	out := s
	if s.Stops != nil {
		out.Stops = make([]Stop, len(s.Stops))
		for i, st := range s.Stops {
			out.Stops[i] = Stop{Input: st.Input.clone(), Output: st.Output.clone()}
		}
	}
	out.Default = s.Default.clone()
	return out
}

// Interpolated reports whether the spec type is exponential (or unset).
func (s Spec) Interpolated() bool {
	return s.Type == "" || s.Type == Exponential
}

// SpecFromMap builds a Spec from a generic object such as a decoded JSON or
// TOML table.
func SpecFromMap(m map[string]any) (Spec, error) {
	var s Spec
	if t, ok := m["type"]; ok {
		str, ok := t.(string)
		if !ok {
			return Spec{}, fmt.Errorf("function: type must be a string, got %T", t)
		}
		s.Type = Type(str)
	}
	if p, ok := m["property"]; ok {
		str, ok := p.(string)
		if !ok {
			return Spec{}, fmt.Errorf("function: property must be a string, got %T", p)
		}
		s.Property = str
	}
	if b, ok := m["base"]; ok {
		f, ok := toFloat(b)
		if !ok {
			return Spec{}, fmt.Errorf("function: base must be a number, got %T", b)
		}
		s.Base = f
	}
	if d, ok := m["default"]; ok {
		v, err := FromAny(d)
		if err != nil {
			return Spec{}, fmt.Errorf("function: default: %w", err)
		}
		s.Default = v
	}
	if raw, ok := m["stops"]; ok {
		list, ok := raw.([]any)
		if !ok {
			return Spec{}, fmt.Errorf("function: stops must be an array, got %T", raw)
		}
		s.Stops = make([]Stop, len(list))
		for i, e := range list {
			pair, ok := e.([]any)
			if !ok || len(pair) != 2 {
				return Spec{}, fmt.Errorf("function: stop %d is not an [input, output] pair", i)
			}
			in, err := FromAny(pair[0])
			if err != nil {
				return Spec{}, fmt.Errorf("function: stop %d input: %w", i, err)
			}
			out, err := FromAny(pair[1])
			if err != nil {
				return Spec{}, fmt.Errorf("function: stop %d output: %w", i, err)
			}
			s.Stops[i] = Stop{Input: in, Output: out}
		}
	}
	return s, nil
}

func (v Value) clone() Value {
	if v.kind == Array {
		return ArrayValue(v.arr...)
	}
	return v
}
