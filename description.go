package ggstyle

// Entry is one property of a Description: either a constant Value or an
// interpolation Spec evaluated per feature and zoom.
type Entry struct {
	value Value
	spec  *Spec
}

// Scalar returns a constant entry.
func Scalar(v Value) Entry {
	return Entry{value: v}
}

// Interpolated returns an entry evaluated through a style function.
func Interpolated(s Spec) Entry {
	c := s.Clone()
	return Entry{spec: &c}
}

// IsFunction reports whether the entry is an interpolation Spec.
func (e Entry) IsFunction() bool { return e.spec != nil }

// Value returns the constant value. It is undefined for function entries.
func (e Entry) Value() Value { return e.value }

// Spec returns a copy of the interpolation spec and whether e has one.
func (e Entry) Spec() (Spec, bool) {
	if e.spec == nil {
		return Spec{}, false
	}
	return e.spec.Clone(), true
}

// Equal reports whether two entries hold the same constant or spec.
func (e Entry) Equal(o Entry) bool {
	if e.IsFunction() != o.IsFunction() {
		return false
	}
	if !e.IsFunction() {
		return e.value.Equal(o.value)
	}
	a, b := e.spec, o.spec
	if a.Type != b.Type || a.Property != b.Property || a.Base != b.Base ||
		!a.Default.Equal(b.Default) || len(a.Stops) != len(b.Stops) {
		return false
	}
	for i := range a.Stops {
		if !a.Stops[i].Input.Equal(b.Stops[i].Input) || !a.Stops[i].Output.Equal(b.Stops[i].Output) {
			return false
		}
	}
	return true
}

func (e Entry) clone() Entry {
	if e.spec != nil {
		return Interpolated(*e.spec)
	}
	return e
}

// Description maps property names to entries. A nil Description is empty.
//
// Keys outside CanvasProperties are carried through compilation into the
// resolved style but never applied to a canvas.
type Description map[string]Entry

// Clone returns a deep copy of d. Cloning nil yields an empty Description.
func (d Description) Clone() Description {
	out := make(Description, len(d))
	for k, e := range d {
		out[k] = e.clone()
	}
	return out
}

// defaultStyle sits beneath every compiled description. It is never handed
// out directly; DefaultStyle returns a copy.
var defaultStyle = Description{
	LineWidth:   Scalar(NumberValue(1)),
	StrokeStyle: Scalar(StringValue("#000")),
	FillStyle:   Scalar(StringValue("#00f")),
}

// DefaultStyle returns a copy of the base style applied beneath every
// description: lineWidth 1, strokeStyle "#000", fillStyle "#00f".
func DefaultStyle() Description {
	return defaultStyle.Clone()
}
