package ggstyle

// Canvas receives style properties. Implementations assign v to the
// drawing state named by name; an undefined v resets that state.
type Canvas interface {
	SetStyleProperty(name string, v Value)
}

// CanvasFunc adapts a function to Canvas.
type CanvasFunc func(name string, v Value)

// SetStyleProperty calls f(name, v).
func (f CanvasFunc) SetStyleProperty(name string, v Value) { f(name, v) }

// PropertyMap is a Canvas that records the last value assigned to each
// property.
type PropertyMap map[string]Value

// SetStyleProperty stores v under name, including undefined values.
func (m PropertyMap) SetStyleProperty(name string, v Value) { m[name] = v }

// Applicator copies resolved styles onto one canvas, skipping a style that
// is pointer-identical to the last one it applied. Two distinct *Resolved
// values with equal contents are both applied.
//
// An Applicator is owned by the goroutine drawing on its canvas.
type Applicator struct {
	canvas Canvas
	last   *Resolved
}

// NewApplicator returns an Applicator for canvas.
func NewApplicator(canvas Canvas) *Applicator {
	return &Applicator{canvas: canvas}
}

// Canvas returns the canvas styles are applied to.
func (a *Applicator) Canvas() Canvas { return a.canvas }

// Apply assigns every canvas property of r, in CanvasProperties order.
// Properties r does not set are assigned as undefined.
func (a *Applicator) Apply(r *Resolved) {
	if r == a.last {
		return
	}
	for _, name := range canvasProperties {
		a.canvas.SetStyleProperty(name, r.Get(name))
	}
	a.last = r
}

// Last returns the style applied most recently, or nil.
func (a *Applicator) Last() *Resolved { return a.last }

// Reset forgets the last applied style so the next Apply always writes.
// Call it after changing the canvas state by other means.
func (a *Applicator) Reset() { a.last = nil }
