// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggcontext applies resolved ggstyle styles to a gg.Context.
//
// gg keeps a single brush for filling and stroking, while styles carry
// separate fillStyle and strokeStyle values. Canvas therefore remembers both
// brushes and installs the right one when Fill or Stroke is called:
//
//	dc := gg.NewContext(512, 512)
//	canvas := ggcontext.New(dc)
//	a := ggstyle.NewApplicator(canvas)
//
//	a.Apply(fn(feature, zoom))
//	dc.DrawRectangle(10, 10, 100, 50)
//	canvas.FillPreserve()
//	canvas.Stroke()
//
// Line properties (width, cap, join, miter limit, dash and dash offset) are
// pushed to the context with gg.Context.SetStroke as soon as they change.
//
// # Undefined and invalid values
//
// An undefined value resets a property to its initial value: black brushes,
// width 1, butt caps, miter joins, miter limit 10, no dash, offset 0.
// Values the context cannot use (unparseable colours, unknown keywords,
// non-positive widths) are ignored and the previous value is kept.
//
// # Thread Safety
//
// Canvas is NOT safe for concurrent use.
package ggcontext

import (
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/text/cases"

	"github.com/gogpu/ggstyle"
	"github.com/gogpu/ggstyle/function"
)

// Initial line state of a Canvas.
const (
	initialLineWidth  = 1.0
	initialMiterLimit = 10.0
)

// Canvas adapts a gg.Context to ggstyle.Canvas.
type Canvas struct {
	dc     *gg.Context
	fill   gg.Brush
	stroke gg.Brush
	line   gg.Stroke
	dash   []float64
	offset float64
}

var _ ggstyle.Canvas = (*Canvas)(nil)

// New wraps dc and resets its line state to the initial values.
func New(dc *gg.Context) *Canvas {
	c := &Canvas{
		dc:     dc,
		fill:   gg.Solid(gg.Black),
		stroke: gg.Solid(gg.Black),
		line: gg.Stroke{
			Width:      initialLineWidth,
			Cap:        gg.LineCapButt,
			Join:       gg.LineJoinMiter,
			MiterLimit: initialMiterLimit,
		},
	}
	dc.SetStroke(c.line)
	return c
}

// Context returns the wrapped drawing context.
func (c *Canvas) Context() *gg.Context { return c.dc }

// FillBrush returns the brush used by Fill.
func (c *Canvas) FillBrush() gg.Brush { return c.fill }

// StrokeBrush returns the brush used by Stroke.
func (c *Canvas) StrokeBrush() gg.Brush { return c.stroke }

// LineStyle returns the current line state.
func (c *Canvas) LineStyle() gg.Stroke {
	s := c.line
	if s.Dash != nil {
		s.Dash = s.Dash.Clone()
	}
	return s
}

// SetStyleProperty implements ggstyle.Canvas. Unknown names are ignored.
func (c *Canvas) SetStyleProperty(name string, v ggstyle.Value) {
	switch name {
	case ggstyle.FillStyle:
		if b, ok := brush(name, v); ok {
			c.fill = b
		}
		return
	case ggstyle.StrokeStyle:
		if b, ok := brush(name, v); ok {
			c.stroke = b
		}
		return
	case ggstyle.LineWidth:
		if w, ok := positive(name, v, initialLineWidth); ok {
			c.line.Width = w
		}
	case ggstyle.LineCap:
		if lc, ok := lineCap(v); ok {
			c.line.Cap = lc
		} else {
			ignored(name, v)
		}
	case ggstyle.LineJoin:
		if lj, ok := lineJoin(v); ok {
			c.line.Join = lj
		} else {
			ignored(name, v)
		}
	case ggstyle.MiterLimit:
		if m, ok := positive(name, v, initialMiterLimit); ok {
			c.line.MiterLimit = m
		}
	case ggstyle.LineDash:
		d, ok := dashPattern(v)
		if !ok {
			ignored(name, v)
			return
		}
		c.dash = d
		c.line.Dash = gg.NewDash(c.dash...).WithOffset(c.offset)
	case ggstyle.LineDashOffset:
		off, ok := number(v, 0)
		if !ok || math.IsInf(off, 0) || math.IsNaN(off) {
			ignored(name, v)
			return
		}
		c.offset = off
		c.line.Dash = gg.NewDash(c.dash...).WithOffset(c.offset)
	default:
		return
	}
	c.dc.SetStroke(c.line)
}

// Fill fills the current path with the fill brush.
func (c *Canvas) Fill() error {
	c.dc.SetFillBrush(c.fill)
	return c.dc.Fill()
}

// FillPreserve fills the current path with the fill brush and keeps the path.
func (c *Canvas) FillPreserve() error {
	c.dc.SetFillBrush(c.fill)
	return c.dc.FillPreserve()
}

// Stroke strokes the current path with the stroke brush and line state.
func (c *Canvas) Stroke() error {
	c.dc.SetStrokeBrush(c.stroke)
	c.dc.SetStroke(c.line)
	return c.dc.Stroke()
}

// StrokePreserve strokes the current path and keeps the path.
func (c *Canvas) StrokePreserve() error {
	c.dc.SetStrokeBrush(c.stroke)
	c.dc.SetStroke(c.line)
	return c.dc.StrokePreserve()
}

func ignored(name string, v ggstyle.Value) {
	ggstyle.Logger().Debug("ggcontext: ignoring style value", "property", name, "value", v.String())
}

// brush converts a colour string or channel vector into a solid brush.
func brush(name string, v ggstyle.Value) (gg.Brush, bool) {
	switch v.Kind() {
	case function.Undefined:
		return gg.Solid(gg.Black), true
	case function.String:
		s, _ := v.Str()
		if ch, ok := ggstyle.ParseColor(s); ok {
			return gg.Solid(gg.RGBA2(ch.Normalized())), true
		}
	case function.Array:
		if n := v.Len(); n == 3 || n == 4 {
			ch := ggstyle.Channels{v.At(0), v.At(1), v.At(2), 1}
			if n == 4 {
				ch[3] = v.At(3)
			}
			return gg.Solid(gg.RGBA2(ch.Normalized())), true
		}
	}
	ignored(name, v)
	return nil, false
}

// number reads a numeric value, accepting numeric strings. Undefined yields
// reset.
func number(v ggstyle.Value, reset float64) (float64, bool) {
	switch v.Kind() {
	case function.Undefined:
		return reset, true
	case function.Number:
		f, _ := v.Number()
		return f, true
	case function.String:
		s, _ := v.Str()
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return f, err == nil
	}
	return 0, false
}

func positive(name string, v ggstyle.Value, reset float64) (float64, bool) {
	f, ok := number(v, reset)
	if !ok || f <= 0 || math.IsInf(f, 0) || math.IsNaN(f) {
		ignored(name, v)
		return 0, false
	}
	return f, true
}

func keyword(v ggstyle.Value) (string, bool) {
	s, ok := v.Str()
	if !ok {
		return "", false
	}
	return cases.Fold().String(strings.TrimSpace(s)), true
}

func lineCap(v ggstyle.Value) (gg.LineCap, bool) {
	if v.IsUndefined() {
		return gg.LineCapButt, true
	}
	kw, _ := keyword(v)
	switch kw {
	case "butt":
		return gg.LineCapButt, true
	case "round":
		return gg.LineCapRound, true
	case "square":
		return gg.LineCapSquare, true
	}
	return 0, false
}

func lineJoin(v ggstyle.Value) (gg.LineJoin, bool) {
	if v.IsUndefined() {
		return gg.LineJoinMiter, true
	}
	kw, _ := keyword(v)
	switch kw {
	case "miter":
		return gg.LineJoinMiter, true
	case "round":
		return gg.LineJoinRound, true
	case "bevel":
		return gg.LineJoinBevel, true
	}
	return 0, false
}

// dashPattern accepts an array, a single number or a string of numbers
// separated by commas or spaces. Negative or non-finite lengths reject the
// whole pattern.
func dashPattern(v ggstyle.Value) ([]float64, bool) {
	var d []float64
	switch v.Kind() {
	case function.Undefined:
		return nil, true
	case function.Number:
		f, _ := v.Number()
		d = []float64{f}
	case function.Array:
		d, _ = v.Array()
	case function.String:
		s, _ := v.Str()
		for _, field := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' }) {
			f, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, false
			}
			d = append(d, f)
		}
	}
	for _, f := range d {
		if f < 0 || math.IsInf(f, 0) || math.IsNaN(f) {
			return nil, false
		}
	}
	return d, true
}
