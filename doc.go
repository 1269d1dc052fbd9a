// Package ggstyle resolves declarative feature styles for 2D vector drawing.
//
// # Overview
//
// A style Description maps canvas property names to either constants or
// interpolation functions driven by the zoom level or a feature property.
// Compile turns a Description into a StyleFunc that resolves the style of
// one feature at one zoom level, and an Applicator copies resolved styles
// onto a Canvas, skipping work when the same style is applied twice in a
// row.
//
//	style, _ := ggstyle.LoadFile("roads.toml")
//	fn, err := ggstyle.Compile(style)
//	if err != nil {
//	    return err
//	}
//
//	canvas := ggcontext.New(gg.NewContext(512, 512))
//	a := ggstyle.NewApplicator(canvas)
//	for _, f := range features {
//	    a.Apply(fn(f, zoom))
//	    // build the feature path, then canvas.Stroke()
//	}
//
// # Properties
//
// Applicators write fillStyle, strokeStyle, lineWidth, lineCap, lineJoin,
// miterLimit, lineDash and lineDashOffset, in that order. Other keys are
// kept in the resolved style for the caller but never applied. Properties a
// resolved style does not set are written as undefined, which resets them.
//
// Every description is layered over DefaultStyle: lineWidth 1, strokeStyle
// "#000" and fillStyle "#00f".
//
// # Colours
//
// Colour stops of exponential functions are parsed into channel vectors
// before interpolation and formatted back as "rgba(r,g,b,a)" strings with
// integer channels. Strings that are not colours are passed to the function
// builder unchanged.
//
// # Function builders
//
// Interpolation functions are built by a FunctionBuilder; the default is
// function.Builder. Use WithFunctionBuilder to plug in another evaluator.
//
// # Logging
//
// ggstyle is silent unless SetLogger is called. Debug records describe
// values that were passed through or ignored.
package ggstyle
