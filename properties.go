package ggstyle

// Canvas style property names.
const (
	FillStyle      = "fillStyle"
	StrokeStyle    = "strokeStyle"
	LineWidth      = "lineWidth"
	LineCap        = "lineCap"
	LineJoin       = "lineJoin"
	MiterLimit     = "miterLimit"
	LineDash       = "lineDash"
	LineDashOffset = "lineDashOffset"
)

// canvasProperties is the order in which Applicator writes properties.
// lineDash precedes lineDashOffset because some contexts only keep an
// offset while a dash pattern is set.
var canvasProperties = [...]string{
	FillStyle,
	StrokeStyle,
	LineWidth,
	LineCap,
	LineJoin,
	MiterLimit,
	LineDash,
	LineDashOffset,
}

// propertyAliases maps alternative spellings accepted in style documents.
var propertyAliases = map[string]string{
	"linedash": LineDash,
}

// CanvasProperties returns the properties an Applicator copies onto a
// canvas, in application order.
func CanvasProperties() []string {
	out := make([]string, len(canvasProperties))
	copy(out, canvasProperties[:])
	return out
}

// IsCanvasProperty reports whether name is applied to canvases.
func IsCanvasProperty(name string) bool {
	for _, p := range canvasProperties {
		if p == name {
			return true
		}
	}
	return false
}
