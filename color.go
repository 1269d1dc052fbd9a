package ggstyle

import (
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"

	"github.com/gogpu/ggstyle/internal/colorcache"
)

// Channels is a parsed colour: R, G and B in [0, 255], A in [0, 1].
// This is the vector form that style functions interpolate.
type Channels [4]float64

// Normalized returns the channels scaled to [0, 1].
func (c Channels) Normalized() (r, g, b, a float64) {
	return c[0] / 255, c[1] / 255, c[2] / 255, c[3]
}

// ColorParser parses a CSS colour string. ok is false when s is not a colour.
type ColorParser func(s string) (c Channels, ok bool)

var colorCache = colorcache.New(colorcache.DefaultLimit)

// ParseColor parses a CSS colour: a named colour, "transparent", #rgb,
// #rgba, #rrggbb, #rrggbbaa, rgb(), rgba(), hsl() or hsla(). Whitespace is
// ignored and matching is case-insensitive.
//
// Results are memoised, so repeated parsing of one string is cheap.
func ParseColor(s string) (Channels, bool) {
	ch, ok := colorCache.Lookup(s, parseColor)
	return Channels(ch), ok
}

func parseColor(s string) ([4]float64, bool) {
	s = cases.Fold().String(strings.Join(strings.Fields(s), ""))
	if s == "" {
		return [4]float64{}, false
	}

	if s == "transparent" {
		return [4]float64{0, 0, 0, 0}, true
	}
	if c, ok := colornames.Map[s]; ok {
		return [4]float64{float64(c.R), float64(c.G), float64(c.B), 1}, true
	}
	if s[0] == '#' {
		return parseHexColor(s[1:])
	}

	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return [4]float64{}, false
	}
	name := s[:open]
	params := strings.Split(s[open+1:len(s)-1], ",")

	alpha := 1.0
	switch name {
	case "rgba", "hsla":
		if len(params) != 4 {
			return [4]float64{}, false
		}
		a, ok := parseUnitFloat(params[3])
		if !ok {
			return [4]float64{}, false
		}
		alpha = a
		params = params[:3]
	case "rgb", "hsl":
		if len(params) != 3 {
			return [4]float64{}, false
		}
	default:
		return [4]float64{}, false
	}

	if name[0] == 'r' {
		var out [4]float64
		for i, p := range params {
			v, ok := parseByte(p)
			if !ok {
				return [4]float64{}, false
			}
			out[i] = v
		}
		out[3] = alpha
		return out, true
	}

	h, err := strconv.ParseFloat(params[0], 64)
	if err != nil {
		return [4]float64{}, false
	}
	h = math.Mod(math.Mod(h, 360)+360, 360)
	sat, ok1 := parseUnitFloat(params[1])
	light, ok2 := parseUnitFloat(params[2])
	if !ok1 || !ok2 {
		return [4]float64{}, false
	}
	c := colorful.Hsl(h, sat, light)
	return [4]float64{clampByte(c.R * 255), clampByte(c.G * 255), clampByte(c.B * 255), alpha}, true
}

// parseHexColor handles the 3, 4, 6 and 8 digit forms.
func parseHexColor(hex string) ([4]float64, bool) {
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return [4]float64{}, false
	}

	var r, g, b, a uint64
	a = 255
	switch len(hex) {
	case 3:
		r, g, b = (n>>8&0xf)*17, (n>>4&0xf)*17, (n&0xf)*17
	case 4:
		r, g, b, a = (n>>12&0xf)*17, (n>>8&0xf)*17, (n>>4&0xf)*17, (n&0xf)*17
	case 6:
		r, g, b = n>>16&0xff, n>>8&0xff, n&0xff
	case 8:
		r, g, b, a = n>>24&0xff, n>>16&0xff, n>>8&0xff, n&0xff
	default:
		return [4]float64{}, false
	}
	return [4]float64{float64(r), float64(g), float64(b), float64(a) / 255}, true
}

// parseByte parses an rgb() component: a percentage of 255, or a number
// truncated to an integer.
func parseByte(s string) (float64, bool) {
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		f, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return 0, false
		}
		return clampByte(f / 100 * 255), true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return clampByte(math.Trunc(f)), true
}

// parseUnitFloat parses an alpha, saturation or lightness component:
// a number or a percentage, clamped to [0, 1].
func parseUnitFloat(s string) (float64, bool) {
	scale := 1.0
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		s, scale = pct, 100
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return min(max(f/scale, 0), 1), true
}

func clampByte(f float64) float64 {
	return min(max(math.Round(f), 0), 255)
}
