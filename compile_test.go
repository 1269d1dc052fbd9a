package ggstyle

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/ggstyle/function"
)

func numStop(in, out float64) Stop {
	return Stop{Input: NumberValue(in), Output: NumberValue(out)}
}

func colorStop(in float64, out string) Stop {
	return Stop{Input: NumberValue(in), Output: StringValue(out)}
}

func defaultMap() map[string]Value {
	return map[string]Value{
		LineWidth:   NumberValue(1),
		StrokeStyle: StringValue("#000"),
		FillStyle:   StringValue("#00f"),
	}
}

func mustCompile(t *testing.T, desc Description, opts ...Option) StyleFunc {
	t.Helper()
	fn, err := NewCompiler(opts...).Compile(desc)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	return fn
}

func TestCompile_Empty(t *testing.T) {
	for name, desc := range map[string]Description{"nil": nil, "empty": {}} {
		t.Run(name, func(t *testing.T) {
			got := mustCompile(t, desc)(Feature{}, 0).Map()
			if diff := cmp.Diff(defaultMap(), got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompile_ConstantOnly(t *testing.T) {
	fn := mustCompile(t, Description{
		LineWidth: Scalar(NumberValue(3)),
		LineCap:   Scalar(StringValue("round")),
		LineDash:  Scalar(ArrayValue(4, 2)),
	})

	a := fn(Feature{Properties: map[string]any{"kind": "road"}}, 12)
	b := fn(Feature{}, 0)
	if a != b {
		t.Error("constant style returned different *Resolved values")
	}

	want := defaultMap()
	want[LineWidth] = NumberValue(3)
	want[LineCap] = StringValue("round")
	want[LineDash] = ArrayValue(4, 2)
	if diff := cmp.Diff(want, a.Map()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestCompile_LineWidthStops(t *testing.T) {
	fn := mustCompile(t, Description{
		LineWidth: Interpolated(Spec{Stops: []Stop{numStop(0, 1), numStop(10, 5)}}),
	})

	r := fn(Feature{}, 5)
	if w, ok := r.Get(LineWidth).Number(); !ok || absDiff(w, 3) > 1e-9 {
		t.Errorf("lineWidth = %v, want 3", r.Get(LineWidth))
	}
	if got := r.Get(StrokeStyle); !got.Equal(StringValue("#000")) {
		t.Errorf("strokeStyle = %v, want #000", got)
	}
	if got := r.Get(FillStyle); !got.Equal(StringValue("#00f")) {
		t.Errorf("fillStyle = %v, want #00f", got)
	}

	if fn(Feature{}, 5) == r {
		t.Error("dynamic style reused a *Resolved across calls")
	}
}

var rgbaPattern = regexp.MustCompile(`^rgba\((\d+),(\d+),(\d+),(\d+)\)$`)

func TestCompile_ColorRoundTrip(t *testing.T) {
	fn := mustCompile(t, Description{
		StrokeStyle: Interpolated(Spec{Stops: []Stop{colorStop(0, "#000000"), colorStop(10, "#ffffff")}}),
	})

	got, ok := fn(Feature{}, 5).Get(StrokeStyle).Str()
	if !ok {
		t.Fatalf("strokeStyle is not a string")
	}
	m := rgbaPattern.FindStringSubmatch(got)
	if m == nil {
		t.Fatalf("strokeStyle = %q, want rgba(r,g,b,a)", got)
	}
	for _, s := range m[1:4] {
		n, _ := strconv.Atoi(s)
		if n <= 0 || n >= 255 {
			t.Errorf("channel %d not strictly between black and white in %q", n, got)
		}
	}
	if got != "rgba(128,128,128,1)" {
		t.Errorf("strokeStyle = %q, want rgba(128,128,128,1)", got)
	}

	if got, _ := fn(Feature{}, 0).Get(StrokeStyle).Str(); got != "rgba(0,0,0,1)" {
		t.Errorf("strokeStyle at zoom 0 = %q", got)
	}
}

func TestCompile_NonFiniteZoom(t *testing.T) {
	fn := mustCompile(t, Description{
		LineWidth:   Interpolated(Spec{Stops: []Stop{numStop(0, 1), numStop(10, 5)}}),
		StrokeStyle: Interpolated(Spec{Stops: []Stop{colorStop(0, "#000"), colorStop(10, "#fff")}}),
	})

	r := fn(Feature{}, math.NaN())
	if got := r.Get(LineWidth); !got.IsUndefined() {
		t.Errorf("lineWidth at NaN zoom = %v, want undefined", got)
	}
	if got := r.Get(StrokeStyle); !got.IsUndefined() {
		t.Errorf("strokeStyle at NaN zoom = %v, want undefined", got)
	}

	if got, _ := fn(Feature{}, math.Inf(1)).Get(LineWidth).Number(); got != 5 {
		t.Errorf("lineWidth at +Inf zoom = %v, want 5", got)
	}
}

func TestCompile_HugeBase(t *testing.T) {
	tests := []struct {
		name string
		base float64
		want string
	}{
		{"overflowing base", 1e308, "rgba(0,0,0,1)"},
		{"infinite base", math.Inf(1), "rgba(0,0,0,1)"},
		{"vanishing base", 1e-308, "rgba(255,255,255,1)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn := mustCompile(t, Description{
				StrokeStyle: Interpolated(Spec{Base: tt.base, Stops: []Stop{colorStop(0, "#000"), colorStop(10, "#fff")}}),
			})
			if got, _ := fn(Feature{}, 5).Get(StrokeStyle).Str(); got != tt.want {
				t.Errorf("strokeStyle = %q, want %q", got, tt.want)
			}
		})
	}
}

// capturingBuilder records the specs it is asked to build.
type capturingBuilder struct {
	specs []Spec
}

func (b *capturingBuilder) Build(spec Spec) (function.Func, error) {
	b.specs = append(b.specs, spec)
	return func(float64, map[string]any) Value { return NumberValue(0) }, nil
}

func TestCompile_UnparseableColorPassthrough(t *testing.T) {
	b := &capturingBuilder{}
	mustCompile(t, Description{
		StrokeStyle: Interpolated(Spec{Stops: []Stop{colorStop(0, "not-a-color"), colorStop(10, "#fff")}}),
	}, WithFunctionBuilder(b))

	if len(b.specs) != 1 {
		t.Fatalf("builder called %d times, want 1", len(b.specs))
	}
	stops := b.specs[0].Stops
	if !stops[0].Output.Equal(StringValue("not-a-color")) {
		t.Errorf("stop 0 output = %v, want the original string", stops[0].Output)
	}
	if !stops[1].Output.Equal(ArrayValue(255, 255, 255, 1)) {
		t.Errorf("stop 1 output = %v, want channel vector", stops[1].Output)
	}
}

func TestCompile_OnlyExponentialStopsParsed(t *testing.T) {
	tests := []struct {
		typ    function.Type
		parsed bool
	}{
		{"", true},
		{function.Exponential, true},
		{function.Interval, false},
		{function.Categorical, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			b := &capturingBuilder{}
			mustCompile(t, Description{
				FillStyle: Interpolated(Spec{Type: tt.typ, Stops: []Stop{colorStop(0, "red")}}),
			}, WithFunctionBuilder(b))

			got := b.specs[0].Stops[0].Output.Kind() == function.Array
			if got != tt.parsed {
				t.Errorf("stop parsed = %v, want %v", got, tt.parsed)
			}
		})
	}
}

func TestCompile_CustomColorParser(t *testing.T) {
	b := &capturingBuilder{}
	parser := func(string) (Channels, bool) { return Channels{1, 2, 3, 0.5}, true }
	mustCompile(t, Description{
		FillStyle: Interpolated(Spec{Stops: []Stop{colorStop(0, "anything")}}),
	}, WithFunctionBuilder(b), WithColorParser(parser))

	if got := b.specs[0].Stops[0].Output; !got.Equal(ArrayValue(1, 2, 3, 0.5)) {
		t.Errorf("stop output = %v", got)
	}
}

func TestCompile_BuilderError(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewCompiler(WithFunctionBuilder(BuilderFunc(func(Spec) (function.Func, error) {
		return nil, boom
	}))).Compile(Description{
		LineWidth: Interpolated(Spec{Stops: []Stop{numStop(0, 1)}}),
	})
	if !errors.Is(err, boom) {
		t.Errorf("Compile() error = %v, want %v", err, boom)
	}
}

func TestCompile_DefaultBuilderError(t *testing.T) {
	_, err := Compile(Description{LineWidth: Interpolated(Spec{Type: "spline"})})
	if !errors.Is(err, function.ErrUnknownType) {
		t.Errorf("Compile() error = %v, want ErrUnknownType", err)
	}
}

func TestCompile_InsulatedFromCallerMutation(t *testing.T) {
	desc := Description{
		LineWidth:  Scalar(NumberValue(2)),
		MiterLimit: Interpolated(Spec{Stops: []Stop{numStop(0, 4), numStop(10, 8)}}),
	}
	fn := mustCompile(t, desc)

	desc[LineWidth] = Scalar(NumberValue(9))
	desc[MiterLimit] = Scalar(NumberValue(1))
	delete(desc, FillStyle)

	r := fn(Feature{}, 10)
	if got, _ := r.Get(LineWidth).Number(); got != 2 {
		t.Errorf("lineWidth = %v after mutation, want 2", got)
	}
	if got, _ := r.Get(MiterLimit).Number(); got != 8 {
		t.Errorf("miterLimit = %v after mutation, want 8", got)
	}
}

func TestCompile_DefaultsUntouched(t *testing.T) {
	mustCompile(t, Description{FillStyle: Scalar(StringValue("red"))})

	d := DefaultStyle()
	d[FillStyle] = Scalar(StringValue("green"))

	if got := DefaultStyle()[FillStyle].Value(); !got.Equal(StringValue("#00f")) {
		t.Errorf("default fillStyle = %v, want #00f", got)
	}
}

func TestCompile_ExtraKeysPreserved(t *testing.T) {
	r := mustCompile(t, Description{"zIndex": Scalar(NumberValue(3))})(Feature{}, 0)
	if got, _ := r.Get("zIndex").Number(); got != 3 {
		t.Errorf("zIndex = %v, want 3", r.Get("zIndex"))
	}
}

func TestCompile_PropertyFunction(t *testing.T) {
	fn := mustCompile(t, Description{
		StrokeStyle: Interpolated(Spec{
			Type:     function.Categorical,
			Property: "kind",
			Default:  StringValue("#999"),
			Stops: []Stop{
				{Input: StringValue("river"), Output: StringValue("#00f")},
			},
		}),
	})

	if got, _ := fn(Feature{Properties: map[string]any{"kind": "river"}}, 3).Get(StrokeStyle).Str(); got != "#00f" {
		t.Errorf("river stroke = %q", got)
	}
	if got, _ := fn(Feature{}, 3).Get(StrokeStyle).Str(); got != "#999" {
		t.Errorf("default stroke = %q", got)
	}
}

func TestConvertInterpolated(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		want Value
	}{
		{"number", NumberValue(2.5), NumberValue(2.5)},
		{"string", StringValue("red"), StringValue("red")},
		{"undefined", Value{}, Value{}},
		{"rounds half up", ArrayValue(0.5, 1.5, 2.4, 0.6), StringValue("rgba(1,2,2,1)")},
		{"half alpha rounds up", ArrayValue(10, 20, 30, 0.5), StringValue("rgba(10,20,30,1)")},
		{"non-finite channels", ArrayValue(math.NaN(), math.Inf(1), math.Inf(-1), 1), StringValue("rgba(0,2147483647,-2147483648,1)")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, convertInterpolated(tt.in)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
