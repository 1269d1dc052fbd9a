package function

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	// Undefined is the zero Kind. An undefined value resets a canvas property.
	Undefined Kind = iota
	// Number is a float64 value such as a line width.
	Number
	// String is a colour or keyword such as "#00f" or "round".
	String
	// Array is a numeric sequence: a colour channel vector or a dash pattern.
	Array
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case Undefined:
		return "undefined"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a style value. The zero Value is undefined.
//
// Values are immutable: ArrayValue copies its input and Array returns a copy.
type Value struct {
	kind Kind
	num  float64
	str  string
	arr  []float64
}

// NumberValue returns a Number value.
func NumberValue(f float64) Value {
	return Value{kind: Number, num: f}
}

// StringValue returns a String value.
func StringValue(s string) Value {
	return Value{kind: String, str: s}
}

// ArrayValue returns an Array value holding a copy of xs.
func ArrayValue(xs ...float64) Value {
	arr := make([]float64, len(xs))
	copy(arr, xs)
	return Value{kind: Array, arr: arr}
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// IsUndefined reports whether v holds no value.
func (v Value) IsUndefined() bool { return v.kind == Undefined }

// Number returns the numeric value and whether v is a Number.
func (v Value) Number() (float64, bool) {
	return v.num, v.kind == Number
}

// Str returns the string value and whether v is a String.
func (v Value) Str() (string, bool) {
	return v.str, v.kind == String
}

// Array returns a copy of the numeric sequence and whether v is an Array.
func (v Value) Array() ([]float64, bool) {
	if v.kind != Array {
		return nil, false
	}
	out := make([]float64, len(v.arr))
	copy(out, v.arr)
	return out, true
}

// Len returns the length of an Array value, or 0.
func (v Value) Len() int { return len(v.arr) }

// At returns element i of an Array value.
func (v Value) At(i int) float64 { return v.arr[i] }

// Equal reports whether v and o hold the same variant and contents.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case Number:
		return v.num == o.num
	case String:
		return v.str == o.str
	case Array:
		if len(v.arr) != len(o.arr) {
			return false
		}
		for i := range v.arr {
			if v.arr[i] != o.arr[i] {
				return false
			}
		}
	}
	return true
}

// String formats v for diagnostics.
func (v Value) String() string {
	switch v.kind {
	case Number:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case String:
		return strconv.Quote(v.str)
	case Array:
		parts := make([]string, len(v.arr))
		for i, x := range v.arr {
			parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
		}
		return "[" + strings.Join(parts, ",") + "]"
	default:
		return "undefined"
	}
}

// MarshalJSON encodes v as a JSON number, string, array or null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case Number:
		return json.Marshal(v.num)
	case String:
		return json.Marshal(v.str)
	case Array:
		return json.Marshal(v.arr)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes a JSON number, string, numeric array or null.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	val, err := FromAny(raw)
	if err != nil {
		return err
	}
	*v = val
	return nil
}

// FromAny converts a decoded JSON/TOML value or a feature property into a
// Value. nil becomes Undefined; booleans become the strings "true"/"false".
func FromAny(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Value{}, nil
	case Value:
		return t, nil
	case string:
		return StringValue(t), nil
	case bool:
		return StringValue(strconv.FormatBool(t)), nil
	case []float64:
		return ArrayValue(t...), nil
	case []any:
		arr := make([]float64, len(t))
		for i, e := range t {
			f, ok := toFloat(e)
			if !ok {
				return Value{}, fmt.Errorf("function: array element %d: unsupported type %T", i, e)
			}
			arr[i] = f
		}
		return Value{kind: Array, arr: arr}, nil
	}
	if f, ok := toFloat(x); ok {
		return NumberValue(f), nil
	}
	return Value{}, fmt.Errorf("function: unsupported value type %T", x)
}

// toFloat converts the numeric types produced by encoding/json, BurntSushi/toml
// and hand-built property maps.
func toFloat(x any) (float64, bool) {
	switch n := x.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
