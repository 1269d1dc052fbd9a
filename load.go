package ggstyle

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/ggstyle/function"
)

// ErrUnsupportedFormat is returned by LoadFile for unknown file extensions.
var ErrUnsupportedFormat = errors.New("ggstyle: unsupported style file format")

// EntryError reports a description property that could not be decoded.
type EntryError struct {
	Key string
	Err error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("ggstyle: property %q: %v", e.Key, e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }

// ParseJSON decodes a JSON style document. A null or non-object document
// yields an empty Description.
func ParseJSON(data []byte) (Description, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("ggstyle: decode json: %w", err)
	}
	return fromAny(raw)
}

// ParseTOML decodes a TOML style document:
//
//	lineWidth = 2
//
//	[strokeStyle]
//	stops = [[0, "#55AAFF"], [10, "#AA5500"]]
func ParseTOML(data []byte) (Description, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("ggstyle: decode toml: %w", err)
	}
	return fromAny(raw)
}

// LoadFile reads a .json or .toml style document.
func LoadFile(path string) (Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ggstyle: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return ParseJSON(data)
	case ".toml":
		return ParseTOML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// UnmarshalJSON decodes d from a JSON style document.
func (d *Description) UnmarshalJSON(data []byte) error {
	desc, err := ParseJSON(data)
	if err != nil {
		return err
	}
	*d = desc
	return nil
}

// MarshalJSON encodes a constant as its value and a function as its spec.
func (e Entry) MarshalJSON() ([]byte, error) {
	if e.spec != nil {
		return json.Marshal(e.spec)
	}
	return json.Marshal(e.value)
}

func fromAny(raw any) (Description, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		Logger().Debug("ggstyle: style document is not an object, using an empty description",
			"type", fmt.Sprintf("%T", raw))
		return Description{}, nil
	}

	desc := make(Description, len(obj))
	for key, v := range obj {
		e, err := entryFromAny(v)
		if err != nil {
			return nil, &EntryError{Key: key, Err: err}
		}
		if canonical, ok := propertyAliases[key]; ok {
			if _, dup := obj[canonical]; dup {
				continue
			}
			key = canonical
		}
		desc[key] = e
	}
	return desc, nil
}

func entryFromAny(v any) (Entry, error) {
	if m, ok := v.(map[string]any); ok {
		spec, err := function.SpecFromMap(m)
		if err != nil {
			return Entry{}, err
		}
		return Interpolated(spec), nil
	}
	val, err := function.FromAny(v)
	if err != nil {
		return Entry{}, err
	}
	return Scalar(val), nil
}
