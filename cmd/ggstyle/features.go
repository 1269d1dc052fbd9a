package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gogpu/ggstyle"
)

// Geometry types understood by render.
const (
	geomPoint   = "point"
	geomLine    = "line"
	geomPolygon = "polygon"
)

// feature is one entry of a features file. Coordinates are in pixels.
type feature struct {
	ID          any            `json:"id"`
	Type        string         `json:"type"`
	Coordinates [][2]float64   `json:"coordinates"`
	Properties  map[string]any `json:"properties"`
}

func (f feature) styleInput() ggstyle.Feature {
	return ggstyle.Feature{ID: f.ID, Properties: f.Properties}
}

// loadFeatures reads a JSON array of features.
func loadFeatures(path string) ([]feature, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fs []feature
	if err := json.Unmarshal(data, &fs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	for i, f := range fs {
		switch f.Type {
		case geomPoint, geomLine, geomPolygon:
		default:
			return nil, fmt.Errorf("feature %d: unknown type %q", i, f.Type)
		}
		if len(f.Coordinates) == 0 {
			return nil, fmt.Errorf("feature %d: no coordinates", i)
		}
	}
	return fs, nil
}
