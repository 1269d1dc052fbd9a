package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggstyle"
)

func newResolveCmd() *cobra.Command {
	var (
		stylePath string
		zoom      float64
		props     []string
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the resolved style of one feature",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fn, err := compileStyle(cmd.Context(), stylePath)
			if err != nil {
				return err
			}
			properties, err := parseProps(props)
			if err != nil {
				return err
			}

			r := fn(ggstyle.Feature{Properties: properties}, zoom)
			out := cmd.OutOrStdout()
			for _, name := range r.Keys() {
				marker := " "
				if !ggstyle.IsCanvasProperty(name) {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %-15s %s\n", marker, name, r.Get(name))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&stylePath, "style", "s", "", "style file (.json or .toml)")
	cmd.Flags().Float64VarP(&zoom, "zoom", "z", 0, "zoom level")
	cmd.Flags().StringArrayVarP(&props, "prop", "p", nil, "feature property key=value (repeatable)")
	_ = cmd.MarkFlagRequired("style")
	return cmd
}

// parseProps turns key=value flags into feature properties. Values that
// parse as numbers are stored as float64.
func parseProps(kvs []string) (map[string]any, error) {
	props := make(map[string]any, len(kvs))
	for _, kv := range kvs {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid property %q, want key=value", kv)
		}
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			props[k] = f
		} else {
			props[k] = v
		}
	}
	return props, nil
}
