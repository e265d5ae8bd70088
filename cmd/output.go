package cmd

import (
	"encoding/json"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// writeReport prints v in the selected --format. text is used for the
// human readable form.
func writeReport(w io.Writer, v any, text func(io.Writer) error) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return text(w)
}

// displayName turns "natural-minor" into "Natural Minor".
func displayName(name string) string {
	if name == "" {
		return "Custom"
	}
	return cases.Title(language.English).String(strings.ReplaceAll(name, "-", " "))
}

func toInts(nums []uint8) []int {
	res := make([]int, 0, len(nums))
	for _, n := range nums {
		res = append(res, int(n))
	}
	return res
}
