package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/trebuchet-org/treb-diamond/internal/domain/config"
	"gopkg.in/yaml.v3"
)

// WriteStructured writes v as JSON or YAML
func WriteStructured(out io.Writer, format config.OutputFormat, v any) error {
	switch format {
	case config.OutputJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	case config.OutputYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("format %q is not a structured format", format)
	}
}

// isStructured reports whether format is rendered by WriteStructured
func isStructured(format config.OutputFormat) bool {
	return format == config.OutputJSON || format == config.OutputYAML
}
