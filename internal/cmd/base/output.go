package base

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidateFormat rejects unknown output formats.
func ValidateFormat(format string) error {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// Structured renders v as JSON or YAML. It reports false for the text
// format, in which case the caller renders v itself.
func (c *Command) Structured(format string, v any) (bool, error) {
	var (
		out []byte
		err error
	)

	switch format {
	case FormatJSON:
		out, err = json.MarshalIndent(v, "", "  ")
	case FormatYAML:
		out, err = yaml.Marshal(toPlain(v))
	default:
		return false, nil
	}
	if err != nil {
		return true, fmt.Errorf("error encoding output: %w", err)
	}

	c.UI.Output(strings.TrimRight(string(out), "\n"))
	return true, nil
}

// toPlain round-trips v through JSON so YAML output uses the same field
// names as the API.
func toPlain(v any) any {
	b, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var plain any
	if err := yaml.Unmarshal(b, &plain); err != nil {
		return v
	}
	return plain
}
