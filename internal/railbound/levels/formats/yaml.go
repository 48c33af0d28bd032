package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML parses a YAML puzzle file. The schema matches the JSON format,
// with the tunnel layer spelled number_layer.
func ParseYAML(data []byte) (Level, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return doc.toLevel()
}
