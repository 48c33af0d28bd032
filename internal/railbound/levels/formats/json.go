package formats

import (
	"encoding/json"
	"fmt"
)

// ParseJSON parses a JSON puzzle file.
func ParseJSON(data []byte) (Level, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Level{}, fmt.Errorf("json unmarshal: %w", err)
	}
	return doc.toLevel()
}
