package formats_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/railsolve/internal/railbound/levels/formats"
)

const straightJSON = `{
  "grid": [[6, 0, 6]],
  "destination": [2, 0],
  "trains": [{"x": 0, "y": 0, "direction": 1, "order": 1}],
  "max_tracks": 1
}`

const straightYAML = `
grid:
  - [6, 0, 6]
destination: [2, 0]
trains:
  - {x: 0, y: 0, direction: 1, order: 1}
max_tracks: 1
`

func TestParseJSONAndYAMLAgree(t *testing.T) {
	fromJSON, err := formats.ParseJSON([]byte(straightJSON))
	require.NoError(t, err)
	fromYAML, err := formats.ParseYAML([]byte(straightYAML))
	require.NoError(t, err)

	if diff := cmp.Diff(fromJSON, fromYAML); diff != "" {
		t.Errorf("formats disagree (-json +yaml):\n%s", diff)
	}
	require.Equal(t, 1, fromJSON.MaxTracks)
	require.True(t, fromJSON.HasBudget)
	require.Equal(t, [2]int{2, 0}, fromJSON.Destination)
}

func TestParseMissingKeys(t *testing.T) {
	tests := map[string]string{
		"grid":        `{"destination": [0, 0], "trains": []}`,
		"destination": `{"grid": [[0]], "trains": []}`,
		"trains":      `{"grid": [[0]], "destination": [0, 0]}`,
	}
	for key, doc := range tests {
		t.Run(key, func(t *testing.T) {
			_, err := formats.ParseJSON([]byte(doc))
			require.Error(t, err)
			require.True(t, errors.Is(err, formats.ErrMissingKey), "got %v", err)
			require.Contains(t, err.Error(), key)
		})
	}
}

func TestParseDefaults(t *testing.T) {
	lvl, err := formats.ParseJSON([]byte(`{"grid": [[6]], "destination": [0, 0], "trains": [], "numberLayer": [[3]]}`))
	require.NoError(t, err)
	require.Equal(t, formats.DefaultMaxTracks, lvl.MaxTracks)
	require.False(t, lvl.HasBudget)
	require.Equal(t, [][]int{{3}}, lvl.NumberLayer)
}

func TestParseRejectsMalformed(t *testing.T) {
	docs := []string{
		`{"grid": [[0]], "destination": [0], "trains": []}`,
		`{"grid": [[0]], "destination": [0, 0], "trains": [{"x": 0, "y": 0, "direction": 4, "order": 1}]}`,
		`{"grid": [[0]], "destination": [0, 0], "trains": [], "max_tracks": -1}`,
		`{"grid": `,
	}
	for _, doc := range docs {
		_, err := formats.ParseJSON([]byte(doc))
		require.Error(t, err, doc)
	}
}

func TestParseUnsupportedExtension(t *testing.T) {
	_, err := formats.Parse([]byte("{}"), ".txt")
	require.Error(t, err)
}
