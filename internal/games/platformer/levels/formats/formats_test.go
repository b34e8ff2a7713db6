package formats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYAML(t *testing.T) {
	data := []byte(`
name: Test Pack
levels:
  - id: one
    name: The First
    plan: |
      ...
      .@.
      ###
  - id: two
    plan: |
      .@o
      ###
`)

	pack, err := ParseYAML(data)
	require.NoError(t, err)

	assert.Equal(t, "Test Pack", pack.Name)
	require.Len(t, pack.Levels, 2)
	assert.Equal(t, Level{ID: "one", Name: "The First", Plan: "...\n.@.\n###\n"}, pack.Levels[0])
	// Name falls back to the ID
	assert.Equal(t, "two", pack.Levels[1].Name)
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"no levels", "name: empty\n", ErrNoLevels},
		{"empty list", "name: empty\nlevels: []\n", ErrNoLevels},
		{"missing id", "levels:\n  - name: nameless\n    plan: \"@\"\n", ErrMissingID},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tc.data))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseYAMLMalformed(t *testing.T) {
	_, err := ParseYAML([]byte("levels: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "yaml unmarshal")
}

func TestParseText(t *testing.T) {
	pack, err := ParseText("/tmp/packs/secret-room.txt", []byte(".@.\n###\n"))
	require.NoError(t, err)

	assert.Equal(t, "secret-room", pack.Name)
	require.Len(t, pack.Levels, 1)
	assert.Equal(t, Level{ID: "secret-room", Name: "secret-room", Plan: ".@.\n###\n"}, pack.Levels[0])
}

func TestFormatExtensions(t *testing.T) {
	assert.ElementsMatch(t, []string{".yaml", ".yml", ".txt"}, FormatExtensions())
}
