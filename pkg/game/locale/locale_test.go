package locale

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_DefaultCatalogue(t *testing.T) {
	assert.Equal(t, "You take the treasure.", Get("TAKE_OK"))
	assert.Equal(t, "Moving north.", Get("MOVE_OK", "north"))
	assert.Equal(t, "You clear the eastern exit.", Get("CLEAR_OK", "east"))
	assert.Equal(t, " with many snakes pouring in", Get("INFESTATION_MANY"))
}

func TestGet_UnknownKeyIsReturned(t *testing.T) {
	assert.Equal(t, "NO_SUCH_KEY", Get("NO_SUCH_KEY"))
}

func TestUse_OverridesAndRestores(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pirate.po")
	err := os.WriteFile(path, []byte("msgid \"TAKE_OK\"\nmsgstr \"Ye grab the booty.\"\n"), 0o644)
	require.NoError(t, err)

	c, err := Load(path)
	require.NoError(t, err)

	Use(c)
	t.Cleanup(func() { Use(nil) })

	assert.Equal(t, "Ye grab the booty.", Get("TAKE_OK"))
	assert.Equal(t, "LEAVE_OK", Get("LEAVE_OK"), "keys missing from an override fall back to the key")

	Use(nil)
	assert.Equal(t, "You take the treasure.", Get("TAKE_OK"))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.po"))
	assert.Error(t, err)
}

func TestGet_KeysChosenAtRuntime(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"MOVE_OK", "Moving west."},
		{"CLEAR_ALREADY", "The western exit is already clear."},
		{"MOVE_NO_EXIT", "You cannot go west. There is no exit!"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, Get(tt.key, "west"))
			assert.Equal(t, tt.want, Default().Get(tt.key, "west"))
		})
	}
}
