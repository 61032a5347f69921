package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
)

func TestBindsFromConfig(t *testing.T) {
	cfg := config.DefaultTetrisConfig()

	for _, name := range []string{"single", "left", "right"} {
		kb, err := BindsFromConfig(cfg, name)
		require.NoError(t, err, name)
		assert.Equal(t, name, kb.Name)
	}

	_, err := BindsFromConfig(cfg, "middle")
	assert.Error(t, err)
}

func TestNewKeyBindsRejectsPlatformActions(t *testing.T) {
	_, err := NewKeyBinds("bad", map[string]string{"p": "Pause"})
	assert.Error(t, err)

	_, err = NewKeyBinds("bad", map[string]string{"p": "Jump"})
	assert.Error(t, err)
}

func TestDecodeAll(t *testing.T) {
	kb, err := NewKeyBinds("test", map[string]string{
		"up":    "RotateCW",
		"x":     "RotateCW",
		"left":  "MoveLeft",
		"space": "HardDrop",
	})
	require.NoError(t, err)

	a, ok := kb.Decode("left")
	assert.True(t, ok)
	assert.Equal(t, core.ActionMoveLeft, a)

	_, ok = kb.Decode("q")
	assert.False(t, ok)

	got := kb.DecodeAll([]core.Key{"space", "x", "q", "up", "left"})
	assert.Equal(t, []core.Action{core.ActionMoveLeft, core.ActionRotateCW, core.ActionHardDrop}, got)

	assert.Equal(t, []core.Key{"up", "x"}, kb.Bindings(core.ActionRotateCW))
	assert.Empty(t, kb.Bindings(core.ActionSwap))
}

func TestVersusTablesDoNotOverlapOnMovement(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	left, err := BindsFromConfig(cfg, "left")
	require.NoError(t, err)
	right, err := BindsFromConfig(cfg, "right")
	require.NoError(t, err)

	for _, a := range []core.Action{core.ActionMoveLeft, core.ActionMoveRight, core.ActionRotateCW, core.ActionSoftDrop} {
		for _, k := range left.Bindings(a) {
			_, clash := right.Decode(k)
			assert.False(t, clash, "key %q bound on both sides", k)
		}
	}
}

func TestControlHints(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	tests := map[string]string{
		"single": "move left/right  rotate up/z  drop space  hold c",
		"left":   "move a/d  rotate w/q  drop space  hold e",
		"right":  "move left/right  rotate up/,  drop /  hold .",
	}
	for name, want := range tests {
		kb, err := BindsFromConfig(cfg, name)
		require.NoError(t, err, name)
		assert.Equal(t, want, controlHints(kb), name)
	}

	empty, err := NewKeyBinds("empty", nil)
	require.NoError(t, err)
	assert.Empty(t, controlHints(empty))
}
