package world

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/stretchr/testify/require"
)

func TestNearbyBoxes(t *testing.T) {
	w := NewBoxWorld(
		cube.Box(0, 0, 0, 10, 10, 10),
		cube.Box(100, 100, 100, 110, 110, 110),
	)
	require.Len(t, w.NearbyBoxes(cube.Box(5, 5, 5, 6, 6, 6)), 1)
	require.Len(t, w.NearbyBoxes(cube.Box(10, 0, 0, 12, 2, 2)), 1, "touching boxes are reported")
	require.Empty(t, w.NearbyBoxes(cube.Box(50, 50, 50, 60, 60, 60)))

	w.AddBox(cube.Box(50, 50, 50, 51, 51, 51))
	require.Equal(t, 3, w.Len())
	require.Len(t, w.NearbyBoxes(cube.Box(50, 50, 50, 60, 60, 60)), 1)
}

func TestFlat(t *testing.T) {
	w := Flat(512)
	boxes := w.NearbyBoxes(cube.Box(-16, -16, 0, 16, 16, 72))
	require.Len(t, boxes, 1)
	require.Equal(t, float32(0), boxes[0].Max().Z())
}

func TestUniqueIDs(t *testing.T) {
	require.NotEqual(t, NewBoxWorld().ID(), NewBoxWorld().ID())
}

func TestLoadBoxes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.toml")
	data := `
[[box]]
min = [-512.0, -512.0, -64.0]
max = [512.0, 512.0, 0.0]

[[box]]
min = [64.0, -32.0, 0.0]
max = [96.0, 32.0, 128.0]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	w, err := LoadBoxes(path)
	require.NoError(t, err)
	require.Equal(t, 2, w.Len())

	require.NoError(t, os.WriteFile(path, []byte("[[box]]\nmin = [0.0]\nmax = [1.0, 1.0, 1.0]\n"), 0644))
	_, err = LoadBoxes(path)
	require.Error(t, err)
}
