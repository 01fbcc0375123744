package world

import (
	"fmt"
	"os"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/pelletier/go-toml"
)

// boxFile is the on-disk layout of a box world.
type boxFile struct {
	Box []struct {
		Min []float32 `toml:"min"`
		Max []float32 `toml:"max"`
	} `toml:"box"`
}

// LoadBoxes reads a TOML file holding an array of boxes, each with a three component min and max.
func LoadBoxes(path string) (*BoxWorld, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read world file: %w", err)
	}

	var f boxFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode world file: %w", err)
	}

	boxes := make([]cube.BBox, 0, len(f.Box))
	for i, b := range f.Box {
		if len(b.Min) != 3 || len(b.Max) != 3 {
			return nil, fmt.Errorf("box %d: min and max need 3 components", i)
		}
		boxes = append(boxes, cube.Box(b.Min[0], b.Min[1], b.Min[2], b.Max[0], b.Max[1], b.Max[2]))
	}
	return NewBoxWorld(boxes...), nil
}
