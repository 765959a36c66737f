package commands

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/fluentkit/fluent/classes"
)

// Scene is the TOML scene file: container classes plus a list of items to
// lay out.
//
//	classes = "flex-row flex-wrap gap-4 md:justify-between"
//
//	[[items]]
//	width = 100
//	height = 32
//	classes = "grow"
type Scene struct {
	Classes string      `toml:"classes"`
	Items   []SceneItem `toml:"items"`
}

// SceneItem is one child in the scene. Width and height are its measured
// size; classes carry the flex item properties.
type SceneItem struct {
	Width   float32 `toml:"width"`
	Height  float32 `toml:"height"`
	Classes string  `toml:"classes"`
}

// LoadScene parses a scene file.
func LoadScene(path string) (Scene, error) {
	var scene Scene

	data, err := os.ReadFile(path)
	if err != nil {
		return scene, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &scene); err != nil {
		return scene, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return scene, nil
}

func (s Scene) computedClasses() classes.Computed {
	return classes.Parse(s.Classes)
}

func (i SceneItem) computedClasses() classes.Computed {
	return classes.Parse(i.Classes)
}
