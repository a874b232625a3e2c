package tiled

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Project is the subset of a .tiled-project file the server publishes.
type Project struct {
	PropertyTypes []ClassDefinition `json:"propertyTypes"`
}

// World is a .world file listing the maps placed in it.
type World struct {
	Maps []WorldMap `json:"maps"`
	Type string     `json:"type,omitempty"`
}

type WorldMap struct {
	FileName string `json:"fileName"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// MapPath returns the map file path relative to the Tiled directory. World
// files live one directory below it and reference maps with "../".
func (wm WorldMap) MapPath() string {
	return strings.Replace(wm.FileName, "../", "", 1)
}

func LoadProject(path string) (*Project, error) {
	var p Project
	if err := readJSON(path, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func LoadWorld(path string) (*World, error) {
	var w World
	if err := readJSON(path, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func readJSON(path string, v any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("tiled: read %s: %w", path, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("tiled: unmarshal %s: %w", path, err)
	}
	return nil
}
