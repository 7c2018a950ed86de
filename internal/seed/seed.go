// Package seed reads and writes the world an inspector session starts with.
package seed

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Rorical/RoriInspect/internal/core"
	"github.com/Rorical/RoriInspect/internal/models"
)

var ErrUnknownCategory = errors.New("unknown category")

type Entity struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

type File struct {
	Entities []Entity `yaml:"entities"`
}

// Default is the demo world: one item and six characters
func Default() File {
	return File{Entities: []Entity{
		{Name: "Spoon", Category: "item"},
		{Name: "Toby", Category: "character"},
		{Name: "Swann", Category: "character"},
		{Name: "Dan", Category: "character"},
		{Name: "Tamara", Category: "character"},
		{Name: "Niamh", Category: "character"},
		{Name: "Erin", Category: "character"},
	}}
}

func ParseCategory(s string) (models.Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "character":
		return models.Character, nil
	case "item":
		return models.Item, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownCategory)
}

// Load reads a seed file. A missing file yields the default world.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return File{}, fmt.Errorf("read seed file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return f, nil
}

func Save(path string, f File) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("encode seed file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Spawns converts the file into spawn requests in file order
func (f File) Spawns() ([]core.SeedEntity, error) {
	out := make([]core.SeedEntity, 0, len(f.Entities))
	for i, e := range f.Entities {
		category, err := ParseCategory(e.Category)
		if err != nil {
			return nil, fmt.Errorf("entity %d (%s): %w", i, e.Name, err)
		}
		out = append(out, core.SeedEntity{Name: e.Name, Category: category})
	}
	return out, nil
}
