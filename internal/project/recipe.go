package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

const DefaultRecipePath = "recipe.yaml"

// Recipe is the package recipe consumed by the conda build step.
type Recipe struct {
	Package      RecipePackage `yaml:"package"`
	Requirements Requirements  `yaml:"requirements"`
}

type RecipePackage struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version,omitempty"`
}

type Requirements struct {
	Run []string `yaml:"run,omitempty"`
}

func NewRecipe(m *Manifest) *Recipe {
	return &Recipe{
		Package: RecipePackage{
			Name:    m.Package.Name,
			Version: m.Package.Version,
		},
		Requirements: Requirements{Run: m.Requirements()},
	}
}

func (r *Recipe) Marshal() ([]byte, error) {
	return yaml.Marshal(r)
}

func WriteRecipe(path string, r *Recipe) error {
	data, err := r.Marshal()
	if err != nil {
		return fmt.Errorf("encode recipe: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

func LoadRecipe(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var r Recipe
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *Recipe) Equal(o *Recipe) bool {
	return r.Package == o.Package && slices.Equal(r.Requirements.Run, o.Requirements.Run)
}

// SyncRecipe writes r to path unless the recipe already there is equal. It
// reports whether the file was written.
func SyncRecipe(path string, r *Recipe) (bool, error) {
	old, err := LoadRecipe(path)
	switch {
	case err == nil && old.Equal(r):
		return false, nil
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return false, fmt.Errorf("read recipe: %w", err)
	}
	if err := WriteRecipe(path, r); err != nil {
		return false, err
	}
	return true, nil
}
