// Package catalog loads the static tool catalog the calculator offers.
//
// The catalog is read once at startup, either from the embedded default
// or from a YAML file, and is immutable afterwards.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/guttosm/savings-service/internal/domain/model"
)

//go:embed tools.yaml
var defaultCatalog []byte

var (
	// ErrEmptyCatalog is returned when a catalog defines no tools.
	ErrEmptyCatalog = errors.New("catalog: no tools defined")
	// ErrDuplicateID is returned when two tools share an id.
	ErrDuplicateID = errors.New("catalog: duplicate tool id")
	// ErrInvalidTool is returned for a tool with a non-positive id or empty name.
	ErrInvalidTool = errors.New("catalog: invalid tool")
)

// catalogFile mirrors the YAML document layout.
type catalogFile struct {
	Tools []model.Tool `yaml:"tools"`
}

// Catalog is the fixed set of tools. Only copies leave the catalog.
type Catalog struct {
	tools []model.Tool
	index map[int]int
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads the catalog from path, or the embedded default when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return New(f.Tools)
}

// New builds a catalog from tools after validating ids and names.
func New(tools []model.Tool) (*Catalog, error) {
	if len(tools) == 0 {
		return nil, ErrEmptyCatalog
	}

	index := make(map[int]int, len(tools))
	for i, t := range tools {
		if t.ID <= 0 || t.Name == "" {
			return nil, fmt.Errorf("%w: position %d", ErrInvalidTool, i)
		}
		if _, dup := index[t.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, t.ID)
		}
		index[t.ID] = i
	}

	return &Catalog{
		tools: model.CloneTools(tools),
		index: index,
	}, nil
}

// Tools returns a copy of the catalog with its default checked flags.
func (c *Catalog) Tools() []model.Tool {
	return model.CloneTools(c.tools)
}

// Has reports whether id is a catalog key.
func (c *Catalog) Has(id int) bool {
	_, ok := c.index[id]
	return ok
}

// Size returns the number of tools.
func (c *Catalog) Size() int {
	return len(c.tools)
}

// DefaultActiveCount returns how many tools start checked.
func (c *Catalog) DefaultActiveCount() int {
	return model.CountChecked(c.tools)
}
