// Package levels provides the static campaign level catalog.
// Levels are embedded at build time and validated on load.
package levels

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/damiensmith1/broken-calculator/internal/rules"
)

//go:embed levels.yaml
var embeddedLevels []byte

// Level binds a target number to the hidden rule that must be beaten.
type Level struct {
	ID     int
	Tier   string
	Target int
	Rule   rules.RuleID
	Hint   string
}

// Catalog is an ordered, gap-free list of levels starting at id 1.
type Catalog struct {
	levels []Level
}

// yamlFile represents the YAML structure of a level pack.
type yamlFile struct {
	Levels []yamlLevel `yaml:"levels"`
}

type yamlLevel struct {
	ID     int    `yaml:"id"`
	Tier   string `yaml:"tier"`
	Target int    `yaml:"target"`
	Rule   string `yaml:"rule"`
	Hint   string `yaml:"hint"`
}

var defaultCatalog = mustParse(embeddedLevels)

// Default returns the embedded campaign.
func Default() *Catalog {
	return defaultCatalog
}

func mustParse(data []byte) *Catalog {
	c, err := Parse(data)
	if err != nil {
		panic(fmt.Sprintf("levels: embedded catalog: %v", err))
	}
	return c
}

// Parse decodes and validates a YAML level pack.
func Parse(data []byte) (*Catalog, error) {
	var file yamlFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("levels: yaml unmarshal: %w", err)
	}

	levels := make([]Level, 0, len(file.Levels))
	for _, yl := range file.Levels {
		rule, err := rules.Parse(yl.Rule)
		if err != nil {
			return nil, fmt.Errorf("levels: level %d: %w", yl.ID, err)
		}
		levels = append(levels, Level{
			ID:     yl.ID,
			Tier:   yl.Tier,
			Target: yl.Target,
			Rule:   rule,
			Hint:   yl.Hint,
		})
	}

	return New(levels)
}

// New builds a catalog from levels already in id order.
// Ids must be unique and contiguous starting at 1; every level needs a tier and a hint.
func New(levels []Level) (*Catalog, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("levels: catalog is empty")
	}
	for i, lvl := range levels {
		if lvl.ID != i+1 {
			return nil, fmt.Errorf("levels: expected level id %d at position %d, got %d", i+1, i, lvl.ID)
		}
		if !lvl.Rule.Valid() {
			return nil, fmt.Errorf("levels: level %d has invalid rule %d", lvl.ID, int(lvl.Rule))
		}
		if strings.TrimSpace(lvl.Tier) == "" {
			return nil, fmt.Errorf("levels: level %d has no tier", lvl.ID)
		}
		if strings.TrimSpace(lvl.Hint) == "" {
			return nil, fmt.Errorf("levels: level %d has no hint", lvl.ID)
		}
	}

	c := &Catalog{levels: make([]Level, len(levels))}
	copy(c.levels, levels)
	return c, nil
}

// Count returns the number of levels.
func (c *Catalog) Count() int {
	return len(c.levels)
}

// Get returns the level with the given id.
func (c *Catalog) Get(id int) (Level, bool) {
	if id < 1 || id > len(c.levels) {
		return Level{}, false
	}
	return c.levels[id-1], true
}

// Has reports whether a level with the given id exists.
func (c *Catalog) Has(id int) bool {
	return id >= 1 && id <= len(c.levels)
}

// All returns a copy of every level in id order.
func (c *Catalog) All() []Level {
	result := make([]Level, len(c.levels))
	copy(result, c.levels)
	return result
}

// First returns the first level.
func (c *Catalog) First() Level {
	return c.levels[0]
}
