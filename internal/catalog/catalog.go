// Package catalog holds the skill catalog: which skills exist and the highest
// level each can roll on a charm.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/charm-tracker/internal/entities"
	"github.com/KirkDiggler/charm-tracker/internal/errors"
)

//go:embed skills.yaml
var defaultSkillsYAML []byte

// SkillInfo describes one catalog entry
type SkillInfo struct {
	Name     string `yaml:"name"`
	MaxLevel int    `yaml:"max_level"`
}

type catalogFile struct {
	Skills []SkillInfo `yaml:"skills"`
}

// Catalog maps skill names to their maximum level
type Catalog struct {
	maxLevels map[string]int
	names     []string
}

// New builds a catalog from entries. Names must be non-empty and unique and
// every max level must be at least 1.
func New(skills []SkillInfo) (*Catalog, error) {
	vb := errors.NewValidationBuilder()
	maxLevels := make(map[string]int, len(skills))

	for i, skill := range skills {
		field := fmt.Sprintf("skills[%d]", i)
		name := strings.TrimSpace(skill.Name)
		if name == "" {
			vb.RequiredField(field + ".name")
			continue
		}
		if _, dup := maxLevels[name]; dup {
			vb.Fieldf(field+".name", "duplicate skill %q", name)
			continue
		}
		if skill.MaxLevel < 1 {
			vb.Fieldf(field+".max_level", "must be at least 1")
			continue
		}
		maxLevels[name] = skill.MaxLevel
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(maxLevels))
	for name := range maxLevels {
		names = append(names, name)
	}
	sort.Strings(names)

	return &Catalog{maxLevels: maxLevels, names: names}, nil
}

// Default returns the built-in catalog
func Default() *Catalog {
	c, err := Parse(defaultSkillsYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded skill catalog is invalid: %v", err))
	}
	return c
}

// Parse builds a catalog from YAML
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse skill catalog")
	}
	return New(file.Skills)
}

// Load reads a YAML catalog file. An empty path returns the default catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeNotFound, "failed to read skill catalog "+path)
	}
	return Parse(data)
}

// MaxLevelOf returns the max level of a skill, false when the skill is unknown
func (c *Catalog) MaxLevelOf(name string) (int, bool) {
	level, ok := c.maxLevels[name]
	return level, ok
}

// AllSkillNames returns every skill name in sorted order
func (c *Catalog) AllSkillNames() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Suggest returns the sorted skill names containing query, ignoring case.
// An empty query matches everything.
func (c *Catalog) Suggest(query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	var out []string
	for _, name := range c.names {
		if strings.Contains(strings.ToLower(name), query) {
			out = append(out, name)
		}
	}
	return out
}

// ValidateSkills checks named skills against the catalog: the skill must be
// known and its level within [1, max]. Unnamed positions must have level 0.
func (c *Catalog) ValidateSkills(skills entities.Skills) error {
	vb := errors.NewValidationBuilder()

	for i, skill := range skills {
		field := fmt.Sprintf("skills[%d]", i)
		if !skill.IsSet() {
			if skill.Level != 0 {
				vb.Field(field+".level", "must be 0 when no skill is set")
			}
			continue
		}

		maxLevel, ok := c.MaxLevelOf(skill.Name)
		if !ok {
			vb.InvalidField(field+".name", fmt.Sprintf("unknown skill %q", skill.Name))
			continue
		}
		errors.ValidateRange(field+".level", skill.Level, 1, maxLevel, vb)
	}

	return vb.Build()
}
