package plan

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed data/*.tsv data/*.yaml
var builtinData embed.FS

// DefaultMarathon is the plan used for the "marathon" alias.
const DefaultMarathon = "marathon-i1"

var aliases = map[string]string{
	"marathon": DefaultMarathon,
	"full":     DefaultMarathon,
}

// Catalog is a set of plans addressable by name.
type Catalog struct {
	plans   map[string]Plan
	builtin map[string]bool
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{plans: make(map[string]Plan), builtin: make(map[string]bool)}
}

// Builtin loads the plans shipped with the binary, including the composed
// triathlon/marathon hybrids.
func Builtin() (*Catalog, error) {
	c := NewCatalog()

	entries, err := fs.ReadDir(builtinData, "data")
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		data, err := fs.ReadFile(builtinData, path.Join("data", e.Name()))
		if err != nil {
			return nil, err
		}

		name := strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
		var p Plan
		switch path.Ext(e.Name()) {
		case ".tsv":
			p, err = ParseHal(name, string(data))
			if err == nil {
				p, err = p.ToFiveDays()
			}
		case ".yaml":
			p, err = DecodeBytes(data, FormatYAML)
		}
		if err != nil {
			return nil, fmt.Errorf("loading built-in plan %s: %w", e.Name(), err)
		}
		c.plans[p.Name] = p
		c.builtin[p.Name] = true
	}

	for _, build := range []func(*Catalog) (Plan, error){rawWacky, wacky} {
		p, err := build(c)
		if err != nil {
			return nil, err
		}
		c.plans[p.Name] = p
		c.builtin[p.Name] = true
	}

	return c, nil
}

// Add registers a user plan. Built-in plans and aliases cannot be replaced.
func (c *Catalog) Add(p Plan) error {
	if _, ok := aliases[p.Name]; ok || c.builtin[p.Name] {
		return fmt.Errorf("plan '%s' is built in and cannot be replaced", p.Name)
	}
	if len(p.Weeks) == 0 {
		return fmt.Errorf("plan '%s': %w", p.Name, ErrEmptyPlan)
	}
	c.plans[p.Name] = p.Clone()
	return nil
}

// Get returns a copy of the named plan, resolving aliases.
func (c *Catalog) Get(name string) (Plan, error) {
	if target, ok := aliases[name]; ok {
		name = target
	}
	p, ok := c.plans[name]
	if !ok {
		return Plan{}, fmt.Errorf("plan '%s' not found (available: %s)", name, strings.Join(c.Names(), ", "))
	}
	return p.Clone(), nil
}

// Names lists every plan name, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.plans))
	for n := range c.plans {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// IsBuiltin reports whether name ships with the binary.
func (c *Catalog) IsBuiltin(name string) bool {
	if _, ok := aliases[name]; ok {
		return true
	}
	return c.builtin[name]
}

// Aliases returns alias -> plan name.
func Aliases() map[string]string {
	out := make(map[string]string, len(aliases))
	for k, v := range aliases {
		out[k] = v
	}
	return out
}
