// Package library keeps the user's imported plans under ~/.trainplan.
package library

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/Flyrell/trainplan/internal/hashutil"
	"github.com/Flyrell/trainplan/internal/plan"
	"github.com/Flyrell/trainplan/internal/stringutil"
	"go.uber.org/zap"
)

// Entry describes one imported plan.
type Entry struct {
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	Sport      string    `json:"sport,omitempty"`
	Weeks      int       `json:"weeks"`
	Source     string    `json:"source"` // file the plan was imported from
	Digest     string    `json:"digest"`
	ImportedAt time.Time `json:"imported_at"`
}

// Index lists every imported plan.
type Index struct {
	Plans []Entry `json:"plans"`
}

// Dir returns the trainplan directory.
func Dir(homeDir string) string {
	return filepath.Join(homeDir, ".trainplan")
}

// IndexPath returns the path to library.json.
func IndexPath(homeDir string) string {
	return filepath.Join(Dir(homeDir), "library.json")
}

// PlansDir returns the directory holding plan documents.
func PlansDir(homeDir string) string {
	return filepath.Join(Dir(homeDir), "plans")
}

// PlanPath returns the stored document path for a slug.
func PlanPath(homeDir, slug string) string {
	return filepath.Join(PlansDir(homeDir), slug+".yaml")
}

// ReadIndex reads the library index.
// Returns an empty index if the file does not exist.
func ReadIndex(homeDir string) (*Index, error) {
	data, err := os.ReadFile(IndexPath(homeDir))
	if errors.Is(err, os.ErrNotExist) {
		return &Index{}, nil
	}
	if err != nil {
		return nil, err
	}

	var idx Index
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("reading %s: %w", IndexPath(homeDir), err)
	}
	return &idx, nil
}

// WriteIndex writes the library index, creating the directory if needed.
func WriteIndex(homeDir string, idx *Index) error {
	if err := os.MkdirAll(Dir(homeDir), 0755); err != nil {
		return err
	}

	sort.Slice(idx.Plans, func(i, j int) bool { return idx.Plans[i].Name < idx.Plans[j].Name })
	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(IndexPath(homeDir), data, 0644)
}

// Find looks up a plan by name or slug. Returns nil if not found.
func Find(idx *Index, name string) *Entry {
	for i := range idx.Plans {
		if idx.Plans[i].Name == name || idx.Plans[i].Slug == name {
			return &idx.Plans[i]
		}
	}
	return nil
}

// ImportResult reports what Import did.
type ImportResult struct {
	Entry     Entry
	Created   bool
	Unchanged bool
}

// Import validates the plan document at src and copies it into the library
// as YAML. Re-importing a plan with the same name replaces it. reserved, when
// set, rejects names that belong to built-in plans.
func Import(homeDir, src string, reserved func(string) bool, now time.Time) (ImportResult, error) {
	format, err := plan.FormatFromPath(src)
	if err != nil {
		return ImportResult{}, err
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return ImportResult{}, err
	}
	p, err := plan.DecodeBytes(data, format)
	if err != nil {
		return ImportResult{}, fmt.Errorf("%s: %w", filepath.Base(src), err)
	}

	if reserved != nil && reserved(p.Name) {
		return ImportResult{}, fmt.Errorf("plan '%s' is built in and cannot be replaced", p.Name)
	}

	slug := stringutil.Slugify(p.Name)
	if slug == "" {
		return ImportResult{}, fmt.Errorf("plan name '%s' has no usable characters", p.Name)
	}

	idx, err := ReadIndex(homeDir)
	if err != nil {
		return ImportResult{}, err
	}

	digest := hashutil.Digest(data)
	existing := Find(idx, p.Name)
	if existing != nil && existing.Digest == digest {
		return ImportResult{Entry: *existing, Unchanged: true}, nil
	}
	if other := findSlug(idx, slug); other != nil && other.Name != p.Name {
		return ImportResult{}, fmt.Errorf("plan '%s' clashes with '%s' (both stored as %s)", p.Name, other.Name, slug)
	}

	var buf bytes.Buffer
	if err := plan.Encode(&buf, p, plan.FormatYAML); err != nil {
		return ImportResult{}, err
	}
	if err := os.MkdirAll(PlansDir(homeDir), 0755); err != nil {
		return ImportResult{}, err
	}
	if err := os.WriteFile(PlanPath(homeDir, slug), buf.Bytes(), 0644); err != nil {
		return ImportResult{}, err
	}

	abs, err := filepath.Abs(src)
	if err != nil {
		abs = src
	}
	e := Entry{
		Name:       p.Name,
		Slug:       slug,
		Sport:      p.Sport,
		Weeks:      p.Len(),
		Source:     abs,
		Digest:     digest,
		ImportedAt: now.UTC(),
	}

	created := existing == nil
	if created {
		idx.Plans = append(idx.Plans, e)
	} else {
		*existing = e
	}
	if err := WriteIndex(homeDir, idx); err != nil {
		return ImportResult{}, err
	}
	return ImportResult{Entry: e, Created: created}, nil
}

func findSlug(idx *Index, slug string) *Entry {
	for i := range idx.Plans {
		if idx.Plans[i].Slug == slug {
			return &idx.Plans[i]
		}
	}
	return nil
}

// Remove deletes a plan from the library.
func Remove(homeDir, name string) (Entry, error) {
	idx, err := ReadIndex(homeDir)
	if err != nil {
		return Entry{}, err
	}
	e := Find(idx, name)
	if e == nil {
		return Entry{}, fmt.Errorf("plan '%s' is not in the library", name)
	}
	removed := *e

	if err := os.Remove(PlanPath(homeDir, removed.Slug)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Entry{}, err
	}

	plans := make([]Entry, 0, len(idx.Plans)-1)
	for _, p := range idx.Plans {
		if p.Slug != removed.Slug {
			plans = append(plans, p)
		}
	}
	idx.Plans = plans
	return removed, WriteIndex(homeDir, idx)
}

// Load reads every plan in the library.
func Load(homeDir string) ([]plan.Plan, error) {
	idx, err := ReadIndex(homeDir)
	if err != nil {
		return nil, err
	}

	plans := make([]plan.Plan, 0, len(idx.Plans))
	for _, e := range idx.Plans {
		p, err := loadEntry(homeDir, e)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, nil
}

func loadEntry(homeDir string, e Entry) (plan.Plan, error) {
	f, err := os.Open(PlanPath(homeDir, e.Slug))
	if err != nil {
		return plan.Plan{}, fmt.Errorf("plan '%s': %w", e.Name, err)
	}
	defer f.Close()

	p, err := plan.Decode(f, plan.FormatYAML)
	if err != nil {
		return plan.Plan{}, fmt.Errorf("plan '%s': %w", e.Name, err)
	}
	return p, nil
}

// Catalog returns the built-in catalog with every library plan added.
// Library plans that cannot be read are skipped with a warning so that the
// remaining commands, removal included, keep working.
func Catalog(homeDir string, log *zap.Logger) (*plan.Catalog, error) {
	c, err := plan.Builtin()
	if err != nil {
		return nil, err
	}
	idx, err := ReadIndex(homeDir)
	if err != nil {
		return nil, err
	}
	for _, e := range idx.Plans {
		p, err := loadEntry(homeDir, e)
		if err == nil {
			err = c.Add(p)
		}
		if err != nil {
			log.Warn("skipping library plan", zap.String("plan", e.Name), zap.Error(err))
		}
	}
	return c, nil
}
