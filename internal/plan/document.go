package plan

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/Flyrell/trainplan/internal/workout"
)

// Format identifies a plan document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks a document format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("unsupported plan file %q (expected .yaml, .yml or .toml)", filepath.Base(path))
}

// document is the on-disk form of a Plan.
type document struct {
	Name   string    `yaml:"name" toml:"name"`
	Sport  string    `yaml:"sport,omitempty" toml:"sport,omitempty"`
	Source string    `yaml:"source,omitempty" toml:"source,omitempty"`
	Weeks  []weekDoc `yaml:"weeks" toml:"weeks"`
}

type weekDoc struct {
	Mon dayDoc `yaml:"mon,omitempty" toml:"mon,omitempty"`
	Tue dayDoc `yaml:"tue,omitempty" toml:"tue,omitempty"`
	Wed dayDoc `yaml:"wed,omitempty" toml:"wed,omitempty"`
	Thu dayDoc `yaml:"thu,omitempty" toml:"thu,omitempty"`
	Fri dayDoc `yaml:"fri,omitempty" toml:"fri,omitempty"`
	Sat dayDoc `yaml:"sat,omitempty" toml:"sat,omitempty"`
	Sun dayDoc `yaml:"sun,omitempty" toml:"sun,omitempty"`
}

func (w weekDoc) days() [DaysPerWeek]dayDoc {
	return [DaysPerWeek]dayDoc{w.Mon, w.Tue, w.Wed, w.Thu, w.Fri, w.Sat, w.Sun}
}

// dayDoc accepts several YAML shapes: "rest", "race", a bare summary, a
// {summary, description} mapping, or a list of any of those.
type dayDoc []workout.Item

func (d *dayDoc) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*d = append(*d, scalarItems(s)...)
	case yaml.MappingNode:
		var it workout.Item
		if err := node.Decode(&it); err != nil {
			return err
		}
		if strings.TrimSpace(it.Summary) == "" {
			return fmt.Errorf("line %d: workout without summary", node.Line)
		}
		*d = append(*d, workout.New(it.Summary, it.Description))
	case yaml.SequenceNode:
		for _, child := range node.Content {
			var sub dayDoc
			if err := sub.UnmarshalYAML(child); err != nil {
				return err
			}
			*d = append(*d, sub...)
		}
	default:
		return fmt.Errorf("line %d: unexpected day value", node.Line)
	}
	return nil
}

// MarshalYAML writes the most compact shape that reads back the same.
func (d dayDoc) MarshalYAML() (any, error) {
	switch {
	case len(d) == 0:
		return "rest", nil
	case len(d) == 1 && d[0].IsRace():
		return "race", nil
	case len(d) == 1:
		return itemYAML(d[0]), nil
	}
	out := make([]any, len(d))
	for i, it := range d {
		out[i] = itemYAML(it)
	}
	return out, nil
}

func itemYAML(it workout.Item) any {
	if it.Description == "" || it.Description == it.Summary {
		return it.Summary
	}
	return it
}

func scalarItems(s string) []workout.Item {
	s = strings.TrimSpace(s)
	switch {
	case s == "" || s == "-" || strings.EqualFold(s, "rest"):
		return nil
	case strings.EqualFold(s, "race"):
		return []workout.Item{workout.Race()}
	}
	return []workout.Item{workout.New(s, "")}
}

// Decode reads a plan document in the given format.
func Decode(r io.Reader, format Format) (Plan, error) {
	var doc document
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return Plan{}, fmt.Errorf("empty plan document")
			}
			return Plan{}, fmt.Errorf("decoding yaml plan: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return Plan{}, fmt.Errorf("decoding toml plan: %w", err)
		}
	default:
		return Plan{}, fmt.Errorf("unsupported plan format %q", format)
	}
	return doc.toPlan()
}

// DecodeBytes is Decode over an in-memory document.
func DecodeBytes(data []byte, format Format) (Plan, error) {
	return Decode(bytes.NewReader(data), format)
}

// Encode writes p as a plan document.
func Encode(w io.Writer, p Plan, format Format) error {
	doc := fromPlan(p)
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding yaml plan: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("encoding toml plan: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unsupported plan format %q", format)
}

func (doc document) toPlan() (Plan, error) {
	name := strings.TrimSpace(doc.Name)
	if name == "" {
		return Plan{}, fmt.Errorf("plan document has no name")
	}
	if len(doc.Weeks) == 0 {
		return Plan{}, fmt.Errorf("plan %q: %w", name, ErrEmptyPlan)
	}

	p := Plan{Name: name, Sport: doc.Sport, Source: doc.Source}
	for _, wd := range doc.Weeks {
		var w Week
		for i, dd := range wd.days() {
			items := make([]workout.Item, len(dd))
			for j, it := range dd {
				items[j] = workout.New(it.Summary, it.Description)
			}
			w[i] = Of(items...)
		}
		p.Weeks = append(p.Weeks, w)
	}
	return p, nil
}

func fromPlan(p Plan) document {
	doc := document{Name: p.Name, Sport: p.Sport, Source: p.Source}
	for _, w := range p.Weeks {
		doc.Weeks = append(doc.Weeks, weekDoc{
			Mon: dayDoc(w[0].Items),
			Tue: dayDoc(w[1].Items),
			Wed: dayDoc(w[2].Items),
			Thu: dayDoc(w[3].Items),
			Fri: dayDoc(w[4].Items),
			Sat: dayDoc(w[5].Items),
			Sun: dayDoc(w[6].Items),
		})
	}
	return doc
}
