package item

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/arpg/internal/game/modifier"
	"github.com/cory-johannsen/arpg/internal/game/stat"
)

// Modifier type identifiers for ModifierDef.Type.
const (
	ModFlatStat      = "flat_stat"
	ModBasicStat     = "basic_stat"
	ModFrontStat     = "front_stat"
	ModCompositeStat = "composite_stat"
	ModRequirement   = "requirement"
)

// StatDef is a stat or requirement entry in an item definition.
type StatDef struct {
	Stat  string `yaml:"stat"`
	Value int    `yaml:"value"`
}

// ModifierDef is a modifier entry in an item definition. Which fields are
// used depends on Type.
type ModifierDef struct {
	Type   string   `yaml:"type"`
	Stat   string   `yaml:"stat"`
	Front  string   `yaml:"front"`
	Stats  []string `yaml:"stats"`
	Value  int      `yaml:"value"`
	Values []int    `yaml:"values"`
	Kind   string   `yaml:"kind"`
	Pass   string   `yaml:"pass"`
	Target string   `yaml:"target"`
}

// ItemDef is the static definition of an item loaded from YAML.
type ItemDef struct {
	ID           string        `yaml:"id"`
	Base         string        `yaml:"base"`
	Name         string        `yaml:"name"`
	Rarity       string        `yaml:"rarity"`
	Class        string        `yaml:"class"`
	Equipped     bool          `yaml:"equipped"`
	Stats        []StatDef     `yaml:"stats"`
	Requirements []StatDef     `yaml:"requirements"`
	Modifiers    []ModifierDef `yaml:"modifiers"`
}

// Modifier converts d into a modifier.
//
// Postcondition: returns an error iff a referenced identifier is unknown, a
// required field is missing, or a composite's stats and values differ in length.
func (d ModifierDef) Modifier() (modifier.Modifier, error) {
	switch d.Type {
	case ModRequirement:
		return modifier.Requirement{Value: d.Value}, nil
	case ModFlatStat:
		k, err := stat.ParseKind(d.Stat)
		if err != nil {
			return nil, err
		}
		target, err := modifier.ParseTargetKind(d.Target)
		if err != nil {
			return nil, err
		}
		return modifier.FlatStat{Value: d.Value, Stat: k, Target: target}, nil
	}

	kind, err := modifier.ParseKind(d.Kind)
	if err != nil {
		return nil, err
	}
	pass, err := modifier.ParsePass(d.Pass)
	if err != nil {
		return nil, err
	}
	target, err := modifier.ParseTargetKind(d.Target)
	if err != nil {
		return nil, err
	}

	switch d.Type {
	case ModBasicStat:
		k, err := stat.ParseKind(d.Stat)
		if err != nil {
			return nil, err
		}
		return modifier.BasicStat{Value: d.Value, Stat: k, Kind: kind, ModPass: pass, Target: target}, nil
	case ModFrontStat:
		front, err := stat.ParseKind(d.Front)
		if err != nil {
			return nil, err
		}
		kinds, err := parseKinds(d.Stats)
		if err != nil {
			return nil, err
		}
		return modifier.FrontStat{Front: front, Value: d.Value, Stats: kinds, Kind: kind, ModPass: pass, Target: target}, nil
	case ModCompositeStat:
		kinds, err := parseKinds(d.Stats)
		if err != nil {
			return nil, err
		}
		if len(kinds) != len(d.Values) {
			return nil, fmt.Errorf("composite modifier has %d stats but %d values", len(kinds), len(d.Values))
		}
		return modifier.NewCompositeStat(kinds, d.Values, kind, pass, target), nil
	}
	return nil, fmt.Errorf("unknown modifier type %q", d.Type)
}

func parseKinds(ids []string) ([]stat.Kind, error) {
	if len(ids) == 0 {
		return nil, errors.New("stats must not be empty")
	}
	kinds := make([]stat.Kind, 0, len(ids))
	for _, id := range ids {
		k, err := stat.ParseKind(id)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// Validate checks that the ItemDef satisfies its invariants.
//
// Precondition: d is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (d *ItemDef) Validate() error {
	var errs []error
	if d.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if d.Base == "" {
		errs = append(errs, errors.New("Base must not be empty"))
	}
	if _, err := ParseRarity(d.Rarity); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseClass(d.Class); err != nil {
		errs = append(errs, err)
	}
	for _, s := range d.Stats {
		k, err := stat.ParseKind(s.Stat)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if k.IsLabel() {
			errs = append(errs, fmt.Errorf("stat %q is a label and cannot be a base stat", s.Stat))
		}
	}
	for _, r := range d.Requirements {
		if _, err := stat.ParseKind(r.Stat); err != nil {
			errs = append(errs, err)
		}
	}
	for i, m := range d.Modifiers {
		if _, err := m.Modifier(); err != nil {
			errs = append(errs, fmt.Errorf("modifier %d: %w", i, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("item validation failed: %v", errs)
	}
	return nil
}

// Build constructs a new Item instance from d.
//
// Precondition: d.Validate() returns nil.
// Postcondition: returns a fresh Item, or a non-nil error.
func (d *ItemDef) Build() (*Item, error) {
	rarity, err := ParseRarity(d.Rarity)
	if err != nil {
		return nil, err
	}
	class, err := ParseClass(d.Class)
	if err != nil {
		return nil, err
	}
	b := NewBuilder().Name(d.Name).Rarity(rarity).Class(class)
	if d.Base != "" {
		b.Base(d.Base)
	}
	for _, s := range d.Stats {
		k, err := stat.ParseKind(s.Stat)
		if err != nil {
			return nil, err
		}
		b.WithStat(k, s.Value)
	}
	for _, r := range d.Requirements {
		k, err := stat.ParseKind(r.Stat)
		if err != nil {
			return nil, err
		}
		b.WithRequirement(k, r.Value)
	}
	for i, md := range d.Modifiers {
		m, err := md.Modifier()
		if err != nil {
			return nil, fmt.Errorf("modifier %d: %w", i, err)
		}
		b.WithModifier(m)
	}
	return b.Build()
}

// LoadItems reads all *.yaml and *.yml files from dir, parses each as an
// ItemDef, validates it, and returns the collected slice in file-name order.
//
// Precondition: dir is a readable directory path.
// Postcondition: returns all valid ItemDefs or the first encountered error.
func LoadItems(dir string) ([]*ItemDef, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("LoadItems: cannot read directory %q: %w", dir, err)
	}

	var defs []*ItemDef
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("LoadItems: cannot read file %q: %w", path, err)
		}
		var d ItemDef
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&d); err != nil {
			return nil, fmt.Errorf("LoadItems: cannot parse file %q: %w", path, err)
		}
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("LoadItems: invalid item in %q: %w", path, err)
		}
		defs = append(defs, &d)
	}
	return defs, nil
}

// Catalogue holds item definitions indexed by ID, remembering load order.
type Catalogue struct {
	defs   map[string]*ItemDef
	order  []string
	logger *zap.Logger
}

// NewCatalogue returns an empty Catalogue.
//
// Precondition: logger must be non-nil.
func NewCatalogue(logger *zap.Logger) *Catalogue {
	return &Catalogue{
		defs:   make(map[string]*ItemDef),
		logger: logger,
	}
}

// Register adds d to the catalogue.
//
// Precondition: d must not be nil.
// Postcondition: Def(d.ID) returns (d, true); returns error if d.ID already registered.
func (c *Catalogue) Register(d *ItemDef) error {
	if _, exists := c.defs[d.ID]; exists {
		return fmt.Errorf("item: Catalogue.Register: item ID %q already registered", d.ID)
	}
	c.defs[d.ID] = d
	c.order = append(c.order, d.ID)
	c.logger.Debug("item definition registered",
		zap.String("id", d.ID),
		zap.String("base", d.Base),
		zap.Int("modifiers", len(d.Modifiers)),
	)
	return nil
}

// LoadDir loads every item definition in dir into the catalogue.
//
// Precondition: dir is a readable directory path.
// Postcondition: on error no definitions from dir are registered.
func (c *Catalogue) LoadDir(dir string) error {
	defs, err := LoadItems(dir)
	if err != nil {
		return err
	}
	seen := make(map[string]bool, len(defs))
	for _, d := range defs {
		if _, exists := c.defs[d.ID]; exists || seen[d.ID] {
			return fmt.Errorf("item: Catalogue.LoadDir: item ID %q already registered", d.ID)
		}
		seen[d.ID] = true
	}
	for _, d := range defs {
		if err := c.Register(d); err != nil {
			return err
		}
	}
	c.logger.Info("item catalogue loaded", zap.String("dir", dir), zap.Int("count", len(defs)))
	return nil
}

// Def returns the ItemDef for id and whether it was found.
func (c *Catalogue) Def(id string) (*ItemDef, bool) {
	d, ok := c.defs[id]
	return d, ok
}

// All returns every registered ItemDef in registration order.
func (c *Catalogue) All() []*ItemDef {
	out := make([]*ItemDef, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.defs[id])
	}
	return out
}

// Build constructs a new Item instance from the definition registered as id.
//
// Postcondition: returns an error if id is unknown or the definition cannot be built.
func (c *Catalogue) Build(id string) (*Item, error) {
	d, ok := c.defs[id]
	if !ok {
		return nil, fmt.Errorf("item: Catalogue.Build: unknown item %q", id)
	}
	it, err := d.Build()
	if err != nil {
		return nil, fmt.Errorf("item: Catalogue.Build: %q: %w", id, err)
	}
	return it, nil
}
