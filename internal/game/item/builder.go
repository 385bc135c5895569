package item

import (
	"errors"

	"github.com/google/uuid"

	"github.com/cory-johannsen/arpg/internal/game/modifier"
	"github.com/cory-johannsen/arpg/internal/game/stat"
)

// ErrMissingBase is returned by Builder.Build when no base name was supplied.
var ErrMissingBase = errors.New("item: base not specified")

// Builder collects item fields and produces an Item. Setters return the
// builder so calls can be chained.
type Builder struct {
	base      string
	hasBase   bool
	name      string
	rarity    Rarity
	class     Class
	reqs      stat.RequirementBlock
	stats     stat.Block
	modifiers []modifier.Modifier
}

// NewBuilder returns a Builder with every field at its default: no names,
// RarityNormal, NoClass, and empty stats, requirements and modifiers.
func NewBuilder() *Builder {
	return &Builder{}
}

// Base sets the base name, e.g. "Short Sword".
func (b *Builder) Base(base string) *Builder {
	b.base = base
	b.hasBase = true
	return b
}

// Name sets the unique display name.
func (b *Builder) Name(name string) *Builder {
	b.name = name
	return b
}

func (b *Builder) Rarity(r Rarity) *Builder {
	b.rarity = r
	return b
}

func (b *Builder) Class(c Class) *Builder {
	b.class = c
	return b
}

// WithStat adds a base stat. A second stat of the same kind is ignored.
func (b *Builder) WithStat(k stat.Kind, value int) *Builder {
	b.stats.Add(stat.New(k, value))
	return b
}

// WithRequirement appends a usage requirement.
func (b *Builder) WithRequirement(k stat.Kind, amount int) *Builder {
	b.reqs.Add(stat.Requirement{Kind: k, Amount: amount})
	return b
}

// WithModifier appends m to the modifier list; list order is evaluation order.
func (b *Builder) WithModifier(m modifier.Modifier) *Builder {
	b.modifiers = append(b.modifiers, m)
	return b
}

// Build returns the configured Item with a fresh random ID.
//
// Postcondition: returns ErrMissingBase iff Base was never called.
func (b *Builder) Build() (*Item, error) {
	if !b.hasBase {
		return nil, ErrMissingBase
	}
	return &Item{
		ID:           uuid.New(),
		Base:         b.base,
		Name:         b.name,
		Rarity:       b.rarity,
		Class:        b.class,
		Requirements: b.reqs.Clone(),
		BaseStats:    b.stats.Clone(),
		Modifiers:    append([]modifier.Modifier(nil), b.modifiers...),
	}, nil
}
