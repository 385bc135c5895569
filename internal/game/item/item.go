// Package item models equipment items and derives their effective stats and
// requirements from base data and an ordered list of modifiers.
package item

import (
	"github.com/google/uuid"

	"github.com/cory-johannsen/arpg/internal/game/modifier"
	"github.com/cory-johannsen/arpg/internal/game/stat"
)

// Item is a constructed piece of equipment. Items are built once through a
// Builder and are read-only afterwards; derivation works on copies.
type Item struct {
	ID           uuid.UUID
	Base         string
	Name         string // optional; empty when the item has no unique name
	Rarity       Rarity
	Class        Class
	Requirements stat.RequirementBlock
	BaseStats    stat.Block
	Modifiers    []modifier.Modifier
}

// statPasses are the passes folded into an item's own stats, in order.
var statPasses = [...]modifier.Pass{modifier.PassFlat, modifier.PassIncreased}

// Equal reports whether i and other are the same item instance.
func (i *Item) Equal(other *Item) bool {
	return other != nil && i.ID == other.ID
}

// DisplayName returns the unique name if set, otherwise the base name.
func (i *Item) DisplayName() string {
	if i.Name != "" {
		return i.Name
	}
	return i.Base
}

// DerivedStats returns the item's effective stats.
//
// Flat-pass modifiers run before increased-pass modifiers; within a pass the
// stored modifier order is kept. Only item-targeted modifiers take effect.
//
// Postcondition: i.BaseStats is unchanged.
func (i *Item) DerivedStats() stat.Block {
	stats := i.BaseStats.Clone()
	for _, pass := range statPasses {
		for _, m := range i.Modifiers {
			if m.Pass() != pass {
				continue
			}
			m.Apply(modifier.ItemTarget(&stats))
		}
	}
	return stats
}

// DerivedRequirements returns the item's effective requirements after every
// requirements-pass modifier has run in stored order.
//
// Postcondition: i.Requirements is unchanged.
func (i *Item) DerivedRequirements() stat.RequirementBlock {
	reqs := i.Requirements.Clone()
	for _, m := range i.Modifiers {
		if m.Pass() != modifier.PassRequirements {
			continue
		}
		m.Apply(modifier.RequirementsTarget(&reqs))
	}
	return reqs
}
