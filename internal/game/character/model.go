// Package character defines the player character: innate stats, carried items,
// equipped items, and the stats derived from wearing them.
package character

import (
	"slices"

	"github.com/google/uuid"

	"github.com/cory-johannsen/arpg/internal/game/item"
	"github.com/cory-johannsen/arpg/internal/game/modifier"
	"github.com/cory-johannsen/arpg/internal/game/stat"
)

// Player is a character with innate stats and the items it owns.
//
// Player is not safe for concurrent use; callers that share one across
// goroutines must serialise equipment changes against derivation.
type Player struct {
	BaseStats stat.Block

	inventory []*item.Item
	equipment []*item.Item
}

// NewPlayer returns a Player with the given innate stats and no items.
func NewPlayer(base stat.Block) *Player {
	return &Player{BaseStats: base.Clone()}
}

// Pickup places it in the inventory.
//
// Precondition: it must not be nil.
func (p *Player) Pickup(it *item.Item) {
	p.inventory = append(p.inventory, it)
}

// Drop removes the item with id from the inventory.
//
// Postcondition: returns the removed item and true, or nil and false if the
// inventory holds no such item.
func (p *Player) Drop(id uuid.UUID) (*item.Item, bool) {
	return take(&p.inventory, id)
}

// Equip moves the item with id from the inventory to the end of the equipment list.
//
// Postcondition: returns the equipped item and true, or nil and false if the
// inventory holds no such item.
func (p *Player) Equip(id uuid.UUID) (*item.Item, bool) {
	it, ok := take(&p.inventory, id)
	if !ok {
		return nil, false
	}
	p.equipment = append(p.equipment, it)
	return it, true
}

// EquipItem appends an item that is not in the inventory straight to the
// equipment list.
//
// Precondition: it must not be nil.
func (p *Player) EquipItem(it *item.Item) {
	p.equipment = append(p.equipment, it)
}

// Unequip moves the item with id from the equipment list back to the inventory.
//
// Postcondition: returns the item and true, or nil and false if no such item is equipped.
func (p *Player) Unequip(id uuid.UUID) (*item.Item, bool) {
	it, ok := take(&p.equipment, id)
	if !ok {
		return nil, false
	}
	p.inventory = append(p.inventory, it)
	return it, true
}

// Inventory returns a snapshot of the carried, unequipped items.
func (p *Player) Inventory() []*item.Item {
	return slices.Clone(p.inventory)
}

// Equipment returns a snapshot of the equipped items in equip order.
func (p *Player) Equipment() []*item.Item {
	return slices.Clone(p.equipment)
}

// DerivedStats returns the player's effective stats given current equipment.
//
// For each equipped item in order, every derived item stat whose kind the
// player lacks innately is granted (the first item to grant a kind wins), then
// the item's modifiers are walked once in stored order against the player's
// stats. Unlike item derivation this walk is not split into flat and
// increased passes, so percent and flat bonuses stack in authoring order.
//
// Postcondition: p.BaseStats and all equipped items are unchanged.
func (p *Player) DerivedStats() stat.Block {
	stats := p.BaseStats.Clone()
	for _, it := range p.equipment {
		for _, s := range it.DerivedStats().Stats() {
			if !p.BaseStats.Has(s.Kind) {
				stats.Add(s)
			}
		}
		for _, m := range it.Modifiers {
			m.Apply(modifier.CharacterTarget(&stats))
		}
	}
	return stats
}

func take(items *[]*item.Item, id uuid.UUID) (*item.Item, bool) {
	i := slices.IndexFunc(*items, func(it *item.Item) bool { return it.ID == id })
	if i < 0 {
		return nil, false
	}
	it := (*items)[i]
	*items = slices.Delete(*items, i, i+1)
	return it, true
}
