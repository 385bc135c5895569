package item

import (
	"github.com/cory-johannsen/arpg/internal/game/stat"
)

// Presentation is the read-only view of an item assembled for display.
type Presentation struct {
	Base         string
	Name         string
	Rarity       Rarity
	Class        Class
	Damage       *DamageLine // nil unless the item is a weapon with both damage stats
	Requirements []RequirementLine
	Modifiers    []string
}

// DamageLine is a weapon's derived damage range.
type DamageLine struct {
	Min        int
	Max        int
	IsModified bool
}

// RequirementLine pairs a derived requirement with whether the viewing player meets it.
type RequirementLine struct {
	Requirement stat.Requirement
	IsMet       bool
}

// damageKinds are the stats whose modification marks a damage line as modified.
var damageKinds = map[stat.Kind]bool{
	stat.IncreasedDamage: true,
	stat.MinimumDamage:   true,
	stat.MaximumDamage:   true,
}

// Present assembles the display view of i for a player with playerStats.
//
// Postcondition: Damage is non-nil iff i.Class is a weapon and the derived
// stats hold both MinimumDamage and MaximumDamage. A requirement for a stat the
// player lacks is unmet. Modifiers lists every description in stored order.
func (i *Item) Present(playerStats stat.Block) Presentation {
	derived := i.DerivedStats()
	reqs := i.DerivedRequirements()

	p := Presentation{
		Base:   i.Base,
		Name:   i.Name,
		Rarity: i.Rarity,
		Class:  i.Class,
	}

	minDmg, hasMin := derived.Get(stat.MinimumDamage)
	maxDmg, hasMax := derived.Get(stat.MaximumDamage)
	if i.Class.IsWeapon() && hasMin && hasMax {
		p.Damage = &DamageLine{
			Min:        minDmg.Value,
			Max:        maxDmg.Value,
			IsModified: i.modifiesDamage(),
		}
	}

	for _, r := range reqs.Requirements() {
		met := false
		if s, ok := playerStats.Get(r.Kind); ok {
			met = r.IsMet(s)
		}
		p.Requirements = append(p.Requirements, RequirementLine{Requirement: r, IsMet: met})
	}

	p.Modifiers = make([]string, 0, len(i.Modifiers))
	for _, m := range i.Modifiers {
		p.Modifiers = append(p.Modifiers, m.Description())
	}
	return p
}

// modifiesDamage reports whether any modifier flags a damage stat, regardless
// of its pass or target.
func (i *Item) modifiesDamage() bool {
	for _, m := range i.Modifiers {
		if damageKinds[m.AffectedStat()] {
			return true
		}
	}
	return false
}
