package character

import (
	"fmt"
	"sort"

	"github.com/cory-johannsen/arpg/internal/game/stat"
)

// statOrder fixes the order innate stats are listed in, independent of map
// iteration order.
var statOrder = []stat.Kind{
	stat.Strength, stat.Dexterity, stat.Intelligence, stat.Level,
	stat.Life, stat.Defense, stat.AttackSpeedIncrease, stat.MinimumDamage, stat.MaximumDamage,
}

// Build constructs a Player from a map of snake_case stat identifiers to values,
// as found in configuration.
//
// Precondition: every key names a real (non-label) stat kind.
// Postcondition: Returns a Player with no items, or a non-nil error listing
// every invalid key.
func Build(baseStats map[string]int) (*Player, error) {
	kinds := make(map[stat.Kind]int, len(baseStats))
	var bad []string
	for id, v := range baseStats {
		k, err := stat.ParseKind(id)
		if err != nil || k.IsLabel() {
			bad = append(bad, id)
			continue
		}
		kinds[k] = v
	}
	if len(bad) > 0 {
		sort.Strings(bad)
		return nil, fmt.Errorf("character: invalid base stats %v", bad)
	}

	var block stat.Block
	for _, k := range statOrder {
		if v, ok := kinds[k]; ok {
			block.Add(stat.New(k, v))
		}
	}
	return NewPlayer(block), nil
}
