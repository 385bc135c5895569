// Package stat defines the numeric attributes carried by characters and items,
// and the minimum-value requirements that gate item usage.
package stat

import (
	"fmt"
	"slices"
)

// Kind identifies a stat category.
type Kind int

const (
	Strength Kind = iota
	Intelligence
	Dexterity
	Level
	// Requirements is a label used only in modifier descriptions; it never
	// appears in a real Block.
	Requirements
	// IncreasedDamage is a label used only in modifier descriptions.
	IncreasedDamage
	AttackSpeedIncrease
	MinimumDamage
	MaximumDamage
	Defense
	Life
)

var kindLabels = map[Kind]string{
	Strength:            "Strength",
	Intelligence:        "Intelligence",
	Dexterity:           "Dexterity",
	Level:               "Level",
	Requirements:        "Requirements",
	IncreasedDamage:     "Increased Damage",
	AttackSpeedIncrease: "Increased Attack Speed",
	MinimumDamage:       "Minimum Damage",
	MaximumDamage:       "Maximum Damage",
	Defense:             "Defence",
	Life:                "Life",
}

// kindIDs maps the snake_case identifiers used in content files to kinds.
var kindIDs = map[string]Kind{
	"strength":              Strength,
	"intelligence":          Intelligence,
	"dexterity":             Dexterity,
	"level":                 Level,
	"requirements":          Requirements,
	"increased_damage":      IncreasedDamage,
	"attack_speed_increase": AttackSpeedIncrease,
	"minimum_damage":        MinimumDamage,
	"maximum_damage":        MaximumDamage,
	"defense":               Defense,
	"life":                  Life,
}

// String returns the display label for k.
func (k Kind) String() string {
	if l, ok := kindLabels[k]; ok {
		return l
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsLabel reports whether k is a description-only pseudo-kind.
func (k Kind) IsLabel() bool {
	return k == Requirements || k == IncreasedDamage
}

// ParseKind returns the Kind named by id.
//
// Precondition: id is a snake_case stat identifier such as "minimum_damage".
// Postcondition: returns an error iff id names no known kind.
func ParseKind(id string) (Kind, error) {
	k, ok := kindIDs[id]
	if !ok {
		return 0, fmt.Errorf("stat: unknown stat kind %q", id)
	}
	return k, nil
}

// Stat is a single typed numeric value. Two stats are the same stat when their
// kinds match, regardless of value.
type Stat struct {
	Kind  Kind
	Value int
}

// New returns a Stat of kind k with value v.
func New(k Kind, v int) Stat {
	return Stat{Kind: k, Value: v}
}

// Block is an ordered collection of stats holding at most one Stat per kind.
//
// The zero value is an empty, ready-to-use Block.
type Block struct {
	stats []Stat
}

// NewBlock returns a Block populated from stats in order.
//
// Postcondition: later stats whose kind already appeared are dropped.
func NewBlock(stats ...Stat) Block {
	var b Block
	for _, s := range stats {
		b.Add(s)
	}
	return b
}

// Add appends s unless a stat of the same kind is already present, in which
// case the existing value is kept.
func (b *Block) Add(s Stat) {
	if b.Has(s.Kind) {
		return
	}
	b.stats = append(b.stats, s)
}

// Get returns the stat of kind k and whether it was found.
func (b Block) Get(k Kind) (Stat, bool) {
	for _, s := range b.stats {
		if s.Kind == k {
			return s, true
		}
	}
	return Stat{}, false
}

// GetMut returns a pointer to the stat of kind k so it can be changed in place,
// or nil if no such stat exists.
func (b *Block) GetMut(k Kind) *Stat {
	for i := range b.stats {
		if b.stats[i].Kind == k {
			return &b.stats[i]
		}
	}
	return nil
}

// Has reports whether a stat of kind k is present.
func (b Block) Has(k Kind) bool {
	_, ok := b.Get(k)
	return ok
}

// Len returns the number of stats in the block.
func (b Block) Len() int {
	return len(b.stats)
}

// Stats returns a snapshot copy of the stats in insertion order.
func (b Block) Stats() []Stat {
	return slices.Clone(b.stats)
}

// Clone returns a deep copy of b; changes to the copy never reach b.
func (b Block) Clone() Block {
	return Block{stats: slices.Clone(b.stats)}
}
