// Package modifier defines the item affixes that alter stats and requirements
// when an item or its wearer is evaluated.
package modifier

import (
	"fmt"

	"github.com/cory-johannsen/arpg/internal/game/stat"
)

// Pass is the processing stage a modifier runs in.
type Pass int

const (
	PassFlat Pass = iota
	PassIncreased
	PassRequirements
)

// String returns the content identifier for p.
func (p Pass) String() string {
	switch p {
	case PassFlat:
		return "flat"
	case PassIncreased:
		return "increased"
	case PassRequirements:
		return "requirements"
	}
	return fmt.Sprintf("Pass(%d)", int(p))
}

// Kind selects additive or percentage application.
type Kind int

const (
	KindFlat Kind = iota
	KindPercent
)

// String returns the content identifier for k.
func (k Kind) String() string {
	switch k {
	case KindFlat:
		return "flat"
	case KindPercent:
		return "percent"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// TargetKind names the data set a modifier may change.
type TargetKind int

const (
	TargetCharacter TargetKind = iota
	TargetItem
	TargetRequirements
)

// String returns the content identifier for t.
func (t TargetKind) String() string {
	switch t {
	case TargetCharacter:
		return "character"
	case TargetItem:
		return "item"
	case TargetRequirements:
		return "requirements"
	}
	return fmt.Sprintf("TargetKind(%d)", int(t))
}

// ParsePass returns the Pass named by s.
func ParsePass(s string) (Pass, error) {
	switch s {
	case "flat":
		return PassFlat, nil
	case "increased":
		return PassIncreased, nil
	case "requirements":
		return PassRequirements, nil
	}
	return 0, fmt.Errorf("modifier: unknown pass %q", s)
}

// ParseKind returns the Kind named by s.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "flat":
		return KindFlat, nil
	case "percent":
		return KindPercent, nil
	}
	return 0, fmt.Errorf("modifier: unknown kind %q", s)
}

// ParseTargetKind returns the TargetKind named by s.
func ParseTargetKind(s string) (TargetKind, error) {
	switch s {
	case "character":
		return TargetCharacter, nil
	case "item":
		return TargetItem, nil
	case "requirements":
		return TargetRequirements, nil
	}
	return 0, fmt.Errorf("modifier: unknown target %q", s)
}

// Target is the data set handed to Modifier.Apply. Exactly one of stats or
// reqs is set, matching kind.
type Target struct {
	kind  TargetKind
	stats *stat.Block
	reqs  *stat.RequirementBlock
}

// CharacterTarget wraps a wearer's stat block.
func CharacterTarget(b *stat.Block) Target {
	return Target{kind: TargetCharacter, stats: b}
}

// ItemTarget wraps an item's stat block.
func ItemTarget(b *stat.Block) Target {
	return Target{kind: TargetItem, stats: b}
}

// RequirementsTarget wraps an item's requirement block.
func RequirementsTarget(b *stat.RequirementBlock) Target {
	return Target{kind: TargetRequirements, reqs: b}
}

// Kind returns the logical kind of t.
func (t Target) Kind() TargetKind {
	return t.kind
}

// Stats returns the wrapped stat block, or nil for a requirements target.
func (t Target) Stats() *stat.Block {
	return t.stats
}

// Requirements returns the wrapped requirement block, or nil for a stats target.
func (t Target) Requirements() *stat.RequirementBlock {
	return t.reqs
}

// Modifier alters a Target. Implementations are immutable and only ever
// change the block passed to Apply.
type Modifier interface {
	// Apply changes target in place when target.Kind() is the kind this
	// modifier is declared for; any other target is left untouched.
	Apply(target Target)
	// Pass returns the stage this modifier runs in.
	Pass() Pass
	// Description returns the player-facing text for this modifier.
	Description() string
	// AffectedStat returns the stat presentation should flag as modified.
	AffectedStat() stat.Kind
}

// statsFor returns the stat block in t when t is of kind want, or nil.
func statsFor(t Target, want TargetKind) *stat.Block {
	if t.kind != want {
		return nil
	}
	return t.stats
}

// applyValue changes s by v according to kind.
//
// Percent uses a single precision intermediate truncated toward zero, so
// successive percent modifiers compound on the current value.
func applyValue(s *stat.Stat, kind Kind, v int) {
	switch kind {
	case KindFlat:
		s.Value += v
	case KindPercent:
		s.Value = int(float32(s.Value) * (1 + float32(v)/100))
	}
}

// formatValue renders v as "+5", "-5", "+50%" or "-50%".
func formatValue(kind Kind, v int) string {
	if kind == KindPercent {
		return fmt.Sprintf("%+d%%", v)
	}
	return fmt.Sprintf("%+d", v)
}
