package modifier

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/arpg/internal/game/stat"
)

// FlatStat adds Value to one stat. It always runs in the flat pass.
type FlatStat struct {
	Value  int
	Stat   stat.Kind
	Target TargetKind
}

// Apply adds m.Value to the matching stat when target is of kind m.Target.
func (m FlatStat) Apply(target Target) {
	b := statsFor(target, m.Target)
	if b == nil {
		return
	}
	if s := b.GetMut(m.Stat); s != nil {
		applyValue(s, KindFlat, m.Value)
	}
}

func (m FlatStat) Pass() Pass { return PassFlat }

func (m FlatStat) Description() string {
	return fmt.Sprintf("%s %s", formatValue(KindFlat, m.Value), m.Stat)
}

func (m FlatStat) AffectedStat() stat.Kind { return m.Stat }

// BasicStat adds to or percent-scales one stat in a configurable pass.
type BasicStat struct {
	Value   int
	Stat    stat.Kind
	Kind    Kind
	ModPass Pass
	Target  TargetKind
}

// Apply changes the matching stat when target is of kind m.Target.
func (m BasicStat) Apply(target Target) {
	b := statsFor(target, m.Target)
	if b == nil {
		return
	}
	if s := b.GetMut(m.Stat); s != nil {
		applyValue(s, m.Kind, m.Value)
	}
}

func (m BasicStat) Pass() Pass { return m.ModPass }

func (m BasicStat) Description() string {
	return fmt.Sprintf("%s %s", formatValue(m.Kind, m.Value), m.Stat)
}

func (m BasicStat) AffectedStat() stat.Kind { return m.Stat }

// FrontStat applies the same value to several stats and is described under a
// single front label, e.g. "+50% Increased Damage" over minimum and maximum
// damage.
type FrontStat struct {
	Front   stat.Kind
	Value   int
	Stats   []stat.Kind
	Kind    Kind
	ModPass Pass
	Target  TargetKind
}

// Apply changes every listed stat present in target, in list order.
func (m FrontStat) Apply(target Target) {
	b := statsFor(target, m.Target)
	if b == nil {
		return
	}
	for _, k := range m.Stats {
		if s := b.GetMut(k); s != nil {
			applyValue(s, m.Kind, m.Value)
		}
	}
}

func (m FrontStat) Pass() Pass { return m.ModPass }

func (m FrontStat) Description() string {
	return fmt.Sprintf("%s %s", formatValue(m.Kind, m.Value), m.Front)
}

func (m FrontStat) AffectedStat() stat.Kind { return m.Front }

// CompositeStat applies a distinct value to each of several stats. Stats and
// values are index-parallel; use NewCompositeStat to build one.
type CompositeStat struct {
	stats  []stat.Kind
	values []int
	kind   Kind
	pass   Pass
	target TargetKind
}

// NewCompositeStat returns a CompositeStat pairing stats[i] with values[i].
//
// Precondition: len(stats) == len(values) and len(stats) > 0.
// Postcondition: panics if the precondition does not hold.
func NewCompositeStat(stats []stat.Kind, values []int, kind Kind, pass Pass, target TargetKind) CompositeStat {
	if len(stats) != len(values) {
		panic(fmt.Sprintf("modifier: NewCompositeStat: %d stats but %d values", len(stats), len(values)))
	}
	if len(stats) == 0 {
		panic("modifier: NewCompositeStat: no stats")
	}
	return CompositeStat{
		stats:  append([]stat.Kind(nil), stats...),
		values: append([]int(nil), values...),
		kind:   kind,
		pass:   pass,
		target: target,
	}
}

// Apply changes each listed stat present in target by its paired value.
func (m CompositeStat) Apply(target Target) {
	b := statsFor(target, m.target)
	if b == nil {
		return
	}
	for i, k := range m.stats {
		if s := b.GetMut(k); s != nil {
			applyValue(s, m.kind, m.values[i])
		}
	}
}

func (m CompositeStat) Pass() Pass { return m.pass }

func (m CompositeStat) Description() string {
	parts := make([]string, len(m.stats))
	for i, k := range m.stats {
		parts[i] = fmt.Sprintf("%s %s", formatValue(m.kind, m.values[i]), k)
	}
	return strings.Join(parts, ", ")
}

// AffectedStat returns the first listed stat.
func (m CompositeStat) AffectedStat() stat.Kind { return m.stats[0] }

// Requirement scales every requirement amount by a signed percentage. It
// always runs in the requirements pass against a requirements target.
type Requirement struct {
	Value int
}

// Apply scales every requirement in target; non-requirement targets are ignored.
func (m Requirement) Apply(target Target) {
	if target.kind != TargetRequirements || target.reqs == nil {
		return
	}
	target.reqs.Scale(m.Value)
}

func (m Requirement) Pass() Pass { return PassRequirements }

func (m Requirement) Description() string {
	dir, v := "Increased", m.Value
	if v < 0 {
		dir, v = "Reduced", -v
	}
	return fmt.Sprintf("%d%% %s %s", v, dir, stat.Requirements)
}

func (m Requirement) AffectedStat() stat.Kind { return stat.Requirements }
