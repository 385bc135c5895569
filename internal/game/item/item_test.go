package item_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/arpg/internal/game/item"
	"github.com/cory-johannsen/arpg/internal/game/modifier"
	"github.com/cory-johannsen/arpg/internal/game/stat"
)

func increasedDamage(v int, target modifier.TargetKind) modifier.FrontStat {
	return modifier.FrontStat{
		Front:   stat.IncreasedDamage,
		Value:   v,
		Stats:   []stat.Kind{stat.MinimumDamage, stat.MaximumDamage},
		Kind:    modifier.KindPercent,
		ModPass: modifier.PassIncreased,
		Target:  target,
	}
}

func excalibur(t *testing.T) *item.Item {
	t.Helper()
	it, err := item.NewBuilder().
		Base("Short Sword").
		Name("Excalibur").
		Rarity(item.RarityMagic).
		Class(item.WeaponClass(item.Sword)).
		WithRequirement(stat.Strength, 1000).
		WithStat(stat.MinimumDamage, 3).
		WithStat(stat.MaximumDamage, 5).
		// Increased modifier listed first: the flat pass must still run before it.
		WithModifier(increasedDamage(50, modifier.TargetItem)).
		WithModifier(modifier.FlatStat{Value: 5, Stat: stat.MinimumDamage, Target: modifier.TargetItem}).
		WithModifier(modifier.FlatStat{Value: 10, Stat: stat.MaximumDamage, Target: modifier.TargetItem}).
		WithModifier(modifier.Requirement{Value: -98}).
		Build()
	require.NoError(t, err)
	return it
}

func statValue(t *testing.T, b stat.Block, k stat.Kind) int {
	t.Helper()
	s, ok := b.Get(k)
	require.True(t, ok, "stat %v missing", k)
	return s.Value
}

func TestDerivedStats_FlatPassBeforeIncreased(t *testing.T) {
	it := excalibur(t)
	derived := it.DerivedStats()

	// (3+5)*1.5 = 12, (5+10)*1.5 = 22.5 -> 22
	assert.Equal(t, 12, statValue(t, derived, stat.MinimumDamage))
	assert.Equal(t, 22, statValue(t, derived, stat.MaximumDamage))
}

func TestDerivedStats_DoesNotMutateBase(t *testing.T) {
	it := excalibur(t)
	_ = it.DerivedStats()
	_ = it.DerivedStats()

	assert.Equal(t, 3, statValue(t, it.BaseStats, stat.MinimumDamage))
	assert.Equal(t, 5, statValue(t, it.BaseStats, stat.MaximumDamage))
	assert.Equal(t, it.DerivedStats().Stats(), it.DerivedStats().Stats())
}

func TestDerivedStats_IgnoresCharacterTargetedModifiers(t *testing.T) {
	it, err := item.NewBuilder().
		Base("Claymore").
		WithStat(stat.MinimumDamage, 9).
		WithStat(stat.MaximumDamage, 17).
		WithModifier(increasedDamage(10, modifier.TargetCharacter)).
		WithModifier(modifier.FlatStat{Value: 5, Stat: stat.MinimumDamage, Target: modifier.TargetCharacter}).
		Build()
	require.NoError(t, err)

	derived := it.DerivedStats()
	assert.Equal(t, 9, statValue(t, derived, stat.MinimumDamage))
	assert.Equal(t, 17, statValue(t, derived, stat.MaximumDamage))
}

func TestDerivedStats_PercentCompoundsWithTruncation(t *testing.T) {
	it, err := item.NewBuilder().
		Base("Ring").
		WithStat(stat.Life, 7).
		WithModifier(modifier.BasicStat{Value: 50, Stat: stat.Life, Kind: modifier.KindPercent, ModPass: modifier.PassIncreased, Target: modifier.TargetItem}).
		WithModifier(modifier.BasicStat{Value: 50, Stat: stat.Life, Kind: modifier.KindPercent, ModPass: modifier.PassIncreased, Target: modifier.TargetItem}).
		Build()
	require.NoError(t, err)

	// 7*1.5 = 10.5 -> 10, 10*1.5 = 15
	assert.Equal(t, 15, statValue(t, it.DerivedStats(), stat.Life))
}

func TestDerivedStats_SkipsRequirementModifiers(t *testing.T) {
	it, err := item.NewBuilder().
		Base("Leather Belt").
		WithStat(stat.Life, 40).
		WithRequirement(stat.Level, 68).
		WithModifier(modifier.Requirement{Value: -30}).
		Build()
	require.NoError(t, err)

	assert.Equal(t, 40, statValue(t, it.DerivedStats(), stat.Life))
}

func TestDerivedRequirements_ScalesAmounts(t *testing.T) {
	it := excalibur(t)
	reqs := it.DerivedRequirements()

	r, ok := reqs.Get(stat.Strength)
	require.True(t, ok)
	assert.Equal(t, 20, r.Amount)

	base, _ := it.Requirements.Get(stat.Strength)
	assert.Equal(t, 1000, base.Amount)
}

func TestDerivedRequirements_CompoundsInOrder(t *testing.T) {
	it, err := item.NewBuilder().
		Base("Shako").
		WithRequirement(stat.Level, 43).
		WithModifier(modifier.Requirement{Value: -50}).
		WithModifier(modifier.Requirement{Value: 50}).
		Build()
	require.NoError(t, err)

	// 43*0.5 = 21.5 -> 21, 21*1.5 = 31.5 -> 31
	r, _ := it.DerivedRequirements().Get(stat.Level)
	assert.Equal(t, 31, r.Amount)
}

func TestDerivedRequirements_NoModifiers(t *testing.T) {
	it, err := item.NewBuilder().Base("Hand Axe").WithRequirement(stat.Strength, 15).Build()
	require.NoError(t, err)
	assert.Equal(t, it.Requirements.Requirements(), it.DerivedRequirements().Requirements())
}

func TestItem_EqualByID(t *testing.T) {
	a := excalibur(t)
	b := excalibur(t)
	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(nil))
}

func TestItem_DisplayName(t *testing.T) {
	named := excalibur(t)
	assert.Equal(t, "Excalibur", named.DisplayName())

	plain, err := item.NewBuilder().Base("Hand Axe").Build()
	require.NoError(t, err)
	assert.Equal(t, "Hand Axe", plain.DisplayName())
}

// Property: flat modifiers on the item are fully applied before any percent
// modifier regardless of where they appear in the list.
func TestPropertyDerivedStats_FlatThenPercent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		base := rapid.IntRange(0, 1000).Draw(rt, "base")
		flat := rapid.IntRange(0, 100).Draw(rt, "flat")
		pct := rapid.IntRange(-100, 300).Draw(rt, "pct")
		percentFirst := rapid.Bool().Draw(rt, "percentFirst")

		flatMod := modifier.FlatStat{Value: flat, Stat: stat.Defense, Target: modifier.TargetItem}
		pctMod := modifier.BasicStat{Value: pct, Stat: stat.Defense, Kind: modifier.KindPercent, ModPass: modifier.PassIncreased, Target: modifier.TargetItem}

		b := item.NewBuilder().Base("Shield").WithStat(stat.Defense, base)
		if percentFirst {
			b.WithModifier(pctMod).WithModifier(flatMod)
		} else {
			b.WithModifier(flatMod).WithModifier(pctMod)
		}
		it, err := b.Build()
		if err != nil {
			rt.Fatal(err)
		}

		want := stat.NewBlock(stat.New(stat.Defense, base))
		flatMod.Apply(modifier.ItemTarget(&want))
		pctMod.Apply(modifier.ItemTarget(&want))

		got, _ := it.DerivedStats().Get(stat.Defense)
		exp, _ := want.Get(stat.Defense)
		if got.Value != exp.Value {
			rt.Fatalf("derived %d, want %d", got.Value, exp.Value)
		}
	})
}
