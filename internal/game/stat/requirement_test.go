package stat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/arpg/internal/game/stat"
)

func TestRequirement_IsMet(t *testing.T) {
	dex := stat.New(stat.Dexterity, 13)

	assert.True(t, stat.Requirement{Kind: stat.Dexterity, Amount: 12}.IsMet(dex))
	assert.True(t, stat.Requirement{Kind: stat.Dexterity, Amount: 13}.IsMet(dex))
	assert.False(t, stat.Requirement{Kind: stat.Dexterity, Amount: 15}.IsMet(dex))
}

func TestRequirement_IsMet_KindMismatch(t *testing.T) {
	r := stat.Requirement{Kind: stat.Strength, Amount: 1}
	assert.False(t, r.IsMet(stat.New(stat.Dexterity, 100)))
}

func TestRequirementBlock_AllowsDuplicateKinds(t *testing.T) {
	var b stat.RequirementBlock
	b.Add(stat.Requirement{Kind: stat.Level, Amount: 10})
	b.Add(stat.Requirement{Kind: stat.Level, Amount: 20})
	assert.Equal(t, 2, b.Len())

	r, ok := b.Get(stat.Level)
	require.True(t, ok)
	assert.Equal(t, 10, r.Amount)
}

func TestRequirementBlock_Get_Missing(t *testing.T) {
	b := stat.NewRequirementBlock(stat.Requirement{Kind: stat.Level, Amount: 43})
	_, ok := b.Get(stat.Strength)
	assert.False(t, ok)
}

func TestRequirementBlock_Scale(t *testing.T) {
	b := stat.NewRequirementBlock(
		stat.Requirement{Kind: stat.Strength, Amount: 1000},
		stat.Requirement{Kind: stat.Level, Amount: 68},
	)
	b.Scale(-98)
	assert.Equal(t, []stat.Requirement{
		{Kind: stat.Strength, Amount: 20},
		{Kind: stat.Level, Amount: 1},
	}, b.Requirements())
}

func TestRequirementBlock_Clone_IsIndependent(t *testing.T) {
	orig := stat.NewRequirementBlock(stat.Requirement{Kind: stat.Level, Amount: 68})
	clone := orig.Clone()
	clone.Scale(-30)

	r, _ := orig.Get(stat.Level)
	assert.Equal(t, 68, r.Amount)
	r, _ = clone.Get(stat.Level)
	assert.Equal(t, 47, r.Amount)
}
