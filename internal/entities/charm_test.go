package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/charm-tracker/internal/entities"
)

func TestSlotsArmorPattern(t *testing.T) {
	testCases := []struct {
		name     string
		slots    entities.Slots
		expected []int
	}{
		{name: "no armor slots", slots: entities.Slots{0, 0, 0, 1, 0, 0}, expected: []int{}},
		{name: "drops zeros", slots: entities.Slots{1, 0, 1, 0, 0, 0}, expected: []int{1, 1}},
		{name: "sorts descending", slots: entities.Slots{1, 3, 2, 0, 0, 0}, expected: []int{3, 2, 1}},
		{name: "ignores weapon and reserved", slots: entities.Slots{2, 0, 0, 3, 3, 3}, expected: []int{2}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.slots.ArmorPattern())
		})
	}
}

func TestNewSlots(t *testing.T) {
	assert.Equal(t, entities.Slots{2, 1, 0, 1, 0, 0}, entities.NewSlots([]int{2, 1}, 1))
	assert.Equal(t, entities.Slots{1, 1, 1, 0, 0, 0}, entities.NewSlots([]int{1, 1, 1, 1}, 0))
	assert.Equal(t, 1, entities.NewSlots(nil, 1).WeaponCapacity())
}

func TestSkillsNormalize(t *testing.T) {
	skills := entities.Skills{{Name: "Attack", Level: 3}, {Name: "", Level: 2}, {}}

	normalized := skills.Normalize()
	assert.Equal(t, entities.Skill{Name: "Attack", Level: 3}, normalized[0])
	assert.Equal(t, entities.Skill{}, normalized[1])
	assert.True(t, normalized.HasNamed())
	assert.False(t, entities.Skills{}.HasNamed())
}

func TestCharmHasSkill(t *testing.T) {
	charm := entities.Charm{Skills: entities.Skills{{Name: "Attack", Level: 3}}}

	assert.True(t, charm.HasSkill("Attack"))
	assert.False(t, charm.HasSkill("attack"))
	assert.False(t, charm.HasSkill("Guard"))
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "-", entities.FormatArmorPattern(nil))
	assert.Equal(t, "2-1-1", entities.FormatArmorPattern([]int{2, 1, 1}))
	assert.Equal(t, "-", entities.FormatWeaponCapacity(0))
	assert.Equal(t, "1", entities.FormatWeaponCapacity(1))
}

func TestSkillsDescribe(t *testing.T) {
	assert.Equal(t, "", entities.Skills{}.Describe())
	assert.Equal(t, "Attack 3, Guard 1", entities.Skills{
		{Name: "Attack", Level: 3},
		{},
		{Name: "Guard", Level: 1},
	}.Describe())
}
