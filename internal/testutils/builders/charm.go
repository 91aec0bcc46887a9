// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/charm-tracker/internal/entities"
)

// CharmBuilder provides a fluent interface for building test Charm instances
type CharmBuilder struct {
	charm     entities.Charm
	nextSkill int
}

// NewCharmBuilder creates a builder for a charm with no skills and no slots
func NewCharmBuilder() *CharmBuilder {
	return &CharmBuilder{
		charm: entities.Charm{ID: 1},
	}
}

// WithID sets the charm ID
func (b *CharmBuilder) WithID(id int64) *CharmBuilder {
	b.charm.ID = id
	return b
}

// WithSkill fills the next free skill position; extra skills are ignored
func (b *CharmBuilder) WithSkill(name string, level int) *CharmBuilder {
	if b.nextSkill >= entities.SkillsPerCharm {
		return b
	}
	b.charm.Skills[b.nextSkill] = entities.Skill{Name: name, Level: level}
	b.nextSkill++
	return b
}

// WithArmorSlots sets the armor capacities in order
func (b *CharmBuilder) WithArmorSlots(capacities ...int) *CharmBuilder {
	for i := 0; i < entities.ArmorSlotCount; i++ {
		b.charm.Slots[i] = 0
		if i < len(capacities) {
			b.charm.Slots[i] = capacities[i]
		}
	}
	return b
}

// WithWeaponSlot sets the weapon capacity
func (b *CharmBuilder) WithWeaponSlot(capacity int) *CharmBuilder {
	b.charm.Slots[entities.WeaponSlotIndex] = capacity
	return b
}

// WithSlots replaces the whole slot layout
func (b *CharmBuilder) WithSlots(slots entities.Slots) *CharmBuilder {
	b.charm.Slots = slots
	return b
}

// Build returns the charm
func (b *CharmBuilder) Build() entities.Charm {
	return b.charm
}
