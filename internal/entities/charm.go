package entities

import (
	"sort"
	"strconv"
	"strings"
)

// Charm layout
const (
	SkillsPerCharm  = 3
	SlotCount       = 6
	ArmorSlotCount  = 3
	WeaponSlotIndex = 3

	// MaxSlotCapacity is the largest socket size a slot can hold
	MaxSlotCapacity = 3
)

// Skill is one named bonus on a charm. An empty Name means the position is unset
// and its Level is 0.
type Skill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// IsSet reports whether the skill position holds a named skill
func (s Skill) IsSet() bool {
	return s.Name != ""
}

// Skills is the fixed three-position skill list of a charm
type Skills [SkillsPerCharm]Skill

// Normalize resets unnamed positions to the zero Skill
func (s Skills) Normalize() Skills {
	for i := range s {
		if !s[i].IsSet() {
			s[i] = Skill{}
		}
	}
	return s
}

// HasNamed reports whether at least one position holds a named skill
func (s Skills) HasNamed() bool {
	for _, skill := range s {
		if skill.IsSet() {
			return true
		}
	}
	return false
}

// Describe renders the named skills as "Attack 3, Guard 1", or "" when
// no position is named
func (s Skills) Describe() string {
	parts := make([]string, 0, len(s))
	for _, skill := range s {
		if skill.IsSet() {
			parts = append(parts, skill.Name+" "+strconv.Itoa(skill.Level))
		}
	}
	return strings.Join(parts, ", ")
}

// Slots holds socket capacities.
// Positions 0-2 are armor capacities (order not meaningful), 3 is the weapon
// capacity, and 4-5 are reserved. Reserved positions round-trip but nothing
// reads them.
type Slots [SlotCount]int

// ArmorPattern returns the nonzero armor capacities sorted descending
func (s Slots) ArmorPattern() []int {
	pattern := make([]int, 0, ArmorSlotCount)
	for _, capacity := range s[:ArmorSlotCount] {
		if capacity > 0 {
			pattern = append(pattern, capacity)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(pattern)))
	return pattern
}

// WeaponCapacity returns the weapon slot capacity, 0 when there is none
func (s Slots) WeaponCapacity() int {
	return s[WeaponSlotIndex]
}

// NewSlots builds a slot layout from armor capacities (at most three are used)
// and a weapon capacity.
func NewSlots(armor []int, weapon int) Slots {
	var slots Slots
	for i := 0; i < len(armor) && i < ArmorSlotCount; i++ {
		slots[i] = armor[i]
	}
	slots[WeaponSlotIndex] = weapon
	return slots
}

// Charm is one equippable item in the inventory
type Charm struct {
	ID     int64  `json:"id"`
	Skills Skills `json:"skills"`
	Slots  Slots  `json:"slots"`
}

// HasSkill reports whether any skill position is named exactly name
func (c Charm) HasSkill(name string) bool {
	for _, skill := range c.Skills {
		if skill.Name == name {
			return true
		}
	}
	return false
}

// FormatArmorPattern renders a pattern as "2-1-1", or "-" when empty
func FormatArmorPattern(pattern []int) string {
	if len(pattern) == 0 {
		return "-"
	}
	parts := make([]string, len(pattern))
	for i, capacity := range pattern {
		parts[i] = strconv.Itoa(capacity)
	}
	return strings.Join(parts, "-")
}

// FormatWeaponCapacity renders a weapon capacity, or "-" when there is none
func FormatWeaponCapacity(capacity int) string {
	if capacity <= 0 {
		return "-"
	}
	return strconv.Itoa(capacity)
}
