// Package filter selects charms matching skill and slot constraints.
//
// Slot constraints are capacity tests, not equality: a slot of capacity 3 can
// hold anything a capacity 1 slot can, so a charm with armor 3-1 satisfies a
// 2-1 request. Armor capacities are compared position by position after both
// sides are sorted descending.
package filter

import (
	"github.com/KirkDiggler/charm-tracker/internal/entities"
)

// Filter returns the charms that satisfy spec, in their original order.
// An inert spec returns charms unchanged.
func Filter(charms []entities.Charm, spec Spec) []entities.Charm {
	if spec.IsInert() {
		return charms
	}

	out := make([]entities.Charm, 0, len(charms))
	for _, charm := range charms {
		if Matches(charm, spec) {
			out = append(out, charm)
		}
	}
	return out
}

// Matches reports whether a single charm satisfies spec
func Matches(charm entities.Charm, spec Spec) bool {
	if !matchSkills(charm, spec.SkillTerms) {
		return false
	}
	if !spec.SlotsEnabled {
		return true
	}
	return matchArmor(charm.Slots.ArmorPattern(), spec.Armor) &&
		matchWeapon(charm.Slots.WeaponCapacity(), spec.Weapon)
}

// matchSkills requires every non-empty term. An empty term would otherwise
// match any unset skill position.
func matchSkills(charm entities.Charm, terms []string) bool {
	for _, term := range terms {
		if term == "" {
			continue
		}
		if !charm.HasSkill(term) {
			return false
		}
	}
	return true
}

func matchArmor(pattern []int, f ArmorFilter) bool {
	switch f.Mode {
	case ModeNone:
		return len(pattern) == 0
	case ModeAtLeast:
		return meetsOrExceeds(pattern, f.Pattern)
	default:
		return true
	}
}

// meetsOrExceeds compares two descending patterns position by position.
// Charm positions past its length count as 0; positions past the requirement
// are ignored.
func meetsOrExceeds(have, want []int) bool {
	for i, required := range want {
		capacity := 0
		if i < len(have) {
			capacity = have[i]
		}
		if capacity < required {
			return false
		}
	}
	return true
}

func matchWeapon(capacity int, f WeaponFilter) bool {
	switch f.Mode {
	case ModeNone:
		return capacity == 0
	case ModeAtLeast:
		return capacity >= f.Capacity
	default:
		return true
	}
}
