package filter

import (
	"sort"
	"strconv"
	"strings"

	"github.com/KirkDiggler/charm-tracker/internal/entities"
)

// MaxSkillTerms is how many skill terms a spec carries; extra terms are dropped
const MaxSkillTerms = entities.SkillsPerCharm

// ParseArmor turns a user token into an ArmorFilter.
//
//	""  or "any"   no constraint
//	"-" or "none"  no armor slots
//	"2-1"          at least a 2 and a 1 slot
//
// Tokens that are not numeric, hold a capacity outside 1..3, or list more than
// three capacities place no constraint.
func ParseArmor(token string) ArmorFilter {
	token = strings.ToLower(strings.TrimSpace(token))
	switch token {
	case "", "any", "*":
		return AnyArmor()
	case "-", "none", "0":
		return NoArmor()
	}

	parts := strings.Split(token, "-")
	if len(parts) > entities.ArmorSlotCount {
		return AnyArmor()
	}

	pattern := make([]int, 0, len(parts))
	for _, part := range parts {
		capacity, ok := parseCapacity(part)
		if !ok {
			return AnyArmor()
		}
		pattern = append(pattern, capacity)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(pattern)))

	return ArmorAtLeast(pattern...)
}

// ParseWeapon turns a user token into a WeaponFilter: "" or "any" for no
// constraint, "-" or "none" for no weapon slot, "1".."3" for a minimum
// capacity. Anything else places no constraint.
func ParseWeapon(token string) WeaponFilter {
	token = strings.ToLower(strings.TrimSpace(token))
	switch token {
	case "", "any", "*":
		return AnyWeapon()
	case "-", "none", "0":
		return NoWeapon()
	}

	capacity, ok := parseCapacity(token)
	if !ok {
		return AnyWeapon()
	}
	return WeaponAtLeast(capacity)
}

func parseCapacity(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > entities.MaxSlotCapacity {
		return 0, false
	}
	return n, true
}

// NewSpec sanitizes raw UI input into a Spec. Blank terms are dropped and at
// most MaxSkillTerms are kept.
func NewSpec(terms []string, armor, weapon string, slotsEnabled bool) Spec {
	skillTerms := make([]string, 0, MaxSkillTerms)
	for _, term := range terms {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		if len(skillTerms) == MaxSkillTerms {
			break
		}
		skillTerms = append(skillTerms, term)
	}

	return Spec{
		SkillTerms:   skillTerms,
		Armor:        ParseArmor(armor),
		Weapon:       ParseWeapon(weapon),
		SlotsEnabled: slotsEnabled,
	}
}
