package filter

// Mode says how a slot filter constrains a charm
type Mode int

const (
	// ModeAny applies no constraint
	ModeAny Mode = iota
	// ModeNone requires the charm to have no slot of the category
	ModeNone
	// ModeAtLeast requires capacities that meet or exceed the filter
	ModeAtLeast
)

// ArmorFilter constrains armor slots. Pattern is only read in ModeAtLeast and
// is sorted descending with at most three positive capacities.
type ArmorFilter struct {
	Mode    Mode
	Pattern []int
}

// WeaponFilter constrains the weapon slot. Capacity is only read in ModeAtLeast.
type WeaponFilter struct {
	Mode     Mode
	Capacity int
}

// AnyArmor places no constraint on armor slots
func AnyArmor() ArmorFilter { return ArmorFilter{Mode: ModeAny} }

// NoArmor requires a charm without armor slots
func NoArmor() ArmorFilter { return ArmorFilter{Mode: ModeNone} }

// ArmorAtLeast requires the charm's armor slots to dominate pattern. The caller
// passes a pattern already sorted descending; ParseArmor produces one.
func ArmorAtLeast(pattern ...int) ArmorFilter {
	return ArmorFilter{Mode: ModeAtLeast, Pattern: pattern}
}

// AnyWeapon places no constraint on the weapon slot
func AnyWeapon() WeaponFilter { return WeaponFilter{Mode: ModeAny} }

// NoWeapon requires a charm without a weapon slot
func NoWeapon() WeaponFilter { return WeaponFilter{Mode: ModeNone} }

// WeaponAtLeast requires a weapon slot of at least capacity
func WeaponAtLeast(capacity int) WeaponFilter {
	return WeaponFilter{Mode: ModeAtLeast, Capacity: capacity}
}

// Spec is a resolved filter request
type Spec struct {
	// SkillTerms must each name one of the charm's skills (AND, case-sensitive)
	SkillTerms []string

	Armor  ArmorFilter
	Weapon WeaponFilter

	// SlotsEnabled turns the armor and weapon checks on
	SlotsEnabled bool
}

// IsInert reports whether the spec filters nothing out
func (s Spec) IsInert() bool {
	if len(s.SkillTerms) > 0 {
		return false
	}
	return !s.SlotsEnabled || (s.Armor.Mode == ModeAny && s.Weapon.Mode == ModeAny)
}
