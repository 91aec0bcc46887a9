package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/charm-tracker/internal/entities"
	"github.com/KirkDiggler/charm-tracker/internal/errors"
)

// parseSkillFlags reads "Name:Level" values into skill positions in order.
// A value without a level gets level 1.
func parseSkillFlags(values []string) (entities.Skills, error) {
	var skills entities.Skills

	if len(values) > entities.SkillsPerCharm {
		return skills, errors.InvalidArgumentf("a charm has at most %d skills, got %d", entities.SkillsPerCharm, len(values))
	}

	vb := errors.NewValidationBuilder()
	for i, value := range values {
		name, levelText, hasLevel := strings.Cut(value, ":")
		name = strings.TrimSpace(name)
		level := 1
		if hasLevel {
			n, err := strconv.Atoi(strings.TrimSpace(levelText))
			if err != nil {
				vb.Fieldf(fmt.Sprintf("skill[%d]", i), "invalid level %q", levelText)
				continue
			}
			level = n
		}
		if name == "" {
			vb.Field(fmt.Sprintf("skill[%d]", i), "name is required")
			continue
		}
		skills[i] = entities.Skill{Name: name, Level: level}
	}

	return skills, vb.Build()
}

// parseArmorSlots reads a pattern such as "2-1" or "3-1-1". "" and "-" mean
// no armor slots. Unlike filter tokens, malformed input is an error here.
func parseArmorSlots(token string) ([]int, error) {
	token = strings.TrimSpace(token)
	if token == "" || token == "-" || token == "none" {
		return nil, nil
	}

	parts := strings.Split(token, "-")
	if len(parts) > entities.ArmorSlotCount {
		return nil, errors.InvalidArgumentf("armor %q has more than %d slots", token, entities.ArmorSlotCount)
	}

	capacities := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 || n > entities.MaxSlotCapacity {
			return nil, errors.InvalidArgumentf("armor %q: slot sizes must be 0-%d", token, entities.MaxSlotCapacity)
		}
		capacities = append(capacities, n)
	}
	return capacities, nil
}

// validateWeaponSlot checks a weapon capacity given on the command line
func validateWeaponSlot(capacity int) error {
	if capacity < 0 || capacity > entities.MaxSlotCapacity {
		return errors.InvalidArgumentf("weapon slot must be 0-%d, got %d", entities.MaxSlotCapacity, capacity)
	}
	return nil
}

// parseID reads a charm id argument
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil {
		return 0, errors.InvalidArgumentf("invalid charm id %q", arg)
	}
	return id, nil
}

// describeSkills renders the named skills, or "-" when there are none
func describeSkills(skills entities.Skills) string {
	if d := skills.Describe(); d != "" {
		return d
	}
	return "-"
}

// describeCharm renders a one-line summary
func describeCharm(c entities.Charm) string {
	return fmt.Sprintf("#%d %s [armor %s, weapon %s]",
		c.ID,
		describeSkills(c.Skills),
		entities.FormatArmorPattern(c.Slots.ArmorPattern()),
		entities.FormatWeaponCapacity(c.Slots.WeaponCapacity()))
}
