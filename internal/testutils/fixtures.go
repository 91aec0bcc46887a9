package testutils

import (
	"github.com/KirkDiggler/charm-tracker/internal/entities"
)

// Skill names used across fixtures
const (
	SkillAttack          = "Attack"
	SkillCriticalEye     = "Critical Eye"
	SkillGuard           = "Guard"
	SkillWeaknessExploit = "Weakness Exploit"
)

// CreateTestCharm returns the reference charm: Attack 3, armor slots 1-1,
// one weapon slot of capacity 1
func CreateTestCharm(id int64) entities.Charm {
	return entities.Charm{
		ID: id,
		Skills: entities.Skills{
			{Name: SkillAttack, Level: 3},
		},
		Slots: entities.Slots{1, 1, 0, 1, 0, 0},
	}
}

// CreateTestInventory returns a small inventory in creation order with ids
// starting at firstID
func CreateTestInventory(firstID int64) []entities.Charm {
	return []entities.Charm{
		CreateTestCharm(firstID),
		{
			ID: firstID + 1,
			Skills: entities.Skills{
				{Name: SkillAttack, Level: 1},
				{Name: SkillGuard, Level: 2},
			},
			Slots: entities.Slots{3, 0, 0, 0, 0, 0},
		},
		{
			ID: firstID + 2,
			Skills: entities.Skills{
				{Name: SkillCriticalEye, Level: 2},
				{Name: SkillWeaknessExploit, Level: 1},
			},
			Slots: entities.Slots{2, 2, 1, 2, 0, 0},
		},
		{
			ID: firstID + 3,
			Skills: entities.Skills{
				{Name: SkillGuard, Level: 1},
			},
		},
	}
}
