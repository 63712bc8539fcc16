package testutils

import (
	"time"

	"github.com/KirkDiggler/tamagotchi-api/internal/entities/tamagotchi"
)

// Fixture defaults
const (
	TestUserID       = "1001"
	TestCreatureName = "Rex"
)

// TestNow is the fixed instant fixtures are created at
var TestNow = time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC)

// CreateTestCreature returns a freshly hatched boy with default stats
func CreateTestCreature(userID string) *tamagotchi.Creature {
	c := &tamagotchi.Creature{
		UserID:      userID,
		Name:        TestCreatureName,
		Gender:      tamagotchi.GenderBoy,
		CreatedAt:   TestNow,
		LastDriftAt: TestNow,
		Genes: tamagotchi.Genes{
			Eyes:   tamagotchi.GeneCatalog[tamagotchi.TraitEyes][1],
			Hair:   tamagotchi.GeneCatalog[tamagotchi.TraitHair][0],
			Talent: tamagotchi.GeneCatalog[tamagotchi.TraitTalent][1],
		},
	}
	c.ApplyDefaults()
	return c
}
