package migrations

import (
	"os"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"warlands/models"
)

// Seed creates a small demo economy for local development. Enabled with
// SEED_DEMO=1; production hosts register entities through the ledger.
func Seed(db *gorm.DB) {
	if os.Getenv("SEED_DEMO") != "1" {
		return
	}

	// silent mode
	db.Logger = logger.Default.LogMode(logger.Silent)

	owner := models.Owner{
		Address: "demolord",
		Stats:   models.Stats{Defense: 120, DefenseArmed: 180, Attack: 90, AttackArmed: 140, MoveCost: 300},
	}
	db.FirstOrCreate(&owner, models.Owner{Address: owner.Address})
	db.FirstOrCreate(&models.Land{}, models.Land{LandID: 1001, OwnerAddress: owner.Address})
	db.FirstOrCreate(&models.Land{}, models.Land{LandID: 1002, OwnerAddress: owner.Address})

	player := models.Player{
		Address: "demoscout",
		Stats:   models.Stats{Defense: 40, DefenseArmed: 60, Attack: 25, AttackArmed: 45, MoveCost: 100},
	}
	db.FirstOrCreate(&player, models.Player{Address: player.Address})

	mission := models.Mission{
		Name:               "outpost-raid",
		TargetAttackPoints: 500,
		RewardAmount:       10000,
		RewardDenom:        "TLM",
		LastHardeningTime:  time.Now().Unix(),
	}
	db.FirstOrCreate(&mission, models.Mission{Name: mission.Name})

	// disable silent mode
	db.Logger = logger.Default.LogMode(logger.Info)
}
