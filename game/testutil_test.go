package game

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"warlands/config"
	"warlands/models"
	"warlands/models/request"
)

const testContract = "warlands"

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	// a single connection keeps the in-memory database alive
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.Owner{}, &models.Land{},
		&models.Player{}, &models.ForgeMember{},
		&models.SupportRecord{}, &models.Supporter{},
		&models.Mission{}, &models.Contribution{},
		&models.Chest{}, &models.Payout{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return NewLedger(db, config.DefaultTuning(), testContract)
}

func seedOwner(t *testing.T, l *Ledger, address string, landIDs []uint64, stats models.Stats) {
	t.Helper()
	err := l.AddOwner(testContract, request.NewOwner{
		Address:      address,
		LandIDs:      landIDs,
		Defense:      stats.Defense,
		DefenseArmed: stats.DefenseArmed,
		Attack:       stats.Attack,
		AttackArmed:  stats.AttackArmed,
		MoveCost:     stats.MoveCost,
	})
	if err != nil {
		t.Fatalf("seed owner %s: %v", address, err)
	}
}

func seedPlayer(t *testing.T, l *Ledger, address string, stats models.Stats) {
	t.Helper()
	err := l.AddPlayer(testContract, request.NewPlayer{
		Address:      address,
		Defense:      stats.Defense,
		DefenseArmed: stats.DefenseArmed,
		Attack:       stats.Attack,
		AttackArmed:  stats.AttackArmed,
		MoveCost:     stats.MoveCost,
	})
	if err != nil {
		t.Fatalf("seed player %s: %v", address, err)
	}
}

func assignSupport(t *testing.T, l *Ledger, player, owner string) {
	t.Helper()
	err := l.AssignSupport(player, request.AddSupportRequest{
		PlayerAddress: player,
		OwnerAddress:  owner,
	})
	if err != nil {
		t.Fatalf("assign %s -> %s: %v", player, owner, err)
	}
}

func seedMission(t *testing.T, l *Ledger, name string, target, reward uint64, now time.Time) {
	t.Helper()
	err := l.AddMission(testContract, request.AddMissionRequest{
		Name:               name,
		TargetAttackPoints: target,
		RewardAmount:       reward,
		RewardDenom:        "TLM",
	}, now)
	if err != nil {
		t.Fatalf("seed mission %s: %v", name, err)
	}
}

func supportRecord(t *testing.T, l *Ledger, owner string) models.SupportRecord {
	t.Helper()
	var record models.SupportRecord
	if err := l.db.First(&record, "owner_address = ?", owner).Error; err != nil {
		t.Fatalf("support record %s: %v", owner, err)
	}
	return record
}

func mission(t *testing.T, l *Ledger, name string) models.Mission {
	t.Helper()
	var m models.Mission
	if err := l.db.First(&m, "name = ?", name).Error; err != nil {
		t.Fatalf("mission %s: %v", name, err)
	}
	return m
}
