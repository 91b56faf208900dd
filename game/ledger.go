package game

import (
	"errors"

	"gorm.io/gorm"

	"warlands/config"
	"warlands/models"
)

// Ledger owns all economy tables. Every exported operation runs as a single
// database transaction, so a failed check rolls back the whole operation.
type Ledger struct {
	db       *gorm.DB
	tuning   config.Tuning
	contract string
}

func NewLedger(db *gorm.DB, tuning config.Tuning, contractAddress string) *Ledger {
	return &Ledger{db: db, tuning: tuning, contract: contractAddress}
}

// requireAdmin gates operations reserved for the contract's own authority.
func (l *Ledger) requireAdmin(caller string) error {
	if caller != l.contract {
		return authorizationError("error.auth.admin_required")
	}
	return nil
}

// requireSelf gates operations a player may only perform on itself.
func (l *Ledger) requireSelf(caller, subject string) error {
	if caller != subject {
		return authorizationError("error.auth.self_required")
	}
	return nil
}

func isForgeMember(tx *gorm.DB, address string) (bool, error) {
	var count int64
	err := tx.Model(&models.ForgeMember{}).Where("address = ?", address).Count(&count).Error
	return count > 0, err
}

func landCount(tx *gorm.DB, ownerAddress string) (int64, error) {
	var count int64
	err := tx.Model(&models.Land{}).Where("owner_address = ?", ownerAddress).Count(&count).Error
	return count, err
}

// findOwner returns nil without error when the owner does not exist.
func findOwner(tx *gorm.DB, address string) (*models.Owner, error) {
	var owner models.Owner
	err := tx.First(&owner, "address = ?", address).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &owner, nil
}

// findPlayer returns nil without error when the player does not exist.
func findPlayer(tx *gorm.DB, address string) (*models.Player, error) {
	var player models.Player
	err := tx.First(&player, "address = ?", address).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &player, nil
}
