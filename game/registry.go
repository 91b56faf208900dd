package game

import (
	"errors"

	"gorm.io/gorm"

	"warlands/models"
	"warlands/models/request"
)

func applyStatsPatch(stats *models.Stats, patch request.StatsPatch) {
	if patch.Defense != nil {
		stats.Defense = *patch.Defense
	}
	if patch.DefenseArmed != nil {
		stats.DefenseArmed = *patch.DefenseArmed
	}
	if patch.Attack != nil {
		stats.Attack = *patch.Attack
	}
	if patch.AttackArmed != nil {
		stats.AttackArmed = *patch.AttackArmed
	}
	if patch.MoveCost != nil {
		stats.MoveCost = *patch.MoveCost
	}
}

// AddOwners registers a batch of owners with their starting lands. The batch
// is all-or-nothing: one duplicate aborts every creation.
func (l *Ledger) AddOwners(caller string, req request.AddOwnersRequest) error {
	if err := l.requireAdmin(caller); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return validationError(err.Error())
	}

	return l.db.Transaction(func(tx *gorm.DB) error {
		for _, o := range req.Owners {
			existing, err := findOwner(tx, o.Address)
			if err != nil {
				return err
			}
			if existing != nil {
				return duplicateError("error.owner.exists")
			}

			owner := models.Owner{
				Address: o.Address,
				Stats: models.Stats{
					Defense:      o.Defense,
					DefenseArmed: o.DefenseArmed,
					Attack:       o.Attack,
					AttackArmed:  o.AttackArmed,
					MoveCost:     o.MoveCost,
				},
			}
			if err := tx.Create(&owner).Error; err != nil {
				return err
			}
			for _, landID := range o.LandIDs {
				var count int64
				if err := tx.Model(&models.Land{}).
					Where("land_id = ?", landID).Count(&count).Error; err != nil {
					return err
				}
				if count > 0 {
					return duplicateError("error.land.exists")
				}
				if err := tx.Create(&models.Land{LandID: landID, OwnerAddress: o.Address}).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func (l *Ledger) AddOwner(caller string, owner request.NewOwner) error {
	return l.AddOwners(caller, request.AddOwnersRequest{Owners: []request.NewOwner{owner}})
}

func (l *Ledger) ModifyOwner(caller string, req request.ModifyOwnerRequest) error {
	if err := l.requireAdmin(caller); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return validationError(err.Error())
	}

	return l.db.Transaction(func(tx *gorm.DB) error {
		owner, err := findOwner(tx, req.Address)
		if err != nil {
			return err
		}
		if owner == nil {
			return notFoundError("error.owner.not_found")
		}
		applyStatsPatch(&owner.Stats, req.Patch)
		if err := tx.Save(owner).Error; err != nil {
			return err
		}
		return l.recompute(tx, req.Address)
	})
}

// removeOwner cascades the owner's lands, chests, support record and
// supporter rows. Must run inside a transaction.
func removeOwner(tx *gorm.DB, address string) error {
	var lands []models.Land
	if err := tx.Where("owner_address = ?", address).Find(&lands).Error; err != nil {
		return err
	}
	for _, land := range lands {
		if err := tx.Where("land_id = ?", land.LandID).Delete(&models.Chest{}).Error; err != nil {
			return err
		}
	}
	if err := tx.Where("owner_address = ?", address).Delete(&models.Land{}).Error; err != nil {
		return err
	}
	if err := tx.Where("owner_address = ?", address).Delete(&models.Supporter{}).Error; err != nil {
		return err
	}
	if err := tx.Where("owner_address = ?", address).Delete(&models.SupportRecord{}).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Owner{Address: address}).Error
}

func (l *Ledger) RemoveOwner(caller string, req request.RemoveOwnerRequest) error {
	if err := l.requireAdmin(caller); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return validationError(err.Error())
	}

	return l.db.Transaction(func(tx *gorm.DB) error {
		owner, err := findOwner(tx, req.Address)
		if err != nil {
			return err
		}
		if owner == nil {
			return notFoundError("error.owner.not_found")
		}
		return removeOwner(tx, req.Address)
	})
}

// RemoveLand detaches one land from an owner. Removing the last land removes
// the owner record itself; otherwise the land count shrank and the support
// cache must be rebuilt.
func (l *Ledger) RemoveLand(caller string, req request.RemoveLandRequest) error {
	if err := l.requireAdmin(caller); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return validationError(err.Error())
	}

	return l.db.Transaction(func(tx *gorm.DB) error {
		var land models.Land
		err := tx.First(&land, "land_id = ?", req.LandID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundError("error.land.not_found")
		}
		if err != nil {
			return err
		}
		if land.OwnerAddress != req.OwnerAddress {
			return validationError("error.land.owner_mismatch")
		}

		if err := tx.Delete(&land).Error; err != nil {
			return err
		}
		if err := tx.Where("land_id = ?", req.LandID).Delete(&models.Chest{}).Error; err != nil {
			return err
		}

		remaining, err := landCount(tx, req.OwnerAddress)
		if err != nil {
			return err
		}
		if remaining == 0 {
			return removeOwner(tx, req.OwnerAddress)
		}
		return l.recompute(tx, req.OwnerAddress)
	})
}

// AddPlayers registers a batch of players; all-or-nothing like AddOwners.
func (l *Ledger) AddPlayers(caller string, req request.AddPlayersRequest) error {
	if err := l.requireAdmin(caller); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return validationError(err.Error())
	}

	return l.db.Transaction(func(tx *gorm.DB) error {
		for _, p := range req.Players {
			existing, err := findPlayer(tx, p.Address)
			if err != nil {
				return err
			}
			if existing != nil {
				return duplicateError("error.player.exists")
			}
			player := models.Player{
				Address: p.Address,
				Stats: models.Stats{
					Defense:      p.Defense,
					DefenseArmed: p.DefenseArmed,
					Attack:       p.Attack,
					AttackArmed:  p.AttackArmed,
					MoveCost:     p.MoveCost,
				},
			}
			if err := tx.Create(&player).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (l *Ledger) AddPlayer(caller string, player request.NewPlayer) error {
	return l.AddPlayers(caller, request.AddPlayersRequest{Players: []request.NewPlayer{player}})
}

func (l *Ledger) ModifyPlayer(caller string, req request.ModifyPlayerRequest) error {
	if err := l.requireAdmin(caller); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return validationError(err.Error())
	}

	return l.db.Transaction(func(tx *gorm.DB) error {
		player, err := findPlayer(tx, req.Address)
		if err != nil {
			return err
		}
		if player == nil {
			return notFoundError("error.player.not_found")
		}
		applyStatsPatch(&player.Stats, req.Patch)
		if err := tx.Save(player).Error; err != nil {
			return err
		}
		return l.recompute(tx, req.Address)
	})
}

// EnrollForge flags an address as forge-enrolled. Enrolling twice is a
// no-op; the armed stat variant takes effect through the recompute.
func (l *Ledger) EnrollForge(caller string, req request.EnrollForgeRequest) error {
	if err := l.requireAdmin(caller); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return validationError(err.Error())
	}

	return l.db.Transaction(func(tx *gorm.DB) error {
		return l.enrollForge(tx, req.Address)
	})
}

func (l *Ledger) enrollForge(tx *gorm.DB, address string) error {
	enrolled, err := isForgeMember(tx, address)
	if err != nil {
		return err
	}
	if !enrolled {
		if err := tx.Create(&models.ForgeMember{Address: address}).Error; err != nil {
			return err
		}
	}
	return l.recompute(tx, address)
}

func (l *Ledger) AddChest(caller string, req request.AddChestRequest) error {
	if err := l.requireAdmin(caller); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return validationError(err.Error())
	}

	return l.db.Transaction(func(tx *gorm.DB) error {
		var land models.Land
		err := tx.First(&land, "land_id = ?", req.LandID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundError("error.land.not_found")
		}
		if err != nil {
			return err
		}
		if land.OwnerAddress != req.OwnerAddress {
			return validationError("error.land.owner_mismatch")
		}

		var count int64
		if err := tx.Model(&models.Chest{}).
			Where("land_id = ?", req.LandID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return duplicateError("error.chest.exists")
		}
		return tx.Create(&models.Chest{
			LandID:       req.LandID,
			OwnerAddress: req.OwnerAddress,
			Level:        req.Level,
		}).Error
	})
}

func (l *Ledger) ModifyChest(caller string, req request.ModifyChestRequest) error {
	if err := l.requireAdmin(caller); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return validationError(err.Error())
	}

	return l.db.Transaction(func(tx *gorm.DB) error {
		var chest models.Chest
		err := tx.First(&chest, "land_id = ?", req.LandID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundError("error.chest.not_found")
		}
		if err != nil {
			return err
		}
		if req.Level != nil {
			chest.Level = *req.Level
		}
		if req.StoredValue != nil {
			chest.StoredValue = *req.StoredValue
		}
		return tx.Save(&chest).Error
	})
}

// WithdrawChest debits stored value on behalf of the chest's owner.
func (l *Ledger) WithdrawChest(caller string, req request.WithdrawChestRequest) error {
	if err := req.Validate(); err != nil {
		return validationError(err.Error())
	}

	return l.db.Transaction(func(tx *gorm.DB) error {
		var chest models.Chest
		err := tx.First(&chest, "land_id = ?", req.LandID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundError("error.chest.not_found")
		}
		if err != nil {
			return err
		}
		if err := l.requireSelf(caller, chest.OwnerAddress); err != nil {
			return err
		}
		if req.Amount > chest.StoredValue {
			return validationError("error.chest.insufficient_balance")
		}
		chest.StoredValue -= req.Amount
		return tx.Save(&chest).Error
	})
}
