package game

import (
	"errors"

	"gorm.io/gorm"

	"warlands/models"
	"warlands/models/request"
)

// recompute rebuilds the cached scores of the support record governing the
// given address. The address may be an owner (its own record) or a player
// (the record of whichever owner it currently backs). Unknown addresses and
// owners without a support record are a no-op, never an error; callers must
// invoke this after every stat or membership mutation.
func (l *Ledger) recompute(tx *gorm.DB, address string) error {
	ownerAddress := address

	owner, err := findOwner(tx, address)
	if err != nil {
		return err
	}
	if owner == nil {
		// Not an owner; resolve through the supporter index.
		var sup models.Supporter
		err := tx.First(&sup, "player_address = ?", address).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		ownerAddress = sup.OwnerAddress
		if owner, err = findOwner(tx, ownerAddress); err != nil {
			return err
		}
		if owner == nil {
			return nil
		}
	}

	lands, err := landCount(tx, ownerAddress)
	if err != nil {
		return err
	}
	divisor := uint64(lands)
	if divisor == 0 {
		divisor = 1
	}

	armed, err := isForgeMember(tx, ownerAddress)
	if err != nil {
		return err
	}

	// Seed with the owner's own scores; its move cost is not normalized.
	totalDefense := owner.DefenseScore(armed)
	totalAttack := owner.AttackScore(armed)
	totalMoveCost := owner.MoveCost

	var record models.SupportRecord
	if err := tx.First(&record, "owner_address = ?", ownerAddress).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	var supporters []models.Supporter
	if err := tx.Where("owner_address = ?", ownerAddress).
		Order("position asc").Find(&supporters).Error; err != nil {
		return err
	}

	for _, sup := range supporters {
		player, err := findPlayer(tx, sup.PlayerAddress)
		if err != nil {
			return err
		}
		if player == nil {
			continue
		}
		supArmed, err := isForgeMember(tx, player.Address)
		if err != nil {
			return err
		}
		// Supporter contributions are divided by the owner's land count,
		// truncating. Intentional balance policy, including the move cost.
		totalDefense += player.DefenseScore(supArmed) / divisor
		totalAttack += player.AttackScore(supArmed) / divisor
		totalMoveCost += player.MoveCost / divisor
	}

	record.TotalDefenseScore = totalDefense
	record.TotalAttackScore = totalAttack
	record.TotalMoveCost = totalMoveCost
	return tx.Save(&record).Error
}

// Recompute is the standalone entry point for host-triggered recomputes.
func (l *Ledger) Recompute(address string) error {
	return l.db.Transaction(func(tx *gorm.DB) error {
		return l.recompute(tx, address)
	})
}

// AssignSupport moves a player's allegiance to the target owner. The removal
// from the previous owner and the addition to the new one commit together;
// no state is observable mid-transition.
func (l *Ledger) AssignSupport(caller string, req request.AddSupportRequest) error {
	if err := req.Validate(); err != nil {
		return validationError(err.Error())
	}
	if err := l.requireSelf(caller, req.PlayerAddress); err != nil {
		return err
	}
	if req.PlayerAddress == req.OwnerAddress {
		return validationError("error.support.self")
	}

	return l.db.Transaction(func(tx *gorm.DB) error {
		player, err := findPlayer(tx, req.PlayerAddress)
		if err != nil {
			return err
		}
		if player == nil {
			return notFoundError("error.player.not_found")
		}
		owner, err := findOwner(tx, req.OwnerAddress)
		if err != nil {
			return err
		}
		if owner == nil {
			return notFoundError("error.owner.not_found")
		}

		previousOwner := ""
		var sup models.Supporter
		err = tx.First(&sup, "player_address = ?", req.PlayerAddress).Error
		switch {
		case err == nil:
			previousOwner = sup.OwnerAddress
			if err := tx.Delete(&sup).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// first allegiance
		default:
			return err
		}

		var position int64
		if err := tx.Model(&models.Supporter{}).
			Where("owner_address = ?", req.OwnerAddress).Count(&position).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.Supporter{
			PlayerAddress: req.PlayerAddress,
			OwnerAddress:  req.OwnerAddress,
			Position:      int(position),
		}).Error; err != nil {
			return err
		}

		var record models.SupportRecord
		err = tx.First(&record, "owner_address = ?", req.OwnerAddress).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := tx.Create(&models.SupportRecord{OwnerAddress: req.OwnerAddress}).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		if previousOwner != "" && previousOwner != req.OwnerAddress {
			if err := l.recompute(tx, previousOwner); err != nil {
				return err
			}
		}
		return l.recompute(tx, req.OwnerAddress)
	})
}
