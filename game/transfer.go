package game

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"warlands/config"
	"warlands/game/mechanics"
	"warlands/models"
	"warlands/models/request"
	"warlands/types"
)

// ClassifyTransfer maps an inbound transfer to exactly one action. The
// classification happens once; HandleTransfer matches on the result.
func ClassifyTransfer(ev request.TransferNotifyRequest, t config.Tuning) (types.TransferKind, uint64) {
	if ev.Denom != t.TokenSymbol {
		return types.TransferUnrecognized, 0
	}
	switch ev.Amount {
	case t.ForgeFee:
		return types.TransferForgeFee, 0
	case t.MembershipFee:
		return types.TransferMembershipFee, 0
	}
	if idx := strings.Index(ev.Memo, ":"); idx >= 0 {
		landID, err := strconv.ParseUint(ev.Memo[idx+1:], 10, 64)
		if err == nil {
			return types.TransferChestDeposit, landID
		}
	}
	return types.TransferUnrecognized, 0
}

// HandleTransfer consumes a parsed token-transfer notification. It never
// fails on unrecognized input: bouncing here would bounce the token
// transfer itself, which already happened.
func (l *Ledger) HandleTransfer(caller string, ev request.TransferNotifyRequest) (types.TransferKind, error) {
	if err := l.requireAdmin(caller); err != nil {
		return types.TransferUnrecognized, err
	}
	if err := ev.Validate(); err != nil {
		return types.TransferUnrecognized, validationError(err.Error())
	}

	// Outbound transfers, self-transfers and flagged refunds are not ours.
	if ev.To != l.contract || ev.From == l.contract || ev.Memo == l.tuning.IgnoreMemo {
		return types.TransferUnrecognized, nil
	}

	kind, landID := ClassifyTransfer(ev, l.tuning)

	err := l.db.Transaction(func(tx *gorm.DB) error {
		switch kind {
		case types.TransferForgeFee:
			return l.enrollForge(tx, ev.From)

		case types.TransferMembershipFee:
			existing, err := findPlayer(tx, ev.From)
			if err != nil {
				return err
			}
			if existing != nil {
				return nil
			}
			return tx.Create(&models.Player{Address: ev.From}).Error

		case types.TransferChestDeposit:
			var chest models.Chest
			err := tx.First(&chest, "land_id = ?", landID).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("Ignoring chest deposit for unknown land %d from %s", landID, ev.From)
				return nil
			}
			if err != nil {
				return err
			}
			chest.StoredValue += ev.Amount
			display := mechanics.DisplayAmount(ev.Amount, l.tuning.TokenPrecision)
			if level, ok := mechanics.ChestLevelForAmount(display); ok {
				chest.Level = level
			}
			return tx.Save(&chest).Error

		default:
			return nil
		}
	})
	if err != nil {
		return kind, err
	}
	return kind, nil
}
