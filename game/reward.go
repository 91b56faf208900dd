package game

import (
	"gorm.io/gorm"

	"warlands/game/mechanics"
	"warlands/models"
	"warlands/models/request"
)

// DistributeRewards computes every contributor's proportional share of a
// completed mission's pool and persists one payout instruction each. The
// payouts and the distributed flag commit as one unit: any zero share for a
// positive contribution aborts the whole distribution.
func (l *Ledger) DistributeRewards(caller string, req request.DistributeRequest) ([]models.Payout, error) {
	if err := l.requireAdmin(caller); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, validationError(err.Error())
	}

	var payouts []models.Payout
	err := l.db.Transaction(func(tx *gorm.DB) error {
		mission, err := findMission(tx, req.MissionName)
		if err != nil {
			return err
		}
		if mission == nil {
			return notFoundError("error.mission.not_found")
		}
		if !mission.Completed {
			return stateError("error.mission.not_completed")
		}
		if mission.Distributed {
			return stateError("error.mission.distributed")
		}
		if mission.TotalAttackPoints == 0 {
			return validationError("error.mission.no_contributions")
		}

		var contributions []models.Contribution
		if err := tx.Where("mission_name = ?", req.MissionName).
			Find(&contributions).Error; err != nil {
			return err
		}

		for _, c := range contributions {
			amount := mechanics.PayoutAmount(
				c.AttackPoints, mission.RewardAmount, mission.TotalAttackPoints)
			if c.AttackPoints > 0 && amount == 0 {
				return validationError("error.reward.zero_payout")
			}
			payout := models.Payout{
				MissionName:   req.MissionName,
				PlayerAddress: c.PlayerAddress,
				Amount:        amount,
				Denom:         mission.RewardDenom,
			}
			if err := tx.Create(&payout).Error; err != nil {
				return err
			}
			payouts = append(payouts, payout)
		}

		mission.Distributed = true
		return tx.Save(mission).Error
	})
	if err != nil {
		return nil, err
	}
	return payouts, nil
}
