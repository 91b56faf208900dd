package game

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"warlands/game/mechanics"
	"warlands/models"
	"warlands/models/request"
)

// SendAttack credits the caller's attack points to a mission. The credited
// amount is clamped to what the mission still needs; repeat attacks are
// gated by a cooldown derived from the attacker's move cost.
func (l *Ledger) SendAttack(caller string, req request.SendAttackRequest, now time.Time) error {
	if err := req.Validate(); err != nil {
		return validationError(err.Error())
	}

	return l.db.Transaction(func(tx *gorm.DB) error {
		mission, err := findMission(tx, req.MissionName)
		if err != nil {
			return err
		}
		if mission == nil {
			return notFoundError("error.mission.not_found")
		}
		if mission.Completed {
			return stateError("error.mission.completed")
		}
		if mission.Deadline > 0 && now.Unix() > mission.Deadline {
			return stateError("error.mission.expired")
		}

		// Owners attack with their own stats; everyone else as a player.
		// Forge membership selects the armed variant either way.
		var stats models.Stats
		owner, err := findOwner(tx, caller)
		if err != nil {
			return err
		}
		if owner != nil {
			stats = owner.Stats
		} else {
			player, err := findPlayer(tx, caller)
			if err != nil {
				return err
			}
			if player == nil {
				return notFoundError("error.entity.not_found")
			}
			stats = player.Stats
		}

		armed, err := isForgeMember(tx, caller)
		if err != nil {
			return err
		}
		attackPoints := stats.AttackScore(armed)
		if attackPoints == 0 {
			return validationError("error.attack.no_points")
		}

		useful := mechanics.UsefulAttackPoints(
			attackPoints, mission.TargetAttackPoints, mission.TotalAttackPoints)

		var contribution models.Contribution
		err = tx.First(&contribution,
			"mission_name = ? AND player_address = ?", req.MissionName, caller).Error
		switch {
		case err == nil:
			cooldown := mechanics.CooldownPeriod(
				stats.MoveCost, l.tuning.BaseCooldownSecs, l.tuning.MoveCostDivisor)
			elapsed := now.Unix() - contribution.LastParticipationTime
			if elapsed < cooldown {
				return &CooldownError{RemainingSecs: cooldown - elapsed}
			}
			contribution.AttackPoints += useful
			contribution.LastParticipationTime = now.Unix()
			if err := tx.Save(&contribution).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// First contribution is never cooldown-gated.
			if err := tx.Create(&models.Contribution{
				MissionName:           req.MissionName,
				PlayerAddress:         caller,
				AttackPoints:          useful,
				LastParticipationTime: now.Unix(),
			}).Error; err != nil {
				return err
			}
		default:
			return err
		}

		mission.TotalAttackPoints += useful
		if mission.TotalAttackPoints >= mission.TargetAttackPoints {
			mission.Completed = true
		}
		return tx.Save(mission).Error
	})
}
