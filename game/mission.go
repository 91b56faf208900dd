package game

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"warlands/game/mechanics"
	"warlands/models"
	"warlands/models/request"
)

func (l *Ledger) AddMission(caller string, req request.AddMissionRequest, now time.Time) error {
	if err := l.requireAdmin(caller); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return validationError(err.Error())
	}

	return l.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Mission{}).
			Where("name = ?", req.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return duplicateError("error.mission.exists")
		}
		return tx.Create(&models.Mission{
			Name:               req.Name,
			TargetAttackPoints: req.TargetAttackPoints,
			RewardAmount:       req.RewardAmount,
			RewardDenom:        req.RewardDenom,
			Deadline:           req.Deadline,
			LastHardeningTime:  now.Unix(),
		}).Error
	})
}

// HardenMissions raises the target of every unmet mission whose hardening
// window has elapsed. The host triggers the sweep periodically; running it
// again within the same window is a no-op for those missions. Returns the
// number of missions hardened.
func (l *Ledger) HardenMissions(caller string, now time.Time) (int, error) {
	if err := l.requireAdmin(caller); err != nil {
		return 0, err
	}

	hardened := 0
	err := l.db.Transaction(func(tx *gorm.DB) error {
		var missions []models.Mission
		if err := tx.Where("completed = ?", false).Find(&missions).Error; err != nil {
			return err
		}
		for i := range missions {
			m := &missions[i]
			if m.Deadline > 0 && now.Unix() > m.Deadline {
				continue
			}
			if now.Unix() < m.LastHardeningTime+l.tuning.HardeningIntervalSecs {
				continue
			}
			m.TargetAttackPoints = mechanics.HardenedTarget(
				m.TargetAttackPoints, l.tuning.HardeningRateNum, l.tuning.HardeningRateDen)
			m.LastHardeningTime = now.Unix()
			if err := tx.Save(m).Error; err != nil {
				return err
			}
			hardened++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return hardened, nil
}

func findMission(tx *gorm.DB, name string) (*models.Mission, error) {
	var mission models.Mission
	err := tx.First(&mission, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &mission, nil
}
