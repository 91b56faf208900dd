package request

import "errors"

type AddMissionRequest struct {
	Name               string `json:"name"`
	TargetAttackPoints uint64 `json:"target_attack_points"`
	RewardAmount       uint64 `json:"reward_amount"`
	RewardDenom        string `json:"reward_denom"`
	Deadline           int64  `json:"deadline,omitempty"`
}

func (r *AddMissionRequest) Validate() error {
	if r.Name == "" {
		return errors.New("error.validation.name.required")
	}
	if r.TargetAttackPoints == 0 {
		return errors.New("error.validation.target.required")
	}
	if r.RewardAmount == 0 {
		return errors.New("error.validation.reward.required")
	}
	if r.RewardDenom == "" {
		return errors.New("error.validation.denom.required")
	}
	return nil
}

type SendAttackRequest struct {
	MissionName string `json:"mission_name"`
}

func (r *SendAttackRequest) Validate() error {
	if r.MissionName == "" {
		return errors.New("error.validation.name.required")
	}
	return nil
}

type DistributeRequest struct {
	MissionName string `json:"mission_name"`
}

func (r *DistributeRequest) Validate() error {
	if r.MissionName == "" {
		return errors.New("error.validation.name.required")
	}
	return nil
}
