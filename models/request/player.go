package request

import "errors"

type NewPlayer struct {
	Address      string `json:"address"`
	Defense      uint64 `json:"defense"`
	DefenseArmed uint64 `json:"defense_armed"`
	Attack       uint64 `json:"attack"`
	AttackArmed  uint64 `json:"attack_armed"`
	MoveCost     uint64 `json:"move_cost"`
}

func (r *NewPlayer) Validate() error {
	if r.Address == "" {
		return errors.New("error.validation.address.required")
	}
	return nil
}

type AddPlayersRequest struct {
	Players []NewPlayer `json:"players"`
}

func (r *AddPlayersRequest) Validate() error {
	if len(r.Players) == 0 {
		return errors.New("error.validation.players.required")
	}
	for i := range r.Players {
		if err := r.Players[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

type ModifyPlayerRequest struct {
	Address string     `json:"address"`
	Patch   StatsPatch `json:"patch"`
}

func (r *ModifyPlayerRequest) Validate() error {
	if r.Address == "" {
		return errors.New("error.validation.address.required")
	}
	if r.Patch.Empty() {
		return errors.New("error.validation.patch.empty")
	}
	return nil
}

type EnrollForgeRequest struct {
	Address string `json:"address"`
}

func (r *EnrollForgeRequest) Validate() error {
	if r.Address == "" {
		return errors.New("error.validation.address.required")
	}
	return nil
}
