package request

import "errors"

type NewOwner struct {
	Address      string   `json:"address"`
	LandIDs      []uint64 `json:"land_ids"`
	Defense      uint64   `json:"defense"`
	DefenseArmed uint64   `json:"defense_armed"`
	Attack       uint64   `json:"attack"`
	AttackArmed  uint64   `json:"attack_armed"`
	MoveCost     uint64   `json:"move_cost"`
}

func (r *NewOwner) Validate() error {
	if r.Address == "" {
		return errors.New("error.validation.address.required")
	}
	if len(r.LandIDs) == 0 {
		return errors.New("error.validation.lands.required")
	}
	return nil
}

type AddOwnersRequest struct {
	Owners []NewOwner `json:"owners"`
}

func (r *AddOwnersRequest) Validate() error {
	if len(r.Owners) == 0 {
		return errors.New("error.validation.owners.required")
	}
	for i := range r.Owners {
		if err := r.Owners[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

type ModifyOwnerRequest struct {
	Address string     `json:"address"`
	Patch   StatsPatch `json:"patch"`
}

func (r *ModifyOwnerRequest) Validate() error {
	if r.Address == "" {
		return errors.New("error.validation.address.required")
	}
	if r.Patch.Empty() {
		return errors.New("error.validation.patch.empty")
	}
	return nil
}

type RemoveOwnerRequest struct {
	Address string `json:"address"`
}

func (r *RemoveOwnerRequest) Validate() error {
	if r.Address == "" {
		return errors.New("error.validation.address.required")
	}
	return nil
}

type RemoveLandRequest struct {
	OwnerAddress string `json:"owner_address"`
	LandID       uint64 `json:"land_id"`
}

func (r *RemoveLandRequest) Validate() error {
	if r.OwnerAddress == "" {
		return errors.New("error.validation.address.required")
	}
	return nil
}
