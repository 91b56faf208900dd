package request

import "errors"

type AddChestRequest struct {
	LandID       uint64 `json:"land_id"`
	OwnerAddress string `json:"owner_address"`
	Level        int    `json:"level"`
}

func (r *AddChestRequest) Validate() error {
	if r.OwnerAddress == "" {
		return errors.New("error.validation.address.required")
	}
	if r.Level < 0 {
		return errors.New("error.validation.level.negative")
	}
	return nil
}

type ModifyChestRequest struct {
	LandID      uint64  `json:"land_id"`
	Level       *int    `json:"level,omitempty"`
	StoredValue *uint64 `json:"stored_value,omitempty"`
}

func (r *ModifyChestRequest) Validate() error {
	if r.Level == nil && r.StoredValue == nil {
		return errors.New("error.validation.patch.empty")
	}
	if r.Level != nil && *r.Level < 0 {
		return errors.New("error.validation.level.negative")
	}
	return nil
}

type WithdrawChestRequest struct {
	LandID uint64 `json:"land_id"`
	Amount uint64 `json:"amount"`
}

func (r *WithdrawChestRequest) Validate() error {
	if r.Amount == 0 {
		return errors.New("error.validation.amount.required")
	}
	return nil
}
