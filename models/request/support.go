package request

import "errors"

type AddSupportRequest struct {
	PlayerAddress string `json:"player_address"`
	OwnerAddress  string `json:"owner_address"`
}

func (r *AddSupportRequest) Validate() error {
	if r.PlayerAddress == "" || r.OwnerAddress == "" {
		return errors.New("error.validation.address.required")
	}
	return nil
}
