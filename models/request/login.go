package request

import "errors"

type LoginRequest struct {
	Address string `json:"address"`
}

func (r *LoginRequest) Validate() error {
	if r.Address == "" {
		return errors.New("error.validation.address.required")
	}
	if len(r.Address) > 64 {
		return errors.New("error.validation.address.maxlength")
	}
	return nil
}
