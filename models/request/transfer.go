package request

import "errors"

// TransferNotifyRequest is a parsed token-transfer notification relayed by
// the host's inbound plumbing.
type TransferNotifyRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount uint64 `json:"amount"` // raw token units
	Denom  string `json:"denom"`
	Memo   string `json:"memo"`
}

func (r *TransferNotifyRequest) Validate() error {
	if r.From == "" || r.To == "" {
		return errors.New("error.validation.address.required")
	}
	if r.Denom == "" {
		return errors.New("error.validation.denom.required")
	}
	return nil
}
