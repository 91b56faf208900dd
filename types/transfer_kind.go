package types

// TransferKind classifies an inbound token transfer notification. The
// classifier runs once per event; handlers match on the result.
type TransferKind uint8

const (
	TransferUnrecognized TransferKind = iota
	TransferForgeFee
	TransferMembershipFee
	TransferChestDeposit
)
