package types

type MessageType uint8

const (
	LoginMessage MessageType = iota
	SystemMessage
	UnauthorizedMessage
	UnknownMessage
	PingPongMessage
	DisconnectMessage
	AddOwnersMessage
	ModifyOwnerMessage
	RemoveOwnerMessage
	RemoveLandMessage
	AddPlayersMessage
	ModifyPlayerMessage
	AddChestMessage
	ModifyChestMessage
	WithdrawChestMessage
	EnrollForgeMessage
	AddSupportMessage
	AddMissionMessage
	HardenMissionsMessage
	SendAttackMessage
	DistributeMessage
	TransferNotifyMessage
)
