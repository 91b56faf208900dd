package socket

import (
	"log"
	"time"

	b "warlands/binary"
	"warlands/types"
)

// handleMessage dispatches one framed message. Returns true when the
// connection should be closed.
func handleMessage(server *GameServer, gc *GameConnection, data []byte) bool {
	// Decode and handle message
	msg, err := b.DecodeRawMessage(data)
	if err != nil {
		log.Printf("Error decoding message: %v - Packet length: %d", err, len(data))
		return false
	}

	// Update last heartbeat time
	gc.mu.Lock()
	gc.lastHeartbeat = time.Now()
	gc.mu.Unlock()

	// Login and ping need no bound address; everything else does.
	switch msg.Type {
	case types.LoginMessage:
		gc.handleLogin(msg.Data)
		return false
	case types.PingPongMessage:
		gc.handlePingPong(*msg)
		return false
	case types.DisconnectMessage:
		server.mu.Lock()
		gc.handleDisconnect()
		server.mu.Unlock()
		return true
	}

	if gc.caller() == "" {
		gc.SendTCPMessage(b.Message{
			Type:  types.UnauthorizedMessage,
			Error: "error.login.required",
		})
		return false
	}

	// Handle message based on type
	switch msg.Type {
	case types.AddOwnersMessage:
		gc.handleAddOwners(msg.Data)
	case types.ModifyOwnerMessage:
		gc.handleModifyOwner(msg.Data)
	case types.RemoveOwnerMessage:
		gc.handleRemoveOwner(msg.Data)
	case types.RemoveLandMessage:
		gc.handleRemoveLand(msg.Data)
	case types.AddPlayersMessage:
		gc.handleAddPlayers(msg.Data)
	case types.ModifyPlayerMessage:
		gc.handleModifyPlayer(msg.Data)
	case types.AddChestMessage:
		gc.handleAddChest(msg.Data)
	case types.ModifyChestMessage:
		gc.handleModifyChest(msg.Data)
	case types.WithdrawChestMessage:
		gc.handleWithdrawChest(msg.Data)
	case types.EnrollForgeMessage:
		gc.handleEnrollForge(msg.Data)
	case types.AddSupportMessage:
		gc.handleAddSupport(msg.Data)
	case types.AddMissionMessage:
		gc.handleAddMission(msg.Data)
	case types.HardenMissionsMessage:
		gc.handleHardenMissions()
	case types.SendAttackMessage:
		gc.handleSendAttack(msg.Data)
	case types.DistributeMessage:
		gc.handleDistribute(msg.Data)
	case types.TransferNotifyMessage:
		gc.handleTransferNotify(msg.Data)
	default:
		// unknown message
		gc.SendTCPMessage(b.Message{
			Type:  types.UnknownMessage,
			Error: "error.message.unknown",
		})
	}
	return false
}
