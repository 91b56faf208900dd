package socket

import (
	"encoding/json"
	"time"

	b "warlands/binary"
	"warlands/models"
	"warlands/models/request"
	"warlands/types"
)

type okResponse struct {
	Status string `json:"status"`
}

var ok = okResponse{Status: "ok"}

func decode[T any](gc *GameConnection, msgType types.MessageType, data []byte, req *T) bool {
	if err := json.Unmarshal(data, req); err != nil {
		gc.SendTCPMessage(b.Message{
			Type:  msgType,
			Error: "error.request.invalid",
		})
		return false
	}
	return true
}

func (gc *GameConnection) handleLogin(data []byte) {
	var req request.LoginRequest
	if !decode(gc, types.LoginMessage, data, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		gc.SendTCPMessage(b.Message{
			Type:  types.LoginMessage,
			Error: err.Error(),
		})
		return
	}

	gc.mu.Lock()
	gc.address = req.Address
	gc.mu.Unlock()

	gc.reply(types.LoginMessage, req)
}

func (gc *GameConnection) handlePingPong(msg b.Message) {
	gc.SendTCPMessage(msg)
}

func (gc *GameConnection) handleAddOwners(data []byte) {
	var req request.AddOwnersRequest
	if !decode(gc, types.AddOwnersMessage, data, &req) {
		return
	}
	if err := gc.server.ledger.AddOwners(gc.caller(), req); err != nil {
		gc.replyError(types.AddOwnersMessage, err)
		return
	}
	gc.reply(types.AddOwnersMessage, ok)
}

func (gc *GameConnection) handleModifyOwner(data []byte) {
	var req request.ModifyOwnerRequest
	if !decode(gc, types.ModifyOwnerMessage, data, &req) {
		return
	}
	if err := gc.server.ledger.ModifyOwner(gc.caller(), req); err != nil {
		gc.replyError(types.ModifyOwnerMessage, err)
		return
	}
	gc.reply(types.ModifyOwnerMessage, ok)
}

func (gc *GameConnection) handleRemoveOwner(data []byte) {
	var req request.RemoveOwnerRequest
	if !decode(gc, types.RemoveOwnerMessage, data, &req) {
		return
	}
	if err := gc.server.ledger.RemoveOwner(gc.caller(), req); err != nil {
		gc.replyError(types.RemoveOwnerMessage, err)
		return
	}
	gc.reply(types.RemoveOwnerMessage, ok)
}

func (gc *GameConnection) handleRemoveLand(data []byte) {
	var req request.RemoveLandRequest
	if !decode(gc, types.RemoveLandMessage, data, &req) {
		return
	}
	if err := gc.server.ledger.RemoveLand(gc.caller(), req); err != nil {
		gc.replyError(types.RemoveLandMessage, err)
		return
	}
	gc.reply(types.RemoveLandMessage, ok)
}

func (gc *GameConnection) handleAddPlayers(data []byte) {
	var req request.AddPlayersRequest
	if !decode(gc, types.AddPlayersMessage, data, &req) {
		return
	}
	if err := gc.server.ledger.AddPlayers(gc.caller(), req); err != nil {
		gc.replyError(types.AddPlayersMessage, err)
		return
	}
	gc.reply(types.AddPlayersMessage, ok)
}

func (gc *GameConnection) handleModifyPlayer(data []byte) {
	var req request.ModifyPlayerRequest
	if !decode(gc, types.ModifyPlayerMessage, data, &req) {
		return
	}
	if err := gc.server.ledger.ModifyPlayer(gc.caller(), req); err != nil {
		gc.replyError(types.ModifyPlayerMessage, err)
		return
	}
	gc.reply(types.ModifyPlayerMessage, ok)
}

func (gc *GameConnection) handleAddChest(data []byte) {
	var req request.AddChestRequest
	if !decode(gc, types.AddChestMessage, data, &req) {
		return
	}
	if err := gc.server.ledger.AddChest(gc.caller(), req); err != nil {
		gc.replyError(types.AddChestMessage, err)
		return
	}
	gc.reply(types.AddChestMessage, ok)
}

func (gc *GameConnection) handleModifyChest(data []byte) {
	var req request.ModifyChestRequest
	if !decode(gc, types.ModifyChestMessage, data, &req) {
		return
	}
	if err := gc.server.ledger.ModifyChest(gc.caller(), req); err != nil {
		gc.replyError(types.ModifyChestMessage, err)
		return
	}
	gc.reply(types.ModifyChestMessage, ok)
}

func (gc *GameConnection) handleWithdrawChest(data []byte) {
	var req request.WithdrawChestRequest
	if !decode(gc, types.WithdrawChestMessage, data, &req) {
		return
	}
	if err := gc.server.ledger.WithdrawChest(gc.caller(), req); err != nil {
		gc.replyError(types.WithdrawChestMessage, err)
		return
	}
	gc.reply(types.WithdrawChestMessage, ok)
}

func (gc *GameConnection) handleEnrollForge(data []byte) {
	var req request.EnrollForgeRequest
	if !decode(gc, types.EnrollForgeMessage, data, &req) {
		return
	}
	if err := gc.server.ledger.EnrollForge(gc.caller(), req); err != nil {
		gc.replyError(types.EnrollForgeMessage, err)
		return
	}
	gc.reply(types.EnrollForgeMessage, ok)
}

func (gc *GameConnection) handleAddSupport(data []byte) {
	var req request.AddSupportRequest
	if !decode(gc, types.AddSupportMessage, data, &req) {
		return
	}
	if err := gc.server.ledger.AssignSupport(gc.caller(), req); err != nil {
		gc.replyError(types.AddSupportMessage, err)
		return
	}
	gc.reply(types.AddSupportMessage, ok)
}

func (gc *GameConnection) handleAddMission(data []byte) {
	var req request.AddMissionRequest
	if !decode(gc, types.AddMissionMessage, data, &req) {
		return
	}
	if err := gc.server.ledger.AddMission(gc.caller(), req, time.Now()); err != nil {
		gc.replyError(types.AddMissionMessage, err)
		return
	}
	gc.reply(types.AddMissionMessage, ok)
}

type hardenResponse struct {
	Hardened int `json:"hardened"`
}

func (gc *GameConnection) handleHardenMissions() {
	count, err := gc.server.ledger.HardenMissions(gc.caller(), time.Now())
	if err != nil {
		gc.replyError(types.HardenMissionsMessage, err)
		return
	}
	gc.reply(types.HardenMissionsMessage, hardenResponse{Hardened: count})
}

func (gc *GameConnection) handleSendAttack(data []byte) {
	var req request.SendAttackRequest
	if !decode(gc, types.SendAttackMessage, data, &req) {
		return
	}
	if err := gc.server.ledger.SendAttack(gc.caller(), req, time.Now()); err != nil {
		gc.replyError(types.SendAttackMessage, err)
		return
	}
	gc.reply(types.SendAttackMessage, ok)
}

type distributeResponse struct {
	Payouts []models.Payout `json:"payouts"`
}

func (gc *GameConnection) handleDistribute(data []byte) {
	var req request.DistributeRequest
	if !decode(gc, types.DistributeMessage, data, &req) {
		return
	}
	payouts, err := gc.server.ledger.DistributeRewards(gc.caller(), req)
	if err != nil {
		gc.replyError(types.DistributeMessage, err)
		return
	}
	gc.reply(types.DistributeMessage, distributeResponse{Payouts: payouts})
}

type transferResponse struct {
	Kind types.TransferKind `json:"kind"`
}

func (gc *GameConnection) handleTransferNotify(data []byte) {
	var req request.TransferNotifyRequest
	if !decode(gc, types.TransferNotifyMessage, data, &req) {
		return
	}
	kind, err := gc.server.ledger.HandleTransfer(gc.caller(), req)
	if err != nil {
		gc.replyError(types.TransferNotifyMessage, err)
		return
	}
	gc.reply(types.TransferNotifyMessage, transferResponse{Kind: kind})
}
