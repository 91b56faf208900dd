package game

import (
	"testing"
	"time"

	"warlands/models"
	"warlands/models/request"
)

func TestAddMissionDuplicate(t *testing.T) {
	l := newTestLedger(t)
	seedMission(t, l, "raid", 100, 1000, t0)

	err := l.AddMission(testContract, request.AddMissionRequest{
		Name:               "raid",
		TargetAttackPoints: 50,
		RewardAmount:       10,
		RewardDenom:        "TLM",
	}, t0)
	if !IsKind(err, KindDuplicate) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestHardeningRaisesTargetOncePerWindow(t *testing.T) {
	l := newTestLedger(t)
	seedMission(t, l, "raid", 1000, 1000, t0)

	// Within the first window: nothing to do.
	count, err := l.HardenMissions(testContract, t0.Add(time.Hour))
	if err != nil {
		t.Fatalf("harden: %v", err)
	}
	if count != 0 {
		t.Fatalf("hardened=%d want 0", count)
	}

	// A day later: 1000 * 1.05 = 1050.
	count, err = l.HardenMissions(testContract, t0.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("harden: %v", err)
	}
	if count != 1 {
		t.Fatalf("hardened=%d want 1", count)
	}
	if got := mission(t, l, "raid").TargetAttackPoints; got != 1050 {
		t.Fatalf("target=%d want 1050", got)
	}

	// Immediately again: idempotent within the window.
	count, err = l.HardenMissions(testContract, t0.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("harden: %v", err)
	}
	if count != 0 {
		t.Fatalf("hardened=%d want 0", count)
	}
	if got := mission(t, l, "raid").TargetAttackPoints; got != 1050 {
		t.Fatalf("target=%d want 1050", got)
	}
}

func TestHardeningFloorsFractionalTargets(t *testing.T) {
	l := newTestLedger(t)
	seedMission(t, l, "raid", 101, 1000, t0)

	// 101 * 1.05 = 106.05 -> 106
	if _, err := l.HardenMissions(testContract, t0.Add(24*time.Hour)); err != nil {
		t.Fatalf("harden: %v", err)
	}
	if got := mission(t, l, "raid").TargetAttackPoints; got != 106 {
		t.Fatalf("target=%d want 106", got)
	}
}

func TestHardeningSkipsCompletedMissions(t *testing.T) {
	l := newTestLedger(t)
	seedPlayer(t, l, "alice", models.Stats{Attack: 100})
	seedMission(t, l, "raid", 100, 1000, t0)

	if err := l.SendAttack("alice", request.SendAttackRequest{MissionName: "raid"}, t0); err != nil {
		t.Fatalf("attack: %v", err)
	}
	count, err := l.HardenMissions(testContract, t0.Add(48*time.Hour))
	if err != nil {
		t.Fatalf("harden: %v", err)
	}
	if count != 0 {
		t.Fatalf("hardened=%d want 0", count)
	}
	if got := mission(t, l, "raid").TargetAttackPoints; got != 100 {
		t.Fatalf("target=%d want 100", got)
	}
}

func TestHardeningRequiresAdmin(t *testing.T) {
	l := newTestLedger(t)

	if _, err := l.HardenMissions("mallory", t0); !IsKind(err, KindAuthorization) {
		t.Fatalf("expected authorization error, got %v", err)
	}
}
