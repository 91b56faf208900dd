package game

import (
	"testing"

	"warlands/models"
	"warlands/models/request"
)

func TestDistributeProportionalPayouts(t *testing.T) {
	l := newTestLedger(t)
	seedPlayer(t, l, "alice", models.Stats{Attack: 60})
	seedPlayer(t, l, "bob", models.Stats{Attack: 60})
	seedMission(t, l, "raid", 100, 1000, t0)

	if err := l.SendAttack("alice", request.SendAttackRequest{MissionName: "raid"}, t0); err != nil {
		t.Fatalf("attack: %v", err)
	}
	if err := l.SendAttack("bob", request.SendAttackRequest{MissionName: "raid"}, t0); err != nil {
		t.Fatalf("attack: %v", err)
	}

	payouts, err := l.DistributeRewards(testContract, request.DistributeRequest{MissionName: "raid"})
	if err != nil {
		t.Fatalf("distribute: %v", err)
	}
	if len(payouts) != 2 {
		t.Fatalf("payouts=%d want 2", len(payouts))
	}

	byPlayer := make(map[string]uint64)
	var sum uint64
	for _, p := range payouts {
		byPlayer[p.PlayerAddress] = p.Amount
		sum += p.Amount
		if p.Amount == 0 {
			t.Fatalf("zero payout for %s", p.PlayerAddress)
		}
		if p.Denom != "TLM" {
			t.Fatalf("denom=%s want TLM", p.Denom)
		}
	}
	if byPlayer["alice"] != 600 || byPlayer["bob"] != 400 {
		t.Fatalf("payouts=%v want alice=600 bob=400", byPlayer)
	}
	if sum > 1000 {
		t.Fatalf("sum=%d exceeds pool", sum)
	}

	if !mission(t, l, "raid").Distributed {
		t.Fatal("distributed flag not set")
	}

	// Persisted instructions match the returned ones.
	var stored []models.Payout
	if err := l.db.Where("mission_name = ?", "raid").Find(&stored).Error; err != nil {
		t.Fatalf("payout lookup: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("stored payouts=%d want 2", len(stored))
	}

	// Second distribution must fail and add nothing.
	_, err = l.DistributeRewards(testContract, request.DistributeRequest{MissionName: "raid"})
	if !IsKind(err, KindState) {
		t.Fatalf("expected state error, got %v", err)
	}
}

func TestDistributeRequiresCompletion(t *testing.T) {
	l := newTestLedger(t)
	seedPlayer(t, l, "alice", models.Stats{Attack: 10})
	seedMission(t, l, "raid", 100, 1000, t0)

	if err := l.SendAttack("alice", request.SendAttackRequest{MissionName: "raid"}, t0); err != nil {
		t.Fatalf("attack: %v", err)
	}
	_, err := l.DistributeRewards(testContract, request.DistributeRequest{MissionName: "raid"})
	if !IsKind(err, KindState) {
		t.Fatalf("expected state error, got %v", err)
	}
}

func TestDistributeZeroShareAbortsAll(t *testing.T) {
	l := newTestLedger(t)
	// Pool of 2: the 1-point contributor's share floors to zero, which must
	// abort the entire distribution, not just skip one payout.
	seedPlayer(t, l, "alice", models.Stats{Attack: 2})
	seedPlayer(t, l, "bob", models.Stats{Attack: 1})
	seedMission(t, l, "raid", 3, 2, t0)

	if err := l.SendAttack("alice", request.SendAttackRequest{MissionName: "raid"}, t0); err != nil {
		t.Fatalf("attack: %v", err)
	}
	if err := l.SendAttack("bob", request.SendAttackRequest{MissionName: "raid"}, t0); err != nil {
		t.Fatalf("attack: %v", err)
	}

	_, err := l.DistributeRewards(testContract, request.DistributeRequest{MissionName: "raid"})
	if !IsKind(err, KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	if mission(t, l, "raid").Distributed {
		t.Fatal("distributed flag set despite aborted distribution")
	}
	var count int64
	l.db.Model(&models.Payout{}).Where("mission_name = ?", "raid").Count(&count)
	if count != 0 {
		t.Fatalf("found %d payout rows after aborted distribution", count)
	}
}

func TestDistributeRequiresAdmin(t *testing.T) {
	l := newTestLedger(t)
	seedMission(t, l, "raid", 100, 1000, t0)

	_, err := l.DistributeRewards("mallory", request.DistributeRequest{MissionName: "raid"})
	if !IsKind(err, KindAuthorization) {
		t.Fatalf("expected authorization error, got %v", err)
	}
}

func TestDistributeUnknownMission(t *testing.T) {
	l := newTestLedger(t)

	_, err := l.DistributeRewards(testContract, request.DistributeRequest{MissionName: "nothing"})
	if !IsKind(err, KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
