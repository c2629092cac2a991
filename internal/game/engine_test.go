package game

import (
	"errors"
	"math"
	"testing"

	"github.com/blacksite-games/incursion-engine/internal/models"
)

func TestNewEngineInitialState(t *testing.T) {
	e := New(60)

	snap := e.Snapshot()
	if len(snap.Sectors) != 12 {
		t.Fatalf("expected 12 sectors, got %d", len(snap.Sectors))
	}
	if snap.Active {
		t.Error("engine should not be active before Start")
	}

	for id, s := range snap.Sectors {
		if s.Compromise < 5 || s.Compromise >= 15 {
			t.Errorf("sector %s initial compromise %.2f outside [5,15)", id, s.Compromise)
		}
		if s.Locked || s.Secured {
			t.Errorf("sector %s should start unlocked and unsecured", id)
		}
	}

	if snap.GlobalThreat < 5 || snap.GlobalThreat >= 15 {
		t.Errorf("initial global threat %.2f outside [5,15)", snap.GlobalThreat)
	}

	if got := len(e.Passwords()); got != 10 {
		t.Errorf("expected 10 default passwords, got %d", got)
	}
}

func TestSessionDurationClamping(t *testing.T) {
	e := New(5)
	if got := e.SessionDuration(); got != 10 {
		t.Errorf("expected duration clamped up to 10, got %d", got)
	}

	if got := e.SetSessionDuration(500); got != 120 {
		t.Errorf("expected duration clamped down to 120, got %d", got)
	}
	if got := e.SetSessionDuration(45); got != 45 {
		t.Errorf("expected duration 45 applied, got %d", got)
	}
}

func TestAdjustSectorClamping(t *testing.T) {
	e := New(60)

	res, err := e.AdjustSector("financial", -1000, false)
	if err != nil {
		t.Fatalf("AdjustSector failed: %v", err)
	}
	if res.NewPercent != 0 {
		t.Errorf("expected compromise clamped to 0, got %.2f", res.NewPercent)
	}

	res, err = e.AdjustSector("financial", 1000, false)
	if err != nil {
		t.Fatalf("AdjustSector failed: %v", err)
	}
	if res.NewPercent != 100 {
		t.Errorf("expected compromise clamped to 100, got %.2f", res.NewPercent)
	}
}

func TestAdjustSectorUnknown(t *testing.T) {
	e := New(60)
	if _, err := e.AdjustSector("submarine", -10, false); !errors.Is(err, ErrSectorNotFound) {
		t.Errorf("expected ErrSectorNotFound, got %v", err)
	}
}

func TestAdjustSectorLockSecuresAtZero(t *testing.T) {
	e := New(60)

	res, err := e.AdjustSector("power", -1000, true)
	if err != nil {
		t.Fatalf("AdjustSector failed: %v", err)
	}
	if !res.Locked {
		t.Error("sector should be locked")
	}
	if !res.Secured {
		t.Error("sector at zero with lock should be secured")
	}

	// A locked sector above zero is locked but not secured.
	res, err = e.AdjustSector("water", -1, true)
	if err != nil {
		t.Fatalf("AdjustSector failed: %v", err)
	}
	if !res.Locked {
		t.Error("sector should be locked")
	}
	if res.Secured && res.NewPercent > 0 {
		t.Error("sector above zero must not be secured")
	}
}

func TestUnlockClearsSecured(t *testing.T) {
	e := New(60)

	if err := e.SecureSector("telecom"); err != nil {
		t.Fatalf("SecureSector failed: %v", err)
	}
	snap := e.Snapshot()
	if !snap.Sectors["telecom"].Secured || !snap.Sectors["telecom"].Locked {
		t.Fatal("secured sector should be locked and secured")
	}
	if snap.Sectors["telecom"].Compromise != 0 {
		t.Errorf("secured sector compromise should be 0, got %.2f", snap.Sectors["telecom"].Compromise)
	}

	if err := e.LockSector("telecom", false); err != nil {
		t.Fatalf("LockSector failed: %v", err)
	}
	snap = e.Snapshot()
	if snap.Sectors["telecom"].Secured {
		t.Error("unlocking must clear the secured flag")
	}
	if snap.Sectors["telecom"].Locked {
		t.Error("sector should be unlocked")
	}
}

func TestGlobalThreatIsMean(t *testing.T) {
	e := New(60)

	for _, def := range sectorDefs {
		if _, err := e.SetSectorCompromise(def.id, 50); err != nil {
			t.Fatalf("SetSectorCompromise(%s) failed: %v", def.id, err)
		}
	}

	if got := e.GlobalThreat(); math.Abs(got-50) > 1e-9 {
		t.Errorf("expected global threat 50, got %.4f", got)
	}
}

func TestTryPasswordGlobalReset(t *testing.T) {
	e := New(60)

	for _, def := range sectorDefs {
		if _, err := e.SetSectorCompromise(def.id, 20); err != nil {
			t.Fatalf("SetSectorCompromise failed: %v", err)
		}
	}

	result := e.TryPassword("GLOBAL_RESET")
	if !result.Success {
		t.Fatalf("expected GLOBAL_RESET to succeed: %s", result.Message)
	}
	if len(result.Affected) != 12 {
		t.Errorf("expected 12 affected sectors, got %d", len(result.Affected))
	}
	for _, adj := range result.Affected {
		if adj.NewPercent != 10 {
			t.Errorf("sector %s expected 10 after reset, got %.2f", adj.SectorID, adj.NewPercent)
		}
	}

	// One-time: second attempt is rejected without mutation.
	before := e.GlobalThreat()
	result = e.TryPassword("GLOBAL_RESET")
	if result.Success {
		t.Error("one-time password should not redeem twice")
	}
	if got := e.GlobalThreat(); got != before {
		t.Errorf("failed redemption must not mutate state: %.2f != %.2f", got, before)
	}
}

func TestTryPasswordReusable(t *testing.T) {
	e := New(60)

	first := e.TryPassword("BACKDOOR_EXIT")
	second := e.TryPassword("backdoor_exit") // case-insensitive
	if !first.Success || !second.Success {
		t.Error("reusable password should redeem repeatedly")
	}
}

func TestTryPasswordUnknown(t *testing.T) {
	e := New(60)

	result := e.TryPassword("WRONG_CODE")
	if result.Success {
		t.Error("unknown code must fail")
	}
	if result.Affected == nil {
		t.Error("failure result should carry an empty affected list, not nil")
	}
	if len(result.Affected) != 0 {
		t.Errorf("failure must not touch sectors, affected %d", len(result.Affected))
	}
}

func TestPutPasswordReplacesExisting(t *testing.T) {
	e := New(60)

	err := e.PutPassword(models.Password{Code: "firewall_alpha", TargetSector: "financial", Reduction: 40, OneTime: true})
	if err != nil {
		t.Fatalf("PutPassword failed: %v", err)
	}

	if got := len(e.Passwords()); got != 10 {
		t.Fatalf("replace must not grow the registry: got %d passwords", got)
	}

	res := e.TryPassword("FIREWALL_ALPHA")
	if !res.Success {
		t.Fatalf("replaced password rejected: %s", res.Message)
	}
	if res.Reduction != 40 {
		t.Errorf("expected overridden reduction 40, got %g", res.Reduction)
	}
}

func TestAttackIncrement(t *testing.T) {
	e := New(60)
	if got := e.attackIncrementLocked(); math.Abs(got-0.05) > 1e-9 {
		t.Errorf("60-minute session expected increment 0.05, got %.6f", got)
	}

	e.SetSessionDuration(30)
	if got := e.attackIncrementLocked(); math.Abs(got-0.1) > 1e-9 {
		t.Errorf("30-minute session expected increment 0.1, got %.6f", got)
	}
}

func TestTickAdvancesUnlockedSectors(t *testing.T) {
	e := New(60)
	e.mu.Lock()
	e.active = true
	e.mu.Unlock()

	if err := e.SecureSector("nuclear"); err != nil {
		t.Fatalf("SecureSector failed: %v", err)
	}

	before := make(map[string]float64)
	for id, s := range e.Snapshot().Sectors {
		before[id] = s.Compromise
	}

	e.tick()

	after := e.Snapshot()
	for id, s := range after.Sectors {
		if id == "nuclear" {
			if s.Compromise != before[id] {
				t.Errorf("secured sector must not advance: %.2f -> %.2f", before[id], s.Compromise)
			}
			continue
		}
		if s.Compromise < before[id] {
			t.Errorf("sector %s regressed on tick: %.2f -> %.2f", id, before[id], s.Compromise)
		}
	}
	if after.GlobalThreat < 0 || after.GlobalThreat > 100 {
		t.Errorf("global threat out of range: %.2f", after.GlobalThreat)
	}
}

func TestTickStopsAtHundred(t *testing.T) {
	e := New(10) // shortest session, largest increment
	e.mu.Lock()
	e.active = true
	for _, s := range e.sectors {
		s.Compromise = 99.99
	}
	e.mu.Unlock()

	for i := 0; i < 20; i++ {
		e.tick()
	}

	for id, s := range e.Snapshot().Sectors {
		if s.Compromise > 100 {
			t.Errorf("sector %s exceeded 100: %.4f", id, s.Compromise)
		}
	}
}

func TestTickLockCompensation(t *testing.T) {
	e := New(10) // base increment 0.3 per tick
	e.mu.Lock()
	e.active = true
	for id, s := range e.sectors {
		s.Compromise = 0
		s.AttackSpeed = 1.0
		s.Locked = id != "media"
	}
	e.mu.Unlock()

	const ticks = 200
	for i := 0; i < ticks; i++ {
		e.tick()
	}

	// 11 locked sectors make the open one take 1.55x the base rate. The
	// per-tick variation averages out over 200 ticks, so total gain lands
	// near 0.3*1.55*200 = 93; an uncompensated run would sit near 60.
	e.mu.Lock()
	defer e.mu.Unlock()
	gain := e.sectors["media"].Compromise
	if gain < 84 || gain >= 100 {
		t.Errorf("expected compensated gain near 93 after %d ticks, got %.2f", ticks, gain)
	}
	for id, s := range e.sectors {
		if id != "media" && s.Compromise != 0 {
			t.Errorf("locked sector %s advanced to %.2f", id, s.Compromise)
		}
	}
}

func TestTimeBonusBeforeStartIsNoop(t *testing.T) {
	e := New(60)
	e.AddTimeBonus(300)

	snap := e.Snapshot()
	if snap.ElapsedSeconds != 0 {
		t.Errorf("elapsed should stay 0 before start, got %d", snap.ElapsedSeconds)
	}
	if snap.TimeRemainingSeconds != 3600 {
		t.Errorf("remaining should be full session, got %d", snap.TimeRemainingSeconds)
	}
}

func TestTimeAdjustmentsDuringSession(t *testing.T) {
	e := New(60)
	e.Start()
	defer e.Stop()

	e.SubtractTime(120)
	snap := e.Snapshot()
	if snap.TimeRemainingSeconds > 3480 || snap.TimeRemainingSeconds < 3478 {
		t.Errorf("expected remaining near 3480 after 120s penalty, got %d", snap.TimeRemainingSeconds)
	}

	e.AddTimeBonus(60)
	snap = e.Snapshot()
	if snap.TimeRemainingSeconds > 3540 || snap.TimeRemainingSeconds < 3538 {
		t.Errorf("expected remaining near 3540 after 60s refund, got %d", snap.TimeRemainingSeconds)
	}
}

func TestETAInactiveEqualsSession(t *testing.T) {
	e := New(45)
	snap := e.Snapshot()
	if snap.ETACollapseSeconds != 45*60 {
		t.Errorf("inactive ETA should equal session length, got %d", snap.ETACollapseSeconds)
	}
}

func TestResetClearsPasswordUse(t *testing.T) {
	e := New(60)

	if res := e.TryPassword("FIREWALL_ALPHA"); !res.Success {
		t.Fatalf("expected redemption to succeed: %s", res.Message)
	}
	e.Reset()

	if res := e.TryPassword("FIREWALL_ALPHA"); !res.Success {
		t.Error("reset should clear one-time password usage")
	}
}

func TestObserverNotification(t *testing.T) {
	e := New(60)

	var last *float64
	id := e.Subscribe(func(snap models.Snapshot) {
		v := snap.GlobalThreat
		last = &v
	})
	defer e.Unsubscribe(id)

	// A panicking observer must not block the healthy one.
	e.Subscribe(func(models.Snapshot) { panic("broken display") })

	if _, err := e.AdjustSector("financial", 5, false); err != nil {
		t.Fatalf("AdjustSector failed: %v", err)
	}
	if last == nil {
		t.Fatal("observer was not notified after mutation")
	}
}
