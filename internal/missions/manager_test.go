package missions

import (
	"errors"
	"testing"

	"github.com/blacksite-games/incursion-engine/internal/models"
)

// fakeEngine records adjustments instead of mutating real sectors
type fakeEngine struct {
	single []fakeAdjust
	all    []float64
}

type fakeAdjust struct {
	sectorID string
	delta    float64
	lock     bool
}

func (f *fakeEngine) AdjustSector(id string, delta float64, lock bool) (*models.AdjustResult, error) {
	f.single = append(f.single, fakeAdjust{sectorID: id, delta: delta, lock: lock})
	return &models.AdjustResult{SectorID: id, NewPercent: 50 + delta, Locked: lock}, nil
}

func (f *fakeEngine) AdjustAllSectors(delta float64) []models.AdjustResult {
	f.all = append(f.all, delta)
	return []models.AdjustResult{
		{SectorID: "financial", NewPercent: 50 + delta},
		{SectorID: "power", NewPercent: 50 + delta},
	}
}

func TestDefaultMissionsSeeded(t *testing.T) {
	m := NewManager(&fakeEngine{})
	list := m.List()
	if len(list) != 12 {
		t.Fatalf("expected 12 default missions, got %d", len(list))
	}
	for _, mission := range list {
		if mission.Status != models.MissionPending {
			t.Errorf("mission %s should start pending, got %s", mission.ID, mission.Status)
		}
	}
}

func TestCompleteAppliesReduction(t *testing.T) {
	engine := &fakeEngine{}
	m := NewManager(engine)
	m.missions["test"] = &models.Mission{
		ID:               "test",
		Name:             "Test Mission",
		Scope:            models.ScopeSingle,
		TargetSector:     "power",
		SuccessReduction: 25,
		LockOnComplete:   true,
		Status:           models.MissionPending,
	}

	outcome, err := m.Complete("test")
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	if len(engine.single) != 1 {
		t.Fatalf("expected 1 engine call, got %d", len(engine.single))
	}
	call := engine.single[0]
	if call.sectorID != "power" || call.delta != -25 || !call.lock {
		t.Errorf("unexpected adjustment: %+v", call)
	}

	if outcome.Adjustment != -25 {
		t.Errorf("expected adjustment -25, got %.1f", outcome.Adjustment)
	}
	if !outcome.Locked {
		t.Error("outcome should report lock")
	}

	got, _ := m.Get("test")
	if got.Status != models.MissionCompleted {
		t.Errorf("expected status completed, got %s", got.Status)
	}
	if got.CompletedAt == nil {
		t.Error("CompletedAt should be set")
	}
}

func TestCompleteTwiceRejected(t *testing.T) {
	m := NewManager(&fakeEngine{})
	m.missions["test"] = &models.Mission{
		ID: "test", Name: "Test", Scope: models.ScopeSingle,
		TargetSector: "power", SuccessReduction: 10,
		Status: models.MissionPending,
	}

	if _, err := m.Complete("test"); err != nil {
		t.Fatalf("first Complete failed: %v", err)
	}
	if _, err := m.Complete("test"); !errors.Is(err, ErrAlreadyCompleted) {
		t.Errorf("expected ErrAlreadyCompleted, got %v", err)
	}
}

func TestFailExhaustsAttempts(t *testing.T) {
	engine := &fakeEngine{}
	m := NewManager(engine)
	m.missions["test"] = &models.Mission{
		ID: "test", Name: "Test", Scope: models.ScopeSingle,
		TargetSector: "power", FailurePenalty: 15, MaxAttempts: 2,
		Status: models.MissionPending,
	}

	out, err := m.Fail("test")
	if err != nil {
		t.Fatalf("first Fail errored: %v", err)
	}
	if out.AttemptsRemaining != 1 {
		t.Errorf("expected 1 attempt remaining, got %d", out.AttemptsRemaining)
	}

	out, err = m.Fail("test")
	if err != nil {
		t.Fatalf("second Fail errored: %v", err)
	}
	if out.AttemptsRemaining != 0 {
		t.Errorf("expected 0 attempts remaining, got %d", out.AttemptsRemaining)
	}

	got, _ := m.Get("test")
	if got.Status != models.MissionFailed {
		t.Errorf("expected status failed after exhausting attempts, got %s", got.Status)
	}

	if _, err := m.Fail("test"); !errors.Is(err, ErrNoAttemptsRemaining) {
		t.Errorf("expected ErrNoAttemptsRemaining, got %v", err)
	}

	// Penalty applied on each recorded failure, never locking.
	if len(engine.single) != 2 {
		t.Fatalf("expected 2 penalty adjustments, got %d", len(engine.single))
	}
	for _, call := range engine.single {
		if call.delta != 15 || call.lock {
			t.Errorf("unexpected penalty call: %+v", call)
		}
	}
}

func TestFailUnlimitedAttempts(t *testing.T) {
	m := NewManager(&fakeEngine{})
	m.missions["test"] = &models.Mission{
		ID: "test", Name: "Test", Scope: models.ScopeSingle,
		TargetSector: "power", FailurePenalty: 5,
		Status: models.MissionPending,
	}

	for i := 0; i < 5; i++ {
		out, err := m.Fail("test")
		if err != nil {
			t.Fatalf("Fail %d errored: %v", i+1, err)
		}
		if out.AttemptsRemaining != -1 {
			t.Errorf("unlimited mission should report -1 remaining, got %d", out.AttemptsRemaining)
		}
	}
}

func TestAllScopeNeverLocks(t *testing.T) {
	engine := &fakeEngine{}
	m := NewManager(engine)
	m.missions["test"] = &models.Mission{
		ID: "test", Name: "Test", Scope: models.ScopeAll,
		SuccessReduction: 10, LockOnComplete: true,
		Status: models.MissionPending,
	}

	outcome, err := m.Complete("test")
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if len(engine.all) != 1 || engine.all[0] != -10 {
		t.Errorf("expected one all-sector adjustment of -10, got %v", engine.all)
	}
	if len(engine.single) != 0 {
		t.Errorf("all-scope must not make per-sector calls, got %d", len(engine.single))
	}
	if len(outcome.AffectedSectors) != 2 {
		t.Errorf("expected 2 affected sectors from fake, got %d", len(outcome.AffectedSectors))
	}
}

func TestMultipleScope(t *testing.T) {
	engine := &fakeEngine{}
	m := NewManager(engine)
	m.missions["test"] = &models.Mission{
		ID: "test", Name: "Test", Scope: models.ScopeMultiple,
		TargetSectors:    []string{"internet", "telecom"},
		SuccessReduction: 20,
		Status:           models.MissionPending,
	}

	outcome, err := m.Complete("test")
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if len(engine.single) != 2 {
		t.Fatalf("expected 2 adjustments, got %d", len(engine.single))
	}
	if outcome.AffectedSectors[0] != "internet" || outcome.AffectedSectors[1] != "telecom" {
		t.Errorf("unexpected affected sectors: %v", outcome.AffectedSectors)
	}
}

func TestAddDuplicateRejected(t *testing.T) {
	m := NewManager(&fakeEngine{})
	mission := models.Mission{ID: "dup", Name: "Dup"}
	if err := m.Add(mission); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := m.Add(mission); !errors.Is(err, ErrMissionExists) {
		t.Errorf("expected ErrMissionExists, got %v", err)
	}
}

func TestPutReplacesExisting(t *testing.T) {
	m := NewManager(&fakeEngine{})

	m.Put(models.Mission{ID: "firewall_breach", Name: "Firewall Breach MkII", SuccessReduction: 99})

	got, err := m.Get("firewall_breach")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.SuccessReduction != 99 {
		t.Errorf("expected overridden reduction 99, got %g", got.SuccessReduction)
	}
	if got.Status != models.MissionPending {
		t.Errorf("replaced mission should reset to pending, got %s", got.Status)
	}
	if len(m.List()) != 12 {
		t.Errorf("replace must not grow the mission set: got %d", len(m.List()))
	}
}

func TestUnknownMission(t *testing.T) {
	m := NewManager(&fakeEngine{})
	if _, err := m.Complete("ghost"); !errors.Is(err, ErrMissionNotFound) {
		t.Errorf("Complete: expected ErrMissionNotFound, got %v", err)
	}
	if _, err := m.Fail("ghost"); !errors.Is(err, ErrMissionNotFound) {
		t.Errorf("Fail: expected ErrMissionNotFound, got %v", err)
	}
	if err := m.Reset("ghost"); !errors.Is(err, ErrMissionNotFound) {
		t.Errorf("Reset: expected ErrMissionNotFound, got %v", err)
	}
}

func TestResetRestoresMission(t *testing.T) {
	m := NewManager(&fakeEngine{})
	m.missions["test"] = &models.Mission{
		ID: "test", Name: "Test", Scope: models.ScopeSingle,
		TargetSector: "power", SuccessReduction: 10,
		Status: models.MissionPending,
	}

	if _, err := m.Complete("test"); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if err := m.Reset("test"); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	got, _ := m.Get("test")
	if got.Status != models.MissionPending || got.CurrentAttempts != 0 || got.CompletedAt != nil {
		t.Errorf("reset mission not restored: %+v", got)
	}
}

func TestEventLogBounded(t *testing.T) {
	m := NewManager(&fakeEngine{})

	for i := 0; i < 150; i++ {
		m.LogEvent("test_event", map[string]any{"n": i})
	}

	events := m.Events(0)
	if len(events) != eventLogCapacity {
		t.Fatalf("expected log capped at %d, got %d", eventLogCapacity, len(events))
	}

	// Oldest first, and the oldest surviving entry is n=50.
	if events[0].Details["n"] != 50 {
		t.Errorf("expected oldest surviving event n=50, got %v", events[0].Details["n"])
	}
	if events[len(events)-1].Details["n"] != 149 {
		t.Errorf("expected newest event n=149, got %v", events[len(events)-1].Details["n"])
	}

	limited := m.Events(10)
	if len(limited) != 10 {
		t.Fatalf("expected 10 events, got %d", len(limited))
	}
	if limited[0].Details["n"] != 140 {
		t.Errorf("limited window should start at n=140, got %v", limited[0].Details["n"])
	}
}
