package missions

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/blacksite-games/incursion-engine/internal/models"
)

// Common errors
var (
	ErrMissionNotFound     = errors.New("mission not found")
	ErrAlreadyCompleted    = errors.New("mission already completed")
	ErrNoAttemptsRemaining = errors.New("no attempts remaining")
	ErrMissionExists       = errors.New("mission already exists")
)

// eventLogCapacity bounds the audit log; oldest entries are evicted first
const eventLogCapacity = 100

// SectorAdjuster is the slice of the game engine the mission manager needs
type SectorAdjuster interface {
	AdjustSector(id string, delta float64, lock bool) (*models.AdjustResult, error)
	AdjustAllSectors(delta float64) []models.AdjustResult
}

// Manager adjudicates mission triggers and keeps the bounded event log
type Manager struct {
	mu       sync.Mutex
	missions map[string]*models.Mission
	events   []models.Event
	engine   SectorAdjuster
}

// NewManager creates a manager seeded with the default mission set
func NewManager(engine SectorAdjuster) *Manager {
	m := &Manager{
		missions: make(map[string]*models.Mission),
		engine:   engine,
	}
	for _, def := range defaultMissions() {
		mission := def
		mission.Status = models.MissionPending
		m.missions[mission.ID] = &mission
	}
	return m
}

// Add registers a mission. Duplicate ids are rejected.
func (m *Manager) Add(mission models.Mission) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.missions[mission.ID]; exists {
		return fmt.Errorf("%w: %s", ErrMissionExists, mission.ID)
	}
	if mission.Scope == "" {
		mission.Scope = models.ScopeSingle
	}
	mission.Status = models.MissionPending
	mission.CurrentAttempts = 0
	mission.CompletedAt = nil
	m.missions[mission.ID] = &mission

	slog.Info("mission created", "id", mission.ID, "scope", mission.Scope)
	return nil
}

// Put registers a mission, replacing any existing entry with the same id.
// Scenario content overlays use this to override built-ins.
func (m *Manager) Put(mission models.Mission) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if mission.Scope == "" {
		mission.Scope = models.ScopeSingle
	}
	mission.Status = models.MissionPending
	mission.CurrentAttempts = 0
	mission.CompletedAt = nil
	if _, exists := m.missions[mission.ID]; exists {
		slog.Info("mission replaced", "id", mission.ID)
	}
	m.missions[mission.ID] = &mission
}

// Remove deletes a mission by id
func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.missions[id]; !exists {
		return fmt.Errorf("%w: %s", ErrMissionNotFound, id)
	}
	delete(m.missions, id)
	return nil
}

// Get returns a copy of the mission
func (m *Manager) Get(id string) (*models.Mission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	mission, ok := m.missions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissionNotFound, id)
	}
	cp := *mission
	return &cp, nil
}

// List returns copies of all missions
func (m *Manager) List() []models.Mission {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Mission, 0, len(m.missions))
	for _, mission := range m.missions {
		out = append(out, *mission)
	}
	return out
}

// Complete marks a mission completed and applies its success reduction through
// the engine using the mission's adjustment scope. Rejected if the mission is
// unknown, already completed, or out of attempts.
func (m *Manager) Complete(id string) (*models.MissionOutcome, error) {
	m.mu.Lock()
	mission, ok := m.missions[id]
	if !ok {
		m.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrMissionNotFound, id)
	}
	if mission.Status == models.MissionCompleted {
		m.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrAlreadyCompleted, id)
	}
	if mission.MaxAttempts > 0 && mission.CurrentAttempts >= mission.MaxAttempts {
		m.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrNoAttemptsRemaining, id)
	}

	now := time.Now()
	mission.Status = models.MissionCompleted
	mission.CompletedAt = &now
	cp := *mission
	m.mu.Unlock()

	// Engine calls happen outside m.mu; the engine has its own lock.
	affected := m.applyAdjustment(&cp, -cp.SuccessReduction, cp.LockOnComplete)

	m.logEvent("mission_complete", map[string]any{
		"mission_id":       cp.ID,
		"mission_name":     cp.Name,
		"reduction":        cp.SuccessReduction,
		"affected_sectors": affected,
		"locked":           cp.LockOnComplete,
	})

	slog.Info("mission completed", "id", cp.ID, "affected", affected)

	return &models.MissionOutcome{
		MissionID:         cp.ID,
		MissionName:       cp.Name,
		Adjustment:        -cp.SuccessReduction,
		AffectedSectors:   affected,
		Locked:            cp.LockOnComplete,
		AttemptsRemaining: cp.AttemptsRemaining(),
	}, nil
}

// Fail records a mission failure: increments the attempt counter, transitions
// to failed when attempts run out, and applies the failure penalty (never
// locking). Rejected if unknown or already completed.
func (m *Manager) Fail(id string) (*models.MissionOutcome, error) {
	m.mu.Lock()
	mission, ok := m.missions[id]
	if !ok {
		m.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrMissionNotFound, id)
	}
	if mission.Status == models.MissionCompleted {
		m.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrAlreadyCompleted, id)
	}
	if mission.Status == models.MissionFailed {
		m.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrNoAttemptsRemaining, id)
	}

	mission.CurrentAttempts++
	if mission.MaxAttempts > 0 && mission.CurrentAttempts >= mission.MaxAttempts {
		mission.Status = models.MissionFailed
	}
	cp := *mission
	m.mu.Unlock()

	affected := m.applyAdjustment(&cp, cp.FailurePenalty, false)

	m.logEvent("mission_failed", map[string]any{
		"mission_id":       cp.ID,
		"mission_name":     cp.Name,
		"penalty":          cp.FailurePenalty,
		"affected_sectors": affected,
		"attempts_used":    cp.CurrentAttempts,
		"max_attempts":     cp.MaxAttempts,
	})

	slog.Info("mission failed", "id", cp.ID, "attempts", cp.CurrentAttempts, "max", cp.MaxAttempts)

	return &models.MissionOutcome{
		MissionID:         cp.ID,
		MissionName:       cp.Name,
		Adjustment:        cp.FailurePenalty,
		AffectedSectors:   affected,
		AttemptsRemaining: cp.AttemptsRemaining(),
	}, nil
}

// applyAdjustment routes the delta through the engine per the mission scope.
// The all-sectors scope never locks.
func (m *Manager) applyAdjustment(mission *models.Mission, delta float64, lock bool) []string {
	var affected []string

	switch mission.Scope {
	case models.ScopeAll:
		for _, res := range m.engine.AdjustAllSectors(delta) {
			affected = append(affected, res.SectorID)
		}
	case models.ScopeMultiple:
		for _, sectorID := range mission.TargetSectors {
			if _, err := m.engine.AdjustSector(sectorID, delta, lock); err == nil {
				affected = append(affected, sectorID)
			}
		}
	default: // single sector
		if mission.TargetSector != "" {
			if _, err := m.engine.AdjustSector(mission.TargetSector, delta, lock); err == nil {
				affected = append(affected, mission.TargetSector)
			}
		}
	}

	return affected
}

// Reset returns a mission to pending with zeroed attempts
func (m *Manager) Reset(id string) error {
	m.mu.Lock()
	mission, ok := m.missions[id]
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrMissionNotFound, id)
	}
	mission.Status = models.MissionPending
	mission.CurrentAttempts = 0
	mission.CompletedAt = nil
	m.mu.Unlock()

	m.logEvent("mission_reset", map[string]any{"mission_id": id})
	return nil
}

// ResetAll returns every mission to pending and clears the event log
func (m *Manager) ResetAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, mission := range m.missions {
		mission.Status = models.MissionPending
		mission.CurrentAttempts = 0
		mission.CompletedAt = nil
	}
	m.events = nil
}

// LogEvent appends an entry to the bounded audit log
func (m *Manager) LogEvent(eventType string, details map[string]any) {
	m.logEvent(eventType, details)
}

func (m *Manager) logEvent(eventType string, details map[string]any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.events = append(m.events, models.Event{
		ID:        uuid.New().String(),
		Timestamp: time.Now(),
		Type:      eventType,
		Details:   details,
	})
	if len(m.events) > eventLogCapacity {
		m.events = m.events[len(m.events)-eventLogCapacity:]
	}
}

// Events returns the most recent entries, oldest first
func (m *Manager) Events(limit int) []models.Event {
	m.mu.Lock()
	defer m.mu.Unlock()

	if limit <= 0 || limit > len(m.events) {
		limit = len(m.events)
	}
	out := make([]models.Event, limit)
	copy(out, m.events[len(m.events)-limit:])
	return out
}
