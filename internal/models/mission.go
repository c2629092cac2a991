package models

import "time"

// MissionStatus is the lifecycle state of a mission
type MissionStatus string

const (
	MissionPending   MissionStatus = "pending"
	MissionCompleted MissionStatus = "completed"
	MissionFailed    MissionStatus = "failed"
)

// AdjustmentScope selects which sectors a mission outcome touches
type AdjustmentScope string

const (
	ScopeSingle   AdjustmentScope = "single"
	ScopeAll      AdjustmentScope = "all"
	ScopeMultiple AdjustmentScope = "multiple"
)

// Mission is an externally-triggered puzzle outcome that adjusts sector
// compromise on completion or failure.
type Mission struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`

	Scope         AdjustmentScope `json:"adjustment_type" yaml:"adjustment_type"`
	TargetSector  string          `json:"target_sector,omitempty" yaml:"target_sector"`
	TargetSectors []string        `json:"target_sectors,omitempty" yaml:"target_sectors"`

	SuccessReduction float64 `json:"success_reduction" yaml:"success_reduction"`
	FailurePenalty   float64 `json:"failure_penalty" yaml:"failure_penalty"`

	LockOnComplete  bool `json:"lock_on_complete" yaml:"lock_on_complete"`
	MaxAttempts     int  `json:"max_attempts" yaml:"max_attempts"` // 0 = unlimited
	CurrentAttempts int  `json:"current_attempts" yaml:"-"`

	Status      MissionStatus `json:"status" yaml:"-"`
	CompletedAt *time.Time    `json:"completed_at,omitempty" yaml:"-"`
}

// AttemptsRemaining returns attempts left, or -1 for unlimited
func (m *Mission) AttemptsRemaining() int {
	if m.MaxAttempts <= 0 {
		return -1
	}
	left := m.MaxAttempts - m.CurrentAttempts
	if left < 0 {
		return 0
	}
	return left
}

// MissionOutcome reports an adjudicated complete/fail trigger
type MissionOutcome struct {
	MissionID         string   `json:"mission_id"`
	MissionName       string   `json:"mission_name"`
	Adjustment        float64  `json:"adjustment"`
	AffectedSectors   []string `json:"affected_sectors"`
	Locked            bool     `json:"locked"`
	AttemptsRemaining int      `json:"attempts_remaining"` // -1 = unlimited
}
