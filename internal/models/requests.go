package models

// Request bodies accepted by the HTTP API. Kept here so pkg/client can share
// the wire shapes with the server.

// PasswordAttempt is a redemption attempt
type PasswordAttempt struct {
	Code string `json:"code"`
}

// PasswordCreate adds a new password (game-master function)
type PasswordCreate struct {
	Code         string  `json:"code"`
	TargetSector string  `json:"target_sector,omitempty"`
	Reduction    float64 `json:"reduction_percent"`
	OneTime      bool    `json:"one_time"`
	Hint         string  `json:"hint,omitempty"`
}

// SectorAdjustment adjusts one sector by a signed delta
type SectorAdjustment struct {
	SectorID   string  `json:"sector_id"`
	Adjustment float64 `json:"adjustment"`
	Lock       bool    `json:"lock,omitempty"`
}

// AllSectorAdjustment adjusts every sector by the same delta
type AllSectorAdjustment struct {
	Adjustment float64 `json:"adjustment"`
}

// SectorSet overrides a sector's compromise to an absolute value
type SectorSet struct {
	SectorID   string  `json:"sector_id"`
	Compromise float64 `json:"compromise_percent"`
}

// SessionConfig sets the session duration
type SessionConfig struct {
	DurationMinutes int `json:"duration_minutes"`
}

// MissionTrigger fires a mission complete/fail
type MissionTrigger struct {
	MissionID string `json:"mission_id"`
}

// MissionCreate registers a new mission (admin function)
type MissionCreate struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description,omitempty"`
	AdjustmentType   string   `json:"adjustment_type,omitempty"`
	TargetSector     string   `json:"target_sector,omitempty"`
	TargetSectors    []string `json:"target_sectors,omitempty"`
	SuccessReduction float64  `json:"success_reduction,omitempty"`
	FailurePenalty   float64  `json:"failure_penalty,omitempty"`
	LockOnComplete   bool     `json:"lock_on_complete,omitempty"`
	MaxAttempts      int      `json:"max_attempts,omitempty"`
}

// ChallengeInject forces a specific challenge to become active
type ChallengeInject struct {
	ChallengeID string `json:"challenge_id"`
}

// ChallengeAnswer submits a player answer for the active challenge
type ChallengeAnswer struct {
	Answer string `json:"answer"`
}

// ChallengeForceVerify resolves the active challenge without answer matching
type ChallengeForceVerify struct {
	IsCorrect bool `json:"is_correct"`
}

// HintSend broadcasts a free-text hint to all connected players
type HintSend struct {
	Message string `json:"message"`
}
