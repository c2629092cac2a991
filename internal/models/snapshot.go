package models

// Snapshot is the fully computed, immutable view of the game produced after
// every mutation and every tick, and pushed to registered observers.
type Snapshot struct {
	Sectors map[string]SectorView `json:"sectors"`

	GlobalThreat float64 `json:"global_threat_level"`
	Active       bool    `json:"game_active"`

	SessionDurationMinutes int   `json:"session_duration_minutes"`
	ElapsedSeconds         int64 `json:"elapsed_seconds"`
	TimeRemainingSeconds   int64 `json:"time_remaining_seconds"`
	ETACollapseSeconds     int64 `json:"eta_collapse_seconds"`
}
