package models

import "time"

// Event is one entry in the bounded audit log kept by the mission manager
type Event struct {
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	Type      string         `json:"event_type"`
	Details   map[string]any `json:"details"`
}

// TimeString formats the timestamp for display on game-master consoles
func (e Event) TimeString() string {
	return e.Timestamp.Format("15:04:05")
}
