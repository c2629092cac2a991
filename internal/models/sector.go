package models

// SectorStatus is the derived display status of a sector
type SectorStatus string

const (
	StatusSecured     SectorStatus = "SECURED"
	StatusLocked      SectorStatus = "LOCKED"
	StatusCompromised SectorStatus = "COMPROMISED"
	StatusCritical    SectorStatus = "CRITICAL"
	StatusAttacking   SectorStatus = "ATTACKING"
	StatusBreaching   SectorStatus = "BREACHING"
	StatusScanning    SectorStatus = "SCANNING"
)

// Sector is one infrastructure domain tracked by compromise percentage.
// Compromise is always kept within [0,100] by the engine.
type Sector struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Icon        string  `json:"icon"`
	Description string  `json:"description"`
	Compromise  float64 `json:"compromise_percent"`
	AttackSpeed float64 `json:"attack_speed"`
	Active      bool    `json:"is_active"`
	Locked      bool    `json:"is_locked"`
	Secured     bool    `json:"is_secured"`
}

// Status derives the display status from the sector's state.
// Secured outranks locked, which outranks the compromise ladder.
func (s *Sector) Status() SectorStatus {
	switch {
	case s.Secured:
		return StatusSecured
	case s.Locked:
		return StatusLocked
	case s.Compromise >= 100:
		return StatusCompromised
	case s.Compromise >= 75:
		return StatusCritical
	case s.Compromise >= 50:
		return StatusAttacking
	case s.Compromise >= 25:
		return StatusBreaching
	default:
		return StatusScanning
	}
}

// SectorView is the read-only representation pushed to observers
type SectorView struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Icon        string       `json:"icon"`
	Description string       `json:"description"`
	Compromise  float64      `json:"compromise_percent"`
	Status      SectorStatus `json:"status"`
	Active      bool         `json:"is_active"`
	Locked      bool         `json:"is_locked"`
	Secured     bool         `json:"is_secured"`
}

// AdjustResult reports a single sector adjustment
type AdjustResult struct {
	SectorID   string  `json:"sector_id"`
	OldPercent float64 `json:"old_percent"`
	NewPercent float64 `json:"new_percent"`
	Locked     bool    `json:"is_locked"`
	Secured    bool    `json:"is_secured"`
}
