package models

// Password is a redeemable countermeasure code. TargetSector empty means the
// reduction applies to every sector.
type Password struct {
	Code         string  `json:"code" yaml:"code"`
	TargetSector string  `json:"target_sector,omitempty" yaml:"target_sector"`
	Reduction    float64 `json:"reduction_percent" yaml:"reduction_percent"`
	OneTime      bool    `json:"one_time" yaml:"one_time"`
	Used         bool    `json:"used" yaml:"-"`
	Hint         string  `json:"hint,omitempty" yaml:"hint"`
}

// PasswordResult is the fail-soft outcome of a redemption attempt
type PasswordResult struct {
	Success   bool           `json:"success"`
	Message   string         `json:"message"`
	Reduction float64        `json:"reduction"`
	Affected  []AdjustResult `json:"affected_sectors"`
}
