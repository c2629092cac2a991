package missions

import "github.com/blacksite-games/incursion-engine/internal/models"

func defaultMissions() []models.Mission {
	return []models.Mission{
		{
			ID:               "firewall_breach",
			Name:             "Firewall Breach Protocol",
			Description:      "Decrypt the firewall access codes",
			Scope:            models.ScopeSingle,
			TargetSector:     "financial",
			SuccessReduction: 25.0,
			FailurePenalty:   10.0,
		},
		{
			ID:               "power_grid_stabilize",
			Name:             "Power Grid Stabilization",
			Description:      "Restore power grid frequency balance",
			Scope:            models.ScopeSingle,
			TargetSector:     "power",
			SuccessReduction: 30.0,
			FailurePenalty:   15.0,
			LockOnComplete:   true,
		},
		{
			ID:               "satellite_uplink",
			Name:             "Satellite Uplink Recovery",
			Description:      "Re-establish satellite communication",
			Scope:            models.ScopeSingle,
			TargetSector:     "satellite",
			SuccessReduction: 25.0,
			FailurePenalty:   10.0,
		},
		{
			ID:               "network_isolation",
			Name:             "Network Isolation Protocol",
			Description:      "Isolate infected network segments",
			Scope:            models.ScopeMultiple,
			TargetSectors:    []string{"telecom", "media"},
			SuccessReduction: 20.0,
			FailurePenalty:   10.0,
		},
		{
			ID:               "master_override",
			Name:             "Master System Override",
			Description:      "Activate global defense protocol",
			Scope:            models.ScopeAll,
			SuccessReduction: 15.0,
			FailurePenalty:   5.0,
			MaxAttempts:      1,
		},
		{
			ID:               "nuclear_failsafe",
			Name:             "Nuclear Failsafe Activation",
			Description:      "Engage nuclear plant safety protocols",
			Scope:            models.ScopeSingle,
			TargetSector:     "nuclear",
			SuccessReduction: 50.0,
			FailurePenalty:   25.0,
			LockOnComplete:   true,
			MaxAttempts:      2,
		},
		{
			ID:               "emergency_broadcast",
			Name:             "Emergency Broadcast System",
			Description:      "Restore emergency communication channels",
			Scope:            models.ScopeMultiple,
			TargetSectors:    []string{"emergency", "government"},
			SuccessReduction: 20.0,
			FailurePenalty:   10.0,
		},
		{
			ID:               "water_purification",
			Name:             "Water System Purification",
			Description:      "Clear malware from water treatment systems",
			Scope:            models.ScopeSingle,
			TargetSector:     "water",
			SuccessReduction: 30.0,
			FailurePenalty:   15.0,
			LockOnComplete:   true,
		},
		{
			ID:               "healthcare_lockdown",
			Name:             "Healthcare Network Lockdown",
			Description:      "Secure hospital network infrastructure",
			Scope:            models.ScopeSingle,
			TargetSector:     "healthcare",
			SuccessReduction: 25.0,
			FailurePenalty:   10.0,
		},
		{
			ID:               "supply_chain_restore",
			Name:             "Supply Chain Restoration",
			Description:      "Restore logistics tracking systems",
			Scope:            models.ScopeSingle,
			TargetSector:     "supply",
			SuccessReduction: 20.0,
			FailurePenalty:   10.0,
		},
		{
			ID:               "transport_control",
			Name:             "Transport Control Recovery",
			Description:      "Regain control of traffic management systems",
			Scope:            models.ScopeSingle,
			TargetSector:     "transport",
			SuccessReduction: 25.0,
			FailurePenalty:   10.0,
		},
		{
			ID:               "global_defense",
			Name:             "Global Defense Initiative",
			Description:      "Coordinate worldwide cyber defense",
			Scope:            models.ScopeAll,
			SuccessReduction: 10.0,
			FailurePenalty:   5.0,
		},
	}
}
