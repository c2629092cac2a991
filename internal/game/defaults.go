package game

import "github.com/blacksite-games/incursion-engine/internal/models"

// sectorDef seeds one of the twelve infrastructure sectors
type sectorDef struct {
	id, name, icon, description string
}

var sectorDefs = []sectorDef{
	{"financial", "Financial Systems", "💰", "Banking, stock markets, payment processing"},
	{"telecom", "Telecommunications", "📡", "Cell networks, internet backbone, satellites"},
	{"power", "Power Grid", "⚡", "Electrical infrastructure, nuclear plants"},
	{"water", "Water Systems", "💧", "Treatment plants, distribution networks"},
	{"transport", "Transportation", "🚆", "Air traffic, rail systems, traffic control"},
	{"healthcare", "Healthcare", "🏥", "Hospitals, medical devices, pharma supply"},
	{"government", "Government/Military", "🛡️", "Defense networks, intelligence agencies"},
	{"emergency", "Emergency Services", "🚨", "911 dispatch, first responders"},
	{"satellite", "Satellite/Space", "🛰️", "GPS, weather, communications satellites"},
	{"supply", "Supply Chain", "📦", "Shipping, logistics, port systems"},
	{"media", "Media/Broadcast", "📺", "News networks, social media, broadcasting"},
	{"nuclear", "Nuclear Systems", "☢️", "Reactor controls, enrichment facilities"},
}

func defaultPasswords() []models.Password {
	return []models.Password{
		{Code: "FIREWALL_ALPHA", TargetSector: "financial", Reduction: 15.0, OneTime: true, Hint: "Check the firewall logs"},
		{Code: "GRID_SECURE_7", TargetSector: "power", Reduction: 20.0, OneTime: true, Hint: "Power station access code"},
		{Code: "MEDIC_OVERRIDE", TargetSector: "healthcare", Reduction: 15.0, OneTime: true, Hint: "Hospital emergency protocol"},
		{Code: "ORBITAL_DECAY", TargetSector: "satellite", Reduction: 25.0, OneTime: true, Hint: "Satellite command sequence"},
		{Code: "GLOBAL_RESET", Reduction: 10.0, OneTime: true, Hint: "Affects all systems"},
		{Code: "BACKDOOR_EXIT", Reduction: 5.0, OneTime: false, Hint: "Reusable emergency code"},
		{Code: "NUCLEAR_FAILSAFE", TargetSector: "nuclear", Reduction: 30.0, OneTime: true, Hint: "Reactor emergency shutdown"},
		{Code: "WATER_PURGE", TargetSector: "water", Reduction: 20.0, OneTime: true, Hint: "Treatment plant override"},
		{Code: "COMM_BLACKOUT", TargetSector: "telecom", Reduction: 15.0, OneTime: true, Hint: "Network isolation protocol"},
		{Code: "EVAC_PROTOCOL", TargetSector: "emergency", Reduction: 20.0, OneTime: true, Hint: "Emergency services backup"},
	}
}
