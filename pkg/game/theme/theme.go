// Package theme names the room themes. Theme indices cycle through a fixed
// set of styles so any configured theme count gets readable names.
package theme

import (
	"github.com/leonelquinteros/gotext"

	"darkmaze/pkg/engine/world"
)

// Style is the visual style a theme index maps to
type Style int

const (
	Habitation Style = iota // Crew rest, atmosphere, habitation
	Research                // Labs, medical, experiments
	Logistics               // Cargo, storage, distribution
	PowerDistribution       // Substations, relays, grid
	EmergencySystems        // Shelters, lifeboats, crisis
	CoreInfrastructure      // Central monitoring, primary conduits
)

// styleCount is the number of styles (for cycling)
const styleCount = 6

// StyleOf returns the style for a theme index
func StyleOf(theme int) Style {
	if theme < 0 {
		return Habitation
	}
	return Style(theme % styleCount)
}

// Name returns the translated style name of a theme. Uses gotext.Get with
// constant keys to satisfy vet.
func Name(theme int) string {
	switch StyleOf(theme) {
	case Research:
		return gotext.Get("STYLE_RESEARCH")
	case Logistics:
		return gotext.Get("STYLE_LOGISTICS")
	case PowerDistribution:
		return gotext.Get("STYLE_POWER")
	case EmergencySystems:
		return gotext.Get("STYLE_EMERGENCY")
	case CoreInfrastructure:
		return gotext.Get("STYLE_CORE")
	default:
		return gotext.Get("STYLE_HABITATION")
	}
}

// roomNames returns thematic room base names for the given style
func roomNames(s Style) []string {
	switch s {
	case Research:
		return []string{
			"Sample Analysis Lab", "Experiment Bay", "Data Review Chamber",
			"Specimen Holding", "Med Bay", "Culture Lab", "Diagnostics Suite",
		}
	case Logistics:
		return []string{
			"Cargo Hold", "Loading Bay", "Supply Locker", "Distribution Hub",
			"Storage Annex", "Parts Depot", "Inventory Control",
		}
	case PowerDistribution:
		return []string{
			"Substation", "Relay Room", "Capacitor Bank", "Grid Junction",
			"Power Conduit", "Regulator Bay", "Auxiliary Grid",
		}
	case EmergencySystems:
		return []string{
			"Emergency Shelter", "Lifeboat Bay", "Evacuation Assembly",
			"Backup Life Support", "Shelter Module", "Escape Pod Bay",
		}
	case CoreInfrastructure:
		return []string{
			"Central Monitoring", "Primary Conduit", "Core Junction",
			"Station Spine", "Command Node", "Primary Hub",
		}
	default:
		return []string{
			"Crew Rest Module", "Personnel Bay", "Dormitory Section",
			"Habitation Unit", "Rest Bay", "Recycling Station", "Crew Quarters",
		}
	}
}

// RoomName returns a stable display name for a room, picked from its
// theme's names by room ID
func RoomName(r *world.Room) string {
	if r == nil {
		return ""
	}
	names := roomNames(StyleOf(r.Theme))
	id := int(r.ID)
	if id < 0 {
		id = -id
	}
	return names[id%len(names)]
}
