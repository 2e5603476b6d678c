package catalog

// Presentation holds the display hints for one catalog entry. Kept out of
// PolicyDefinition so the catalog itself stays visual-agnostic; UI layers
// resolve icons and colors through this table by id.
type Presentation struct {
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// pillarPresentation maps each pillar to its default display hints.
var pillarPresentation = [PillarCount]Presentation{
	PillarGovernance:      {Icon: "scale", Color: "#2563eb"},
	PillarHazardControl:   {Icon: "shield", Color: "#dc2626"},
	PillarHealthVigilance: {Icon: "stethoscope", Color: "#16a34a"},
	PillarRestoration:     {Icon: "heart-handshake", Color: "#9333ea"},
}

// policyIcons overrides the pillar default for policies with a more
// specific glyph.
var policyIcons = map[string]string{
	"gov_osh_framework_law":    "gavel",
	"gov_digital_inspection":   "monitor",
	"haz_ppe_standards":        "hard-hat",
	"haz_smart_sensors":        "radio",
	"haz_zero_fatality":        "target",
	"vig_health_checkups":      "clipboard-check",
	"vig_health_analytics":     "bar-chart",
	"vig_genomic_screening":    "dna",
	"res_injury_insurance":     "umbrella",
	"res_prosthetics_fund":     "accessibility",
	"res_vocational_retraining": "graduation-cap",
}

// PresentationFor returns the display hints for a policy id, falling back to
// the owning pillar's defaults.
func PresentationFor(id string) (Presentation, bool) {
	def, ok := ByID(id)
	if !ok {
		return Presentation{}, false
	}
	p := pillarPresentation[def.Pillar]
	if icon, ok := policyIcons[id]; ok {
		p.Icon = icon
	}
	return p, true
}

// PillarPresentation returns the display hints for a pillar.
func PillarPresentation(p Pillar) Presentation {
	if int(p) >= PillarCount {
		return Presentation{}
	}
	return pillarPresentation[p]
}
