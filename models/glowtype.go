package models

// Glowtype is one archetype catalog entry. The trait signature weights are what
// the scoring engine matches a tally against; theming tokens ride along for the
// rendering layer and are never interpreted here.
type Glowtype struct {
	ID           string                       `json:"id"`
	Signature    map[string]int               `json:"signature"`
	Theme        GlowtypeTheme                `json:"theme"`
	Translations map[string]LocalizedGlowtype `json:"translations"`
}

type GlowtypeTheme struct {
	AuraGradient string `json:"auraGradient"`
	CardAccent   string `json:"cardAccent"`
	TextColor    string `json:"textColor"`
}

type LocalizedGlowtype struct {
	Name         string   `json:"name"`
	Tagline      string   `json:"tagline"`
	Description  []string `json:"description"`
	SelfCareTips []string `json:"selfCareTips"`
	Disclaimer   string   `json:"disclaimer"`
}

type GlowtypeResponse struct {
	ID           string        `json:"id"`
	Language     string        `json:"language"`
	Name         string        `json:"name"`
	Tagline      string        `json:"tagline"`
	Description  []string      `json:"description"`
	SelfCareTips []string      `json:"selfCareTips"`
	Disclaimer   string        `json:"disclaimer"`
	Theme        GlowtypeTheme `json:"theme"`
}
