package models

// HelpDirectory is the per-locale hotline directory served by GET /help.
// Static collaborator data, loaded once and never computed.
type HelpDirectory struct {
	Translations map[string]LocalizedHelp `json:"translations"`
}

type LocalizedHelp struct {
	CrisisDisclaimer string    `json:"crisisDisclaimer"`
	Hotlines         []Hotline `json:"hotlines"`
}

type Hotline struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Website string `json:"website"`
	Note    string `json:"note"`
}

type HelpResponse struct {
	Language         string    `json:"language"`
	CrisisDisclaimer string    `json:"crisisDisclaimer"`
	Hotlines         []Hotline `json:"hotlines"`
}
