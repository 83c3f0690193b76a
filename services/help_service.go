package services

import "glowtype/models"

// HelpService serves the static hotline directory. External collaborator
// data; nothing here is computed.
type HelpService struct {
	dir *models.HelpDirectory
}

func NewHelpService(dir *models.HelpDirectory) *HelpService {
	return &HelpService{dir: dir}
}

func (s *HelpService) GetHelp(lang string) models.HelpResponse {
	lang = normalizeLang(lang)

	loc, ok := s.dir.Translations[lang]
	if !ok {
		lang = LangEN
		loc = s.dir.Translations[LangEN]
	}

	return models.HelpResponse{
		Language:         lang,
		CrisisDisclaimer: loc.CrisisDisclaimer,
		Hotlines:         loc.Hotlines,
	}
}
