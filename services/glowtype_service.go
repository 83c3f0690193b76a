package services

import "glowtype/models"

// GlowtypeService serves localized projections of the archetype catalog.
// The catalog is immutable; lookups never mutate anything.
type GlowtypeService struct {
	items []models.Glowtype
}

func NewGlowtypeService(items []models.Glowtype) *GlowtypeService {
	return &GlowtypeService{items: items}
}

func (s *GlowtypeService) Catalog() []models.Glowtype {
	return s.items
}

func (s *GlowtypeService) GetGlowtype(id, lang string) (*models.GlowtypeResponse, error) {
	lang = normalizeLang(lang)

	for _, item := range s.items {
		if item.ID != id {
			continue
		}

		loc, ok := item.Translations[lang]
		if !ok {
			loc = item.Translations[LangEN]
		}

		return &models.GlowtypeResponse{
			ID:           item.ID,
			Language:     lang,
			Name:         loc.Name,
			Tagline:      loc.Tagline,
			Description:  loc.Description,
			SelfCareTips: loc.SelfCareTips,
			Disclaimer:   loc.Disclaimer,
			Theme:        item.Theme,
		}, nil
	}

	return nil, models.ErrUnknownGlowtype
}
