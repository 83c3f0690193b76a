package services

import (
	"strings"
	"unicode"

	"glowtype/models"
	"glowtype/storage"
)

// CrisisService scans a single message for self-harm and acute-distress
// indicators. Rule-based and synchronous: it must finish before any gateway
// call is issued, and a miss is never treated as proof of safety.
type CrisisService struct {
	// normalized patterns, keyed by locale then category
	imminent map[string][]string
	distress map[string][]string
}

func NewCrisisService(rules *storage.CrisisRules) *CrisisService {
	s := &CrisisService{
		imminent: make(map[string][]string),
		distress: make(map[string][]string),
	}
	for lang, set := range rules.Locales {
		s.imminent[lang] = normalizePatterns(set.Imminent)
		s.distress[lang] = normalizePatterns(set.Distress)
	}
	return s
}

// Assess classifies text as high when any imminent-risk indicator matches,
// elevated when only distress indicators match, none otherwise. Matching is
// case-insensitive and tolerant of punctuation and whitespace variance.
func (s *CrisisService) Assess(text, lang string) models.CrisisAssessment {
	lang = normalizeLang(lang)
	if _, ok := s.imminent[lang]; !ok {
		lang = LangEN
	}

	normalized := normalizeText(text)
	assessment := models.CrisisAssessment{Severity: models.SeverityNone}

	if matchAny(normalized, s.imminent[lang]) {
		assessment.Severity = models.SeverityHigh
		assessment.Categories = append(assessment.Categories, "imminent")
	}
	if matchAny(normalized, s.distress[lang]) {
		if assessment.Severity == models.SeverityNone {
			assessment.Severity = models.SeverityElevated
		}
		assessment.Categories = append(assessment.Categories, "distress")
	}
	return assessment
}

func matchAny(normalized string, patterns []string) bool {
	for _, p := range patterns {
		if p != "" && strings.Contains(normalized, p) {
			return true
		}
	}
	return false
}

func normalizePatterns(patterns []string) []string {
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, normalizeText(p))
	}
	return out
}

// normalizeText lowercases, maps punctuation to spaces, and collapses runs of
// whitespace, so matching ignores case, punctuation, and spacing differences.
// Patterns go through the same transform at construction.
func normalizeText(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
