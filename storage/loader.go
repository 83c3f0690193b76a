package storage

import (
	"embed"
	"encoding/json"
	"fmt"

	"glowtype/models"
)

//go:embed data/*.json
var dataFS embed.FS

// Closed trait vocabulary. Every option tag and every signature weight must use
// one of these; anything else is a configuration defect caught at startup.
var traitVocabulary = map[string]bool{
	"introspect": true,
	"connect":    true,
	"create":     true,
	"steady":     true,
}

// CrisisRules is the locale-keyed indicator phrase configuration for the
// crisis signal detector.
type CrisisRules struct {
	Locales map[string]CrisisRuleSet `json:"locales"`
}

type CrisisRuleSet struct {
	Imminent []string `json:"imminent"`
	Distress []string `json:"distress"`
}

func readJSON(name string, v any) error {
	data, err := dataFS.ReadFile("data/" + name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("unmarshal %s: %w", name, err)
	}
	return nil
}

func LoadQuizDefinition() (*models.QuizDefinition, error) {
	var def models.QuizDefinition
	if err := readJSON("quiz.json", &def); err != nil {
		return nil, err
	}
	if err := validateQuiz(&def); err != nil {
		return nil, fmt.Errorf("quiz config invalid: %w", err)
	}
	return &def, nil
}

func validateQuiz(def *models.QuizDefinition) error {
	if len(def.Questions) == 0 {
		return fmt.Errorf("no questions")
	}
	seenIDs := make(map[string]bool)
	seenOrders := make(map[int]bool)
	for _, q := range def.Questions {
		if seenIDs[q.ID] {
			return fmt.Errorf("duplicate question id %q", q.ID)
		}
		seenIDs[q.ID] = true
		if seenOrders[q.Order] {
			return fmt.Errorf("duplicate order %d", q.Order)
		}
		seenOrders[q.Order] = true
		if len(q.Options) < 2 {
			return fmt.Errorf("question %q has fewer than 2 options", q.ID)
		}
		optIDs := make(map[string]bool)
		for _, o := range q.Options {
			if optIDs[o.ID] {
				return fmt.Errorf("question %q has duplicate option id %q", q.ID, o.ID)
			}
			optIDs[o.ID] = true
			if len(o.Traits) == 0 {
				return fmt.Errorf("option %s/%s carries no trait tags", q.ID, o.ID)
			}
			for _, t := range o.Traits {
				if !traitVocabulary[t] {
					return fmt.Errorf("option %s/%s uses unknown trait %q", q.ID, o.ID, t)
				}
			}
		}
		for lang, loc := range q.Translations {
			if len(loc.Options) != len(q.Options) {
				return fmt.Errorf("question %q: %s has %d option texts for %d options",
					q.ID, lang, len(loc.Options), len(q.Options))
			}
		}
	}
	// Orders must be contiguous 1..N.
	for i := 1; i <= len(def.Questions); i++ {
		if !seenOrders[i] {
			return fmt.Errorf("order indices not contiguous: missing %d", i)
		}
	}
	return nil
}

func LoadGlowtypes() ([]models.Glowtype, error) {
	var items []models.Glowtype
	if err := readJSON("glowtypes.json", &items); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("glowtype catalog is empty")
	}
	seen := make(map[string]bool)
	for _, g := range items {
		if seen[g.ID] {
			return nil, fmt.Errorf("duplicate glowtype id %q", g.ID)
		}
		seen[g.ID] = true
		if len(g.Signature) == 0 {
			return nil, fmt.Errorf("glowtype %q has an empty signature", g.ID)
		}
		for t := range g.Signature {
			if !traitVocabulary[t] {
				return nil, fmt.Errorf("glowtype %q signature uses unknown trait %q", g.ID, t)
			}
		}
	}
	return items, nil
}

func LoadCrisisRules() (*CrisisRules, error) {
	var rules CrisisRules
	if err := readJSON("crisis_rules.json", &rules); err != nil {
		return nil, err
	}
	if _, ok := rules.Locales["en"]; !ok {
		return nil, fmt.Errorf("crisis rules must include the en fallback locale")
	}
	return &rules, nil
}

func LoadHelpDirectory() (*models.HelpDirectory, error) {
	var dir models.HelpDirectory
	if err := readJSON("help.json", &dir); err != nil {
		return nil, err
	}
	if _, ok := dir.Translations["en"]; !ok {
		return nil, fmt.Errorf("help directory must include the en fallback locale")
	}
	return &dir, nil
}
