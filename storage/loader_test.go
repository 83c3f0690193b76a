package storage

import (
	"testing"

	"glowtype/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadQuizDefinition(t *testing.T) {
	def, err := LoadQuizDefinition()
	require.NoError(t, err)

	assert.NotEmpty(t, def.ID)
	require.NotEmpty(t, def.Questions)
	for _, q := range def.Questions {
		assert.GreaterOrEqual(t, len(q.Options), 2)
		for _, o := range q.Options {
			assert.NotEmpty(t, o.Traits)
		}
		assert.Contains(t, q.Translations, "en")
		assert.Contains(t, q.Translations, "zh-CN")
	}
}

func TestValidateQuizRejectsBadConfig(t *testing.T) {
	base := func() *models.QuizDefinition {
		return &models.QuizDefinition{
			ID: "t",
			Questions: []models.Question{
				{ID: "q1", Order: 1, Options: []models.Option{
					{ID: "o1", Traits: []string{"introspect"}},
					{ID: "o2", Traits: []string{"connect"}},
				}},
				{ID: "q2", Order: 2, Options: []models.Option{
					{ID: "o1", Traits: []string{"create"}},
					{ID: "o2", Traits: []string{"steady"}},
				}},
			},
		}
	}

	ok := base()
	require.NoError(t, validateQuiz(ok))

	gap := base()
	gap.Questions[1].Order = 3
	assert.Error(t, validateQuiz(gap), "order indices must be contiguous")

	single := base()
	single.Questions[0].Options = single.Questions[0].Options[:1]
	assert.Error(t, validateQuiz(single), "questions need at least 2 options")

	untagged := base()
	untagged.Questions[0].Options[0].Traits = nil
	assert.Error(t, validateQuiz(untagged), "options need at least one trait tag")

	unknown := base()
	unknown.Questions[0].Options[0].Traits = []string{"charisma"}
	assert.Error(t, validateQuiz(unknown), "trait vocabulary is closed")
}

func TestLoadGlowtypes(t *testing.T) {
	catalog, err := LoadGlowtypes()
	require.NoError(t, err)
	require.NotEmpty(t, catalog)
	for _, g := range catalog {
		assert.NotEmpty(t, g.Signature)
		assert.Contains(t, g.Translations, "en")
		assert.Contains(t, g.Translations, "zh-CN")
	}
}

func TestLoadCrisisRules(t *testing.T) {
	rules, err := LoadCrisisRules()
	require.NoError(t, err)
	require.Contains(t, rules.Locales, "en")
	assert.NotEmpty(t, rules.Locales["en"].Imminent)
	assert.NotEmpty(t, rules.Locales["en"].Distress)
}

func TestLoadHelpDirectory(t *testing.T) {
	dir, err := LoadHelpDirectory()
	require.NoError(t, err)
	require.Contains(t, dir.Translations, "en")
	assert.NotEmpty(t, dir.Translations["en"].Hotlines)
}
