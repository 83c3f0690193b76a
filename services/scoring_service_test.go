package services

import (
	"testing"

	"glowtype/models"
	"glowtype/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func loadFixtures(t *testing.T) (*models.QuizDefinition, []models.Glowtype) {
	t.Helper()
	def, err := storage.LoadQuizDefinition()
	require.NoError(t, err)
	catalog, err := storage.LoadGlowtypes()
	require.NoError(t, err)
	return def, catalog
}

func answersAll(def *models.QuizDefinition, optionID string) []models.Answer {
	answers := make([]models.Answer, 0, len(def.Questions))
	for _, q := range def.Questions {
		answers = append(answers, models.Answer{QuestionID: q.ID, OptionID: optionID})
	}
	return answers
}

func TestResolveDeterministic(t *testing.T) {
	def, catalog := loadFixtures(t)
	svc := NewScoringService(def, catalog, zap.NewNop())

	answers := answersAll(def, "o1")
	first, err := svc.Resolve(answers)
	require.NoError(t, err)
	second, err := svc.Resolve(answers)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResolveKnownOutcomes(t *testing.T) {
	def, catalog := loadFixtures(t)
	svc := NewScoringService(def, catalog, zap.NewNop())

	// All introspective answers land on the introvert archetype, all social
	// ones on the expressive archetype.
	id, err := svc.Resolve(answersAll(def, "o1"))
	require.NoError(t, err)
	assert.Equal(t, "quiet-comet", id)

	id, err = svc.Resolve(answersAll(def, "o2"))
	require.NoError(t, err)
	assert.Equal(t, "radiant-nebula", id)
}

func TestResolveIncompleteSubmission(t *testing.T) {
	def, catalog := loadFixtures(t)
	svc := NewScoringService(def, catalog, zap.NewNop())

	answers := answersAll(def, "o1")

	_, err := svc.Resolve(answers[:len(answers)-1])
	assert.ErrorIs(t, err, models.ErrIncompleteSubmission)

	// A duplicate answer for the same question is also not a valid set.
	_, err = svc.Resolve(append(answers, answers[0]))
	assert.ErrorIs(t, err, models.ErrIncompleteSubmission)
}

func TestResolveInvalidOption(t *testing.T) {
	def, catalog := loadFixtures(t)
	svc := NewScoringService(def, catalog, zap.NewNop())

	answers := answersAll(def, "o1")
	answers[0].OptionID = "o99"
	_, err := svc.Resolve(answers)
	assert.ErrorIs(t, err, models.ErrInvalidOption)

	answers = answersAll(def, "o1")
	answers[0].QuestionID = "q99"
	_, err = svc.Resolve(answers)
	assert.ErrorIs(t, err, models.ErrInvalidOption)
}

func TestResolveEmptyCatalog(t *testing.T) {
	def, _ := loadFixtures(t)
	svc := NewScoringService(def, nil, zap.NewNop())

	_, err := svc.Resolve(answersAll(def, "o1"))
	assert.ErrorIs(t, err, models.ErrUnknownMapping)
}

// Every possible complete answer set over the published definition must
// resolve to exactly one catalog entry.
func TestResolveTotal(t *testing.T) {
	def, catalog := loadFixtures(t)
	svc := NewScoringService(def, catalog, zap.NewNop())

	known := make(map[string]bool, len(catalog))
	for _, g := range catalog {
		known[g.ID] = true
	}

	answers := make([]models.Answer, len(def.Questions))
	var walk func(i int)
	walk = func(i int) {
		if i == len(def.Questions) {
			id, err := svc.Resolve(answers)
			require.NoError(t, err)
			require.True(t, known[id], "resolved to unknown glowtype %q", id)
			return
		}
		q := def.Questions[i]
		for _, opt := range q.Options {
			answers[i] = models.Answer{QuestionID: q.ID, OptionID: opt.ID}
			walk(i + 1)
		}
	}
	walk(0)
}
