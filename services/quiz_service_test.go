package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetQuizLocalized(t *testing.T) {
	def, _ := loadFixtures(t)
	svc := NewQuizService(def)

	en := svc.GetQuiz("en")
	assert.Equal(t, "en", en.Language)
	require.NotEmpty(t, en.Questions)
	assert.Equal(t, 1, en.Questions[0].Order)
	require.NotEmpty(t, en.Questions[0].Options)
	assert.NotEmpty(t, en.Questions[0].Options[0].Text)

	zh := svc.GetQuiz("zh")
	assert.Equal(t, "zh-CN", zh.Language)
	assert.NotEqual(t, en.Questions[0].Question, zh.Questions[0].Question)

	// Unknown locales fall back to English.
	fr := svc.GetQuiz("fr-FR")
	assert.Equal(t, "en", fr.Language)
	assert.Equal(t, en.Questions[0].Question, fr.Questions[0].Question)
}

func TestGetGlowtypeLocalized(t *testing.T) {
	_, catalog := loadFixtures(t)
	svc := NewGlowtypeService(catalog)

	resp, err := svc.GetGlowtype("quiet-comet", "en")
	require.NoError(t, err)
	assert.Equal(t, "Quiet Comet", resp.Name)
	assert.NotEmpty(t, resp.SelfCareTips)
	assert.NotEmpty(t, resp.Theme.AuraGradient)

	zh, err := svc.GetGlowtype("quiet-comet", "zh-CN")
	require.NoError(t, err)
	assert.NotEqual(t, resp.Name, zh.Name)
}

func TestGetGlowtypeUnknown(t *testing.T) {
	_, catalog := loadFixtures(t)
	svc := NewGlowtypeService(catalog)

	_, err := svc.GetGlowtype("missing-type", "en")
	assert.Error(t, err)
}
