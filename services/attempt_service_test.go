package services

import (
	"context"
	"testing"
	"time"

	"glowtype/models"
	"glowtype/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingScorer struct {
	inner Scorer
	calls int
}

func (c *countingScorer) Resolve(answers []models.Answer) (string, error) {
	c.calls++
	return c.inner.Resolve(answers)
}

func newAttemptFixture(t *testing.T) (*AttemptService, *countingScorer, *models.QuizDefinition) {
	t.Helper()
	def, catalog := loadFixtures(t)
	scorer := &countingScorer{inner: NewScoringService(def, catalog, zap.NewNop())}
	svc := NewAttemptService(def, scorer, storage.NewMemoryStateStore(), time.Hour, zap.NewNop())
	return svc, scorer, def
}

func answerAll(t *testing.T, svc *AttemptService, def *models.QuizDefinition, attemptID, optionID string) {
	t.Helper()
	for _, q := range def.Questions {
		_, err := svc.Answer(context.Background(), attemptID, q.ID, optionID)
		require.NoError(t, err)
	}
}

func TestAttemptLifecycle(t *testing.T) {
	svc, _, def := newAttemptFixture(t)
	ctx := context.Background()

	attempt, err := svc.Start(ctx, "en")
	require.NoError(t, err)
	assert.Equal(t, models.AttemptInProgress, attempt.Status)
	assert.Equal(t, 0, attempt.QuestionIndex)

	answerAll(t, svc, def, attempt.ID, "o1")

	id, err := svc.Submit(ctx, attempt.ID)
	require.NoError(t, err)
	assert.Equal(t, "quiet-comet", id)

	final, err := svc.Get(ctx, attempt.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AttemptSubmitted, final.Status)
}

func TestAttemptIncompleteSubmitStaysInProgress(t *testing.T) {
	svc, scorer, def := newAttemptFixture(t)
	ctx := context.Background()

	attempt, err := svc.Start(ctx, "en")
	require.NoError(t, err)

	_, err = svc.Answer(ctx, attempt.ID, def.Questions[0].ID, "o1")
	require.NoError(t, err)

	_, err = svc.Submit(ctx, attempt.ID)
	assert.ErrorIs(t, err, models.ErrIncompleteSubmission)
	assert.Equal(t, 1, scorer.calls)

	after, err := svc.Get(ctx, attempt.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AttemptInProgress, after.Status)
}

func TestAttemptAnswerOverwrites(t *testing.T) {
	svc, _, def := newAttemptFixture(t)
	ctx := context.Background()

	attempt, err := svc.Start(ctx, "en")
	require.NoError(t, err)

	q := def.Questions[0].ID
	_, err = svc.Answer(ctx, attempt.ID, q, "o1")
	require.NoError(t, err)

	// Back navigation never clears answers; re-answering overwrites.
	_, err = svc.Next(ctx, attempt.ID)
	require.NoError(t, err)
	_, err = svc.Back(ctx, attempt.ID)
	require.NoError(t, err)

	updated, err := svc.Answer(ctx, attempt.ID, q, "o3")
	require.NoError(t, err)
	assert.Equal(t, "o3", updated.Answers[q])
	assert.Len(t, updated.Answers, 1)
}

func TestAttemptBackAtFirstQuestion(t *testing.T) {
	svc, _, _ := newAttemptFixture(t)
	ctx := context.Background()

	attempt, err := svc.Start(ctx, "en")
	require.NoError(t, err)

	_, err = svc.Back(ctx, attempt.ID)
	assert.ErrorIs(t, err, models.ErrInvalidState)
}

func TestAttemptSubmitIdempotent(t *testing.T) {
	svc, scorer, def := newAttemptFixture(t)
	ctx := context.Background()

	attempt, err := svc.Start(ctx, "en")
	require.NoError(t, err)
	answerAll(t, svc, def, attempt.ID, "o2")

	first, err := svc.Submit(ctx, attempt.ID)
	require.NoError(t, err)
	second, err := svc.Submit(ctx, attempt.ID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, scorer.calls, "second submit must not re-score")
}

func TestAttemptRejectsAfterSubmit(t *testing.T) {
	svc, _, def := newAttemptFixture(t)
	ctx := context.Background()

	attempt, err := svc.Start(ctx, "en")
	require.NoError(t, err)
	answerAll(t, svc, def, attempt.ID, "o1")

	_, err = svc.Submit(ctx, attempt.ID)
	require.NoError(t, err)

	_, err = svc.Answer(ctx, attempt.ID, def.Questions[0].ID, "o2")
	assert.ErrorIs(t, err, models.ErrInvalidState)
	_, err = svc.Back(ctx, attempt.ID)
	assert.ErrorIs(t, err, models.ErrInvalidState)
}

func TestAttemptUnknownID(t *testing.T) {
	svc, _, _ := newAttemptFixture(t)

	_, err := svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, models.ErrUnknownAttempt)
	_, err = svc.Submit(context.Background(), "nope")
	assert.ErrorIs(t, err, models.ErrUnknownAttempt)
}
