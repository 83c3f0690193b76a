package services

import (
	"context"
	"time"

	"glowtype/models"
	"glowtype/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const attemptKeyPrefix = "attempt:"

// Scorer resolves a complete answer set to a glowtype id.
type Scorer interface {
	Resolve(answers []models.Answer) (string, error)
}

// AttemptService drives the stateful quiz flow: one attempt per user session,
// answered question by question with back navigation, consumed by submission.
// Attempt state lives in the state store under an idle TTL.
type AttemptService struct {
	def    *models.QuizDefinition
	scorer Scorer
	store  storage.StateStore
	ttl    time.Duration
	logger *zap.Logger
}

func NewAttemptService(def *models.QuizDefinition, scorer Scorer, store storage.StateStore, ttl time.Duration, logger *zap.Logger) *AttemptService {
	return &AttemptService{def: def, scorer: scorer, store: store, ttl: ttl, logger: logger}
}

func (s *AttemptService) Start(ctx context.Context, lang string) (*models.QuizAttempt, error) {
	attempt := &models.QuizAttempt{
		ID:            uuid.New().String(),
		QuizID:        s.def.ID,
		Language:      normalizeLang(lang),
		Status:        models.AttemptInProgress,
		QuestionIndex: 0,
		Answers:       make(map[string]string),
	}
	if err := s.save(ctx, attempt); err != nil {
		return nil, err
	}
	return attempt, nil
}

// Answer records or overwrites the answer for one question. It never advances
// the index; moving on is the caller's decision, which keeps back navigation
// from clearing anything.
func (s *AttemptService) Answer(ctx context.Context, attemptID, questionID, optionID string) (*models.QuizAttempt, error) {
	attempt, err := s.load(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	if attempt.Status != models.AttemptInProgress {
		return nil, models.ErrInvalidState
	}

	q := s.def.QuestionByID(questionID)
	if q == nil || q.OptionByID(optionID) == nil {
		return nil, models.ErrInvalidOption
	}

	attempt.Answers[questionID] = optionID
	if err := s.save(ctx, attempt); err != nil {
		return nil, err
	}
	return attempt, nil
}

func (s *AttemptService) Next(ctx context.Context, attemptID string) (*models.QuizAttempt, error) {
	attempt, err := s.load(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	if attempt.Status != models.AttemptInProgress {
		return nil, models.ErrInvalidState
	}
	if attempt.QuestionIndex >= len(s.def.Questions)-1 {
		return nil, models.ErrInvalidState
	}
	attempt.QuestionIndex++
	if err := s.save(ctx, attempt); err != nil {
		return nil, err
	}
	return attempt, nil
}

func (s *AttemptService) Back(ctx context.Context, attemptID string) (*models.QuizAttempt, error) {
	attempt, err := s.load(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	if attempt.Status != models.AttemptInProgress || attempt.QuestionIndex == 0 {
		return nil, models.ErrInvalidState
	}
	attempt.QuestionIndex--
	if err := s.save(ctx, attempt); err != nil {
		return nil, err
	}
	return attempt, nil
}

// Submit scores the attempt once. A repeat submit returns the stored result
// without re-scoring, so a double-fired submit is harmless. An incomplete
// attempt fails and stays in progress.
func (s *AttemptService) Submit(ctx context.Context, attemptID string) (string, error) {
	attempt, err := s.load(ctx, attemptID)
	if err != nil {
		return "", err
	}
	if attempt.Status == models.AttemptSubmitted {
		return attempt.ResultID, nil
	}

	answers := make([]models.Answer, 0, len(attempt.Answers))
	for qID, oID := range attempt.Answers {
		answers = append(answers, models.Answer{QuestionID: qID, OptionID: oID})
	}

	resultID, err := s.scorer.Resolve(answers)
	if err != nil {
		return "", err
	}

	attempt.Status = models.AttemptSubmitted
	attempt.ResultID = resultID
	if err := s.save(ctx, attempt); err != nil {
		return "", err
	}
	return resultID, nil
}

func (s *AttemptService) Get(ctx context.Context, attemptID string) (*models.QuizAttempt, error) {
	return s.load(ctx, attemptID)
}

func (s *AttemptService) load(ctx context.Context, attemptID string) (*models.QuizAttempt, error) {
	var attempt models.QuizAttempt
	found, err := s.store.Get(ctx, attemptKeyPrefix+attemptID, &attempt)
	if err != nil {
		s.logger.Error("load attempt state", zap.String("attempt_id", attemptID), zap.Error(err))
		return nil, err
	}
	if !found {
		return nil, models.ErrUnknownAttempt
	}
	return &attempt, nil
}

func (s *AttemptService) save(ctx context.Context, attempt *models.QuizAttempt) error {
	if err := s.store.Set(ctx, attemptKeyPrefix+attempt.ID, attempt, s.ttl); err != nil {
		s.logger.Error("store attempt state", zap.String("attempt_id", attempt.ID), zap.Error(err))
		return err
	}
	return nil
}
