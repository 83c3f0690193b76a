package services

import (
	"context"
	"time"

	"glowtype/models"
	"glowtype/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sessionKeyPrefix = "session:"

// ChatService owns per-session conversation state and applies the crisis
// detector around every gateway call. The session log is append-only; each
// incoming message results in exactly one saved outcome, fallback included.
type ChatService struct {
	gateway ReplyGateway
	crisis  *CrisisService
	store   storage.StateStore
	ttl     time.Duration
	timeout time.Duration
	logger  *zap.Logger
}

func NewChatService(gateway ReplyGateway, crisis *CrisisService, store storage.StateStore, ttl, timeout time.Duration, logger *zap.Logger) *ChatService {
	return &ChatService{
		gateway: gateway,
		crisis:  crisis,
		store:   store,
		ttl:     ttl,
		timeout: timeout,
		logger:  logger,
	}
}

func (s *ChatService) CreateSession(ctx context.Context, req models.ChatSessionRequest) (*models.ChatSessionResponse, error) {
	session := &models.ChatSession{
		ID:         uuid.New().String(),
		Language:   normalizeLang(req.Language),
		GlowtypeID: req.GlowtypeID,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return &models.ChatSessionResponse{SessionID: session.ID}, nil
}

// SendMessage runs the per-message protocol: the user's message is logged
// unconditionally, high-severity messages short-circuit to the fixed safety
// reply without touching the gateway, elevated severity augments the model's
// reply with a safety note, and gateway failures become a locale fallback.
func (s *ChatService) SendMessage(ctx context.Context, req models.ChatMessageRequest) (*models.ChatMessageResponse, error) {
	session, err := s.load(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}

	lang := session.Language
	if req.Language != "" {
		lang = normalizeLang(req.Language)
	}

	now := time.Now().UTC()
	session.Messages = append(session.Messages, models.ChatMessage{
		Sender:    models.SenderUser,
		Text:      req.Message,
		Timestamp: now,
	})

	assessment := s.crisis.Assess(req.Message, lang)

	var reply string
	var notice *string

	switch assessment.Severity {
	case models.SeverityHigh:
		// Deliberate override: no open-ended conversation on imminent risk.
		reply = crisisReplies[lang]
		n := safetyNotices[lang]
		notice = &n
	default:
		reply = s.completeReply(ctx, req.Message, lang)
		if assessment.Severity == models.SeverityElevated {
			n := safetyNotices[lang]
			notice = &n
		}
	}

	session.Messages = append(session.Messages, models.ChatMessage{
		Sender:    models.SenderAssistant,
		Text:      reply,
		Timestamp: time.Now().UTC(),
	})
	if notice != nil {
		session.Messages = append(session.Messages, models.ChatMessage{
			Sender:    models.SenderSystem,
			Text:      *notice,
			Timestamp: time.Now().UTC(),
		})
	}

	if err := s.save(ctx, session); err != nil {
		return nil, err
	}

	return &models.ChatMessageResponse{Reply: reply, SafetyNotice: notice}, nil
}

// completeReply issues the single bounded gateway call and post-checks the
// model's text. Failures never propagate; the caller gets the fallback.
func (s *ChatService) completeReply(ctx context.Context, message, lang string) string {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	reply, err := s.gateway.Complete(callCtx, message, personaInstructions[lang], lang)
	if err != nil {
		s.logger.Warn("reply gateway failed", zap.Error(err))
		return fallbackReplies[lang]
	}

	// The model's own words get the same screening as the user's.
	if s.crisis.Assess(reply, lang).Severity == models.SeverityHigh {
		s.logger.Warn("gateway reply tripped crisis rules, substituting safety text")
		return crisisReplies[lang]
	}
	return reply
}

func (s *ChatService) GetLog(ctx context.Context, sessionID string) (*models.ChatLogResponse, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &models.ChatLogResponse{SessionID: session.ID, Messages: session.Messages}, nil
}

func (s *ChatService) EndSession(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionKeyPrefix+sessionID)
}

func (s *ChatService) load(ctx context.Context, sessionID string) (*models.ChatSession, error) {
	var session models.ChatSession
	found, err := s.store.Get(ctx, sessionKeyPrefix+sessionID, &session)
	if err != nil {
		s.logger.Error("load chat session", zap.String("session_id", sessionID), zap.Error(err))
		return nil, err
	}
	if !found {
		return nil, models.ErrUnknownSession
	}
	return &session, nil
}

// save refreshes the idle TTL on every touch.
func (s *ChatService) save(ctx context.Context, session *models.ChatSession) error {
	if err := s.store.Set(ctx, sessionKeyPrefix+session.ID, session, s.ttl); err != nil {
		s.logger.Error("store chat session", zap.String("session_id", session.ID), zap.Error(err))
		return err
	}
	return nil
}
