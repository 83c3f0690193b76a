package services

import (
	"sort"

	"glowtype/models"

	"go.uber.org/zap"
)

// ScoringService resolves a complete answer set to exactly one glowtype.
// Pure computation over the published definition and catalog; no randomness.
type ScoringService struct {
	def     *models.QuizDefinition
	catalog []models.Glowtype
	logger  *zap.Logger
}

func NewScoringService(def *models.QuizDefinition, catalog []models.Glowtype, logger *zap.Logger) *ScoringService {
	return &ScoringService{def: def, catalog: catalog, logger: logger}
}

// Resolve validates the answer set and maps it to a glowtype id.
// Every question must be answered exactly once (IncompleteSubmission), every
// option must belong to its question (InvalidOption).
func (s *ScoringService) Resolve(answers []models.Answer) (string, error) {
	chosen := make(map[string]string, len(answers))
	for _, a := range answers {
		q := s.def.QuestionByID(a.QuestionID)
		if q == nil {
			return "", models.ErrInvalidOption
		}
		if q.OptionByID(a.OptionID) == nil {
			return "", models.ErrInvalidOption
		}
		if _, dup := chosen[a.QuestionID]; dup {
			return "", models.ErrIncompleteSubmission
		}
		chosen[a.QuestionID] = a.OptionID
	}
	if len(chosen) != len(s.def.Questions) {
		return "", models.ErrIncompleteSubmission
	}

	tally := make(map[string]int)
	for qID, oID := range chosen {
		opt := s.def.QuestionByID(qID).OptionByID(oID)
		for _, t := range opt.Traits {
			tally[t]++
		}
	}

	return s.match(tally)
}

// match picks the catalog entry whose signature has the highest dot product
// with the tally. Ties break toward the lexicographically smaller id so the
// outcome is total and deterministic.
func (s *ScoringService) match(tally map[string]int) (string, error) {
	if len(s.catalog) == 0 {
		s.logger.Error("glowtype catalog is empty, tally cannot resolve")
		return "", models.ErrUnknownMapping
	}

	ids := make([]string, 0, len(s.catalog))
	scores := make(map[string]int, len(s.catalog))
	for _, g := range s.catalog {
		score := 0
		for trait, weight := range g.Signature {
			score += weight * tally[trait]
		}
		ids = append(ids, g.ID)
		scores[g.ID] = score
	}
	sort.Strings(ids)

	best := ids[0]
	for _, id := range ids[1:] {
		if scores[id] > scores[best] {
			best = id
		}
	}
	return best, nil
}
