package services

import "glowtype/models"

// QuizService serves localized projections of the published quiz definition.
// Trait tags never leave the server; clients only see option ids and text.
type QuizService struct {
	def *models.QuizDefinition
}

func NewQuizService(def *models.QuizDefinition) *QuizService {
	return &QuizService{def: def}
}

func (s *QuizService) Definition() *models.QuizDefinition {
	return s.def
}

func (s *QuizService) GetQuiz(lang string) models.QuizResponse {
	lang = normalizeLang(lang)

	questions := make([]models.QuizQuestionDTO, 0, len(s.def.Questions))
	for _, q := range s.def.Questions {
		loc, ok := q.Translations[lang]
		if !ok {
			loc = q.Translations[LangEN]
		}

		opts := make([]models.QuizOptionDTO, 0, len(q.Options))
		for i, opt := range q.Options {
			text := ""
			if i < len(loc.Options) {
				text = loc.Options[i]
			}
			opts = append(opts, models.QuizOptionDTO{ID: opt.ID, Text: text})
		}

		questions = append(questions, models.QuizQuestionDTO{
			ID:       q.ID,
			Order:    q.Order,
			Question: loc.Question,
			Options:  opts,
		})
	}

	return models.QuizResponse{
		QuizID:    s.def.ID,
		Language:  lang,
		Questions: questions,
	}
}
