package models

// QuizDefinition is the published quiz configuration. Immutable once loaded;
// request handling only ever reads it.
type QuizDefinition struct {
	ID        string     `json:"id"`
	Questions []Question `json:"questions"`
}

type Question struct {
	ID           string                       `json:"id"`
	Order        int                          `json:"order"`
	Translations map[string]LocalizedQuestion `json:"translations"`
	Options      []Option                     `json:"options"`
}

type LocalizedQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// Option carries the trait tags that feed the scoring tally. Tags come from the
// closed trait vocabulary validated at load time.
type Option struct {
	ID     string   `json:"id"`
	Traits []string `json:"traits"`
}

// Answer pairs a question with the option the user chose.
type Answer struct {
	QuestionID string `json:"questionId" binding:"required"`
	OptionID   string `json:"optionId" binding:"required"`
}

// QuestionByID returns the question with the given id, or nil.
func (d *QuizDefinition) QuestionByID(id string) *Question {
	for i := range d.Questions {
		if d.Questions[i].ID == id {
			return &d.Questions[i]
		}
	}
	return nil
}

// OptionByID returns the option with the given id, or nil.
func (q *Question) OptionByID(id string) *Option {
	for i := range q.Options {
		if q.Options[i].ID == id {
			return &q.Options[i]
		}
	}
	return nil
}

// Attempt state machine statuses.
const (
	AttemptInProgress = "in_progress"
	AttemptSubmitted  = "submitted"
)

// QuizAttempt is the ephemeral per-user aggregate behind the stateful quiz
// flow. Stored as a JSON blob with a TTL; consumed by submission.
type QuizAttempt struct {
	ID            string            `json:"id"`
	QuizID        string            `json:"quiz_id"`
	Language      string            `json:"language"`
	Status        string            `json:"status"`
	QuestionIndex int               `json:"question_index"`
	Answers       map[string]string `json:"answers"` // questionId -> optionId
	ResultID      string            `json:"result_id,omitempty"`
}

// Wire shapes for the quiz endpoints.

type QuizOptionDTO struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type QuizQuestionDTO struct {
	ID       string          `json:"id"`
	Order    int             `json:"order"`
	Question string          `json:"question"`
	Options  []QuizOptionDTO `json:"options"`
}

type QuizResponse struct {
	QuizID    string            `json:"quizId"`
	Language  string            `json:"language"`
	Questions []QuizQuestionDTO `json:"questions"`
}

type QuizScoreRequest struct {
	QuizID   string   `json:"quizId"`
	Language string   `json:"language"`
	Answers  []Answer `json:"answers" binding:"required"`
}

type QuizScoreResponse struct {
	GlowtypeID string `json:"glowtypeId"`
}

type StartAttemptRequest struct {
	Language string `json:"language"`
}

type StartAttemptResponse struct {
	AttemptID     string `json:"attemptId"`
	QuizID        string `json:"quizId"`
	QuestionIndex int    `json:"questionIndex"`
}

type AttemptAnswerRequest struct {
	QuestionID string `json:"questionId" binding:"required"`
	OptionID   string `json:"optionId" binding:"required"`
}

type AttemptStateResponse struct {
	AttemptID     string `json:"attemptId"`
	Status        string `json:"status"`
	QuestionIndex int    `json:"questionIndex"`
	Answered      int    `json:"answered"`
	Total         int    `json:"total"`
}
