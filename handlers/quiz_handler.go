package handlers

import (
	"net/http"

	"glowtype/models"
	"glowtype/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizService    *services.QuizService
	scoringService *services.ScoringService
	attemptService *services.AttemptService
}

func NewQuizHandler(quizService *services.QuizService, scoringService *services.ScoringService, attemptService *services.AttemptService) *QuizHandler {
	return &QuizHandler{
		quizService:    quizService,
		scoringService: scoringService,
		attemptService: attemptService,
	}
}

func (h *QuizHandler) GetQuiz(c *gin.Context) {
	c.JSON(http.StatusOK, h.quizService.GetQuiz(langFromRequest(c)))
}

// ScoreQuiz is the stateless scoring path: the client sends the full answer
// set and gets the resolved glowtype back.
func (h *QuizHandler) ScoreQuiz(c *gin.Context) {
	var req models.QuizScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	glowtypeID, err := h.scoringService.Resolve(req.Answers)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.QuizScoreResponse{GlowtypeID: glowtypeID})
}

func (h *QuizHandler) StartAttempt(c *gin.Context) {
	var req models.StartAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	attempt, err := h.attemptService.Start(c.Request.Context(), req.Language)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.StartAttemptResponse{
		AttemptID:     attempt.ID,
		QuizID:        attempt.QuizID,
		QuestionIndex: attempt.QuestionIndex,
	})
}

func (h *QuizHandler) AnswerAttempt(c *gin.Context) {
	var req models.AttemptAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	attempt, err := h.attemptService.Answer(c.Request.Context(), c.Param("id"), req.QuestionID, req.OptionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.attemptState(attempt))
}

func (h *QuizHandler) NextQuestion(c *gin.Context) {
	attempt, err := h.attemptService.Next(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.attemptState(attempt))
}

func (h *QuizHandler) BackQuestion(c *gin.Context) {
	attempt, err := h.attemptService.Back(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.attemptState(attempt))
}

func (h *QuizHandler) SubmitAttempt(c *gin.Context) {
	glowtypeID, err := h.attemptService.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.QuizScoreResponse{GlowtypeID: glowtypeID})
}

func (h *QuizHandler) GetAttempt(c *gin.Context) {
	attempt, err := h.attemptService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.attemptState(attempt))
}

func (h *QuizHandler) attemptState(attempt *models.QuizAttempt) models.AttemptStateResponse {
	return models.AttemptStateResponse{
		AttemptID:     attempt.ID,
		Status:        attempt.Status,
		QuestionIndex: attempt.QuestionIndex,
		Answered:      len(attempt.Answers),
		Total:         len(h.quizService.Definition().Questions),
	}
}
