package routes

import (
	"errors"
	"net/http"

	"glowtype/handlers"
	"glowtype/models"
	"glowtype/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func SetupRoutes(
	router *gin.Engine,
	quizHandler *handlers.QuizHandler,
	glowtypeHandler *handlers.GlowtypeHandler,
	chatHandler *handlers.ChatHandler,
	helpHandler *handlers.HelpHandler,
	chatService *services.ChatService,
	logger *zap.Logger,
) {
	api := router.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthHandler)

		api.GET("/quiz", quizHandler.GetQuiz)
		api.POST("/quiz/score", quizHandler.ScoreQuiz)

		attempts := api.Group("/quiz/attempt")
		{
			attempts.POST("", quizHandler.StartAttempt)
			attempts.GET("/:id", quizHandler.GetAttempt)
			attempts.POST("/:id/answer", quizHandler.AnswerAttempt)
			attempts.POST("/:id/next", quizHandler.NextQuestion)
			attempts.POST("/:id/back", quizHandler.BackQuestion)
			attempts.POST("/:id/submit", quizHandler.SubmitAttempt)
		}

		api.GET("/glowtypes/:id", glowtypeHandler.GetGlowtype)

		chat := api.Group("/chat")
		{
			chat.POST("/session", chatHandler.CreateSession)
			chat.POST("/message", chatHandler.SendMessage)
			chat.GET("/session/:id/log", chatHandler.GetLog)
			chat.DELETE("/session/:id", chatHandler.EndSession)
		}

		api.GET("/help", helpHandler.GetHelp)
	}

	// WebSocket transport for the chat protocol. Each frame goes through the
	// same per-message pipeline as POST /chat/message.
	router.GET("/ws/chat/:sessionId", func(c *gin.Context) {
		sessionID := c.Param("sessionId")

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.Warn("websocket upgrade failed", zap.Error(err))
			return
		}
		defer conn.Close()

		for {
			var req models.ChatMessageRequest
			if err := conn.ReadJSON(&req); err != nil {
				return
			}
			req.SessionID = sessionID
			if req.Message == "" {
				_ = conn.WriteJSON(gin.H{"error": gin.H{"kind": models.KindInvalidPayload}})
				continue
			}

			resp, err := chatService.SendMessage(c.Request.Context(), req)
			if err != nil {
				if errors.Is(err, models.ErrUnknownSession) {
					_ = conn.WriteJSON(gin.H{"error": gin.H{"kind": models.KindUnknownSession}})
					return
				}
				_ = conn.WriteJSON(gin.H{"error": gin.H{"kind": models.KindInternal}})
				continue
			}
			if err := conn.WriteJSON(resp); err != nil {
				return
			}
		}
	})
}
