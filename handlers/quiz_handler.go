package handlers

import (
	"net/http"

	"trivia/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type QuizHandler struct {
	triviaService *services.TriviaService
	logger        *zap.Logger
}

func NewQuizHandler(triviaService *services.TriviaService, logger *zap.Logger) *QuizHandler {
	return &QuizHandler{
		triviaService: triviaService,
		logger:        logger,
	}
}

type quizCategory struct {
	Type string `json:"type"`
	ID   int    `json:"id"`
}

type quizRequest struct {
	QuizCategory      *quizCategory `json:"quiz_category"`
	PreviousQuestions []int         `json:"previous_questions"`
}

// PlayQuiz draws the next random unseen question. A missing quiz_category,
// or one with id 0, means all categories.
func (h *QuizHandler) PlayQuiz(c *gin.Context) {
	var req quizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("malformed quiz body", zap.Error(err))
		ErrorJSON(c, http.StatusUnprocessableEntity)
		return
	}

	categoryID := 0
	if req.QuizCategory != nil {
		categoryID = req.QuizCategory.ID
	}

	question, err := h.triviaService.NextQuizQuestion(categoryID, req.PreviousQuestions)
	if err != nil {
		respondError(c, h.logger, "draw quiz question", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"question": question,
	})
}
