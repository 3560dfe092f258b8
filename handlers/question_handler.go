package handlers

import (
	"net/http"
	"strconv"

	"trivia/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type QuestionHandler struct {
	triviaService *services.TriviaService
	logger        *zap.Logger
}

func NewQuestionHandler(triviaService *services.TriviaService, logger *zap.Logger) *QuestionHandler {
	return &QuestionHandler{
		triviaService: triviaService,
		logger:        logger,
	}
}

// pageFromQuery reads the 1-based page number from the query string.
// Anything non-numeric or below 1 falls back to the first page.
func pageFromQuery(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	result, err := h.triviaService.ListQuestions(pageFromQuery(c))
	if err != nil {
		respondError(c, h.logger, "list questions", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"total_questions": result.Total,
		"questions":       result.Questions,
		"categories":      result.Categories,
	})
}

func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		ErrorJSON(c, http.StatusBadRequest)
		return
	}

	result, err := h.triviaService.DeleteQuestion(id, pageFromQuery(c))
	if err != nil {
		respondError(c, h.logger, "delete question", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"deleted":         result.Deleted,
		"questions":       result.Questions,
		"total_questions": result.Total,
		"categories":      result.Categories,
	})
}

// postQuestionsRequest carries both uses of POST /questions: a body with
// searchTerm is a search, anything else is a creation. Creation fields are
// optional on purpose; absent fields are stored as zero values.
type postQuestionsRequest struct {
	SearchTerm *string `json:"searchTerm"`
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Category   int     `json:"category"`
	Difficulty int     `json:"difficulty"`
}

func (h *QuestionHandler) PostQuestions(c *gin.Context) {
	var req postQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("malformed questions body", zap.Error(err))
		ErrorJSON(c, http.StatusUnprocessableEntity)
		return
	}

	if req.SearchTerm != nil {
		h.searchQuestions(c, *req.SearchTerm)
		return
	}
	h.createQuestion(c, req)
}

func (h *QuestionHandler) searchQuestions(c *gin.Context, term string) {
	result, err := h.triviaService.SearchQuestions(term, pageFromQuery(c))
	if err != nil {
		respondError(c, h.logger, "search questions", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"questions":       result.Questions,
		"total_questions": result.Total,
	})
}

func (h *QuestionHandler) createQuestion(c *gin.Context, req postQuestionsRequest) {
	input := services.QuestionInput{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category,
		Difficulty: req.Difficulty,
	}

	result, err := h.triviaService.CreateQuestion(input, pageFromQuery(c))
	if err != nil {
		respondError(c, h.logger, "create question", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"created":         result.Created,
		"questions":       result.Questions,
		"total_questions": result.Total,
	})
}
