package handlers

import (
	"net/http"
	"strconv"

	"trivia/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	triviaService *services.TriviaService
	logger        *zap.Logger
}

func NewCategoryHandler(triviaService *services.TriviaService, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		triviaService: triviaService,
		logger:        logger,
	}
}

func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, total, err := h.triviaService.ListCategories()
	if err != nil {
		respondError(c, h.logger, "list categories", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"categories":       categories,
		"total_categories": total,
	})
}

func (h *CategoryHandler) GetQuestionsByCategory(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		ErrorJSON(c, http.StatusBadRequest)
		return
	}

	result, err := h.triviaService.ListQuestionsByCategory(categoryID, pageFromQuery(c))
	if err != nil {
		respondError(c, h.logger, "list questions by category", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"total_questions": result.Total,
		"questions":       result.Questions,
		"categories":      result.CategoryType,
	})
}
