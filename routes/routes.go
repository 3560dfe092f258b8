package routes

import (
	"net/http"

	"trivia/handlers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	categoryHandler *handlers.CategoryHandler,
	questionHandler *handlers.QuestionHandler,
	quizHandler *handlers.QuizHandler,
) {
	// Unknown paths and wrong verbs get the same fixed JSON error shapes as
	// everything else.
	router.HandleMethodNotAllowed = true
	router.NoRoute(func(c *gin.Context) {
		handlers.ErrorJSON(c, http.StatusNotFound)
	})
	router.NoMethod(func(c *gin.Context) {
		handlers.ErrorJSON(c, http.StatusMethodNotAllowed)
	})

	router.GET("/categories", categoryHandler.GetCategories)
	router.GET("/categories/:id/questions", categoryHandler.GetQuestionsByCategory)

	router.GET("/questions", questionHandler.GetQuestions)
	router.POST("/questions", questionHandler.PostQuestions)
	router.DELETE("/questions/:id", questionHandler.DeleteQuestion)

	router.POST("/quizzes", quizHandler.PlayQuiz)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
