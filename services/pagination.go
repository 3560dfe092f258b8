package services

import "trivia/models"

const QuestionsPerPage = 10

// Paginate returns the 1-indexed page-sized window of questions. A page past
// the end yields an empty slice, never an error.
func Paginate(questions []models.Question, page int) []models.Question {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * QuestionsPerPage
	if start >= len(questions) {
		return []models.Question{}
	}
	end := start + QuestionsPerPage
	if end > len(questions) {
		end = len(questions)
	}
	return questions[start:end]
}
