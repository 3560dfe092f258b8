package services

import (
	"errors"
	"fmt"
	"strings"

	"trivia/models"

	"gorm.io/gorm"
)

type TriviaService struct {
	db *gorm.DB
}

func NewTriviaService(db *gorm.DB) *TriviaService {
	return &TriviaService{db: db}
}

type QuestionInput struct {
	Question   string
	Answer     string
	Category   int
	Difficulty int
}

type QuestionList struct {
	Questions  []models.Question
	Total      int
	Categories map[int]string
}

type DeleteResult struct {
	Deleted    int
	Questions  []models.Question
	Total      int
	Categories map[int]string
}

type CreateResult struct {
	Created   int
	Questions []models.Question
	Total     int
}

type SearchResult struct {
	Questions []models.Question
	Total     int
}

type CategoryQuestions struct {
	Questions    []models.Question
	Total        int
	CategoryType string
}

// dbErr tags an unexpected storage failure as internal while keeping the
// cause text for server-side logs.
func dbErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
}

// ListCategories returns all categories keyed by id. An empty table is
// reported as not found, matching the behavior the API's clients rely on.
func (s *TriviaService) ListCategories() (map[int]string, int, error) {
	categories, err := s.allCategories()
	if err != nil {
		return nil, 0, err
	}
	if len(categories) == 0 {
		return nil, 0, fmt.Errorf("%w: no categories", ErrNotFound)
	}
	return categories, len(categories), nil
}

// ListQuestions returns one page of questions ordered by id, the whole-table
// total and the full category map. A table with zero questions is reported
// as unprocessable; a page past the end is a success with an empty page.
func (s *TriviaService) ListQuestions(page int) (*QuestionList, error) {
	categories, err := s.allCategories()
	if err != nil {
		return nil, err
	}

	var questions []models.Question
	if err := s.db.Order("id").Find(&questions).Error; err != nil {
		return nil, dbErr("list questions", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: no questions", ErrUnprocessable)
	}

	return &QuestionList{
		Questions:  Paginate(questions, page),
		Total:      len(questions),
		Categories: categories,
	}, nil
}

// DeleteQuestion removes the question in a single transaction and returns
// the post-deletion state of the list. A missing id is unprocessable, not
// not-found; clients of the original API depend on the 422.
func (s *TriviaService) DeleteQuestion(id int, page int) (*DeleteResult, error) {
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var question models.Question
	if err := tx.First(&question, id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: question %d", ErrUnprocessable, id)
		}
		return nil, dbErr("find question", err)
	}

	if err := tx.Delete(&question).Error; err != nil {
		tx.Rollback()
		return nil, dbErr("delete question", err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, dbErr("commit delete", err)
	}

	categories, err := s.allCategories()
	if err != nil {
		return nil, err
	}
	var remaining []models.Question
	if err := s.db.Order("id").Find(&remaining).Error; err != nil {
		return nil, dbErr("list questions", err)
	}

	return &DeleteResult{
		Deleted:    id,
		Questions:  Paginate(remaining, page),
		Total:      len(remaining),
		Categories: categories,
	}, nil
}

// CreateQuestion inserts a new question in a single transaction. Fields are
// stored as submitted; in particular the category id is not checked against
// the categories table.
func (s *TriviaService) CreateQuestion(input QuestionInput, page int) (*CreateResult, error) {
	question := models.Question{
		Question:   input.Question,
		Answer:     input.Answer,
		Category:   input.Category,
		Difficulty: input.Difficulty,
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&question).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("%w: create question: %v", ErrUnprocessable, err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, dbErr("commit create", err)
	}

	var questions []models.Question
	if err := s.db.Order("id").Find(&questions).Error; err != nil {
		return nil, dbErr("list questions", err)
	}

	return &CreateResult{
		Created:   question.ID,
		Questions: Paginate(questions, page),
		Total:     len(questions),
	}, nil
}

// SearchQuestions matches term case-insensitively against the question text
// only. The total counts matches, not the whole table, and an empty match
// set is a success.
func (s *TriviaService) SearchQuestions(term string, page int) (*SearchResult, error) {
	var questions []models.Question
	err := s.db.
		Where("LOWER(question) LIKE ?", "%"+strings.ToLower(term)+"%").
		Order("id").
		Find(&questions).Error
	if err != nil {
		return nil, dbErr("search questions", err)
	}

	return &SearchResult{
		Questions: Paginate(questions, page),
		Total:     len(questions),
	}, nil
}

// ListQuestionsByCategory fails with not-found only when the category id has
// no row at all. An existing category with zero questions returns an empty
// page and a zero total.
func (s *TriviaService) ListQuestionsByCategory(categoryID int, page int) (*CategoryQuestions, error) {
	var category models.Category
	if err := s.db.First(&category, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: category %d", ErrNotFound, categoryID)
		}
		return nil, dbErr("find category", err)
	}

	var questions []models.Question
	err := s.db.Where("category = ?", categoryID).Order("id").Find(&questions).Error
	if err != nil {
		return nil, dbErr("list category questions", err)
	}

	return &CategoryQuestions{
		Questions:    Paginate(questions, page),
		Total:        len(questions),
		CategoryType: category.Type,
	}, nil
}

// NextQuizQuestion draws one question uniformly at random among those not in
// previousIDs, restricted to categoryID when it is nonzero (zero is the
// "all categories" sentinel). Not-found signals the pool is exhausted.
func (s *TriviaService) NextQuizQuestion(categoryID int, previousIDs []int) (*models.Question, error) {
	query := s.db.Model(&models.Question{})
	if categoryID != 0 {
		query = query.Where("category = ?", categoryID)
	}
	if len(previousIDs) > 0 {
		query = query.Where("id NOT IN ?", previousIDs)
	}

	var question models.Question
	if err := query.Order("RANDOM()").First(&question).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no questions left", ErrNotFound)
		}
		return nil, dbErr("draw question", err)
	}
	return &question, nil
}

func (s *TriviaService) allCategories() (map[int]string, error) {
	var categories []models.Category
	if err := s.db.Order("id").Find(&categories).Error; err != nil {
		return nil, dbErr("list categories", err)
	}
	formatted := make(map[int]string, len(categories))
	for _, category := range categories {
		formatted[category.ID] = category.Type
	}
	return formatted, nil
}
