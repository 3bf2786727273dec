package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aliskhannn/flashcard-quiz-bot/internal/domain/entities"
)

var (
	ErrEmptyBank         = errors.New("question bank is empty")
	ErrDuplicateCategory = errors.New("duplicate category id")
	ErrInvalidQuestion   = errors.New("invalid question")
)

// CategoryQuestions is a category together with its ordered questions,
// the shape every bank loader produces.
type CategoryQuestions struct {
	entities.Category
	Questions []entities.Question `json:"questions"`
}

// BankRepository provides read-only access to the question bank.
// It is populated once and never modified afterwards.
type BankRepository struct {
	categories []entities.Category
	questions  map[string][]entities.Question
}

// NewBankRepository validates the loaded data and builds an immutable bank.
func NewBankRepository(data []CategoryQuestions) (*BankRepository, error) {
	if len(data) == 0 {
		return nil, ErrEmptyBank
	}

	r := &BankRepository{
		categories: make([]entities.Category, 0, len(data)),
		questions:  make(map[string][]entities.Question, len(data)),
	}

	for _, c := range data {
		if strings.TrimSpace(c.ID) == "" {
			return nil, fmt.Errorf("category %q: empty id", c.Name)
		}
		if _, ok := r.questions[c.ID]; ok {
			return nil, fmt.Errorf("category %q: %w", c.ID, ErrDuplicateCategory)
		}

		qs := make([]entities.Question, 0, len(c.Questions))
		for i, q := range c.Questions {
			if strings.TrimSpace(q.Q) == "" || strings.TrimSpace(q.A) == "" {
				return nil, fmt.Errorf("category %q question %d: %w", c.ID, i+1, ErrInvalidQuestion)
			}
			qs = append(qs, q)
		}

		r.categories = append(r.categories, c.Category)
		r.questions[c.ID] = qs
	}

	return r, nil
}

// NewJSONBankRepository loads the question bank from a JSON file.
func NewJSONBankRepository(path string) (*BankRepository, error) {
	data, err := LoadJSONBank(path)
	if err != nil {
		return nil, err
	}
	return NewBankRepository(data)
}

// LoadJSONBank reads the raw categories of a JSON question bank file.
func LoadJSONBank(path string) ([]CategoryQuestions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}

	var wrapper struct {
		Categories []CategoryQuestions `json:"categories"`
	}
	if err = json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal question bank JSON: %w", err)
	}

	return wrapper.Categories, nil
}

// ListCategories returns all categories in source order.
func (r *BankRepository) ListCategories(_ context.Context) []entities.Category {
	out := make([]entities.Category, len(r.categories))
	copy(out, r.categories)
	return out
}

// GetCategory returns the display metadata of a category.
func (r *BankRepository) GetCategory(_ context.Context, categoryID string) (entities.Category, bool) {
	for _, c := range r.categories {
		if c.ID == categoryID {
			return c, true
		}
	}
	return entities.Category{}, false
}

// GetQuestions returns a copy of the ordered questions of a category.
// An unknown category yields an empty slice.
func (r *BankRepository) GetQuestions(_ context.Context, categoryID string) []entities.Question {
	qs := r.questions[categoryID]
	out := make([]entities.Question, len(qs))
	copy(out, qs)
	return out
}

// Count returns the number of questions in a category.
func (r *BankRepository) Count(categoryID string) int {
	return len(r.questions[categoryID])
}
