package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/flashcard-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/flashcard-quiz-bot/internal/infra/postgres"
	"github.com/aliskhannn/flashcard-quiz-bot/internal/repository"
)

// BankLoader reads the question bank from the categories and questions tables.
type BankLoader struct {
	db postgres.DBTX
}

// NewBankLoader creates a new BankLoader with the provided database handle.
func NewBankLoader(db postgres.DBTX) *BankLoader {
	return &BankLoader{db: db}
}

// Load reads every category in position order together with its questions
// and returns the validated in-memory bank.
func (l *BankLoader) Load(ctx context.Context) (*repository.BankRepository, error) {
	data, err := l.loadCategories(ctx)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(data))
	for i, c := range data {
		index[c.ID] = i
	}

	query := `
		SELECT category_id, q, a
		FROM questions
		ORDER BY category_id, position
	`

	rows, err := l.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			categoryID string
			q          entities.Question
		)
		if err = rows.Scan(&categoryID, &q.Q, &q.A); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}

		i, ok := index[categoryID]
		if !ok {
			continue
		}
		data[i].Questions = append(data[i].Questions, q)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}

	return repository.NewBankRepository(data)
}

func (l *BankLoader) loadCategories(ctx context.Context) ([]repository.CategoryQuestions, error) {
	query := `
		SELECT id, name, color, icon
		FROM categories
		ORDER BY position, id
	`

	rows, err := l.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}

	data, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (repository.CategoryQuestions, error) {
		var c repository.CategoryQuestions
		err := row.Scan(&c.ID, &c.Name, &c.Color, &c.Icon)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("collect categories: %w", err)
	}

	return data, nil
}
