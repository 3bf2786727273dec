package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/aliskhannn/flashcard-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/flashcard-quiz-bot/internal/repository"
)

const schema = `
CREATE TABLE IF NOT EXISTS categories (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    color TEXT NOT NULL DEFAULT '',
    icon TEXT NOT NULL DEFAULT '',
    position INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS questions (
    category_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    q TEXT NOT NULL,
    a TEXT NOT NULL,
    PRIMARY KEY (category_id, position),
    FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE CASCADE
);
`

// BankStore keeps the question bank in a SQLite file.
type BankStore struct {
	db *sql.DB
}

// Open opens the database at path and creates the bank tables if needed.
func Open(ctx context.Context, path string) (*BankStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err = db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &BankStore{db: db}, nil
}

func (s *BankStore) Close() error {
	return s.db.Close()
}

// Empty reports whether no category has been stored yet.
func (s *BankStore) Empty(ctx context.Context) (bool, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&n); err != nil {
		return false, fmt.Errorf("count categories: %w", err)
	}
	return n == 0, nil
}

// Seed replaces the stored bank with data in a single transaction.
func (s *BankStore) Seed(ctx context.Context, data []repository.CategoryQuestions) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err = tx.ExecContext(ctx, `DELETE FROM questions`); err != nil {
		return fmt.Errorf("clear questions: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM categories`); err != nil {
		return fmt.Errorf("clear categories: %w", err)
	}

	for i, c := range data {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO categories (id, name, color, icon, position) VALUES (?, ?, ?, ?, ?)`,
			c.ID, c.Name, c.Color, c.Icon, i,
		)
		if err != nil {
			return fmt.Errorf("insert category %q: %w", c.ID, err)
		}

		for j, q := range c.Questions {
			_, err = tx.ExecContext(ctx,
				`INSERT INTO questions (category_id, position, q, a) VALUES (?, ?, ?, ?)`,
				c.ID, j, q.Q, q.A,
			)
			if err != nil {
				return fmt.Errorf("insert question %d of %q: %w", j+1, c.ID, err)
			}
		}
	}

	return tx.Commit()
}

// Load reads the stored bank and returns the validated in-memory bank.
func (s *BankStore) Load(ctx context.Context) (*repository.BankRepository, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, color, icon FROM categories ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var data []repository.CategoryQuestions
	index := make(map[string]int)
	for rows.Next() {
		var c repository.CategoryQuestions
		if err = rows.Scan(&c.ID, &c.Name, &c.Color, &c.Icon); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		index[c.ID] = len(data)
		data = append(data, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}

	qrows, err := s.db.QueryContext(ctx, `SELECT category_id, q, a FROM questions ORDER BY category_id, position`)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer qrows.Close()

	for qrows.Next() {
		var (
			categoryID string
			q          entities.Question
		)
		if err = qrows.Scan(&categoryID, &q.Q, &q.A); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		if i, ok := index[categoryID]; ok {
			data[i].Questions = append(data[i].Questions, q)
		}
	}
	if err = qrows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}

	return repository.NewBankRepository(data)
}
