package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/flashcard-quiz-bot/internal/domain/entities"
)

func writeBank(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "questions.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestNewJSONBankRepository(t *testing.T) {
	t.Parallel()

	path := writeBank(t, `{"categories":[
		{"id":"b","name":"Beta","color":"blue","icon":"📘","questions":[{"q":"b1","a":"B1"},{"q":"b2","a":"B2"}]},
		{"id":"a","name":"Alpha","color":"red","icon":"📕","questions":[{"q":"a1","a":"A1"}]}
	]}`)

	bank, err := NewJSONBankRepository(path)
	require.NoError(t, err)

	ctx := context.Background()
	cats := bank.ListCategories(ctx)
	require.Len(t, cats, 2)
	assert.Equal(t, "b", cats[0].ID, "source order is kept")
	assert.Equal(t, "📘 Beta", cats[0].Label())

	qs := bank.GetQuestions(ctx, "b")
	assert.Equal(t, []entities.Question{{Q: "b1", A: "B1"}, {Q: "b2", A: "B2"}}, qs)
	assert.Equal(t, 2, bank.Count("b"))

	cat, ok := bank.GetCategory(ctx, "a")
	require.True(t, ok)
	assert.Equal(t, "Alpha", cat.Name)
}

func TestBankRepository_UnknownCategory(t *testing.T) {
	t.Parallel()

	bank, err := NewBankRepository([]CategoryQuestions{{
		Category:  entities.Category{ID: "a", Name: "A"},
		Questions: []entities.Question{{Q: "q", A: "a"}},
	}})
	require.NoError(t, err)

	ctx := context.Background()
	qs := bank.GetQuestions(ctx, "missing")
	assert.NotNil(t, qs)
	assert.Empty(t, qs)

	_, ok := bank.GetCategory(ctx, "missing")
	assert.False(t, ok)
}

func TestBankRepository_ReturnsCopies(t *testing.T) {
	t.Parallel()

	bank, err := NewBankRepository([]CategoryQuestions{{
		Category:  entities.Category{ID: "a", Name: "A"},
		Questions: []entities.Question{{Q: "q", A: "a"}},
	}})
	require.NoError(t, err)

	ctx := context.Background()
	qs := bank.GetQuestions(ctx, "a")
	qs[0].Q = "changed"
	assert.Equal(t, "q", bank.GetQuestions(ctx, "a")[0].Q)

	cats := bank.ListCategories(ctx)
	cats[0].Name = "changed"
	assert.Equal(t, "A", bank.ListCategories(ctx)[0].Name)
}

func TestNewBankRepository_Invalid(t *testing.T) {
	t.Parallel()

	cat := func(id string, qs ...entities.Question) CategoryQuestions {
		return CategoryQuestions{Category: entities.Category{ID: id, Name: id}, Questions: qs}
	}
	q := entities.Question{Q: "q", A: "a"}

	tests := []struct {
		name    string
		data    []CategoryQuestions
		wantErr error
	}{
		{name: "empty bank", data: nil, wantErr: ErrEmptyBank},
		{name: "duplicate id", data: []CategoryQuestions{cat("a", q), cat("a", q)}, wantErr: ErrDuplicateCategory},
		{name: "blank question", data: []CategoryQuestions{cat("a", entities.Question{Q: " ", A: "a"})}, wantErr: ErrInvalidQuestion},
		{name: "blank answer", data: []CategoryQuestions{cat("a", entities.Question{Q: "q"})}, wantErr: ErrInvalidQuestion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewBankRepository(tt.data)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := NewBankRepository([]CategoryQuestions{cat("", q)})
	assert.Error(t, err)
}

func TestNewJSONBankRepository_Errors(t *testing.T) {
	t.Parallel()

	_, err := NewJSONBankRepository(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = NewJSONBankRepository(writeBank(t, `{"categories":`))
	assert.Error(t, err)

	_, err = NewJSONBankRepository(writeBank(t, `{"categories":[]}`))
	assert.ErrorIs(t, err, ErrEmptyBank)
}

func TestBundledBank(t *testing.T) {
	t.Parallel()

	bank, err := NewJSONBankRepository(filepath.Join("..", "..", "assets", "data", "questions.json"))
	require.NoError(t, err)

	for _, c := range bank.ListCategories(context.Background()) {
		assert.NotZero(t, bank.Count(c.ID), c.ID)
	}
}
