package services

import (
	"context"
	"testing"

	"github.com/isdelr/vocab-trainer/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedWords(t *testing.T, svc *WordService, words ...models.Word) []models.Word {
	t.Helper()
	out := make([]models.Word, 0, len(words))
	for _, w := range words {
		created, err := svc.AddWord(context.Background(), w)
		require.NoError(t, err)
		out = append(out, created)
	}
	return out
}

func TestListWordsFilters(t *testing.T) {
	ctx := context.Background()
	svc := NewWordService(newTestDB(t))
	words := seedWords(t, svc,
		models.Word{Word: "apple", Translation: "manzana", Level: "A1", Topic: "food"},
		models.Word{Word: "bread", Translation: "pan", Level: "A2", Topic: "food"},
		models.Word{Word: "dog", Translation: "perro", Level: "A1", Topic: "animals"},
		models.Word{Word: "cheese", Translation: "queso", Level: "A1", Topic: "food"},
	)

	tests := []struct {
		name   string
		filter models.WordFilter
		want   []models.Word
	}{
		{"no filter returns everything in insertion order", models.WordFilter{}, words},
		{"level only", models.WordFilter{Level: "A1"}, []models.Word{words[0], words[2], words[3]}},
		{"topic only", models.WordFilter{Topic: "food"}, []models.Word{words[0], words[1], words[3]}},
		{"level and topic", models.WordFilter{Level: "A1", Topic: "food"}, []models.Word{words[0], words[3]}},
		{"no match", models.WordFilter{Level: "C2"}, []models.Word{}},
		{"match is exact", models.WordFilter{Level: "a1"}, []models.Word{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ListWords(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListWordsLevelScenario(t *testing.T) {
	ctx := context.Background()
	svc := NewWordService(newTestDB(t))
	words := seedWords(t, svc,
		models.Word{Word: "soup", Translation: "sopa", Level: "A1", Topic: "food"},
		models.Word{Word: "stew", Translation: "guiso", Level: "A2", Topic: "food"},
	)

	got, err := svc.ListWords(ctx, models.WordFilter{Level: "A1"})
	require.NoError(t, err)
	assert.Equal(t, []models.Word{words[0]}, got)
}

func TestDistinctTopics(t *testing.T) {
	ctx := context.Background()
	svc := NewWordService(newTestDB(t))

	topics, err := svc.DistinctTopics(ctx)
	require.NoError(t, err)
	assert.Empty(t, topics)

	seedWords(t, svc,
		models.Word{Word: "apple", Translation: "manzana", Level: "A1", Topic: "food"},
		models.Word{Word: "dog", Translation: "perro", Level: "A1", Topic: "animals"},
		models.Word{Word: "bread", Translation: "pan", Level: "A2", Topic: "food"},
	)

	topics, err = svc.DistinctTopics(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"animals", "food"}, topics)
}

func TestAddWordAllowsDuplicates(t *testing.T) {
	ctx := context.Background()
	svc := NewWordService(newTestDB(t))
	w := models.Word{Word: "cat", Translation: "gato", Level: "A1", Topic: "animals"}

	first, err := svc.AddWord(ctx, w)
	require.NoError(t, err)
	second, err := svc.AddWord(ctx, w)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestAddWordRequiresAllFields(t *testing.T) {
	svc := NewWordService(newTestDB(t))
	_, err := svc.AddWord(context.Background(), models.Word{Word: "cat", Translation: "gato", Level: "A1"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeleteWordIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := NewWordService(newTestDB(t))
	words := seedWords(t, svc,
		models.Word{Word: "apple", Translation: "manzana", Level: "A1", Topic: "food"},
		models.Word{Word: "bread", Translation: "pan", Level: "A2", Topic: "food"},
	)

	deleted, err := svc.DeleteWord(ctx, words[0].ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	after, err := svc.ListWords(ctx, models.WordFilter{})
	require.NoError(t, err)
	assert.Equal(t, []models.Word{words[1]}, after)

	deleted, err = svc.DeleteWord(ctx, words[0].ID)
	require.NoError(t, err)
	assert.False(t, deleted)
	again, err := svc.ListWords(ctx, models.WordFilter{})
	require.NoError(t, err)
	assert.Equal(t, after, again)
}

func TestDeleteMissingWordIsNoop(t *testing.T) {
	ctx := context.Background()
	svc := NewWordService(newTestDB(t))
	words := seedWords(t, svc, models.Word{Word: "apple", Translation: "manzana", Level: "A1", Topic: "food"})

	deleted, err := svc.DeleteWord(ctx, 999)
	require.NoError(t, err)
	assert.False(t, deleted)

	got, err := svc.ListWords(ctx, models.WordFilter{})
	require.NoError(t, err)
	assert.Equal(t, words, got)
}

func TestWordIDsAreNotReused(t *testing.T) {
	ctx := context.Background()
	svc := NewWordService(newTestDB(t))
	words := seedWords(t, svc,
		models.Word{Word: "apple", Translation: "manzana", Level: "A1", Topic: "food"},
		models.Word{Word: "bread", Translation: "pan", Level: "A2", Topic: "food"},
	)
	_, err := svc.DeleteWord(ctx, words[1].ID)
	require.NoError(t, err)

	next := seedWords(t, svc, models.Word{Word: "milk", Translation: "leche", Level: "A1", Topic: "food"})
	assert.Greater(t, next[0].ID, words[1].ID)
}
