package services

import (
	"context"
	"testing"

	"github.com/isdelr/vocab-trainer/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextQuestionEmptyPool(t *testing.T) {
	quiz := NewQuizService(NewQuestionService(newTestDB(t)), nil)

	_, err := quiz.NextQuestion(context.Background())
	assert.ErrorIs(t, err, ErrEmptyPool)
}

func TestNextQuestionDrawsFromWholePool(t *testing.T) {
	ctx := context.Background()
	questions := NewQuestionService(newTestDB(t))

	var created []models.Question
	for i := 0; i < 3; i++ {
		q, err := questions.AddQuestion(ctx, capitalQuestion())
		require.NoError(t, err)
		created = append(created, q)
	}

	var bounds []int
	pick := 0
	quiz := NewQuizService(questions, func(n int) int {
		bounds = append(bounds, n)
		return pick
	})

	for pick = 0; pick < len(created); pick++ {
		q, err := quiz.NextQuestion(ctx)
		require.NoError(t, err)
		assert.Equal(t, created[pick], q)
	}
	assert.Equal(t, []int{3, 3, 3}, bounds)

	// The pool is re-read on every call.
	_, err := questions.DeleteQuestion(ctx, created[0].ID)
	require.NoError(t, err)
	pick = 0
	q, err := quiz.NextQuestion(ctx)
	require.NoError(t, err)
	assert.Equal(t, created[1], q)
	assert.Equal(t, 2, bounds[len(bounds)-1])
}

func TestNextQuestionDefaultRandomStaysInRange(t *testing.T) {
	ctx := context.Background()
	questions := NewQuestionService(newTestDB(t))
	seen := map[int64]bool{}
	ids := map[int64]bool{}
	for i := 0; i < 2; i++ {
		q, err := questions.AddQuestion(ctx, capitalQuestion())
		require.NoError(t, err)
		ids[q.ID] = true
	}

	quiz := NewQuizService(questions, nil)
	for i := 0; i < 50; i++ {
		q, err := quiz.NextQuestion(ctx)
		require.NoError(t, err)
		require.True(t, ids[q.ID])
		seen[q.ID] = true
	}
	assert.Len(t, seen, 2)
}

func TestEvaluate(t *testing.T) {
	quiz := NewQuizService(nil, nil)
	q := capitalQuestion()

	tests := []struct {
		name      string
		submitted string
		correct   bool
	}{
		{"exact", "Paris", true},
		{"lower case", "paris", true},
		{"surrounding whitespace", " Paris ", true},
		{"tabs and newlines", "\tPARIS\n", true},
		{"wrong answer", "Lyon", false},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"inner whitespace matters", "Pa ris", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := quiz.Evaluate(q, tt.submitted)
			assert.Equal(t, tt.correct, fb.Correct)
			if tt.correct {
				assert.Empty(t, fb.CorrectAnswer)
			} else {
				assert.Equal(t, "Paris", fb.CorrectAnswer)
			}
		})
	}

	assert.Equal(t, quiz.Evaluate(q, " Paris "), quiz.Evaluate(q, "paris"))
}

func TestEvaluateKeepsOriginalAnswerText(t *testing.T) {
	quiz := NewQuizService(nil, nil)
	q := capitalQuestion()
	q.CorrectAnswer = "  Paris "

	fb := quiz.Evaluate(q, "Nice")
	assert.False(t, fb.Correct)
	assert.Equal(t, "  Paris ", fb.CorrectAnswer)
}

func TestSubmitUsesPinnedQuestion(t *testing.T) {
	ctx := context.Background()
	questions := NewQuestionService(newTestDB(t))
	first, err := questions.AddQuestion(ctx, capitalQuestion())
	require.NoError(t, err)
	second, err := questions.AddQuestion(ctx, models.Question{
		Prompt: "Translate 'dog'", CorrectAnswer: "perro",
		Option1: "gato", Option2: "perro", Option3: "pez",
	})
	require.NoError(t, err)

	// Selection would always return the second question; grading must not care.
	quiz := NewQuizService(questions, func(n int) int { return n - 1 })

	fb, err := quiz.Submit(ctx, first.ID, "paris")
	require.NoError(t, err)
	assert.True(t, fb.Correct)

	fb, err = quiz.Submit(ctx, second.ID, "paris")
	require.NoError(t, err)
	assert.False(t, fb.Correct)
	assert.Equal(t, "perro", fb.CorrectAnswer)

	_, err = quiz.Submit(ctx, 999, "paris")
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}
