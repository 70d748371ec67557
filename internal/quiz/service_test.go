package quiz_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/quizgen/internal/quiz"
)

func questions(answers ...string) []json.RawMessage {
	out := make([]json.RawMessage, len(answers))
	for i, a := range answers {
		out[i] = json.RawMessage(`{"question":"Q?","correctAnswer":"` + a + `","extra":true}`)
	}
	return out
}

func TestScore(t *testing.T) {
	score, err := quiz.Score(questions("A", "B", "C", "D", "A"), map[int]string{0: "A", 1: "C", 2: "C", 4: "A"})
	require.NoError(t, err)
	assert.Equal(t, 3, score)

	score, err = quiz.Score(questions("A", "B"), nil)
	require.NoError(t, err)
	assert.Zero(t, score)

	_, err = quiz.Score([]json.RawMessage{json.RawMessage(`"just a string"`)}, nil)
	assert.ErrorIs(t, err, quiz.ErrInvalidQuestions)

	_, err = quiz.Score([]json.RawMessage{json.RawMessage(`{"question":"Q?"}`)}, nil)
	assert.ErrorIs(t, err, quiz.ErrInvalidQuestions)

	_, err = quiz.Score([]json.RawMessage{json.RawMessage(`{"question":"Q?","correctAnswer":null}`)}, nil)
	assert.ErrorIs(t, err, quiz.ErrInvalidQuestions)
}

func TestScore_NonStringAnswerKeys(t *testing.T) {
	qs := []json.RawMessage{
		json.RawMessage(`{"question":"Q1?","correctAnswer":1}`),
		json.RawMessage(`{"question":"Q2?","correctAnswer":true}`),
		json.RawMessage(`{"question":"Q3?","correctAnswer":2}`),
	}
	score, err := quiz.Score(qs, map[int]string{0: "1", 1: "true", 2: "1"})
	require.NoError(t, err)
	assert.Equal(t, 2, score)
}

func TestQuizService(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := quiz.NewService(repo)
	alice := uuid.NewString()
	bob := uuid.NewString()

	first, err := svc.SaveAttempt(ctx, alice, quiz.CreateQuizRequest{
		Topic:       "  Ancient Rome ",
		Questions:   questions("A", "B", "C", "D", "A"),
		UserAnswers: map[int]string{0: "A", 1: "B", 2: "C", 3: "D", 4: "B"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Ancient Rome", first.Topic)
	assert.Equal(t, 4, first.Score)
	assert.Equal(t, 5, first.TotalQuestions)
	assert.JSONEq(t, `{"0":"A","1":"B","2":"C","3":"D","4":"B"}`, string(first.UserAnswers))

	var stored []map[string]any
	require.NoError(t, json.Unmarshal(first.Questions, &stored))
	assert.Equal(t, true, stored[0]["extra"])

	second, err := svc.SaveAttempt(ctx, alice, quiz.CreateQuizRequest{
		Topic:     "Chess Strategies",
		Questions: questions("A"),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(second.UserAnswers))

	t.Run("list is newest first", func(t *testing.T) {
		list, err := svc.ListAttempts(ctx, alice)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, second.ID, list[0].ID)
	})

	t.Run("other users cannot see it", func(t *testing.T) {
		_, err := svc.GetAttempt(ctx, bob, first.ID.String())
		assert.ErrorIs(t, err, quiz.ErrNotFound)

		err = svc.DeleteAttempt(ctx, bob, first.ID.String())
		assert.ErrorIs(t, err, quiz.ErrNotFound)
	})

	t.Run("malformed id is not found", func(t *testing.T) {
		_, err := svc.GetAttempt(ctx, alice, "not-a-uuid")
		assert.ErrorIs(t, err, quiz.ErrNotFound)
	})

	t.Run("invalid user id", func(t *testing.T) {
		_, err := svc.SaveAttempt(ctx, "nope", quiz.CreateQuizRequest{Topic: "x", Questions: questions("A")})
		assert.ErrorIs(t, err, quiz.ErrInvalidUserID)
	})

	t.Run("delete and clear", func(t *testing.T) {
		require.NoError(t, svc.DeleteAttempt(ctx, alice, first.ID.String()))
		_, err := svc.GetAttempt(ctx, alice, first.ID.String())
		assert.ErrorIs(t, err, quiz.ErrNotFound)

		n, err := svc.ClearAttempts(ctx, alice)
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)
	})
}
