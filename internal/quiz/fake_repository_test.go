package quiz_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/saulo-duarte/quizgen/internal/quiz"
)

type fakeRepo struct {
	mu      sync.Mutex
	quizzes map[string]*quiz.Quiz
	clock   time.Time
	failOn  string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		quizzes: map[string]*quiz.Quiz{},
		clock:   time.Date(2025, time.March, 14, 9, 0, 0, 0, time.UTC),
	}
}

var errBoom = errors.New("boom")

func (f *fakeRepo) Create(_ context.Context, q *quiz.Quiz) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failOn == "create" {
		return errBoom
	}
	f.clock = f.clock.Add(time.Minute)
	q.CreatedAt = f.clock
	f.quizzes[q.ID.String()] = q
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id, userID string) (*quiz.Quiz, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	q, ok := f.quizzes[id]
	if !ok || q.UserID.String() != userID {
		return nil, nil
	}
	return q, nil
}

func (f *fakeRepo) ListByUser(_ context.Context, userID string) ([]*quiz.Quiz, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failOn == "list" {
		return nil, errBoom
	}
	var out []*quiz.Quiz
	for _, q := range f.quizzes {
		if q.UserID.String() == userID {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeRepo) Delete(_ context.Context, id, userID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	q, ok := f.quizzes[id]
	if !ok || q.UserID.String() != userID {
		return false, nil
	}
	delete(f.quizzes, id)
	return true, nil
}

func (f *fakeRepo) DeleteAllByUser(_ context.Context, userID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for id, q := range f.quizzes {
		if q.UserID.String() == userID {
			delete(f.quizzes, id)
			n++
		}
	}
	return n, nil
}
