package memory

import (
	"context"
	"testing"
	"time"

	"exam-review-service/internal/domain"
)

func TestQuestionSetRepositoryCaches(t *testing.T) {
	loader := &countingLoader{
		QuestionSetLoader: NewStaticSetLoader(map[string]domain.QuestionSet{
			"abc123": sampleSet(),
		}),
	}
	repo := NewQuestionSetRepository(loader, time.Minute)

	if _, err := repo.GetQuestionSet(context.Background(), "abc123"); err != nil {
		t.Fatalf("get set: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader once, got %d", loader.calls)
	}

	if _, err := repo.GetQuestionSet(context.Background(), "abc123"); err != nil {
		t.Fatalf("get set 2: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected cache hit, loader calls %d", loader.calls)
	}
}

func TestQuestionSetRepositoryUnknownCode(t *testing.T) {
	repo := NewQuestionSetRepository(NewStaticSetLoader(nil), time.Minute)
	if _, err := repo.GetQuestionSet(context.Background(), "nope"); err != domain.ErrQuestionSetNotFound {
		t.Fatalf("expected ErrQuestionSetNotFound, got %v", err)
	}
}

type countingLoader struct {
	QuestionSetLoader
	calls int
}

func (l *countingLoader) LoadQuestionSet(ctx context.Context, code string) (domain.QuestionSet, error) {
	l.calls++
	return l.QuestionSetLoader.LoadQuestionSet(ctx, code)
}

func sampleSet() domain.QuestionSet {
	return domain.QuestionSet{
		ID:      "set-1",
		Code:    "abc123",
		Name:    "Arithmetic basics",
		Subject: "math",
		Questions: []domain.Question{
			{
				ID:          "q1",
				Text:        "What is 2 + 2?",
				Type:        domain.MultipleChoice,
				Options:     []string{"3", "4", "5"},
				CorrectText: "4",
				Explanation: "Two plus two is four.",
			},
		},
	}
}
