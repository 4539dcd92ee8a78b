package redis

import (
	"context"
	"testing"
	"time"

	"exam-review-service/internal/domain"
	"exam-review-service/internal/infra/memory"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestQuestionSetRepositoryCachesInRedis(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := newClient(mr)

	loader := &countingLoader{
		QuestionSetLoader: memory.NewStaticSetLoader(map[string]domain.QuestionSet{
			"abc123": sampleSet(),
		}),
	}
	repo := NewQuestionSetRepository(client, loader, time.Minute)

	set, err := repo.GetQuestionSet(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("get set: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader called once, got %d", loader.calls)
	}
	if len(set.Questions) != 2 || set.Name != "Arithmetic basics" {
		t.Fatalf("unexpected set from loader: %+v", set)
	}
	if !mr.Exists("questionset:abc123") {
		t.Fatalf("expected cached key in redis")
	}

	// Second call should hit cache with full question content intact.
	set, err = repo.GetQuestionSet(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("get set cached: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected cache hit, loader calls=%d", loader.calls)
	}
	if set.Questions[1].Type != domain.Matching || len(set.Questions[1].Pairs) != 2 {
		t.Fatalf("cached set lost question shape: %+v", set.Questions[1])
	}
}

func TestQuestionSetRepositoryPropagatesNotFound(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	repo := NewQuestionSetRepository(newClient(mr), memory.NewStaticSetLoader(nil), time.Minute)
	if _, err := repo.GetQuestionSet(context.Background(), "nope"); err != domain.ErrQuestionSetNotFound {
		t.Fatalf("expected ErrQuestionSetNotFound, got %v", err)
	}
}

type countingLoader struct {
	memory.QuestionSetLoader
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
			{
				ID:   "q2",
				Text: "Match the operations",
				Type: domain.Matching,
				Pairs: []domain.Pair{
					{Left: "2+2", Right: "4"},
					{Left: "3+3", Right: "6"},
				},
				Explanation: "Basic sums.",
			},
		},
	}
}

func newClient(mr *miniredis.Miniredis) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
}
