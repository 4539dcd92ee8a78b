package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"exam-review-service/internal/domain"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// QuestionSetLoader fetches question-set content from a backing store
// (e.g., Postgres).
type QuestionSetLoader interface {
	LoadQuestionSet(ctx context.Context, code string) (domain.QuestionSet, error)
}

// QuestionSetRepository caches whole question sets in Redis and falls back to
// a loader on cache miss. A set is stored as one JSON value:
// SET questionset:{code} {json} EX ttl — questions carry options, pairs and
// explanations, so the flat document beats a per-field hash here.
type QuestionSetRepository struct {
	client *redis.Client
	loader QuestionSetLoader
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
}

func NewQuestionSetRepository(client *redis.Client, loader QuestionSetLoader, ttl time.Duration) *QuestionSetRepository {
	return &QuestionSetRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *QuestionSetRepository) GetQuestionSet(ctx context.Context, code string) (domain.QuestionSet, error) {
	key := r.key(code)

	raw, err := r.client.Get(ctx, key).Bytes()
	if err == nil {
		if set, ok := decodeSet(raw); ok {
			return set, nil
		}
	}

	result, err, _ := r.sf.Do(code, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		raw, err := r.client.Get(ctx, key).Bytes()
		if err == nil {
			if set, ok := decodeSet(raw); ok {
				return set, nil
			}
		}

		set, err := r.loader.LoadQuestionSet(ctx, code)
		if err != nil {
			return domain.QuestionSet{}, err
		}

		if data, err := json.Marshal(set); err == nil {
			// best-effort cache fill
			_ = r.client.Set(ctx, key, data, r.ttlWithJitter()).Err()
		}
		return set, nil
	})
	if err != nil {
		return domain.QuestionSet{}, err
	}
	return result.(domain.QuestionSet), nil
}

func (r *QuestionSetRepository) key(code string) string {
	return "questionset:" + code
}

func decodeSet(raw []byte) (domain.QuestionSet, bool) {
	var set domain.QuestionSet
	if err := json.Unmarshal(raw, &set); err != nil {
		return domain.QuestionSet{}, false
	}
	return set, len(set.Questions) > 0
}

func (r *QuestionSetRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
