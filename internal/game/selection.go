package game

import (
	"math/rand"

	"exam-review-service/internal/domain"
)

// SelectionConfig controls how many questions a session plays and in what
// order. The zero value plays every question in source order, which matches
// how sets are sized upstream (question count is chosen per difficulty at
// generation time).
type SelectionConfig struct {
	// MaxQuestions caps the session length; 0 means play the whole set.
	MaxQuestions int
	// Shuffle randomizes presentation order using the session's own rand.
	Shuffle bool
}

// SelectQuestions produces the fixed question sequence for a new session.
// The source slice is never mutated; the rand source is owned by the caller
// so restarting a session cannot leak ordering state into the next one.
func SelectQuestions(src []domain.Question, cfg SelectionConfig, r *rand.Rand) ([]domain.Question, error) {
	if len(src) == 0 {
		return nil, domain.ErrEmptyQuestionSet
	}

	picked := make([]domain.Question, len(src))
	copy(picked, src)

	if cfg.Shuffle && r != nil {
		r.Shuffle(len(picked), func(i, j int) {
			picked[i], picked[j] = picked[j], picked[i]
		})
	}

	if cfg.MaxQuestions > 0 && len(picked) > cfg.MaxQuestions {
		picked = picked[:cfg.MaxQuestions]
	}
	return picked, nil
}
