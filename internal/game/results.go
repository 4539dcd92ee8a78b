package game

import (
	"math"

	"exam-review-service/internal/domain"
)

// Celebration tiers for the results screen, keyed by score percentage.
const (
	TierPerfect        = "perfect"
	TierExcellent      = "excellent"
	TierGreat          = "great"
	TierGood           = "good"
	TierKeepPracticing = "keep_practicing"
)

// Achievements unlocked by a play-through.
const (
	AchievementPerfectRun = "perfect_run"
	AchievementHotStreak  = "hot_streak"
)

// hotStreakThreshold is the best streak needed for the hot-streak achievement.
const hotStreakThreshold = 5

// Results is the final aggregate view of one session.
type Results struct {
	Score        int                   `json:"score"`
	Total        int                   `json:"total"`
	Percentage   int                   `json:"percentage"`
	TotalPoints  int                   `json:"totalPoints"`
	BestStreak   int                   `json:"bestStreak"`
	Tier         string                `json:"tier"`
	Achievements []string              `json:"achievements,omitempty"`
	Answers      []domain.AnswerRecord `json:"answers"`
}

func buildResults(score Score, total int, answers []domain.AnswerRecord) Results {
	percentage := 0
	if total > 0 {
		percentage = int(math.Round(float64(score.Correct) / float64(total) * 100))
	}

	res := Results{
		Score:       score.Correct,
		Total:       total,
		Percentage:  percentage,
		TotalPoints: score.TotalPoints,
		BestStreak:  score.BestStreak,
		Tier:        tierFor(percentage),
		Answers:     answers,
	}
	if percentage == 100 {
		res.Achievements = append(res.Achievements, AchievementPerfectRun)
	}
	if score.BestStreak >= hotStreakThreshold {
		res.Achievements = append(res.Achievements, AchievementHotStreak)
	}
	return res
}

func tierFor(percentage int) string {
	switch {
	case percentage == 100:
		return TierPerfect
	case percentage >= 90:
		return TierExcellent
	case percentage >= 80:
		return TierGreat
	case percentage >= 60:
		return TierGood
	default:
		return TierKeepPracticing
	}
}
