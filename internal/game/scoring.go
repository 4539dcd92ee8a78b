package game

const (
	// BasePoints is awarded for every correct answer.
	BasePoints = 10
	// StreakBonus is added when the streak before the answer has reached
	// StreakThreshold, so the bonus first lands on the fourth consecutive
	// correct answer.
	StreakBonus     = 5
	StreakThreshold = 3
)

// Score is the accumulated scoring state of a session. It is a value type;
// Apply returns the successor state instead of mutating.
type Score struct {
	Correct       int `json:"score"`
	TotalPoints   int `json:"totalPoints"`
	CurrentStreak int `json:"currentStreak"`
	BestStreak    int `json:"bestStreak"`
}

// Apply folds one evaluation outcome into the score and reports the points
// earned by that answer. An incorrect answer earns nothing and resets the
// streak; BestStreak never decreases.
func (s Score) Apply(correct bool) (Score, int) {
	points := 0
	if correct {
		points = BasePoints
		if s.CurrentStreak >= StreakThreshold {
			points += StreakBonus
		}
		s.Correct++
		s.CurrentStreak++
		s.TotalPoints += points
	} else {
		s.CurrentStreak = 0
	}
	if s.CurrentStreak > s.BestStreak {
		s.BestStreak = s.CurrentStreak
	}
	return s, points
}
