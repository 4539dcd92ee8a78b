package game

import (
	"math/rand"
	"sync"

	"exam-review-service/internal/domain"
)

// Phase is the session lifecycle state.
type Phase string

const (
	PhaseAwaitingAnswer     Phase = "awaiting_answer"
	PhaseShowingExplanation Phase = "showing_explanation"
	PhaseFinished           Phase = "finished"
)

// Session is one play-through of a question set by one player. All mutation
// happens through SetUserAnswer, SubmitAnswer and NextQuestion; starting a new
// session replaces the old one rather than resetting it in place.
type Session struct {
	mu         sync.RWMutex
	id         string
	questions  []domain.Question
	current    int
	userAnswer domain.SubmittedAnswer
	answers    []domain.AnswerRecord
	score      Score
	phase      Phase
}

// NewSession selects questions per cfg and starts in the awaiting-answer
// phase. The rand source belongs to this session only, so two sessions built
// from the same input are independent and deterministic per seed.
func NewSession(id string, src []domain.Question, cfg SelectionConfig, r *rand.Rand) (*Session, error) {
	selected, err := SelectQuestions(src, cfg, r)
	if err != nil {
		return nil, err
	}
	return &Session{
		id:        id,
		questions: selected,
		phase:     PhaseAwaitingAnswer,
	}, nil
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// SetUserAnswer stores the transient candidate answer. Allowed only while a
// question is awaiting an answer.
func (s *Session) SetUserAnswer(sub domain.SubmittedAnswer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseAwaitingAnswer {
		return domain.ErrInvalidSubmission
	}
	s.userAnswer = sub
	return nil
}

// SubmitAnswer evaluates the stored answer against the current question,
// updates the score and appends the answer record. Submitting out of phase or
// with an empty answer fails with ErrInvalidSubmission.
func (s *Session) SubmitAnswer() (domain.AnswerRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseAwaitingAnswer || s.current >= len(s.questions) {
		return domain.AnswerRecord{}, domain.ErrInvalidSubmission
	}
	q := s.questions[s.current]
	if s.userAnswer.IsEmpty(q.Type) {
		return domain.AnswerRecord{}, domain.ErrInvalidSubmission
	}

	result, err := Evaluate(q, s.userAnswer)
	if err != nil {
		return domain.AnswerRecord{}, err
	}

	streakBefore := s.score.CurrentStreak
	next, points := s.score.Apply(result.Correct)

	record := domain.AnswerRecord{
		QuestionText:   q.Text,
		UserAnswer:     s.userAnswer.Display(q.Type),
		CorrectAnswer:  result.CorrectAnswer,
		Correct:        result.Correct,
		PointsEarned:   points,
		StreakAtAnswer: streakBefore,
	}

	s.score = next
	s.answers = append(s.answers, record)
	s.phase = PhaseShowingExplanation
	return record, nil
}

// NextQuestion advances past the explanation. After the last question the
// session moves to the finished phase instead of exposing a question.
func (s *Session) NextQuestion() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseShowingExplanation {
		return domain.ErrInvalidSubmission
	}
	s.userAnswer = domain.SubmittedAnswer{}
	s.current++
	if s.current >= len(s.questions) {
		s.phase = PhaseFinished
	} else {
		s.phase = PhaseAwaitingAnswer
	}
	return nil
}

// Snapshot is the read surface a presentation layer needs to render a session.
type Snapshot struct {
	SessionID       string                 `json:"sessionId"`
	Question        *domain.Question       `json:"question,omitempty"`
	QuestionIndex   int                    `json:"questionIndex"`
	QuestionCount   int                    `json:"questionCount"`
	UserAnswer      domain.SubmittedAnswer `json:"userAnswer"`
	Phase           Phase                  `json:"phase"`
	ShowExplanation bool                   `json:"showExplanation"`
	IsLastQuestion  bool                   `json:"isLastQuestion"`
	Score           int                    `json:"score"`
	TotalPoints     int                    `json:"totalPoints"`
	CurrentStreak   int                    `json:"currentStreak"`
	BestStreak      int                    `json:"bestStreak"`
	Answers         []domain.AnswerRecord  `json:"answers"`
}

// Snapshot returns a consistent copy of the observable session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		SessionID:       s.id,
		QuestionIndex:   s.current,
		QuestionCount:   len(s.questions),
		UserAnswer:      s.userAnswer,
		Phase:           s.phase,
		ShowExplanation: s.phase == PhaseShowingExplanation,
		IsLastQuestion:  s.current == len(s.questions)-1,
		Score:           s.score.Correct,
		TotalPoints:     s.score.TotalPoints,
		CurrentStreak:   s.score.CurrentStreak,
		BestStreak:      s.score.BestStreak,
		Answers:         append([]domain.AnswerRecord(nil), s.answers...),
	}
	if s.current < len(s.questions) {
		q := s.questions[s.current]
		snap.Question = &q
	}
	return snap
}

// Results summarizes the finished (or abandoned) session.
func (s *Session) Results() Results {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return buildResults(s.score, len(s.questions), append([]domain.AnswerRecord(nil), s.answers...))
}
