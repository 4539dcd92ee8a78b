package app

import (
	"context"
	"math/rand"
	"time"

	"exam-review-service/internal/domain"
	"exam-review-service/internal/game"

	"github.com/google/uuid"
)

// SessionRepository abstracts how active game sessions are stored (in-memory,
// Redis, etc). One session per player at a time; putting a session replaces
// whatever was there.
type SessionRepository interface {
	Put(playerID string, s *game.Session)
	Get(playerID string) (*game.Session, bool)
	Delete(playerID string)
}

// QuestionSetRepository loads question-set content by share code
// (from cache/backing store).
type QuestionSetRepository interface {
	GetQuestionSet(ctx context.Context, code string) (domain.QuestionSet, error)
}

// GameService contains the exam-review play use cases.
type GameService struct {
	sessions  SessionRepository
	sets      QuestionSetRepository
	selection game.SelectionConfig
	newID     func() string
	seed      func() int64
}

func NewGameService(sessions SessionRepository, sets QuestionSetRepository, selection game.SelectionConfig) *GameService {
	return &GameService{
		sessions:  sessions,
		sets:      sets,
		selection: selection,
		newID:     func() string { return uuid.NewString() },
		seed:      func() int64 { return time.Now().UnixNano() },
	}
}

// NewGameServiceWithSeed is test-only for deterministic session IDs and
// shuffle order.
func NewGameServiceWithSeed(sessions SessionRepository, sets QuestionSetRepository, selection game.SelectionConfig, newID func() string, seed func() int64) *GameService {
	s := NewGameService(sessions, sets, selection)
	if newID != nil {
		s.newID = newID
	}
	if seed != nil {
		s.seed = seed
	}
	return s
}

// StartSession fetches the question set for code and starts a fresh session
// for the player, replacing any in-progress one. The previous session needs no
// teardown; it is simply dropped.
func (s *GameService) StartSession(ctx context.Context, code, playerID string) (game.Snapshot, error) {
	set, err := s.sets.GetQuestionSet(ctx, code)
	if err != nil {
		return game.Snapshot{}, err
	}

	// Each session gets its own rand source so replays are independent.
	r := rand.New(rand.NewSource(s.seed()))
	session, err := game.NewSession(s.newID(), set.Questions, s.selection, r)
	if err != nil {
		return game.Snapshot{}, err
	}

	s.sessions.Put(playerID, session)
	return session.Snapshot(), nil
}

// SetAnswer stores the player's candidate answer for the current question.
func (s *GameService) SetAnswer(_ context.Context, playerID string, sub domain.SubmittedAnswer) (game.Snapshot, error) {
	session, ok := s.sessions.Get(playerID)
	if !ok {
		return game.Snapshot{}, domain.ErrSessionNotFound
	}
	if err := session.SetUserAnswer(sub); err != nil {
		return game.Snapshot{}, err
	}
	return session.Snapshot(), nil
}

// SubmitAnswer evaluates the stored answer and moves the session into the
// explanation phase.
func (s *GameService) SubmitAnswer(_ context.Context, playerID string) (domain.AnswerRecord, game.Snapshot, error) {
	session, ok := s.sessions.Get(playerID)
	if !ok {
		return domain.AnswerRecord{}, game.Snapshot{}, domain.ErrSessionNotFound
	}
	record, err := session.SubmitAnswer()
	if err != nil {
		return domain.AnswerRecord{}, game.Snapshot{}, err
	}
	return record, session.Snapshot(), nil
}

// NextQuestion advances past the explanation to the next question, or to the
// finished phase after the last one.
func (s *GameService) NextQuestion(_ context.Context, playerID string) (game.Snapshot, error) {
	session, ok := s.sessions.Get(playerID)
	if !ok {
		return game.Snapshot{}, domain.ErrSessionNotFound
	}
	if err := session.NextQuestion(); err != nil {
		return game.Snapshot{}, err
	}
	return session.Snapshot(), nil
}

// State returns the current observable session state.
func (s *GameService) State(_ context.Context, playerID string) (game.Snapshot, error) {
	session, ok := s.sessions.Get(playerID)
	if !ok {
		return game.Snapshot{}, domain.ErrSessionNotFound
	}
	return session.Snapshot(), nil
}

// Results summarizes the player's session for the results screen.
func (s *GameService) Results(_ context.Context, playerID string) (game.Results, error) {
	session, ok := s.sessions.Get(playerID)
	if !ok {
		return game.Results{}, domain.ErrSessionNotFound
	}
	return session.Results(), nil
}

// EndSession discards the player's session, e.g. when they navigate away.
func (s *GameService) EndSession(_ context.Context, playerID string) {
	s.sessions.Delete(playerID)
}
