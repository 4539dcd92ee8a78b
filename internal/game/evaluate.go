package game

import (
	"fmt"
	"strings"

	"exam-review-service/internal/domain"
)

// Evaluate checks a submission against a question's correctness rule. It is
// pure: no session state is read or written. Every supported type has an
// explicit branch; an unrecognized type is an error, never a guess.
func Evaluate(q domain.Question, sub domain.SubmittedAnswer) (domain.EvaluationResult, error) {
	res := domain.EvaluationResult{
		CorrectAnswer: q.CorrectAnswerDisplay(),
		QuestionText:  q.Text,
	}

	switch q.Type {
	case domain.MultipleChoice:
		// Options are canonical strings; the chosen option must match exactly.
		res.Correct = sub.Choice != "" && sub.Choice == q.CorrectText
	case domain.TrueFalse:
		res.Correct = sub.Flag != nil && *sub.Flag == q.CorrectBool
	case domain.FillBlank, domain.ShortAnswer:
		res.Correct = textMatches(sub.Choice, q)
	case domain.Matching:
		res.Correct = pairsMatch(sub.Matches, q.Pairs)
	default:
		return domain.EvaluationResult{}, fmt.Errorf("%w: %q", domain.ErrUnknownQuestionType, q.Type)
	}
	return res, nil
}

// textMatches compares typed answers case- and whitespace-insensitively
// against the correct answer and any acceptable alternates. No fuzzy or
// partial matching.
func textMatches(submitted string, q domain.Question) bool {
	norm := normalize(submitted)
	if norm == "" {
		return false
	}
	if norm == normalize(q.CorrectText) {
		return true
	}
	for _, alt := range q.AcceptableAnswers {
		if norm == normalize(alt) {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// pairsMatch is all-or-nothing: the submission must cover exactly the defined
// left keys and match every right value. One wrong pair fails the whole answer.
func pairsMatch(sub map[string]string, pairs []domain.Pair) bool {
	if len(pairs) == 0 || len(sub) != len(pairs) {
		return false
	}
	for _, p := range pairs {
		got, ok := sub[p.Left]
		if !ok || got != p.Right {
			return false
		}
	}
	return true
}
