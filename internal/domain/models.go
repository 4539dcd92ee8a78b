package domain

import "strings"

// QuestionType tags a question with its answer shape and correctness rule.
// The set is closed; the evaluator rejects anything outside it.
type QuestionType string

const (
	MultipleChoice QuestionType = "multiple_choice"
	FillBlank      QuestionType = "fill_blank"
	TrueFalse      QuestionType = "true_false"
	Matching       QuestionType = "matching"
	ShortAnswer    QuestionType = "short_answer"
)

// QuestionTypes lists every supported type, in a stable order.
func QuestionTypes() []QuestionType {
	return []QuestionType{MultipleChoice, FillBlank, TrueFalse, Matching, ShortAnswer}
}

// Pair is one left/right match in a matching question.
type Pair struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// Question is one validated, immutable question. The correct-answer field in
// use depends on Type: CorrectText for multiple_choice/fill_blank/short_answer,
// CorrectBool for true_false, Pairs for matching. Shape consistency is the
// upstream validator's job; the session assumes it holds.
type Question struct {
	ID                string       `json:"id"`
	Text              string       `json:"questionText"`
	Type              QuestionType `json:"questionType"`
	Options           []string     `json:"options,omitempty"`
	CorrectText       string       `json:"correctAnswer,omitempty"`
	CorrectBool       bool         `json:"correctBool,omitempty"`
	AcceptableAnswers []string     `json:"acceptableAnswers,omitempty"`
	Pairs             []Pair       `json:"pairs,omitempty"`
	Explanation       string       `json:"explanation"`
}

// CorrectAnswerDisplay renders the correct answer for answer records and the
// results summary.
func (q Question) CorrectAnswerDisplay() string {
	switch q.Type {
	case TrueFalse:
		if q.CorrectBool {
			return "true"
		}
		return "false"
	case Matching:
		parts := make([]string, 0, len(q.Pairs))
		for _, p := range q.Pairs {
			parts = append(parts, p.Left+" → "+p.Right)
		}
		return strings.Join(parts, ", ")
	default:
		return q.CorrectText
	}
}

// QuestionSet is a named, coded collection of questions sharing subject and
// difficulty metadata. Players fetch sets by share code.
type QuestionSet struct {
	ID        string     `json:"id"`
	Code      string     `json:"code"`
	Name      string     `json:"name"`
	Subject   string     `json:"subject"`
	Grade     int        `json:"grade,omitempty"`
	Questions []Question `json:"questions"`
}

// SubmittedAnswer carries a candidate answer. Exactly one field is meaningful
// for a given question type: Choice for option/text answers, Flag for
// true/false, Matches for matching.
type SubmittedAnswer struct {
	Choice  string            `json:"choice,omitempty"`
	Flag    *bool             `json:"flag,omitempty"`
	Matches map[string]string `json:"matches,omitempty"`
}

// IsEmpty reports whether the submission carries no answer for the given
// question type. Empty submissions are rejected before evaluation and never
// evaluate correct.
func (a SubmittedAnswer) IsEmpty(t QuestionType) bool {
	switch t {
	case TrueFalse:
		return a.Flag == nil
	case Matching:
		return len(a.Matches) == 0
	default:
		return a.Choice == ""
	}
}

// Display renders the submission the way the results summary shows it.
func (a SubmittedAnswer) Display(t QuestionType) string {
	switch t {
	case TrueFalse:
		if a.Flag == nil {
			return ""
		}
		if *a.Flag {
			return "true"
		}
		return "false"
	case Matching:
		parts := make([]string, 0, len(a.Matches))
		for left, right := range a.Matches {
			parts = append(parts, left+" → "+right)
		}
		return strings.Join(parts, ", ")
	default:
		return a.Choice
	}
}

// EvaluationResult is the outcome of evaluating one submission. Produced once
// per submit and consumed immediately by the scoring tracker.
type EvaluationResult struct {
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correctAnswer"`
	QuestionText  string `json:"questionText"`
}

// AnswerRecord is one entry of a session's append-only answer log. Records are
// created in question order and never mutated.
type AnswerRecord struct {
	QuestionText   string `json:"questionText"`
	UserAnswer     string `json:"userAnswer"`
	CorrectAnswer  string `json:"correctAnswer"`
	Correct        bool   `json:"isCorrect"`
	PointsEarned   int    `json:"pointsEarned"`
	StreakAtAnswer int    `json:"streakAtAnswer"`
}
