package domain

import "testing"

func TestCorrectAnswerDisplay(t *testing.T) {
	q := Question{Type: TrueFalse, CorrectBool: false}
	if got := q.CorrectAnswerDisplay(); got != "false" {
		t.Fatalf("expected false, got %q", got)
	}

	q = Question{Type: Matching, Pairs: []Pair{
		{Left: "France", Right: "Paris"},
		{Left: "Spain", Right: "Madrid"},
	}}
	if got := q.CorrectAnswerDisplay(); got != "France → Paris, Spain → Madrid" {
		t.Fatalf("unexpected matching display: %q", got)
	}

	q = Question{Type: FillBlank, CorrectText: "paris"}
	if got := q.CorrectAnswerDisplay(); got != "paris" {
		t.Fatalf("expected correct text, got %q", got)
	}
}

func TestSubmittedAnswerIsEmptyPerType(t *testing.T) {
	var empty SubmittedAnswer
	for _, typ := range QuestionTypes() {
		if !empty.IsEmpty(typ) {
			t.Fatalf("zero submission must be empty for %s", typ)
		}
	}

	no := false
	cases := []struct {
		typ QuestionType
		sub SubmittedAnswer
	}{
		{MultipleChoice, SubmittedAnswer{Choice: "A"}},
		{FillBlank, SubmittedAnswer{Choice: "paris"}},
		{ShortAnswer, SubmittedAnswer{Choice: "paris"}},
		{TrueFalse, SubmittedAnswer{Flag: &no}},
		{Matching, SubmittedAnswer{Matches: map[string]string{"a": "b"}}},
	}
	for _, c := range cases {
		if c.sub.IsEmpty(c.typ) {
			t.Fatalf("submission for %s should not be empty", c.typ)
		}
	}

	// A filled field for the wrong type still counts as empty.
	if !(SubmittedAnswer{Choice: "x"}).IsEmpty(TrueFalse) {
		t.Fatalf("choice must not satisfy a true/false question")
	}
	if !(SubmittedAnswer{Flag: &no}).IsEmpty(Matching) {
		t.Fatalf("flag must not satisfy a matching question")
	}
}

func TestSubmittedAnswerDisplay(t *testing.T) {
	yes := true
	if got := (SubmittedAnswer{Flag: &yes}).Display(TrueFalse); got != "true" {
		t.Fatalf("expected true, got %q", got)
	}
	if got := (SubmittedAnswer{}).Display(TrueFalse); got != "" {
		t.Fatalf("expected empty display, got %q", got)
	}
	if got := (SubmittedAnswer{Choice: " Paris "}).Display(FillBlank); got != " Paris " {
		t.Fatalf("display must keep the raw submission, got %q", got)
	}
}
