package quiz

import "testing"

func TestBreakdownGroupsByTopic(t *testing.T) {
	q := scoringQuiz()
	// q1 correct, q2 wrong, q3 and q4 correct.
	answers := AnswerSet{"q1": 0, "q2": "false", "q3": 2, "q4": 1}

	got := Breakdown(q, answers)
	if len(got) != 2 {
		t.Fatalf("expected 2 topics, got %d: %v", len(got), got)
	}
	if js := got["javascript"]; js.Correct != 1 || js.Total != 2 {
		t.Errorf("javascript = %+v, want {Correct:1 Total:2}", js)
	}
	if py := got["python"]; py.Correct != 2 || py.Total != 2 {
		t.Errorf("python = %+v, want {Correct:2 Total:2}", py)
	}
}

func TestBreakdownCountsUnansweredInTotals(t *testing.T) {
	q := scoringQuiz()
	got := Breakdown(q, AnswerSet{})
	if js := got["javascript"]; js.Correct != 0 || js.Total != 2 {
		t.Errorf("javascript = %+v, want {Correct:0 Total:2}", js)
	}
}

func TestReviewKeepsQuizOrder(t *testing.T) {
	q := scoringQuiz()
	items := Review(q, AnswerSet{"q1": 0, "q2": "false"})

	if len(items) != len(q.Questions) {
		t.Fatalf("expected %d items, got %d", len(q.Questions), len(items))
	}
	for i, item := range items {
		if item.Question.ID != q.Questions[i].ID {
			t.Fatalf("item %d out of order: %q", i, item.Question.ID)
		}
	}
}

func TestReviewSurfacesExplanationsOnMisses(t *testing.T) {
	q := &Quiz{Questions: []Question{
		{ID: "q1", CorrectAnswer: 0, Explanation: "first", Topic: "t"},
		{ID: "q2", CorrectAnswer: 0, Explanation: "second", Topic: "t"},
	}}
	items := Review(q, AnswerSet{"q1": 0, "q2": 1})

	if !items[0].Correct || items[0].Explanation != "" {
		t.Errorf("correct answer should carry no explanation: %+v", items[0])
	}
	if items[1].Correct || items[1].Explanation != "second" {
		t.Errorf("miss should carry its explanation: %+v", items[1])
	}
	if items[1].UserAnswer != 1 {
		t.Errorf("miss should echo the submitted answer, got %v", items[1].UserAnswer)
	}
}
