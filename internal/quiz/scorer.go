package quiz

import "math"

// Score computes the percentage of correctly answered questions, rounded
// half-up to the nearest integer. An answer counts only when it equals the
// question's correct answer in both type and value, so an index answered as
// a string never matches. Unanswered questions count as incorrect.
func Score(q *Quiz, answers AnswerSet) int {
	if len(q.Questions) == 0 {
		return 0
	}
	correct := 0
	for _, question := range q.Questions {
		if value, ok := answers[question.ID]; ok && value == question.CorrectAnswer {
			correct++
		}
	}
	return int(math.Round(float64(correct) / float64(len(q.Questions)) * 100))
}
