package quiz

// TopicStats counts correct answers within one topic.
type TopicStats struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// Breakdown groups the quiz questions by topic and counts how many were
// answered correctly in each group. Pure aggregation.
func Breakdown(q *Quiz, answers AnswerSet) map[string]TopicStats {
	stats := make(map[string]TopicStats)
	for _, question := range q.Questions {
		s := stats[question.Topic]
		s.Total++
		if value, ok := answers[question.ID]; ok && value == question.CorrectAnswer {
			s.Correct++
		}
		stats[question.Topic] = s
	}
	return stats
}

// ReviewItem is the per-question outcome shown on the results screen. The
// explanation is only surfaced for misses.
type ReviewItem struct {
	Question    Question `json:"question"`
	UserAnswer  any      `json:"userAnswer,omitempty"`
	Correct     bool     `json:"correct"`
	Explanation string   `json:"explanation,omitempty"`
}

// Review builds the question-by-question result list in quiz order.
func Review(q *Quiz, answers AnswerSet) []ReviewItem {
	items := make([]ReviewItem, 0, len(q.Questions))
	for _, question := range q.Questions {
		value, answered := answers[question.ID]
		item := ReviewItem{Question: question, Correct: answered && value == question.CorrectAnswer}
		if answered {
			item.UserAnswer = value
		}
		if !item.Correct {
			item.Explanation = question.Explanation
		}
		items = append(items, item)
	}
	return items
}
