package dto

import (
	"github.com/codersden/backend/internal/quiz"
	"github.com/jinzhu/copier"
)

// TrackResponse describes one assessment track a client can start.
type TrackResponse struct {
	Track       string `json:"track"`
	QuizID      string `json:"quizId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	TimeLimit   int    `json:"timeLimit"`
	Questions   int    `json:"questions"`
}

// QuestionResponse is the client-facing question. It never carries the
// correct answer or the explanation; those only appear in the result review.
type QuestionResponse struct {
	ID          string   `json:"id"`
	Prompt      string   `json:"question"`
	Type        string   `json:"type"`
	Options     []string `json:"options,omitempty"`
	Difficulty  string   `json:"difficulty"`
	Topic       string   `json:"techStack"`
	CodeSnippet string   `json:"codeSnippet,omitempty"`
}

// SessionResponse is the live view of an assessment session.
type SessionResponse struct {
	SessionID        string             `json:"sessionId"`
	QuizID           string             `json:"quizId"`
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	PassingScore     int                `json:"passingScore"`
	TimeLimit        int                `json:"timeLimit,omitempty"`
	Questions        []QuestionResponse `json:"questions"`
	Phase            string             `json:"phase"`
	CurrentIndex     int                `json:"currentIndex"`
	Answers          map[string]any     `json:"answers"`
	RemainingSeconds int                `json:"remainingSeconds"`
}

// ReviewItemResponse is one graded question in the result payload. Here the
// correct answer and explanation are revealed.
type ReviewItemResponse struct {
	QuestionID    string `json:"questionId"`
	Prompt        string `json:"question"`
	UserAnswer    any    `json:"userAnswer,omitempty"`
	CorrectAnswer any    `json:"correctAnswer"`
	Correct       bool   `json:"correct"`
	Explanation   string `json:"explanation,omitempty"`
}

// ResultResponse is the finalized outcome of a session.
type ResultResponse struct {
	SessionID       string                     `json:"sessionId"`
	Score           int                        `json:"score"`
	Passed          bool                       `json:"passed"`
	Message         string                     `json:"message"`
	SkillLevel      string                     `json:"skillLevel"`
	TrackTitle      string                     `json:"trackTitle"`
	TrackSummary    string                     `json:"trackSummary"`
	Recommendations []string                   `json:"recommendations"`
	Breakdown       map[string]quiz.TopicStats `json:"breakdown"`
	Review          []ReviewItemResponse       `json:"review"`
	TimeSpentMin    int                        `json:"timeSpent"` // whole minutes, rounded
}

// NewQuestionResponses maps bank questions to their client view, dropping
// the answer key fields.
func NewQuestionResponses(questions []quiz.Question) []QuestionResponse {
	views := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		var view QuestionResponse
		copier.Copy(&view, &q)
		views = append(views, view)
	}
	return views
}
