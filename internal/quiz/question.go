package quiz

// QuestionType identifies how a question is presented and answered.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple-choice"
	TypeTrueFalse      QuestionType = "true-false"
	TypeCodeSnippet    QuestionType = "code-snippet"
)

// Difficulty buckets used for balanced sampling.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Question is a single immutable record from a question bank.
//
// CorrectAnswer holds an int (index into Options) for multiple-choice
// questions and a string token ("true"/"false") for true-false questions.
// The scorer compares submitted answers with strict type-and-value equality,
// so callers must preserve that typing when capturing answers.
type Question struct {
	ID            string       `json:"id"`
	Prompt        string       `json:"question"`
	Type          QuestionType `json:"type"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer any          `json:"correctAnswer"`
	Explanation   string       `json:"explanation"`
	Difficulty    Difficulty   `json:"difficulty"`
	Topic         string       `json:"techStack"`
	CodeSnippet   string       `json:"codeSnippet,omitempty"`
}

// Quiz is an ephemeral assessment built per attempt. Questions are freshly
// sampled on every build, so two attempts rarely see the same sequence.
type Quiz struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Questions    []Question `json:"questions"`
	TimeLimitMin int        `json:"timeLimit,omitempty"` // 0 means no countdown
	PassingScore int        `json:"passingScore"`
}

// AnswerSet maps question IDs to submitted answers. Unanswered questions are
// simply absent. Values carry the same typing as Question.CorrectAnswer.
type AnswerSet map[string]any
