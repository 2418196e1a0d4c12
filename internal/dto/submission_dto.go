package dto

// RegistrationRequest is the community membership application payload.
// Numeric fields are pointers so a missing value fails required instead of
// binding as zero.
type RegistrationRequest struct {
	FullName          string   `json:"fullName" binding:"required,min=2"`
	Email             string   `json:"email" binding:"required,email"`
	PhoneNumber       string   `json:"phoneNumber" binding:"required,min=10"`
	YearsOfExperience *int     `json:"yearsOfExperience" binding:"required,min=0,max=50"`
	LearningGoals     []string `json:"learningGoals" binding:"required,min=1"`
	CurrentSkills     []string `json:"currentSkills" binding:"required,min=1"`
	Motivation        string   `json:"motivation" binding:"required,min=50"`
	Availability      []string `json:"availability" binding:"required,min=1"`
	QuizScore         *int     `json:"quizScore"`
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required,min=2"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required,min=5"`
	Type    string `json:"type" binding:"required,oneof=general partnership support feedback"`
	Message string `json:"message" binding:"required,min=10"`
}

type NewsletterRequest struct {
	Email  string `json:"email" binding:"required,email"`
	Source string `json:"source"`
}

// QuizResultsRequest records a client-scored attempt. SkillLevel and
// Recommendations are optional; the service derives them when absent.
type QuizResultsRequest struct {
	Answers         map[string]any `json:"answers" binding:"required"`
	Score           *int           `json:"score" binding:"required,min=0,max=100"`
	TimeSpent       *int           `json:"timeSpent" binding:"required,min=0"`
	SkillLevel      string         `json:"skillLevel"`
	Recommendations []string       `json:"recommendations"`
}
