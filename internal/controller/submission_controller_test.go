package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codersden/backend/internal/dto"
	"github.com/codersden/backend/internal/model"
)

type stubSubmissions struct {
	quizResults []dto.QuizResultsRequest
}

func (s *stubSubmissions) SubmitRegistration(req dto.RegistrationRequest) (*model.Registration, error) {
	return &model.Registration{PublicID: "reg_1700000000000", FullName: req.FullName, CreatedAt: time.Now()}, nil
}

func (s *stubSubmissions) SubmitContact(req dto.ContactRequest) (*model.ContactMessage, error) {
	return &model.ContactMessage{PublicID: "contact_1700000000000", Name: req.Name, CreatedAt: time.Now()}, nil
}

func (s *stubSubmissions) SubmitNewsletter(req dto.NewsletterRequest) (*model.NewsletterSignup, error) {
	return &model.NewsletterSignup{PublicID: "newsletter_1700000000000", Email: req.Email, CreatedAt: time.Now()}, nil
}

func (s *stubSubmissions) SubmitQuizResults(req dto.QuizResultsRequest) (*model.QuizResult, error) {
	s.quizResults = append(s.quizResults, req)
	return &model.QuizResult{
		PublicID:        "quiz_1700000000000",
		Score:           *req.Score,
		TimeSpent:       *req.TimeSpent,
		SkillLevel:      "Intermediate",
		Recommendations: []string{"Build small projects to practice"},
		CreatedAt:       time.Now(),
	}, nil
}

func newSubmissionRouter() (*gin.Engine, *stubSubmissions) {
	gin.SetMode(gin.TestMode)
	stub := &stubSubmissions{}
	ctrl := NewSubmissionController(stub)
	r := gin.New()
	api := r.Group("/api/v1")
	api.POST("/registration", ctrl.SubmitRegistration)
	api.POST("/contact", ctrl.SubmitContact)
	api.POST("/newsletter", ctrl.SubmitNewsletter)
	api.POST("/quiz-results", ctrl.SubmitQuizResults)
	return r, stub
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSubmitContactEndpoint(t *testing.T) {
	r, _ := newSubmissionRouter()
	w := postJSON(t, r, "/api/v1/contact", `{
		"name": "Grace Hopper",
		"email": "grace@example.com",
		"subject": "Speaking opportunity",
		"type": "general",
		"message": "I would love to speak at one of your events."
	}`)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "Contact form submitted successfully", resp.Message)

	data := resp.Data.(map[string]any)
	assert.Equal(t, "contact_1700000000000", data["id"])
	assert.NotEmpty(t, data["timestamp"])
}

func TestSubmitContactValidationFailure(t *testing.T) {
	r, _ := newSubmissionRouter()
	w := postJSON(t, r, "/api/v1/contact", `{
		"name": "G",
		"email": "nope",
		"subject": "Hi",
		"type": "general",
		"message": "short"
	}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "Validation failed", resp.Message)
	assert.NotEmpty(t, resp.Errors)

	fields := make(map[string]string)
	for _, fe := range resp.Errors {
		fields[fe.Field] = fe.Message
	}
	assert.Equal(t, "Name must be at least 2 characters", fields["name"])
	assert.Equal(t, "Please enter a valid email address", fields["email"])
}

func TestSubmitRegistrationEndpoint(t *testing.T) {
	r, _ := newSubmissionRouter()
	w := postJSON(t, r, "/api/v1/registration", `{
		"fullName": "Ada Lovelace",
		"email": "ada@example.com",
		"phoneNumber": "0123456789",
		"yearsOfExperience": 2,
		"learningGoals": ["Web Development"],
		"currentSkills": ["JavaScript"],
		"motivation": "I want to level up my engineering skills and eventually work as a full time developer.",
		"availability": ["Weekends"]
	}`)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]any)
	assert.Equal(t, "reg_1700000000000", data["id"])
	steps := data["nextSteps"].([]any)
	assert.Len(t, steps, 3)
	assert.Equal(t, "Check your email for confirmation", steps[0])
}

func TestSubmitNewsletterEndpoint(t *testing.T) {
	r, _ := newSubmissionRouter()
	w := postJSON(t, r, "/api/v1/newsletter", `{"email": "sub@example.com"}`)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "Successfully subscribed to newsletter", resp.Message)

	data := resp.Data.(map[string]any)
	assert.Equal(t, "sub@example.com", data["email"])
}

func TestSubmitQuizResultsEndpoint(t *testing.T) {
	r, stub := newSubmissionRouter()
	w := postJSON(t, r, "/api/v1/quiz-results", `{
		"answers": {"js-1": 0, "js-2": "true"},
		"score": 65,
		"timeSpent": 480
	}`)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "Quiz results saved successfully", resp.Message)
	require.Len(t, stub.quizResults, 1)

	data := resp.Data.(map[string]any)
	assert.Equal(t, float64(65), data["score"])
	assert.Equal(t, "Intermediate", data["skillLevel"])
}

func TestSubmitQuizResultsRejectsOutOfRangeScore(t *testing.T) {
	r, stub := newSubmissionRouter()
	w := postJSON(t, r, "/api/v1/quiz-results", `{
		"answers": {"js-1": 0},
		"score": 120,
		"timeSpent": 480
	}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, stub.quizResults)
}
