package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codersden/backend/internal/dto"
	"github.com/codersden/backend/internal/model"
)

type fakeRegistrationRepo struct{ created []*model.Registration }

func (f *fakeRegistrationRepo) Create(r *model.Registration) error {
	f.created = append(f.created, r)
	return nil
}
func (f *fakeRegistrationRepo) FindByPublicID(string) (*model.Registration, error) {
	return nil, nil
}
func (f *fakeRegistrationRepo) FindAll() ([]model.Registration, error) { return nil, nil }

type fakeContactRepo struct{ created []*model.ContactMessage }

func (f *fakeContactRepo) Create(m *model.ContactMessage) error {
	f.created = append(f.created, m)
	return nil
}
func (f *fakeContactRepo) FindAll() ([]model.ContactMessage, error) { return nil, nil }

type fakeNewsletterRepo struct{ created []*model.NewsletterSignup }

func (f *fakeNewsletterRepo) Create(n *model.NewsletterSignup) error {
	f.created = append(f.created, n)
	return nil
}
func (f *fakeNewsletterRepo) FindByEmail(string) (*model.NewsletterSignup, error) {
	return nil, nil
}

type fakeQuizResultRepo struct{ created []*model.QuizResult }

func (f *fakeQuizResultRepo) Create(r *model.QuizResult) error {
	f.created = append(f.created, r)
	return nil
}
func (f *fakeQuizResultRepo) FindByPublicID(string) (*model.QuizResult, error) { return nil, nil }
func (f *fakeQuizResultRepo) FindAll() ([]model.QuizResult, error)             { return nil, nil }

// fakeRecorder signals mirrored saves so tests can wait for the background
// goroutine.
type fakeRecorder struct {
	enabled bool
	saved   chan string
}

func newFakeRecorder(enabled bool) *fakeRecorder {
	return &fakeRecorder{enabled: enabled, saved: make(chan string, 8)}
}

func (f *fakeRecorder) Enabled() bool { return f.enabled }
func (f *fakeRecorder) SaveRegistration(_ context.Context, _ *model.Registration) error {
	f.saved <- "registration"
	return nil
}
func (f *fakeRecorder) SaveContactMessage(_ context.Context, _ *model.ContactMessage) error {
	f.saved <- "contact"
	return nil
}
func (f *fakeRecorder) SaveQuizResult(_ context.Context, _ *model.QuizResult) error {
	f.saved <- "quiz"
	return nil
}
func (f *fakeRecorder) SaveNewsletterSignup(_ context.Context, _ *model.NewsletterSignup) error {
	f.saved <- "newsletter"
	return nil
}

func intPtr(v int) *int { return &v }

func newSubmissionFixture(recorder *fakeRecorder) (SubmissionService, *fakeRegistrationRepo, *fakeContactRepo, *fakeNewsletterRepo, *fakeQuizResultRepo) {
	regs := &fakeRegistrationRepo{}
	contacts := &fakeContactRepo{}
	newsletters := &fakeNewsletterRepo{}
	results := &fakeQuizResultRepo{}
	svc := NewSubmissionService(regs, contacts, newsletters, results, recorder)
	return svc, regs, contacts, newsletters, results
}

func waitForMirror(t *testing.T, recorder *fakeRecorder, want string) {
	t.Helper()
	select {
	case got := <-recorder.saved:
		assert.Equal(t, want, got)
	case <-time.After(2 * time.Second):
		t.Fatalf("mirror to sheet %q never happened", want)
	}
}

func TestSubmitRegistration(t *testing.T) {
	recorder := newFakeRecorder(true)
	svc, regs, _, _, _ := newSubmissionFixture(recorder)

	reg, err := svc.SubmitRegistration(dto.RegistrationRequest{
		FullName:          "Ada Lovelace",
		Email:             "ada@example.com",
		PhoneNumber:       "0123456789",
		YearsOfExperience: intPtr(3),
		LearningGoals:     []string{"Web Development"},
		CurrentSkills:     []string{"JavaScript"},
		Motivation:        strings.Repeat("I want to become a better developer. ", 3),
		Availability:      []string{"Weekends"},
	})
	require.NoError(t, err)
	require.Len(t, regs.created, 1)
	assert.True(t, strings.HasPrefix(reg.PublicID, "reg_"))
	assert.Equal(t, 3, reg.YearsOfExperience)
	waitForMirror(t, recorder, "registration")
}

func TestSubmitContact(t *testing.T) {
	recorder := newFakeRecorder(true)
	svc, _, contacts, _, _ := newSubmissionFixture(recorder)

	msg, err := svc.SubmitContact(dto.ContactRequest{
		Name:    "Grace",
		Email:   "grace@example.com",
		Subject: "Partnership inquiry",
		Type:    "partnership",
		Message: "We would like to collaborate.",
	})
	require.NoError(t, err)
	require.Len(t, contacts.created, 1)
	assert.True(t, strings.HasPrefix(msg.PublicID, "contact_"))
	waitForMirror(t, recorder, "contact")
}

func TestSubmitNewsletterSkipsDisabledRecorder(t *testing.T) {
	recorder := newFakeRecorder(false)
	svc, _, _, newsletters, _ := newSubmissionFixture(recorder)

	signup, err := svc.SubmitNewsletter(dto.NewsletterRequest{Email: "sub@example.com"})
	require.NoError(t, err)
	require.Len(t, newsletters.created, 1)
	assert.True(t, strings.HasPrefix(signup.PublicID, "newsletter_"))

	select {
	case <-recorder.saved:
		t.Fatal("disabled recorder was called")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSubmitQuizResultsDerivesSkillLevel(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{85, "Advanced"},
		{65, "Intermediate"},
		{30, "Beginner"},
	}
	for _, tt := range tests {
		svc, _, _, _, results := newSubmissionFixture(newFakeRecorder(false))
		res, err := svc.SubmitQuizResults(dto.QuizResultsRequest{
			Answers:   map[string]any{"js-1": 0},
			Score:     intPtr(tt.score),
			TimeSpent: intPtr(300),
		})
		require.NoError(t, err)
		require.Len(t, results.created, 1)
		assert.Equal(t, tt.want, res.SkillLevel)
		assert.NotEmpty(t, res.Recommendations)
		assert.True(t, strings.HasPrefix(res.PublicID, "quiz_"))
	}
}

func TestSubmitQuizResultsKeepsClientValues(t *testing.T) {
	svc, _, _, _, _ := newSubmissionFixture(newFakeRecorder(false))
	res, err := svc.SubmitQuizResults(dto.QuizResultsRequest{
		Answers:         map[string]any{"js-1": 0},
		Score:           intPtr(90),
		TimeSpent:       intPtr(120),
		SkillLevel:      "Intermediate",
		Recommendations: []string{"Keep practicing"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Intermediate", res.SkillLevel)
	assert.Equal(t, []string{"Keep practicing"}, res.Recommendations)
}
