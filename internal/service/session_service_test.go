package service

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codersden/backend/internal/dto"
	"github.com/codersden/backend/internal/model"
	"github.com/codersden/backend/internal/quiz"
)

// fakeSubmissions records attempts handed over for persistence.
type fakeSubmissions struct {
	results chan dto.QuizResultsRequest
}

func newFakeSubmissions() *fakeSubmissions {
	return &fakeSubmissions{results: make(chan dto.QuizResultsRequest, 4)}
}

func (f *fakeSubmissions) SubmitRegistration(dto.RegistrationRequest) (*model.Registration, error) {
	return nil, nil
}
func (f *fakeSubmissions) SubmitContact(dto.ContactRequest) (*model.ContactMessage, error) {
	return nil, nil
}
func (f *fakeSubmissions) SubmitNewsletter(dto.NewsletterRequest) (*model.NewsletterSignup, error) {
	return nil, nil
}
func (f *fakeSubmissions) SubmitQuizResults(req dto.QuizResultsRequest) (*model.QuizResult, error) {
	f.results <- req
	return &model.QuizResult{}, nil
}

func newSessionFixture(t *testing.T) (SessionService, *fakeSubmissions) {
	t.Helper()
	assembler := quiz.NewAssemblerWithRand(quiz.DefaultBanks(), rand.New(rand.NewSource(42)))
	submissions := newFakeSubmissions()
	svc := NewSessionService(assembler, submissions)
	t.Cleanup(func() { svc.Stop(context.Background()) })
	return svc, submissions
}

func TestStartSessionHidesAnswerKey(t *testing.T) {
	svc, _ := newSessionFixture(t)

	view, err := svc.Start(quiz.TrackJavaScript)
	require.NoError(t, err)

	assert.NotEmpty(t, view.SessionID)
	assert.Equal(t, "javascript-assessment", view.QuizID)
	assert.Equal(t, "active", view.Phase)
	assert.Len(t, view.Questions, quiz.QuestionsPerQuiz)
	assert.Equal(t, quiz.TimeLimitMinutes*60, view.RemainingSeconds)
}

func TestStartSessionUnknownTrack(t *testing.T) {
	svc, _ := newSessionFixture(t)
	_, err := svc.Start(quiz.Track("rust"))
	assert.Error(t, err)
}

func TestAnswerCoercesJSONNumbers(t *testing.T) {
	svc, _ := newSessionFixture(t)
	view, err := svc.Start(quiz.TrackJavaScript)
	require.NoError(t, err)

	// JSON bodies deliver numbers as float64; the stored answer must be an
	// int so scoring's strict equality can match.
	var target *dto.QuestionResponse
	for i := range view.Questions {
		if view.Questions[i].Type != string(quiz.TypeTrueFalse) {
			target = &view.Questions[i]
			break
		}
	}
	require.NotNil(t, target)
	updated, err := svc.Answer(view.SessionID, target.ID, float64(1))
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Answers[target.ID])
}

func TestNextRequiresAnswer(t *testing.T) {
	svc, _ := newSessionFixture(t)
	view, err := svc.Start(quiz.TrackPython)
	require.NoError(t, err)

	unchanged, err := svc.Next(view.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 0, unchanged.CurrentIndex)

	_, err = svc.Answer(view.SessionID, view.Questions[0].ID, float64(0))
	require.NoError(t, err)
	advanced, err := svc.Next(view.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 1, advanced.CurrentIndex)
}

func TestSubmitFinalizesAndPersists(t *testing.T) {
	svc, submissions := newSessionFixture(t)
	view, err := svc.Start(quiz.TrackJavaScript)
	require.NoError(t, err)

	for _, q := range view.Questions {
		_, err := svc.Answer(view.SessionID, q.ID, float64(0))
		require.NoError(t, err)
	}

	result, err := svc.Submit(view.SessionID)
	require.NoError(t, err)
	assert.Equal(t, view.SessionID, result.SessionID)
	assert.NotEmpty(t, result.Message)
	assert.NotEmpty(t, result.SkillLevel)
	assert.Len(t, result.Review, len(view.Questions))
	assert.NotEmpty(t, result.Breakdown)
	// Time spent is rounded to whole minutes; an attempt finished within a
	// few seconds records zero.
	assert.Equal(t, 0, result.TimeSpentMin)

	select {
	case req := <-submissions.results:
		assert.Equal(t, result.Score, *req.Score)
		assert.Equal(t, result.SkillLevel, req.SkillLevel)
		assert.Equal(t, result.TimeSpentMin, *req.TimeSpent)
	case <-time.After(2 * time.Second):
		t.Fatal("finalized result was never persisted")
	}
}

func TestSubmitIsIdempotent(t *testing.T) {
	svc, submissions := newSessionFixture(t)
	view, err := svc.Start(quiz.TrackJavaScript)
	require.NoError(t, err)

	first, err := svc.Submit(view.SessionID)
	require.NoError(t, err)
	second, err := svc.Submit(view.SessionID)
	require.NoError(t, err)
	assert.Same(t, first, second)

	<-submissions.results
	select {
	case <-submissions.results:
		t.Fatal("result was persisted twice")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestResultBeforeSubmit(t *testing.T) {
	svc, _ := newSessionFixture(t)
	view, err := svc.Start(quiz.TrackJavaScript)
	require.NoError(t, err)

	_, err = svc.Result(view.SessionID)
	assert.Error(t, err)
}

func TestUnknownSession(t *testing.T) {
	svc, _ := newSessionFixture(t)
	_, err := svc.Get("nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
