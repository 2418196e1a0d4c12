package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/codersden/backend/internal/dto"
	"github.com/codersden/backend/internal/quiz"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ErrSessionNotFound is returned for unknown or already evicted session ids.
var ErrSessionNotFound = errors.New("session not found")

// sessionIdleTTL is how long an untouched session survives before the
// janitor evicts it.
const sessionIdleTTL = 30 * time.Minute

// SessionService owns live assessment sessions. Each timed session gets a
// one-second ticker that feeds countdown events; all event application on a
// session is serialized by its mutex, so a manual submit racing the
// timer-forced one resolves to a single result.
type SessionService interface {
	Start(track quiz.Track) (*dto.SessionResponse, error)
	Get(sessionID string) (*dto.SessionResponse, error)
	Answer(sessionID, questionID string, value any) (*dto.SessionResponse, error)
	Next(sessionID string) (*dto.SessionResponse, error)
	Previous(sessionID string) (*dto.SessionResponse, error)
	Submit(sessionID string) (*dto.ResultResponse, error)
	Result(sessionID string) (*dto.ResultResponse, error)
	Stop(ctx context.Context) error
}

type session struct {
	mu        sync.Mutex
	id        string
	quiz      *quiz.Quiz
	state     quiz.State
	startedAt time.Time
	lastTouch time.Time
	result    *dto.ResultResponse
	done      chan struct{}
}

type sessionService struct {
	assembler   *quiz.Assembler
	submissions SubmissionService

	mu       sync.Mutex
	sessions map[string]*session
	stopped  bool
	stopCh   chan struct{}
}

func NewSessionService(assembler *quiz.Assembler, submissions SubmissionService) SessionService {
	s := &sessionService{
		assembler:   assembler,
		submissions: submissions,
		sessions:    make(map[string]*session),
		stopCh:      make(chan struct{}),
	}
	go s.janitor()
	return s
}

// Start builds a fresh quiz for the track and registers a new session.
// Starting again is how a retake works; every call samples new questions.
func (s *sessionService) Start(track quiz.Track) (*dto.SessionResponse, error) {
	q, err := s.assembler.BuildQuiz(track)
	if err != nil {
		return nil, err
	}

	sess := &session{
		id:        uuid.NewString(),
		quiz:      q,
		state:     quiz.NewState(q),
		startedAt: time.Now(),
		lastTouch: time.Now(),
		done:      make(chan struct{}),
	}

	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return nil, errors.New("session service is shutting down")
	}
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	if q.TimeLimitMin > 0 {
		go s.runCountdown(sess)
	}

	log.Info().Str("session_id", sess.id).Str("track", string(track)).
		Int("questions", len(q.Questions)).Msg("Assessment session started")

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sessionView(sess), nil
}

func (s *sessionService) Get(sessionID string) (*dto.SessionResponse, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.lastTouch = time.Now()
	return sessionView(sess), nil
}

func (s *sessionService) Answer(sessionID, questionID string, value any) (*dto.SessionResponse, error) {
	return s.apply(sessionID, func(sess *session) quiz.Event {
		return quiz.Event{
			Type:       quiz.EventAnswer,
			QuestionID: questionID,
			Value:      coerceAnswer(sess.quiz, questionID, value),
		}
	})
}

func (s *sessionService) Next(sessionID string) (*dto.SessionResponse, error) {
	return s.apply(sessionID, func(*session) quiz.Event {
		return quiz.Event{Type: quiz.EventNext}
	})
}

func (s *sessionService) Previous(sessionID string) (*dto.SessionResponse, error) {
	return s.apply(sessionID, func(*session) quiz.Event {
		return quiz.Event{Type: quiz.EventPrevious}
	})
}

// Submit ends the session and returns the finalized result. Submitting an
// already finished session returns the stored result unchanged.
func (s *sessionService) Submit(sessionID string) (*dto.ResultResponse, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.lastTouch = time.Now()
	sess.state = quiz.Reduce(sess.quiz, sess.state, quiz.Event{Type: quiz.EventSubmit})
	s.finalizeLocked(sess)
	return sess.result, nil
}

// Result returns the outcome of a submitted session.
func (s *sessionService) Result(sessionID string) (*dto.ResultResponse, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.result == nil {
		return nil, fmt.Errorf("session %s has not been submitted", sessionID)
	}
	return sess.result, nil
}

// Stop ends all countdowns and the janitor. Registered as the fx shutdown
// hook.
func (s *sessionService) Stop(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return nil
	}
	s.stopped = true
	close(s.stopCh)
	for _, sess := range s.sessions {
		sess.mu.Lock()
		closeDone(sess)
		sess.mu.Unlock()
	}
	return nil
}

func (s *sessionService) lookup(sessionID string) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *sessionService) apply(sessionID string, build func(*session) quiz.Event) (*dto.SessionResponse, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.lastTouch = time.Now()
	sess.state = quiz.Reduce(sess.quiz, sess.state, build(sess))
	s.finalizeLocked(sess)
	return sessionView(sess), nil
}

// runCountdown feeds one Tick per second until the session submits or the
// service stops.
func (s *sessionService) runCountdown(sess *session) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-sess.done:
			return
		case <-s.stopCh:
			return
		case <-ticker.C:
			sess.mu.Lock()
			sess.state = quiz.Reduce(sess.quiz, sess.state, quiz.Event{Type: quiz.EventTick})
			s.finalizeLocked(sess)
			sess.mu.Unlock()
		}
	}
}

// finalizeLocked freezes the result the first time the state reaches
// submitted. Callers hold sess.mu.
func (s *sessionService) finalizeLocked(sess *session) {
	if sess.state.Phase != quiz.PhaseSubmitted || sess.result != nil {
		return
	}
	closeDone(sess)

	// Wall-clock time spent, rounded to whole minutes.
	elapsed := int(math.Round(time.Since(sess.startedAt).Minutes()))
	score := quiz.Score(sess.quiz, sess.state.Answers)
	rec := quiz.Recommend(score)

	review := make([]dto.ReviewItemResponse, 0, len(sess.quiz.Questions))
	for _, item := range quiz.Review(sess.quiz, sess.state.Answers) {
		review = append(review, dto.ReviewItemResponse{
			QuestionID:    item.Question.ID,
			Prompt:        item.Question.Prompt,
			UserAnswer:    item.UserAnswer,
			CorrectAnswer: item.Question.CorrectAnswer,
			Correct:       item.Correct,
			Explanation:   item.Explanation,
		})
	}

	sess.result = &dto.ResultResponse{
		SessionID:       sess.id,
		Score:           score,
		Passed:          score >= sess.quiz.PassingScore,
		Message:         quiz.ScoreMessage(score),
		SkillLevel:      string(rec.Tier),
		TrackTitle:      rec.Title,
		TrackSummary:    rec.Description,
		Recommendations: rec.Suggestions,
		Breakdown:       quiz.Breakdown(sess.quiz, sess.state.Answers),
		Review:          review,
		TimeSpentMin:    elapsed,
	}

	log.Info().Str("session_id", sess.id).Int("score", score).
		Str("skill_level", string(rec.Tier)).Msg("Assessment session submitted")

	answers := sess.state.Answers
	result := sess.result
	go s.persistResult(answers, result)
}

// persistResult hands the finalized attempt to the submission pipeline,
// which stores it and mirrors it to the spreadsheet. Failures are logged;
// the session already holds its result either way.
func (s *sessionService) persistResult(answers quiz.AnswerSet, result *dto.ResultResponse) {
	score := result.Score
	timeSpent := result.TimeSpentMin
	req := dto.QuizResultsRequest{
		Answers:         answers,
		Score:           &score,
		TimeSpent:       &timeSpent,
		SkillLevel:      result.SkillLevel,
		Recommendations: result.Recommendations,
	}
	if _, err := s.submissions.SubmitQuizResults(req); err != nil {
		log.Error().Err(err).Str("session_id", result.SessionID).Msg("Failed to persist assessment result")
	}
}

// janitor evicts sessions idle past the TTL.
func (s *sessionService) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.evictIdle()
		}
	}
}

func (s *sessionService) evictIdle() {
	cutoff := time.Now().Add(-sessionIdleTTL)
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := sess.lastTouch.Before(cutoff)
		if idle {
			closeDone(sess)
		}
		sess.mu.Unlock()
		if idle {
			delete(s.sessions, id)
			log.Info().Str("session_id", id).Msg("Evicted idle assessment session")
		}
	}
}

func closeDone(sess *session) {
	select {
	case <-sess.done:
	default:
		close(sess.done)
	}
}

// sessionView snapshots a session for the client. Callers hold sess.mu.
func sessionView(sess *session) *dto.SessionResponse {
	answers := make(map[string]any, len(sess.state.Answers))
	for id, v := range sess.state.Answers {
		answers[id] = v
	}
	return &dto.SessionResponse{
		SessionID:        sess.id,
		QuizID:           sess.quiz.ID,
		Title:            sess.quiz.Title,
		Description:      sess.quiz.Description,
		PassingScore:     sess.quiz.PassingScore,
		TimeLimit:        sess.quiz.TimeLimitMin,
		Questions:        dto.NewQuestionResponses(sess.quiz.Questions),
		Phase:            string(sess.state.Phase),
		CurrentIndex:     sess.state.Index,
		Answers:          answers,
		RemainingSeconds: sess.state.RemainingSeconds,
	}
}

// coerceAnswer restores the answer typing the scorer compares against. JSON
// numbers arrive as float64, while multiple-choice keys are stored as int
// indexes.
func coerceAnswer(q *quiz.Quiz, questionID string, value any) any {
	f, ok := value.(float64)
	if !ok {
		return value
	}
	for _, question := range q.Questions {
		if question.ID != questionID {
			continue
		}
		if _, isIndex := question.CorrectAnswer.(int); isIndex && f == float64(int(f)) {
			return int(f)
		}
		break
	}
	return value
}
