package service

import (
	"context"
	"fmt"
	"time"

	"github.com/codersden/backend/internal/dto"
	"github.com/codersden/backend/internal/model"
	"github.com/codersden/backend/internal/quiz"
	"github.com/codersden/backend/internal/repository"
	"github.com/codersden/backend/internal/sheets"
	"github.com/rs/zerolog/log"
)

// SubmissionService handles the lead-capture forms. The database is the
// primary store; the spreadsheet mirror is fire-and-forget.
type SubmissionService interface {
	SubmitRegistration(req dto.RegistrationRequest) (*model.Registration, error)
	SubmitContact(req dto.ContactRequest) (*model.ContactMessage, error)
	SubmitNewsletter(req dto.NewsletterRequest) (*model.NewsletterSignup, error)
	SubmitQuizResults(req dto.QuizResultsRequest) (*model.QuizResult, error)
}

type submissionService struct {
	registrations repository.RegistrationRepository
	contacts      repository.ContactMessageRepository
	newsletters   repository.NewsletterRepository
	quizResults   repository.QuizResultRepository
	recorder      sheets.Recorder
}

func NewSubmissionService(
	registrations repository.RegistrationRepository,
	contacts repository.ContactMessageRepository,
	newsletters repository.NewsletterRepository,
	quizResults repository.QuizResultRepository,
	recorder sheets.Recorder,
) SubmissionService {
	return &submissionService{
		registrations: registrations,
		contacts:      contacts,
		newsletters:   newsletters,
		quizResults:   quizResults,
		recorder:      recorder,
	}
}

func (s *submissionService) SubmitRegistration(req dto.RegistrationRequest) (*model.Registration, error) {
	registration := &model.Registration{
		PublicID:          publicID("reg"),
		FullName:          req.FullName,
		Email:             req.Email,
		PhoneNumber:       req.PhoneNumber,
		YearsOfExperience: *req.YearsOfExperience,
		LearningGoals:     req.LearningGoals,
		CurrentSkills:     req.CurrentSkills,
		Availability:      req.Availability,
		Motivation:        req.Motivation,
		QuizScore:         req.QuizScore,
	}
	if err := s.registrations.Create(registration); err != nil {
		return nil, fmt.Errorf("store registration: %w", err)
	}
	s.mirror(func(ctx context.Context) error {
		return s.recorder.SaveRegistration(ctx, registration)
	}, sheets.SheetRegistrations)
	return registration, nil
}

func (s *submissionService) SubmitContact(req dto.ContactRequest) (*model.ContactMessage, error) {
	message := &model.ContactMessage{
		PublicID: publicID("contact"),
		Name:     req.Name,
		Email:    req.Email,
		Subject:  req.Subject,
		Type:     req.Type,
		Message:  req.Message,
	}
	if err := s.contacts.Create(message); err != nil {
		return nil, fmt.Errorf("store contact message: %w", err)
	}
	s.mirror(func(ctx context.Context) error {
		return s.recorder.SaveContactMessage(ctx, message)
	}, sheets.SheetContactForms)
	return message, nil
}

func (s *submissionService) SubmitNewsletter(req dto.NewsletterRequest) (*model.NewsletterSignup, error) {
	signup := &model.NewsletterSignup{
		PublicID: publicID("newsletter"),
		Email:    req.Email,
		Source:   req.Source,
	}
	if err := s.newsletters.Create(signup); err != nil {
		return nil, fmt.Errorf("store newsletter signup: %w", err)
	}
	s.mirror(func(ctx context.Context) error {
		return s.recorder.SaveNewsletterSignup(ctx, signup)
	}, sheets.SheetNewsletterSignups)
	return signup, nil
}

// SubmitQuizResults stores a client-scored attempt. Skill level and
// recommendations are derived from the score when the client omits them.
func (s *submissionService) SubmitQuizResults(req dto.QuizResultsRequest) (*model.QuizResult, error) {
	skillLevel := req.SkillLevel
	if skillLevel == "" {
		skillLevel = string(quiz.Recommend(*req.Score).Tier)
	}
	recommendations := req.Recommendations
	if len(recommendations) == 0 {
		recommendations = quiz.FallbackSuggestions(*req.Score)
	}

	result := &model.QuizResult{
		PublicID:        publicID("quiz"),
		Answers:         req.Answers,
		Score:           *req.Score,
		TimeSpent:       *req.TimeSpent,
		SkillLevel:      skillLevel,
		Recommendations: recommendations,
	}
	if err := s.quizResults.Create(result); err != nil {
		return nil, fmt.Errorf("store quiz result: %w", err)
	}
	s.mirror(func(ctx context.Context) error {
		return s.recorder.SaveQuizResult(ctx, result)
	}, sheets.SheetQuizResults)
	return result, nil
}

// mirror pushes a saved record to the spreadsheet in the background. A
// failure is logged and never surfaced to the submitter.
func (s *submissionService) mirror(save func(context.Context) error, sheetName string) {
	if !s.recorder.Enabled() {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := save(ctx); err != nil {
			log.Error().Err(err).Str("sheet", sheetName).Msg("Failed to mirror submission to Google Sheets")
		}
	}()
}

func publicID(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, time.Now().UnixMilli())
}
