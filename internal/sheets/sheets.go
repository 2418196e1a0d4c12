package sheets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/codersden/backend/config"
	"github.com/codersden/backend/internal/model"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Sheet names for the different submission types.
const (
	SheetRegistrations     = "Registrations"
	SheetContactForms      = "Contact Forms"
	SheetQuizResults       = "Quiz Results"
	SheetNewsletterSignups = "Newsletter Signups"
)

// Recorder mirrors form submissions into a Google spreadsheet. It is always
// best-effort: callers log failures and move on, a submission never fails
// because the spreadsheet is unreachable.
type Recorder interface {
	Enabled() bool
	SaveRegistration(ctx context.Context, r *model.Registration) error
	SaveContactMessage(ctx context.Context, m *model.ContactMessage) error
	SaveQuizResult(ctx context.Context, q *model.QuizResult) error
	SaveNewsletterSignup(ctx context.Context, n *model.NewsletterSignup) error
}

type recorder struct {
	service       *sheets.Service
	spreadsheetID string
}

// NewRecorder builds the spreadsheet recorder. With incomplete configuration
// it returns a disabled recorder whose saves are no-ops, so the rest of the
// app never has to check configuration itself.
func NewRecorder(cfg *config.Config) Recorder {
	if cfg.Sheets.SpreadsheetID == "" || cfg.Sheets.CredentialsFile == "" {
		log.Warn().Msg("Google Sheets not configured, submissions will only be stored in the database")
		return disabledRecorder{}
	}

	service, err := sheets.NewService(context.Background(),
		option.WithCredentialsFile(cfg.Sheets.CredentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope))
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize Google Sheets client")
		return disabledRecorder{}
	}

	log.Info().Str("spreadsheet_id", cfg.Sheets.SpreadsheetID).Msg("Google Sheets recorder enabled")
	return &recorder{service: service, spreadsheetID: cfg.Sheets.SpreadsheetID}
}

func (r *recorder) Enabled() bool { return true }

func (r *recorder) SaveRegistration(ctx context.Context, reg *model.Registration) error {
	headers := []any{"Timestamp", "Full Name", "Email", "Phone Number", "Years of Experience",
		"Learning Goals", "Current Skills", "Availability", "Motivation", "Quiz Score"}
	quizScore := ""
	if reg.QuizScore != nil {
		quizScore = strconv.Itoa(*reg.QuizScore)
	}
	row := []any{
		timestamp(reg.CreatedAt),
		reg.FullName,
		reg.Email,
		reg.PhoneNumber,
		reg.YearsOfExperience,
		strings.Join(reg.LearningGoals, ", "),
		strings.Join(reg.CurrentSkills, ", "),
		strings.Join(reg.Availability, ", "),
		reg.Motivation,
		quizScore,
	}
	if err := r.ensureHeaders(ctx, SheetRegistrations, headers); err != nil {
		return err
	}
	return r.append(ctx, SheetRegistrations, row)
}

func (r *recorder) SaveContactMessage(ctx context.Context, m *model.ContactMessage) error {
	headers := []any{"Timestamp", "Name", "Email", "Subject", "Type", "Message"}
	row := []any{timestamp(m.CreatedAt), m.Name, m.Email, m.Subject, m.Type, m.Message}
	if err := r.ensureHeaders(ctx, SheetContactForms, headers); err != nil {
		return err
	}
	return r.append(ctx, SheetContactForms, row)
}

func (r *recorder) SaveQuizResult(ctx context.Context, q *model.QuizResult) error {
	headers := []any{"Timestamp", "Score", "Time Spent (seconds)", "Skill Level",
		"Recommendations", "Answers (JSON)"}
	answers, err := json.Marshal(q.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}
	row := []any{
		timestamp(q.CreatedAt),
		q.Score,
		q.TimeSpent,
		q.SkillLevel,
		strings.Join(q.Recommendations, ", "),
		string(answers),
	}
	if err := r.ensureHeaders(ctx, SheetQuizResults, headers); err != nil {
		return err
	}
	return r.append(ctx, SheetQuizResults, row)
}

func (r *recorder) SaveNewsletterSignup(ctx context.Context, n *model.NewsletterSignup) error {
	headers := []any{"Timestamp", "Email", "Source"}
	source := n.Source
	if source == "" {
		source = "Website"
	}
	row := []any{timestamp(n.CreatedAt), n.Email, source}
	if err := r.ensureHeaders(ctx, SheetNewsletterSignups, headers); err != nil {
		return err
	}
	return r.append(ctx, SheetNewsletterSignups, row)
}

// append writes one row, creating the sheet and retrying once when the API
// rejects the range because the sheet does not exist yet.
func (r *recorder) append(ctx context.Context, sheetName string, row []any) error {
	err := r.appendRows(ctx, sheetName, [][]any{row})
	if err == nil {
		return nil
	}
	if !isMissingSheet(err) {
		return err
	}
	if createErr := r.createSheet(ctx, sheetName); createErr != nil {
		return fmt.Errorf("create sheet %s: %w", sheetName, createErr)
	}
	return r.appendRows(ctx, sheetName, [][]any{row})
}

func (r *recorder) appendRows(ctx context.Context, sheetName string, rows [][]any) error {
	_, err := r.service.Spreadsheets.Values.
		Append(r.spreadsheetID, sheetName+"!A:Z", &sheets.ValueRange{Values: rows}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	return err
}

// ensureHeaders writes the header row when the sheet is empty or missing.
func (r *recorder) ensureHeaders(ctx context.Context, sheetName string, headers []any) error {
	resp, err := r.service.Spreadsheets.Values.
		Get(r.spreadsheetID, sheetName+"!A1:Z1").
		Context(ctx).Do()
	if err != nil {
		if isMissingSheet(err) {
			if createErr := r.createSheet(ctx, sheetName); createErr != nil {
				return fmt.Errorf("create sheet %s: %w", sheetName, createErr)
			}
			return r.appendRows(ctx, sheetName, [][]any{headers})
		}
		return err
	}
	if len(resp.Values) == 0 {
		return r.appendRows(ctx, sheetName, [][]any{headers})
	}
	return nil
}

func (r *recorder) createSheet(ctx context.Context, sheetName string) error {
	log.Info().Str("sheet", sheetName).Msg("Creating missing sheet")
	_, err := r.service.Spreadsheets.BatchUpdate(r.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: sheetName},
			},
		}},
	}).Context(ctx).Do()
	return err
}

// The values API answers 400 when a range references a sheet that does not
// exist.
func isMissingSheet(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == 400
	}
	return false
}

func timestamp(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format(time.RFC3339)
}

// disabledRecorder is the no-op recorder used when configuration is absent.
type disabledRecorder struct{}

func (disabledRecorder) Enabled() bool { return false }
func (disabledRecorder) SaveRegistration(context.Context, *model.Registration) error {
	return nil
}
func (disabledRecorder) SaveContactMessage(context.Context, *model.ContactMessage) error {
	return nil
}
func (disabledRecorder) SaveQuizResult(context.Context, *model.QuizResult) error {
	return nil
}
func (disabledRecorder) SaveNewsletterSignup(context.Context, *model.NewsletterSignup) error {
	return nil
}
