package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/codersden/backend/internal/dto"
	"github.com/codersden/backend/internal/quiz"
	"github.com/codersden/backend/internal/service"
)

type QuizController struct {
	assembler *quiz.Assembler
	sessions  service.SessionService
}

func NewQuizController(assembler *quiz.Assembler, sessions service.SessionService) *QuizController {
	return &QuizController{assembler: assembler, sessions: sessions}
}

// GetTracks godoc
// @Summary List assessment tracks
// @Description Returns the tracks a client can start an assessment for, with quiz metadata.
// @Tags Quiz
// @Produce json
// @Success 200 {object} dto.Response{data=[]dto.TrackResponse}
// @Router /quiz/tracks [get]
func (c *QuizController) GetTracks(ctx *gin.Context) {
	tracks := make([]dto.TrackResponse, 0, 2)
	for _, track := range c.assembler.Tracks() {
		q, err := c.assembler.BuildQuiz(track)
		if err != nil {
			log.Error().Err(err).Str("track", string(track)).Msg("Failed to describe track")
			continue
		}
		tracks = append(tracks, dto.TrackResponse{
			Track:       string(track),
			QuizID:      q.ID,
			Title:       q.Title,
			Description: q.Description,
			TimeLimit:   q.TimeLimitMin,
			Questions:   len(q.Questions),
		})
	}
	ctx.JSON(http.StatusOK, dto.OK("Tracks retrieved successfully", tracks))
}

// StartSession godoc
// @Summary Start an assessment session
// @Description Samples a fresh quiz for the track and opens a live session. Starting again begins a new attempt with new questions.
// @Tags Quiz
// @Produce json
// @Param track path string true "Assessment track" Enums(javascript, python)
// @Success 200 {object} dto.Response{data=dto.SessionResponse}
// @Failure 400 {object} dto.Response
// @Router /quiz/tracks/{track}/sessions [post]
func (c *QuizController) StartSession(ctx *gin.Context) {
	view, err := c.sessions.Start(quiz.Track(ctx.Param("track")))
	if err != nil {
		log.Warn().Err(err).Str("track", ctx.Param("track")).Msg("Failed to start assessment session")
		ctx.JSON(http.StatusBadRequest, dto.Fail("Unknown assessment track"))
		return
	}
	ctx.JSON(http.StatusOK, dto.OK("Assessment session started", view))
}

// GetSession godoc
// @Summary Get a session snapshot
// @Tags Quiz
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.Response{data=dto.SessionResponse}
// @Failure 404 {object} dto.Response
// @Router /quiz/sessions/{session_id} [get]
func (c *QuizController) GetSession(ctx *gin.Context) {
	view, err := c.sessions.Get(ctx.Param("session_id"))
	if err != nil {
		c.sessionError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OK("Session retrieved successfully", view))
}

// answerRequest carries one answer. Value is deliberately not required:
// option index 0 is a valid answer and must not trip the zero-value check.
type answerRequest struct {
	QuestionID string `json:"questionId" binding:"required"`
	Value      any    `json:"value"`
}

// AnswerQuestion godoc
// @Summary Record an answer
// @Description Records or overwrites the answer for one question. Ignored once the session is submitted.
// @Tags Quiz
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param request body answerRequest true "Answer payload"
// @Success 200 {object} dto.Response{data=dto.SessionResponse}
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /quiz/sessions/{session_id}/answers [post]
func (c *QuizController) AnswerQuestion(ctx *gin.Context) {
	var req answerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ValidationFailed(err))
		return
	}
	view, err := c.sessions.Answer(ctx.Param("session_id"), req.QuestionID, req.Value)
	if err != nil {
		c.sessionError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OK("Answer recorded", view))
}

// NextQuestion godoc
// @Summary Advance to the next question
// @Description No-op while the current question is unanswered. On the last question this submits the session.
// @Tags Quiz
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.Response{data=dto.SessionResponse}
// @Failure 404 {object} dto.Response
// @Router /quiz/sessions/{session_id}/next [post]
func (c *QuizController) NextQuestion(ctx *gin.Context) {
	view, err := c.sessions.Next(ctx.Param("session_id"))
	if err != nil {
		c.sessionError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OK("Session advanced", view))
}

// PreviousQuestion godoc
// @Summary Go back one question
// @Tags Quiz
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.Response{data=dto.SessionResponse}
// @Failure 404 {object} dto.Response
// @Router /quiz/sessions/{session_id}/previous [post]
func (c *QuizController) PreviousQuestion(ctx *gin.Context) {
	view, err := c.sessions.Previous(ctx.Param("session_id"))
	if err != nil {
		c.sessionError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OK("Session moved back", view))
}

// SubmitSession godoc
// @Summary Submit the session
// @Description Freezes answers and returns the scored result with recommendations and the per-question review. Submitting again returns the same result.
// @Tags Quiz
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.Response{data=dto.ResultResponse}
// @Failure 404 {object} dto.Response
// @Router /quiz/sessions/{session_id}/submit [post]
func (c *QuizController) SubmitSession(ctx *gin.Context) {
	result, err := c.sessions.Submit(ctx.Param("session_id"))
	if err != nil {
		c.sessionError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OK("Assessment submitted", result))
}

// GetResult godoc
// @Summary Get the result of a submitted session
// @Tags Quiz
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.Response{data=dto.ResultResponse}
// @Failure 404 {object} dto.Response
// @Failure 409 {object} dto.Response "Session not submitted yet"
// @Router /quiz/sessions/{session_id}/result [get]
func (c *QuizController) GetResult(ctx *gin.Context) {
	result, err := c.sessions.Result(ctx.Param("session_id"))
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.Fail("Session not found"))
			return
		}
		ctx.JSON(http.StatusConflict, dto.Fail("Session has not been submitted"))
		return
	}
	ctx.JSON(http.StatusOK, dto.OK("Result retrieved successfully", result))
}

func (c *QuizController) sessionError(ctx *gin.Context, err error) {
	if errors.Is(err, service.ErrSessionNotFound) {
		ctx.JSON(http.StatusNotFound, dto.Fail("Session not found"))
		return
	}
	log.Error().Err(err).Msg("Session operation failed")
	ctx.JSON(http.StatusInternalServerError, dto.Fail("Internal server error"))
}
