package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/codersden/backend/internal/dto"
	"github.com/codersden/backend/internal/service"
)

type SubmissionController struct {
	submissions service.SubmissionService
}

func NewSubmissionController(submissions service.SubmissionService) *SubmissionController {
	return &SubmissionController{submissions: submissions}
}

// SubmitRegistration godoc
// @Summary Submit a membership registration
// @Tags Submissions
// @Accept json
// @Produce json
// @Param request body dto.RegistrationRequest true "Registration payload"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response "Validation failed"
// @Failure 500 {object} dto.Response
// @Router /registration [post]
func (c *SubmissionController) SubmitRegistration(ctx *gin.Context) {
	var req dto.RegistrationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ValidationFailed(err))
		return
	}
	registration, err := c.submissions.SubmitRegistration(req)
	if err != nil {
		log.Error().Err(err).Msg("Registration submission failed")
		ctx.JSON(http.StatusInternalServerError, dto.Fail("Internal server error"))
		return
	}
	ctx.JSON(http.StatusOK, dto.OK("Registration submitted successfully", gin.H{
		"id":        registration.PublicID,
		"timestamp": registration.CreatedAt.UTC().Format(time.RFC3339),
		"nextSteps": []string{
			"Check your email for confirmation",
			"Join our Discord community",
			"Complete the skill assessment quiz",
		},
	}))
}

// SubmitContact godoc
// @Summary Submit the contact form
// @Tags Submissions
// @Accept json
// @Produce json
// @Param request body dto.ContactRequest true "Contact payload"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response "Validation failed"
// @Failure 500 {object} dto.Response
// @Router /contact [post]
func (c *SubmissionController) SubmitContact(ctx *gin.Context) {
	var req dto.ContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ValidationFailed(err))
		return
	}
	message, err := c.submissions.SubmitContact(req)
	if err != nil {
		log.Error().Err(err).Msg("Contact submission failed")
		ctx.JSON(http.StatusInternalServerError, dto.Fail("Internal server error"))
		return
	}
	ctx.JSON(http.StatusOK, dto.OK("Contact form submitted successfully", gin.H{
		"id":        message.PublicID,
		"timestamp": message.CreatedAt.UTC().Format(time.RFC3339),
	}))
}

// SubmitNewsletter godoc
// @Summary Subscribe to the newsletter
// @Tags Submissions
// @Accept json
// @Produce json
// @Param request body dto.NewsletterRequest true "Newsletter payload"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response "Validation failed"
// @Failure 500 {object} dto.Response
// @Router /newsletter [post]
func (c *SubmissionController) SubmitNewsletter(ctx *gin.Context) {
	var req dto.NewsletterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ValidationFailed(err))
		return
	}
	signup, err := c.submissions.SubmitNewsletter(req)
	if err != nil {
		log.Error().Err(err).Msg("Newsletter submission failed")
		ctx.JSON(http.StatusInternalServerError, dto.Fail("Internal server error"))
		return
	}
	ctx.JSON(http.StatusOK, dto.OK("Successfully subscribed to newsletter", gin.H{
		"id":        signup.PublicID,
		"timestamp": signup.CreatedAt.UTC().Format(time.RFC3339),
		"email":     signup.Email,
	}))
}

// SubmitQuizResults godoc
// @Summary Store a client-scored quiz result
// @Description Accepts a finished attempt from the client. Skill level and recommendations are derived from the score when omitted.
// @Tags Submissions
// @Accept json
// @Produce json
// @Param request body dto.QuizResultsRequest true "Quiz results payload"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response "Validation failed"
// @Failure 500 {object} dto.Response
// @Router /quiz-results [post]
func (c *SubmissionController) SubmitQuizResults(ctx *gin.Context) {
	var req dto.QuizResultsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ValidationFailed(err))
		return
	}
	result, err := c.submissions.SubmitQuizResults(req)
	if err != nil {
		log.Error().Err(err).Msg("Quiz results submission failed")
		ctx.JSON(http.StatusInternalServerError, dto.Fail("Internal server error"))
		return
	}
	ctx.JSON(http.StatusOK, dto.OK("Quiz results saved successfully", gin.H{
		"id":              result.PublicID,
		"timestamp":       result.CreatedAt.UTC().Format(time.RFC3339),
		"score":           result.Score,
		"skillLevel":      result.SkillLevel,
		"recommendations": result.Recommendations,
		"timeSpent":       result.TimeSpent,
	}))
}
