package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/studyboi/quizforge/internal/dto"
	"github.com/studyboi/quizforge/internal/generation"
	"github.com/studyboi/quizforge/internal/service"
)

type QuizController struct {
	generationService service.QuizGenerationService
	quizService       service.QuizService
}

func NewQuizController(generationService service.QuizGenerationService, quizService service.QuizService) *QuizController {
	return &QuizController{
		generationService: generationService,
		quizService:       quizService,
	}
}

// GenerateQuiz godoc
// @Summary Generate a quiz with AI
// @Description Generates a multiple-choice quiz about a topic via the Gemini model and persists it.
// @Tags Quizzes
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuizRequest true "Generation parameters"
// @Success 201 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 422 {object} dto.ErrorResponse "Model returned no questions"
// @Failure 500 {object} dto.ErrorResponse "Malformed model response"
// @Failure 503 {object} dto.ErrorResponse "Generation service unavailable"
// @Router /quizzes/generate [post]
func (c *QuizController) GenerateQuiz(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.GenerateQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	quiz, err := c.generationService.GenerateQuiz(ctx.Request.Context(), userID, req)
	if err != nil {
		c.writeGenerationError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, quiz)
}

// writeGenerationError maps the generation error taxonomy onto HTTP
// statuses. Nothing here is retried server-side: the caller decides.
func (c *QuizController) writeGenerationError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, generation.ErrUnconfigured),
		errors.Is(err, generation.ErrUnavailable),
		errors.Is(err, generation.ErrTimeout):
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Message: "AI service temporarily unavailable. Please try again."})
	case errors.Is(err, generation.ErrMalformedResponse):
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to generate quiz. Please try again with a different topic."})
	case errors.Is(err, generation.ErrNoQuestions):
		ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Message: "The AI generated no questions. Try a different topic."})
	default:
		log.Error().Err(err).Msg("GenerateQuiz: unexpected error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to generate quiz. Please try again."})
	}
}

// ListQuizzes godoc
// @Summary List visible quizzes
// @Description Lists public quizzes plus the caller's own.
// @Tags Quizzes
// @Produce json
// @Success 200 {array} dto.QuizSummaryResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quizzes [get]
func (c *QuizController) ListQuizzes(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	quizzes, err := c.quizService.ListQuizzes(userID)
	if err != nil {
		log.Error().Err(err).Msg("ListQuizzes: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve quizzes"})
		return
	}
	ctx.JSON(http.StatusOK, quizzes)
}

// GetQuiz godoc
// @Summary Get a quiz with its questions
// @Tags Quizzes
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid quiz ID"
// @Failure 403 {object} dto.ErrorResponse "Private quiz owned by someone else"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{quiz_id} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	quizID, ok := quizIDParam(ctx)
	if !ok {
		return
	}

	quiz, err := c.quizService.GetQuiz(quizID, userID)
	if err != nil {
		c.writeQuizError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}

// AddQuestion godoc
// @Summary Hand-author a question on an owned quiz
// @Tags Quizzes
// @Accept json
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Param request body dto.CreateQuestionRequest true "Question payload"
// @Success 201 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid payload"
// @Failure 403 {object} dto.ErrorResponse "Not the quiz owner"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{quiz_id}/questions [post]
func (c *QuizController) AddQuestion(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	quizID, ok := quizIDParam(ctx)
	if !ok {
		return
	}

	var req dto.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	question, err := c.quizService.AddQuestion(quizID, userID, req)
	if err != nil {
		c.writeQuizError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, question)
}

// DeleteQuiz godoc
// @Summary Delete an owned quiz and its questions
// @Tags Quizzes
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} dto.ErrorResponse "Not the quiz owner"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{quiz_id} [delete]
func (c *QuizController) DeleteQuiz(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	quizID, ok := quizIDParam(ctx)
	if !ok {
		return
	}

	if err := c.quizService.DeleteQuiz(quizID, userID); err != nil {
		c.writeQuizError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Quiz deleted successfully"})
}

func (c *QuizController) writeQuizError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrQuizNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Quiz not found"})
	case errors.Is(err, service.ErrAccessDenied), errors.Is(err, service.ErrNotOwner):
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: "Access denied"})
	default:
		log.Error().Err(err).Msg("Quiz operation failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error", Details: []string{err.Error()}})
	}
}

func quizIDParam(ctx *gin.Context) (uint, bool) {
	quizID, err := strconv.ParseUint(ctx.Param("quiz_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid quiz ID format"})
		return 0, false
	}
	return uint(quizID), true
}
