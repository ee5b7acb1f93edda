package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/studyboi/quizforge/internal/dto"
	"github.com/studyboi/quizforge/internal/service"
	"github.com/studyboi/quizforge/internal/session"
)

type SessionController struct {
	sessionService service.SessionService
	attemptService service.AttemptService
}

func NewSessionController(sessionService service.SessionService, attemptService service.AttemptService) *SessionController {
	return &SessionController{
		sessionService: sessionService,
		attemptService: attemptService,
	}
}

// OpenSession godoc
// @Summary Open (or resume) a quiz-taking session
// @Tags Sessions
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 403 {object} dto.ErrorResponse "Private quiz owned by someone else"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 422 {object} dto.ErrorResponse "Quiz has no questions"
// @Router /quizzes/{quiz_id}/session [post]
func (c *SessionController) OpenSession(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	quizID, ok := quizIDParam(ctx)
	if !ok {
		return
	}

	snap, err := c.sessionService.Open(quizID, userID)
	if err != nil {
		c.writeSessionError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, snap)
}

// SelectAnswer godoc
// @Summary Record an answer for the current question
// @Tags Sessions
// @Accept json
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Param request body dto.SelectAnswerRequest true "Chosen option index"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse "Option index out of range"
// @Failure 404 {object} dto.ErrorResponse "No open session"
// @Router /quizzes/{quiz_id}/session/answer [put]
func (c *SessionController) SelectAnswer(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	quizID, ok := quizIDParam(ctx)
	if !ok {
		return
	}

	var req dto.SelectAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	snap, err := c.sessionService.SelectAnswer(quizID, userID, *req.OptionIndex)
	if err != nil {
		c.writeSessionError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, snap)
}

// Move godoc
// @Summary Navigate to the next or previous question
// @Tags Sessions
// @Accept json
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Param request body dto.MoveRequest true "Navigation direction"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} dto.ErrorResponse "No open session"
// @Router /quizzes/{quiz_id}/session/position [put]
func (c *SessionController) Move(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	quizID, ok := quizIDParam(ctx)
	if !ok {
		return
	}

	var req dto.MoveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	snap, err := c.sessionService.Move(quizID, userID, req.Direction)
	if err != nil {
		c.writeSessionError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, snap)
}

// Submit godoc
// @Summary Submit the session for scoring
// @Description Grades all selections, records a quiz attempt, and returns the score. Submitting an already-completed session returns the existing result.
// @Tags Sessions
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {object} dto.ScoreResultResponse
// @Failure 404 {object} dto.ErrorResponse "No open session"
// @Failure 409 {object} dto.ErrorResponse "Unanswered questions remain"
// @Router /quizzes/{quiz_id}/session/submit [post]
func (c *SessionController) Submit(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	quizID, ok := quizIDParam(ctx)
	if !ok {
		return
	}

	result, err := c.sessionService.Submit(ctx.Request.Context(), quizID, userID)
	if err != nil {
		c.writeSessionError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// Retry godoc
// @Summary Reset a completed session for another attempt
// @Description Clears selections and returns to the first question. The previously recorded attempt is kept.
// @Tags Sessions
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} dto.ErrorResponse "No open session"
// @Failure 409 {object} dto.ErrorResponse "Session not completed yet"
// @Router /quizzes/{quiz_id}/session/retry [post]
func (c *SessionController) Retry(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	quizID, ok := quizIDParam(ctx)
	if !ok {
		return
	}

	snap, err := c.sessionService.Retry(quizID, userID)
	if err != nil {
		c.writeSessionError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, snap)
}

// ListMyAttempts godoc
// @Summary List the caller's quiz attempts
// @Tags Attempts
// @Produce json
// @Param quiz_id query int false "Filter by quiz ID"
// @Success 200 {array} dto.AttemptResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /my-attempts [get]
func (c *SessionController) ListMyAttempts(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var quizID *uint
	if quizIDStr := ctx.Query("quiz_id"); quizIDStr != "" {
		val, err := strconv.ParseUint(quizIDStr, 10, 32)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid quiz ID format in query"})
			return
		}
		id := uint(val)
		quizID = &id
	}

	attempts, err := c.attemptService.ListAttempts(userID, quizID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("ListMyAttempts: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve attempts"})
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}

func (c *SessionController) writeSessionError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrQuizNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Quiz not found"})
	case errors.Is(err, service.ErrNoSession):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "No open session for this quiz"})
	case errors.Is(err, service.ErrAccessDenied):
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: "Access denied"})
	case errors.Is(err, session.ErrNoQuestions):
		ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Message: "This quiz has no questions"})
	case errors.Is(err, session.ErrIncompleteAnswers):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: "Please answer all questions before submitting"})
	case errors.Is(err, session.ErrInvalidOption):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Selected option is out of range"})
	case errors.Is(err, session.ErrNotCompleted):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: "Session is not completed yet"})
	default:
		log.Error().Err(err).Msg("Session operation failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error", Details: []string{err.Error()}})
	}
}
