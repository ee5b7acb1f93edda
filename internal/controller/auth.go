package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studyboi/quizforge/internal/dto"
)

// userIDHeader carries the authenticated user identity, set by the
// upstream auth gateway. The gateway has already validated the session;
// this service only trusts and forwards the identity.
const userIDHeader = "X-User-ID"

// currentUserID extracts the caller identity, aborting with 401 if the
// gateway did not supply one.
func currentUserID(ctx *gin.Context) (string, bool) {
	userID := ctx.GetHeader(userIDHeader)
	if userID == "" {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing user identity"})
		return "", false
	}
	return userID, true
}
