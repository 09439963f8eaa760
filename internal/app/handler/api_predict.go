package handler

import (
	"errors"
	"net/http"

	"github.com/varun021/Health-Tracker/internal/app/middleware"
	"github.com/varun021/Health-Tracker/internal/app/prediction"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// POST /api/predict — the main scoring endpoint. Works anonymously; a
// logged-in caller gets the history bonus and a persistent history entry.
func (h *Handler) ApiPredict(ctx *gin.Context) {
	var input prediction.PredictInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	client := prediction.ClientInfo{
		IPAddress: ctx.ClientIP(),
		UserAgent: ctx.Request.UserAgent(),
	}
	if userID, ok := middleware.GetCurrentUserID(ctx); ok {
		client.UserID = &userID
	}
	if sessionID, err := ctx.Cookie("session_id"); err == nil && sessionID != "" {
		client.SessionID = sessionID
	} else {
		// Anonymous submissions are still correlated within a browser
		// session via a generated cookie.
		sid := uuid.New().String()
		ctx.SetCookie("session_id", sid, 86400, "/", "", false, true)
		client.SessionID = sid
	}

	result, err := h.Prediction.Predict(ctx.Request.Context(), input, client)
	if err != nil {
		h.errorHandler(ctx, predictionStatus(err), err)
		return
	}

	jsonResponse(ctx, result, 1, gin.H{"rule_only": result.RuleOnly})
}

// predictionStatus maps engine errors onto HTTP statuses.
func predictionStatus(err error) int {
	switch {
	case prediction.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, prediction.ErrNoPredictions):
		return http.StatusUnprocessableEntity
	case errors.Is(err, prediction.ErrInsufficientData):
		return http.StatusUnprocessableEntity
	case errors.Is(err, prediction.ErrTrainingInProgress):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
