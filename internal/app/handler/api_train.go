package handler

import (
	"errors"
	"net/http"

	"github.com/varun021/Health-Tracker/internal/app/prediction"

	"github.com/gin-gonic/gin"
)

// POST /api/train — retrain the classifier from the knowledge base plus
// recent labeled submissions. Moderator-only; concurrent runs are refused.
func (h *Handler) ApiTrain(ctx *gin.Context) {
	stats, err := h.Prediction.Train(ctx.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, prediction.ErrTrainingInProgress):
			ctx.JSON(http.StatusConflict, gin.H{"error": "training already in progress"})
		case errors.Is(err, prediction.ErrInsufficientData):
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "not enough data to train"})
		default:
			h.errorHandler(ctx, http.StatusInternalServerError, err)
		}
		return
	}

	jsonResponse(ctx, stats, 1, gin.H{})
}

// GET /api/model — current model status for operators.
func (h *Handler) ApiModelInfo(ctx *gin.Context) {
	jsonResponse(ctx, h.Prediction.ModelInfo(), 1, gin.H{})
}
