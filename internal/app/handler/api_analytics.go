package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/varun021/Health-Tracker/internal/app/analytics"
	"github.com/varun021/Health-Tracker/internal/app/middleware"

	"github.com/gin-gonic/gin"
)

const defaultStatisticsDays = 30

func statisticsWindow(ctx *gin.Context) (days int, from, to time.Time) {
	days = defaultStatisticsDays
	if v := ctx.Query("days"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 365 {
			days = n
		}
	}
	to = time.Now().UTC()
	from = to.AddDate(0, 0, -days)
	return days, from, to
}

// GET /api/statistics?days=
func (h *Handler) ApiStatistics(ctx *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(ctx)
	days, from, to := statisticsWindow(ctx)

	subs, err := h.Repository.SubmissionsInWindow(userID, from, to)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	rep := analytics.Compute(subs)
	jsonResponse(ctx, rep, 1, gin.H{"days": days})
}

// GET /api/statistics/compare?days= — current window vs the equal-length
// window immediately before it.
func (h *Handler) ApiStatisticsCompare(ctx *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(ctx)
	days, from, to := statisticsWindow(ctx)
	prevFrom := from.AddDate(0, 0, -days)

	current, err := h.Repository.SubmissionsInWindow(userID, from, to)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	previous, err := h.Repository.SubmissionsInWindow(userID, prevFrom, from)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	cmp := analytics.Compare(current, previous)
	jsonResponse(ctx, cmp, 1, gin.H{"days": days})
}

// GET /api/recommendations?days=
func (h *Handler) ApiRecommendations(ctx *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(ctx)
	days, from, to := statisticsWindow(ctx)

	subs, err := h.Repository.SubmissionsInWindow(userID, from, to)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	advice := analytics.LifestyleRecommendations(subs)
	jsonResponse(ctx, advice, int64(len(advice)), gin.H{"days": days})
}
