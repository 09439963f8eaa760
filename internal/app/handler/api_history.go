package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/varun021/Health-Tracker/internal/app/middleware"
	"github.com/varun021/Health-Tracker/internal/app/report"
	"github.com/varun021/Health-Tracker/internal/app/repository"

	"github.com/gin-gonic/gin"
)

const defaultHistoryLimit = 20

// GET /api/history?limit=
func (h *Handler) ApiHistory(ctx *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(ctx)

	limit := defaultHistoryLimit
	if v := ctx.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	subs, err := h.Repository.ListUserSubmissions(userID, limit)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, subs, int64(len(subs)), gin.H{"limit": limit})
}

// GET /api/history/:id
func (h *Handler) ApiGetSubmission(ctx *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(ctx)

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	sub, err := h.Repository.GetSubmission(uint(id))
	if err != nil {
		h.errorHandler(ctx, http.StatusNotFound, err)
		return
	}
	if sub.UserID == nil || *sub.UserID != userID {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "not your submission"})
		return
	}
	jsonResponse(ctx, sub, 1, gin.H{"id": id})
}

// parseReportFilter reads from/to/severity/limit query params.
func parseReportFilter(ctx *gin.Context) (repository.SubmissionFilter, error) {
	var f repository.SubmissionFilter
	if v := ctx.Query("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return f, fmt.Errorf("bad from date: %w", err)
		}
		f.From = &t
	}
	if v := ctx.Query("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return f, fmt.Errorf("bad to date: %w", err)
		}
		// inclusive end of day
		t = t.Add(24*time.Hour - time.Nanosecond)
		f.To = &t
	}
	f.Severity = ctx.Query("severity")
	if v := ctx.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			f.Limit = n
		}
	}
	return f, nil
}

// GET /api/reports?from=&to=&severity=&limit=
func (h *Handler) ApiReport(ctx *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(ctx)

	filter, err := parseReportFilter(ctx)
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	subs, err := h.Repository.ListUserSubmissionsFiltered(userID, filter)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, subs, int64(len(subs)), gin.H{"severity": filter.Severity})
}

// GET /api/reports/export?format=csv|json&from=&to=&severity=
// The file is uploaded to object storage; the response carries its URL.
func (h *Handler) ApiExportReport(ctx *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(ctx)
	login, _ := middleware.GetCurrentLogin(ctx)

	format := ctx.DefaultQuery("format", "csv")
	if format != "csv" && format != "json" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "format must be csv or json"})
		return
	}

	filter, err := parseReportFilter(ctx)
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	subs, err := h.Repository.ListUserSubmissionsFiltered(userID, filter)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	var (
		data        []byte
		contentType string
	)
	switch format {
	case "csv":
		data, err = report.CSV(subs)
		contentType = "text/csv"
	case "json":
		data, err = report.JSON(subs)
		contentType = "application/json"
	}
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	prefix := fmt.Sprintf("health-report-%s-%s", login, time.Now().Format("20060102"))
	key, publicURL, err := h.Storage.UploadReport(ctx.Request.Context(), prefix, format, data, contentType)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	jsonResponse(ctx, gin.H{
		"key":    key,
		"url":    publicURL,
		"rows":   len(subs),
		"format": format,
	}, 1, gin.H{})
}
