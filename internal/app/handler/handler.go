package handler

import (
	"net/http"

	"github.com/varun021/Health-Tracker/internal/app/config"
	"github.com/varun021/Health-Tracker/internal/app/middleware"
	"github.com/varun021/Health-Tracker/internal/app/pkg/auth"
	"github.com/varun021/Health-Tracker/internal/app/pkg/storage"
	"github.com/varun021/Health-Tracker/internal/app/prediction"
	"github.com/varun021/Health-Tracker/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	Repository     *repository.Repository
	Config         *config.Config
	Prediction     *prediction.Service
	JWTService     *auth.JWTService
	SessionService *auth.SessionService
	Storage        *storage.MinIO
}

func NewHandler(r *repository.Repository, cfg *config.Config, pred *prediction.Service,
	jwtSvc *auth.JWTService, sessionSvc *auth.SessionService, store *storage.MinIO) *Handler {
	return &Handler{
		Repository:     r,
		Config:         cfg,
		Prediction:     pred,
		JWTService:     jwtSvc,
		SessionService: sessionSvc,
		Storage:        store,
	}
}

// RegisterHandler wires all API routes.
func (h *Handler) RegisterHandler(router *gin.Engine) {
	authSvc := &middleware.AuthService{JWT: h.JWTService, Session: h.SessionService}

	api := router.Group("/api")

	// Auth
	api.POST("/users/register", h.ApiRegisterUser)
	api.POST("/users/login", h.ApiLogin)
	api.POST("/users/logout", h.ApiLogout)
	api.GET("/users/profile", middleware.AuthMiddleware(authSvc), h.ApiGetProfile)
	api.PUT("/users/profile", middleware.AuthMiddleware(authSvc), h.ApiUpdateProfile)

	// Catalog (public reads)
	api.GET("/symptoms", h.ApiListSymptoms)
	api.GET("/symptoms/:id", h.ApiGetSymptom)
	api.GET("/diseases", h.ApiListDiseases)
	api.GET("/diseases/:id", h.ApiGetDisease)

	// Catalog writes are moderator-only
	mod := api.Group("", middleware.AuthMiddleware(authSvc), middleware.RequireModeratorMiddleware())
	mod.POST("/symptoms", h.ApiCreateSymptom)
	mod.PUT("/symptoms/:id", h.ApiUpdateSymptom)
	mod.POST("/diseases", h.ApiCreateDisease)
	mod.PUT("/diseases/:id", h.ApiUpdateDisease)
	mod.PUT("/diseases/:id/symptoms/:symptomId", h.ApiSetDiseaseSymptomWeight)

	// Prediction works anonymously; a logged-in user additionally gets the
	// history bonus and persistent history.
	api.POST("/predict", middleware.OptionalAuthMiddleware(authSvc), h.ApiPredict)

	// History, reports, analytics require a user
	user := api.Group("", middleware.AuthMiddleware(authSvc))
	user.GET("/history", h.ApiHistory)
	user.GET("/history/:id", h.ApiGetSubmission)
	user.GET("/reports", h.ApiReport)
	user.GET("/reports/export", h.ApiExportReport)
	user.GET("/statistics", h.ApiStatistics)
	user.GET("/statistics/compare", h.ApiStatisticsCompare)
	user.GET("/recommendations", h.ApiRecommendations)

	// Model management
	mod.POST("/train", h.ApiTrain)
	api.GET("/model", h.ApiModelInfo)
}

// errorHandler for uniform error output
func (h *Handler) errorHandler(ctx *gin.Context, errorStatusCode int, err error) {
	logrus.Error(err.Error())
	ctx.JSON(errorStatusCode, gin.H{
		"status":      "error",
		"description": err.Error(),
	})
}

func jsonResponse(ctx *gin.Context, data interface{}, count int64, meta gin.H) {
	ctx.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"data":   data,
		"count":  count,
		"meta":   meta,
	})
}
