package middleware

import (
	"net/http"
	"strings"

	"github.com/varun021/Health-Tracker/internal/app/pkg/auth"

	"github.com/gin-gonic/gin"
)

const (
	UserIDKey      = "user_id"
	LoginKey       = "login"
	IsModeratorKey = "is_moderator"
)

type AuthService struct {
	JWT     *auth.JWTService
	Session *auth.SessionService
}

// AuthMiddleware authenticates via a Bearer JWT first, then falls back to
// the session cookie. Unauthenticated requests are rejected.
func AuthMiddleware(authSvc *AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := authSvc.JWT.Validate(tokenString)
			if err == nil {
				c.Set(UserIDKey, claims.UserID)
				c.Set(LoginKey, claims.Login)
				c.Set(IsModeratorKey, claims.IsModerator)
				c.Next()
				return
			}
		}

		sessionID, err := c.Cookie("session_id")
		if err == nil && sessionID != "" {
			sessionData, err := authSvc.Session.Get(c.Request.Context(), sessionID)
			if err == nil && sessionData != nil {
				c.Set(UserIDKey, sessionData.UserID)
				c.Set(LoginKey, sessionData.Login)
				c.Set(IsModeratorKey, sessionData.IsModerator)
				// Sliding expiration
				_ = authSvc.Session.Extend(c.Request.Context(), sessionID)
				c.Next()
				return
			}
		}

		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		c.Abort()
	}
}

// OptionalAuthMiddleware populates the user identity when credentials are
// present but lets anonymous requests through. Predictions work either way;
// only authenticated ones get the history bonus.
func OptionalAuthMiddleware(authSvc *AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := authSvc.JWT.Validate(tokenString)
			if err == nil {
				c.Set(UserIDKey, claims.UserID)
				c.Set(LoginKey, claims.Login)
				c.Set(IsModeratorKey, claims.IsModerator)
				c.Next()
				return
			}
		}

		sessionID, err := c.Cookie("session_id")
		if err == nil && sessionID != "" {
			sessionData, err := authSvc.Session.Get(c.Request.Context(), sessionID)
			if err == nil && sessionData != nil {
				c.Set(UserIDKey, sessionData.UserID)
				c.Set(LoginKey, sessionData.Login)
				c.Set(IsModeratorKey, sessionData.IsModerator)
				_ = authSvc.Session.Extend(c.Request.Context(), sessionID)
			}
		}

		c.Next()
	}
}

// RequireModeratorMiddleware gates admin operations (catalog writes,
// training) to moderator accounts.
func RequireModeratorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		isModerator, exists := c.Get(IsModeratorKey)
		if !exists || !isModerator.(bool) {
			c.JSON(http.StatusForbidden, gin.H{"error": "moderator access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func GetCurrentUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	return userID.(uint), true
}

func GetCurrentLogin(c *gin.Context) (string, bool) {
	login, exists := c.Get(LoginKey)
	if !exists {
		return "", false
	}
	return login.(string), true
}

func IsCurrentUserModerator(c *gin.Context) bool {
	isModerator, exists := c.Get(IsModeratorKey)
	if !exists {
		return false
	}
	return isModerator.(bool)
}
