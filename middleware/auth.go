package middleware

import (
	"net/http"

	"nailstudio-backend/config"
	"nailstudio-backend/models"
	"nailstudio-backend/services"
	"nailstudio-backend/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	ContextUserKey   = "user"
	ContextUserIDKey = "userId"
	ContextRoleKey   = "role"
	ContextTokenKey  = "token"
)

// AuthRequired verifies the bearer token, rejects revoked tokens and loads
// the account into the request context. All failures here are 401; role
// checks belong to AdminRequired.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, token, ok := authenticate(c)
		if !ok {
			return
		}
		setIdentity(c, user, token)
		c.Next()
	}
}

// AdminRequired is AuthRequired plus a role gate.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, token, ok := authenticate(c)
		if !ok {
			return
		}
		if !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		setIdentity(c, user, token)
		c.Next()
	}
}

// OptionalAuth resolves an identity when a valid bearer token is present and
// continues anonymously otherwise. Endpoints accepting both guests and
// account holders use this.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		token := utils.ExtractBearerToken(header)
		if token == "" {
			c.Next()
			return
		}

		userID, _, err := utils.ParseToken(token)
		if err != nil {
			c.Next()
			return
		}

		revoked, err := services.NewTokenBlacklist(config.DB).IsRevoked(token)
		if err != nil || revoked {
			c.Next()
			return
		}

		var user models.User
		if err := config.DB.First(&user, userID).Error; err != nil {
			c.Next()
			return
		}

		setIdentity(c, &user, token)
		c.Next()
	}
}

// CurrentUser returns the authenticated account from the context, if any.
func CurrentUser(c *gin.Context) *models.User {
	v, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	user, ok := v.(*models.User)
	if !ok {
		return nil
	}
	return user
}

func authenticate(c *gin.Context) (*models.User, string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
		return nil, "", false
	}

	token := utils.ExtractBearerToken(header)
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Bearer token required"})
		return nil, "", false
	}

	userID, _, err := utils.ParseToken(token)
	if err != nil {
		msg := "Invalid token"
		if err == utils.ErrTokenExpired {
			msg = "Token expired"
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
		return nil, "", false
	}

	revoked, err := services.NewTokenBlacklist(config.DB).IsRevoked(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return nil, "", false
	}
	if revoked {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has been revoked"})
		return nil, "", false
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Account not found"})
		return nil, "", false
	}

	return &user, token, true
}

func setIdentity(c *gin.Context, user *models.User, token string) {
	c.Set(ContextUserKey, user)
	c.Set(ContextUserIDKey, user.ID)
	c.Set(ContextRoleKey, user.Role)
	c.Set(ContextTokenKey, token)
}
