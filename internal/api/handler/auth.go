package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"givego/backend/internal/config"
	"givego/backend/internal/models"

	"github.com/gin-gonic/gin"

	jwt "github.com/golang-jwt/jwt/v5"
)

// GenerateJWT mints an HS256 token carrying the participant identifier.
func GenerateJWT(userID string, secret []byte, ttl time.Duration, issuer string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(ttl).Unix(),
		"iss":     issuer,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken checks the signature and expiry and returns the participant
// identifier from the claims.
func ValidateToken(tokenString string, secret []byte) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", errors.New("token carries no user id")
	}
	return userID, nil
}

type identityRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// CreateIdentity registers a participant and returns a JWT for them. This is
// the identity collaborator boundary: credential management beyond the token
// itself lives elsewhere.
func (h *Handler) CreateIdentity(c *gin.Context) {
	var body identityRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := &models.User{Name: body.Name, Email: body.Email}
	if err := h.Storage.SaveUser(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	token, err := GenerateJWT(user.ID, []byte(h.Cfg.JWTSecret), config.TokenTTL, config.TokenIssuer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user_id": user.ID})
}

// AuthRequired extracts and validates the bearer token, storing the verified
// participant identifier in the request context.
func (h *Handler) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := h.userIDFromHeader(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.Set("user_id", userID)
		c.Next()
	}
}

func (h *Handler) userIDFromHeader(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", errors.New("authorization token missing")
	}
	userID, err := ValidateToken(strings.TrimPrefix(authHeader, "Bearer "), []byte(h.Cfg.JWTSecret))
	if err != nil {
		return "", errors.New("invalid token or expired")
	}
	return userID, nil
}
