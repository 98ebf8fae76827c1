package handler

import (
	"errors"
	"log"
	"net/http"

	"taskhub/internal/middleware"
	"taskhub/internal/repository"
	"taskhub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respondError maps service and repository errors onto HTTP statuses.
// Unrecognized errors are logged and surfaced as a bare 500.
func respondError(c *gin.Context, err error) {
	status, message := classifyError(err)
	c.JSON(status, gin.H{"error": message})
}

// apiEnvelope is the response shape of the /api/* endpoints.
type apiEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

func apiOK(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, apiEnvelope{Success: true, Data: data, Message: message})
}

func apiError(c *gin.Context, err error) {
	status, message := classifyError(err)
	c.JSON(status, apiEnvelope{Success: false, Message: message})
}

func classifyError(err error) (int, string) {
	switch {
	case repository.IsNotFound(err) || errors.Is(err, service.ErrUserNotFound):
		return http.StatusNotFound, err.Error()
	case service.IsValidation(err):
		return http.StatusBadRequest, err.Error()
	case service.IsForbidden(err):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password"
	default:
		log.Printf("internal error: %v", err)
		return http.StatusInternalServerError, "Internal server error"
	}
}

// currentUserID returns the authenticated user set by the JWT middleware.
func currentUserID(c *gin.Context) uuid.UUID {
	v, _ := c.Get(middleware.UserIDKey)
	id, _ := v.(uuid.UUID)
	return id
}

// paramID parses a uuid path parameter, writing a 400 when malformed.
func paramID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}
