package handler

import (
	"context"
	"net/http"
	"time"

	"taskhub/internal/auth"
	"taskhub/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthService interface {
	Register(ctx context.Context, input service.RegisterInput) (*service.UserDto, error)
	Login(ctx context.Context, email, password string) (*service.UserDto, error)
}

var _ AuthService = (*service.AuthService)(nil)

type UserHandler struct {
	auth      AuthService
	jwtSecret string
	jwtTTL    time.Duration
}

func NewUserHandler(auth AuthService, jwtSecret string, jwtTTL time.Duration) *UserHandler {
	return &UserHandler{auth: auth, jwtSecret: jwtSecret, jwtTTL: jwtTTL}
}

type RegisterRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	FirstName       string `json:"first_name" binding:"required"`
	LastName        string `json:"last_name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string          `json:"token"`
	User  service.UserDto `json:"user"`
}

// Register godoc
// @Summary      Register a new user
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        input  body  RegisterRequest  true  "Registration data"
// @Success      201  {object}  AuthResponse
// @Router       /register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), service.RegisterInput{
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := auth.GenerateToken(user.ID.String(), h.jwtSecret, h.jwtTTL)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{Token: token, User: *user})
}

// Login godoc
// @Summary      Authenticate and get a JWT
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        input  body  LoginRequest  true  "Credentials"
// @Success      200  {object}  AuthResponse
// @Router       /login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := auth.GenerateToken(user.ID.String(), h.jwtSecret, h.jwtTTL)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Token: token, User: *user})
}
