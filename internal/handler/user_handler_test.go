package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"taskhub/internal/handler"
	"taskhub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, input service.RegisterInput) (*service.UserDto, error) {
	args := m.Called(ctx, input)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*service.UserDto), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*service.UserDto, error) {
	args := m.Called(ctx, email, password)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*service.UserDto), args.Error(1)
}

func setupTest() (*gin.Engine, *MockAuthService) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mockAuth := new(MockAuthService)
	userHandler := handler.NewUserHandler(mockAuth, "test-secret", time.Hour)

	r.POST("/register", userHandler.Register)
	r.POST("/login", userHandler.Login)

	return r, mockAuth
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	jsonBody, _ := json.Marshal(body)
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestRegister_Success(t *testing.T) {
	router, mockAuth := setupTest()

	user := &service.UserDto{
		ID:        uuid.New(),
		Email:     "test@example.com",
		FirstName: "Test",
		LastName:  "User",
	}
	mockAuth.On("Register", mock.Anything, mock.AnythingOfType("service.RegisterInput")).Return(user, nil)

	resp := postJSON(router, "/register", handler.RegisterRequest{
		Email:           "test@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
		FirstName:       "Test",
		LastName:        "User",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)

	var response handler.AuthResponse
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.NotEmpty(t, response.Token)
	assert.Equal(t, user.Email, response.User.Email)
	assert.Equal(t, user.ID, response.User.ID)

	mockAuth.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	router, mockAuth := setupTest()

	mockAuth.On("Register", mock.Anything, mock.AnythingOfType("service.RegisterInput")).
		Return(nil, service.Invalid("User with this email already exists"))

	resp := postJSON(router, "/register", handler.RegisterRequest{
		Email:           "existing@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
		FirstName:       "Test",
		LastName:        "User",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "User with this email already exists")

	mockAuth.AssertExpectations(t)
}

func TestRegister_MissingFields(t *testing.T) {
	router, _ := setupTest()

	resp := postJSON(router, "/register", map[string]string{"email": "test@example.com"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestLogin_Success(t *testing.T) {
	router, mockAuth := setupTest()

	user := &service.UserDto{
		ID:        uuid.New(),
		Email:     "test@example.com",
		FirstName: "Test",
		LastName:  "User",
	}
	mockAuth.On("Login", mock.Anything, "test@example.com", "password123").Return(user, nil)

	resp := postJSON(router, "/login", handler.LoginRequest{
		Email:    "test@example.com",
		Password: "password123",
	})

	assert.Equal(t, http.StatusOK, resp.Code)

	var response handler.AuthResponse
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.NotEmpty(t, response.Token)
	assert.Equal(t, user.ID, response.User.ID)

	mockAuth.AssertExpectations(t)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	router, mockAuth := setupTest()

	mockAuth.On("Login", mock.Anything, "test@example.com", "wrong").
		Return(nil, service.ErrInvalidCredentials)

	resp := postJSON(router, "/login", handler.LoginRequest{
		Email:    "test@example.com",
		Password: "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Invalid email or password")

	mockAuth.AssertExpectations(t)
}
