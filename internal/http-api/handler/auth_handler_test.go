package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gameadvisor/internal/http-api/dto"
	"gameadvisor/internal/http-api/models"
	"gameadvisor/internal/http-api/repository"
	"gameadvisor/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAuthService mocks the AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, user *models.User, password string) (*models.User, error) {
	args := m.Called(ctx, user, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*models.User), args.Error(2)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

func setupAuthRouter(svc service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewAuthHandler(svc).RegisterRoutes(router.Group("/auth"))
	return router
}

func registerBody(t *testing.T) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(dto.RegisterRequest{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
	})
	assert.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestAuthHandlerRegister_Success(t *testing.T) {
	mockService := new(MockAuthService)
	router := setupAuthRouter(mockService)

	created := &models.User{ID: "user-123", Username: "testuser", Email: "test@example.com"}
	mockService.On("Register", mock.Anything, mock.AnythingOfType("*models.User"), "password123").
		Return(created, nil)

	req, _ := http.NewRequest("POST", "/auth/register", registerBody(t))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response dto.UserResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "user-123", response.ID)
	assert.Equal(t, "testuser", response.Username)

	mockService.AssertExpectations(t)
}

func TestAuthHandlerRegister_NameInUse(t *testing.T) {
	mockService := new(MockAuthService)
	router := setupAuthRouter(mockService)

	mockService.On("Register", mock.Anything, mock.Anything, "password123").
		Return(nil, service.ErrNameInUse)

	req, _ := http.NewRequest("POST", "/auth/register", registerBody(t))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandlerRegister_UniqueViolationConflict(t *testing.T) {
	mockService := new(MockAuthService)
	router := setupAuthRouter(mockService)

	// A concurrent registration can pass the service's existence checks and
	// fail on the database constraint; the handler still answers 409.
	dbErr := &repository.PersistError{
		Op:  "user",
		Err: &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"},
	}
	mockService.On("Register", mock.Anything, mock.Anything, "password123").
		Return(nil, dbErr)

	req, _ := http.NewRequest("POST", "/auth/register", registerBody(t))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "username or email already in use", response["error"])
}

func TestAuthHandlerRegister_OtherErrorIs500(t *testing.T) {
	mockService := new(MockAuthService)
	router := setupAuthRouter(mockService)

	mockService.On("Register", mock.Anything, mock.Anything, "password123").
		Return(nil, &repository.PersistError{Op: "user", Err: assert.AnError})

	req, _ := http.NewRequest("POST", "/auth/register", registerBody(t))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAuthHandlerRegister_InvalidJSON(t *testing.T) {
	mockService := new(MockAuthService)
	router := setupAuthRouter(mockService)

	req, _ := http.NewRequest("POST", "/auth/register", bytes.NewBufferString("invalid json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthHandlerLogin_Success(t *testing.T) {
	mockService := new(MockAuthService)
	router := setupAuthRouter(mockService)

	user := &models.User{ID: "user-123", Username: "testuser"}
	mockService.On("Login", mock.Anything, "testuser", "password123").
		Return("access-token", user, nil)

	body, _ := json.Marshal(dto.LoginRequest{Username: "testuser", Password: "password123"})
	req, _ := http.NewRequest("POST", "/auth/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.LoginResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "access-token", response.AccessToken)
	assert.Equal(t, "testuser", response.User.Username)
}

func TestAuthHandlerLogin_InvalidCredentials(t *testing.T) {
	mockService := new(MockAuthService)
	router := setupAuthRouter(mockService)

	mockService.On("Login", mock.Anything, "testuser", "wrongpassword").
		Return("", nil, service.ErrInvalidCredentials)

	body, _ := json.Marshal(dto.LoginRequest{Username: "testuser", Password: "wrongpassword"})
	req, _ := http.NewRequest("POST", "/auth/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
