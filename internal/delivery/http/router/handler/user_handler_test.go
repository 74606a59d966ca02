package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"suasana/internal/delivery/http/middleware"
	"suasana/internal/delivery/http/validator"
	"suasana/internal/domain/entity"
	domainerrors "suasana/internal/domain/errors"
	mockusecase "suasana/internal/mocks/usecase"
	"suasana/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	return e
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// identityInjector stands in for the auth middleware, stamping a fixed user
// ID onto every request the way Authenticate would after verifying a token.
func identityInjector(userID uuid.UUID) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(middleware.ContextUserIDKey, userID)

			return next(c)
		}
	}
}

func doJSON(e *echo.Echo, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestUserHandler_Register(t *testing.T) {
	userUc := new(mockusecase.MockUserUsecase)
	profileUc := new(mockusecase.MockProfileUsecase)
	h := NewUserHandler(userUc, profileUc, discardLogger())

	e := newTestEcho()
	e.POST("/users/register", h.Register)

	userUc.On("Register", mock.Anything, mock.MatchedBy(func(input *usecase.RegisterInput) bool {
		return input.Email == "budi@example.com" && input.Name == "Budi" && input.Password == "hunter2"
	})).Return(&usecase.RegisterOutput{User: &entity.User{ID: uuid.New(), Email: "budi@example.com", Name: "Budi"}}, nil)

	rec := doJSON(e, http.MethodPost, "/users/register",
		`{"email":"budi@example.com","name":"Budi","password":"hunter2"}`, nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"User Created"}`, rec.Body.String())
	userUc.AssertExpectations(t)
}

func TestUserHandler_Register_ValidationFailure(t *testing.T) {
	userUc := new(mockusecase.MockUserUsecase)
	h := NewUserHandler(userUc, new(mockusecase.MockProfileUsecase), discardLogger())

	e := newTestEcho()
	e.POST("/users/register", h.Register)

	tests := []struct {
		name string
		body string
	}{
		{"missing email", `{"name":"Budi","password":"hunter2"}`},
		{"malformed email", `{"email":"not-an-email","name":"Budi","password":"hunter2"}`},
		{"missing password", `{"email":"budi@example.com","name":"Budi"}`},
		{"empty body", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(e, http.MethodPost, "/users/register", tt.body, nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), `"success":false`)
			assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
		})
	}

	userUc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestUserHandler_Register_EmailTaken(t *testing.T) {
	userUc := new(mockusecase.MockUserUsecase)
	h := NewUserHandler(userUc, new(mockusecase.MockProfileUsecase), discardLogger())

	e := newTestEcho()
	e.POST("/users/register", h.Register)

	userUc.On("Register", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrEmailTaken.WrapMessage("user registration failed"))

	rec := doJSON(e, http.MethodPost, "/users/register",
		`{"email":"budi@example.com","name":"Budi","password":"hunter2"}`, nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "EMAIL_TAKEN")
}

func TestUserHandler_Login(t *testing.T) {
	userID := uuid.New()
	userUc := new(mockusecase.MockUserUsecase)
	h := NewUserHandler(userUc, new(mockusecase.MockProfileUsecase), discardLogger())

	e := newTestEcho()
	e.POST("/login", h.Login)

	userUc.On("Login", mock.Anything, mock.MatchedBy(func(input *usecase.LoginInput) bool {
		return input.Email == "budi@example.com" && input.Password == "hunter2"
	})).Return(&usecase.LoginOutput{
		Token: "signed.jwt.token",
		User:  &entity.User{ID: userID, Email: "budi@example.com", Name: "Budi"},
	}, nil)

	rec := doJSON(e, http.MethodPost, "/login",
		`{"email":"budi@example.com","password":"hunter2"}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"success": true,
		"message": "Login Successful",
		"LoginResult": {
			"id": "`+userID.String()+`",
			"name": "Budi",
			"email": "budi@example.com",
			"token": "signed.jwt.token"
		}
	}`, rec.Body.String())
}

func TestUserHandler_Login_Failures(t *testing.T) {
	tests := []struct {
		name        string
		loginErr    error
		wantCode    int
		wantMessage string
	}{
		{"unknown email", domainerrors.ErrUserNotFound, http.StatusUnauthorized, "User Not Found"},
		{"wrong password", domainerrors.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid Credentials"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userUc := new(mockusecase.MockUserUsecase)
			h := NewUserHandler(userUc, new(mockusecase.MockProfileUsecase), discardLogger())

			e := newTestEcho()
			e.POST("/login", h.Login)

			userUc.On("Login", mock.Anything, mock.Anything).Return(nil, tt.loginErr)

			rec := doJSON(e, http.MethodPost, "/login",
				`{"email":"budi@example.com","password":"whatever"}`, nil)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantMessage)
			// No token material leaks into a failed login response.
			assert.NotContains(t, rec.Body.String(), "LoginResult")
		})
	}
}

func TestUserHandler_GetProfile(t *testing.T) {
	userID := uuid.New()
	profileUc := new(mockusecase.MockProfileUsecase)
	h := NewUserHandler(new(mockusecase.MockUserUsecase), profileUc, discardLogger())

	e := newTestEcho()
	g := e.Group("/users")
	g.Use(identityInjector(userID))
	g.GET("", h.GetProfile)

	profileUc.On("GetProfile", mock.Anything, userID).Return(&entity.User{
		ID:           userID,
		Email:        "budi@example.com",
		Name:         "Budi",
		PasswordHash: "$2a$10$secret-material",
		CreatedAt:    time.Now(),
	}, nil)

	rec := doJSON(e, http.MethodGet, "/users", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	// Exactly the public fields, nothing else.
	assert.JSONEq(t, `{"name":"Budi","email":"budi@example.com"}`, rec.Body.String())
}

func TestUserHandler_GetProfile_NotFound(t *testing.T) {
	userID := uuid.New()
	profileUc := new(mockusecase.MockProfileUsecase)
	h := NewUserHandler(new(mockusecase.MockUserUsecase), profileUc, discardLogger())

	e := newTestEcho()
	g := e.Group("/users")
	g.Use(identityInjector(userID))
	g.GET("", h.GetProfile)

	profileUc.On("GetProfile", mock.Anything, userID).
		Return(nil, domainerrors.ErrNotFound.WrapMessage("user not found"))

	rec := doJSON(e, http.MethodGet, "/users", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
}

func TestUserHandler_GetProfile_MissingIdentity(t *testing.T) {
	profileUc := new(mockusecase.MockProfileUsecase)
	h := NewUserHandler(new(mockusecase.MockUserUsecase), profileUc, discardLogger())

	// Route registered without the identity middleware; the handler must
	// refuse rather than fall through with a zero ID.
	e := newTestEcho()
	e.GET("/users", h.GetProfile)

	rec := doJSON(e, http.MethodGet, "/users", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	profileUc.AssertNotCalled(t, "GetProfile", mock.Anything, mock.Anything)
}

func TestUserHandler_UpdateProfile(t *testing.T) {
	userID := uuid.New()
	profileUc := new(mockusecase.MockProfileUsecase)
	h := NewUserHandler(new(mockusecase.MockUserUsecase), profileUc, discardLogger())

	e := newTestEcho()
	g := e.Group("/users")
	g.Use(identityInjector(userID))
	g.PUT("", h.UpdateProfile)

	profileUc.On("UpdateName", mock.Anything, userID, mock.MatchedBy(func(input *usecase.UpdateProfileInput) bool {
		return input.Name == "Budi Baru"
	})).Return(nil)

	rec := doJSON(e, http.MethodPut, "/users", `{"name":"Budi Baru"}`, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "User updated successfully", rec.Body.String())
	profileUc.AssertExpectations(t)
}

func TestUserHandler_UpdateProfile_EmptyName(t *testing.T) {
	userID := uuid.New()
	profileUc := new(mockusecase.MockProfileUsecase)
	h := NewUserHandler(new(mockusecase.MockUserUsecase), profileUc, discardLogger())

	e := newTestEcho()
	g := e.Group("/users")
	g.Use(identityInjector(userID))
	g.PUT("", h.UpdateProfile)

	rec := doJSON(e, http.MethodPut, "/users", `{"name":""}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	profileUc.AssertNotCalled(t, "UpdateName", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserHandler_DeleteProfile(t *testing.T) {
	userID := uuid.New()
	profileUc := new(mockusecase.MockProfileUsecase)
	h := NewUserHandler(new(mockusecase.MockUserUsecase), profileUc, discardLogger())

	e := newTestEcho()
	g := e.Group("/users")
	g.Use(identityInjector(userID))
	g.DELETE("", h.DeleteProfile)

	profileUc.On("DeleteProfile", mock.Anything, userID).Return(nil)

	rec := doJSON(e, http.MethodDelete, "/users", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "User deleted successfully", rec.Body.String())
	profileUc.AssertExpectations(t)
}
