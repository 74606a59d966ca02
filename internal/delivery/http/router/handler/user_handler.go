// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"suasana/internal/delivery/http/response"
	"suasana/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for account and profile handlers.
type UserHandler struct {
	userUc    usecase.UserUsecase
	profileUc usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(userUc usecase.UserUsecase, profileUc usecase.ProfileUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUc:    userUc,
		profileUc: profileUc,
		logger:    logger,
	}
}

// registerResponse mirrors the legacy registration envelope.
type registerResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// loginResult carries the authenticated identity and its session token.
type loginResult struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// loginResponse mirrors the legacy login envelope, LoginResult key included.
type loginResponse struct {
	Success     bool        `json:"success"`
	Message     string      `json:"message"`
	LoginResult loginResult `json:"LoginResult"`
}

// profileResponse exposes exactly the public profile fields. The password
// hash and the internal ID never leave the server here.
type profileResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Register handles the account registration request.
func (h *UserHandler) Register(c echo.Context) error {
	input := new(usecase.RegisterInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if _, err := h.userUc.Register(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, registerResponse{
		Success: true,
		Message: "User Created",
	})
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	input := new(usecase.LoginInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.userUc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, loginResponse{
		Success: true,
		Message: "Login Successful",
		LoginResult: loginResult{
			ID:    output.User.ID.String(),
			Name:  output.User.Name,
			Email: output.User.Email,
			Token: output.Token,
		},
	})
}

// GetProfile handles the request to get the current user's profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	user, err := h.profileUc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, profileResponse{
		Name:  user.Name,
		Email: user.Email,
	})
}

// UpdateProfile handles the request to rename the current user.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	input := new(usecase.UpdateProfileInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile update input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.profileUc.UpdateName(c.Request().Context(), userID, input); err != nil {
		return errors.WithStack(err)
	}

	return c.String(http.StatusOK, "User updated successfully")
}

// DeleteProfile handles the request to delete the current user's account.
func (h *UserHandler) DeleteProfile(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.profileUc.DeleteProfile(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return c.String(http.StatusOK, "User deleted successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
