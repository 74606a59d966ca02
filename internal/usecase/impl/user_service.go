// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"suasana/internal/domain/entity"
	domainerrors "suasana/internal/domain/errors"
	"suasana/internal/domain/repository"
	"suasana/internal/domain/service"
	"suasana/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Register orchestrates the account registration process.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.logger.Info("Starting user registration", "email", input.Email)

	// Email uniqueness is enforced by lookup-before-insert; the store has
	// no unique index over document fields.
	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.ErrEmailTaken.WrapMessage("user registration failed")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		srv.logger.Error("Failed to check email during registration", "error", err, "email", input.Email)

		return nil, errors.Wrap(err, "failed to check email during registration")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", "error", err)

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	newUser := &entity.User{
		ID:           uuid.New(),
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hashedPassword,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		srv.logger.Error("Failed to persist user during registration", "error", err, "email", input.Email)

		return nil, errors.Wrap(err, "failed to persist user during registration")
	}
	srv.logger.Debug("User registered successfully", "userID", newUser.ID)

	return &usecase.RegisterOutput{User: newUser}, nil
}

// Login orchestrates the user login process.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.Debug("Starting user login", "email", input.Email)

	// 1. Find the account by email. An unknown email and a wrong password
	// carry distinct messages but share the same status code.
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	// 2. Check the password.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.logger.Warn("Login failed", "email", input.Email)

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	// 3. Issue the session token only after the password check passed.
	token, err := srv.tokenService.Issue(user.ID)
	if err != nil {
		srv.logger.Error("Failed to issue session token", "error", err, "userID", user.ID)

		return nil, errors.Wrap(err, "failed to issue session token")
	}
	srv.logger.Debug("User logged in successfully", "userID", user.ID)

	return &usecase.LoginOutput{
		Token: token,
		User:  user,
	}, nil
}
