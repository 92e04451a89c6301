package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fallapp-api/internal/domain"
	"fallapp-api/internal/dto"
	"fallapp-api/internal/repository"
	"fallapp-api/internal/response"
)

// AuthService defines the interface for registration and login
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
}

// authServiceImpl is the implementation of AuthService
type authServiceImpl struct {
	userRepo    repository.UserRepository
	fallaRepo   repository.FallaRepository
	jwtSecret   string
	jwtLifetime time.Duration
	logger      *zap.Logger
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(
	userRepo repository.UserRepository,
	fallaRepo repository.FallaRepository,
	jwtSecret string,
	jwtLifetime time.Duration,
	logger *zap.Logger,
) AuthService {
	return &authServiceImpl{
		userRepo:    userRepo,
		fallaRepo:   fallaRepo,
		jwtSecret:   jwtSecret,
		jwtLifetime: jwtLifetime,
		logger:      logger,
	}
}

// Register creates a new user account with the default role
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if _, err := s.userRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, response.NewConflictError("A user with this email already exists", "")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check email", err.Error())
	}

	if req.FallaID != nil {
		if _, err := s.fallaRepo.FindByID(ctx, *req.FallaID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, response.NewNotFoundError("Falla not found", "")
			}
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify falla", err.Error())
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to hash password", err.Error())
	}

	user := &domain.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         domain.UserRoleUsuario,
		FallaID:      req.FallaID,
		Active:       true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if isUniqueViolation(err) {
			return nil, response.NewConflictError("A user with this email already exists", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create user", err.Error())
	}

	s.logger.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
	)

	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// Login verifies the credentials and issues a signed token. Invalid
// email and invalid password produce the same error so the response
// does not reveal which one was wrong.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewUnauthorizedError("Invalid credentials", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch user", err.Error())
	}

	if !user.Active {
		return nil, response.NewForbiddenError("Account is deactivated", "")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, response.NewUnauthorizedError("Invalid credentials", "")
	}

	expiresAt := time.Now().Add(s.jwtLifetime)
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"email":   user.Email,
		"role":    string(user.Role),
		"iat":     time.Now().Unix(),
		"exp":     expiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to sign token", err.Error())
	}

	if err := s.userRepo.TouchLastAccess(ctx, user.ID); err != nil {
		s.logger.Warn("Failed to update last access",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
	}

	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.ToUserResponse(user),
	}, nil
}

// GetProfile retrieves the authenticated user's profile
func (s *authServiceImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("User not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch user", err.Error())
	}
	resp := dto.ToUserResponse(user)
	return &resp, nil
}
