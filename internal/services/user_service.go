package services

import (
	"context"

	"go.uber.org/zap"

	"holocron/internal/models/db_models"
	"holocron/internal/models/request_models"
	"holocron/internal/models/response_models"
	"holocron/internal/repositories"
	"holocron/pkg/utils"
)

type UserServiceInterface interface {
	CreateUser(ctx context.Context, request request_models.CreateUserRequest) (*response_models.UserResponse, error)
	GetAllUsers(ctx context.Context) ([]response_models.UserResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
}

type UserService struct {
	userRepo repositories.UserRepositoryInterface
	logger   *zap.Logger
}

func NewUserService(userRepo repositories.UserRepositoryInterface, logger *zap.Logger) UserServiceInterface {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *UserService) CreateUser(ctx context.Context, request request_models.CreateUserRequest) (*response_models.UserResponse, error) {
	existing, err := s.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		s.logger.Error("failed to look up email", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	user := &db_models.User{
		Email:        request.Email,
		PasswordHash: hashedPassword,
		IsActive:     true,
	}
	if err := s.userRepo.Insert(ctx, user); err != nil {
		s.logger.Error("failed to insert user", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	return &response_models.UserResponse{ID: user.ID, Email: user.Email}, nil
}

func (s *UserService) GetAllUsers(ctx context.Context) ([]response_models.UserResponse, error) {
	users, err := s.userRepo.GetAllUsers(ctx)
	if err != nil {
		s.logger.Error("failed to list users", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, response_models.UserResponse{ID: user.ID, Email: user.Email})
	}
	return responses, nil
}

func (s *UserService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		s.logger.Error("failed to look up user", zap.Error(err))
		return "", utils.ErrDatabaseError
	}
	if user == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}
	return token, nil
}
