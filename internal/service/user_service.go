package service

import (
	"context"
	"errors"

	"shareit/internal/dto"
	"shareit/internal/models"
	"shareit/internal/repository"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type UserService interface {
	AddUser(ctx context.Context, req dto.CreateUserRequest) (*models.User, error)
	UpdateUser(ctx context.Context, userID int64, req dto.UpdateUserRequest) (*models.User, error)
	FindUserByID(ctx context.Context, userID int64) (*models.User, error)
	DeleteUserByID(ctx context.Context, userID int64) error
	FindAllUsers(ctx context.Context) ([]models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) AddUser(ctx context.Context, req dto.CreateUserRequest) (*models.User, error) {
	user := &models.User{Name: req.Name, Email: req.Email}
	// duplicate email surfaces as gorm.ErrDuplicatedKey (409 upstream)
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID int64, req dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) FindUserByID(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteUserByID(ctx context.Context, userID int64) error {
	exists, err := s.userRepo.ExistsByID(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUserNotFound
	}
	return s.userRepo.Delete(ctx, userID)
}

func (s *userService) FindAllUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.FindAll(ctx)
}
