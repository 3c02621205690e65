package service

import (
	"context"
	"testing"

	"shareit/internal/dto"
	"shareit/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestAddUser_Success(t *testing.T) {
	userRepo := &mockUserRepo{
		createFn: func(ctx context.Context, user *models.User) error {
			user.ID = 1
			return nil
		},
	}

	svc := NewUserService(userRepo)
	user, err := svc.AddUser(context.Background(), dto.CreateUserRequest{Name: "alice", Email: "alice@example.com"})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "alice", user.Name)
}

func TestAddUser_DuplicateEmail(t *testing.T) {
	userRepo := &mockUserRepo{
		createFn: func(ctx context.Context, user *models.User) error {
			return gorm.ErrDuplicatedKey
		},
	}

	svc := NewUserService(userRepo)
	_, err := svc.AddUser(context.Background(), dto.CreateUserRequest{Name: "alice", Email: "taken@example.com"})

	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestUpdateUser_PatchesOnlyProvidedFields(t *testing.T) {
	userRepo := &mockUserRepo{
		findByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
			return &models.User{ID: id, Name: "alice", Email: "alice@example.com"}, nil
		},
	}

	svc := NewUserService(userRepo)
	user, err := svc.UpdateUser(context.Background(), 1, dto.UpdateUserRequest{Email: strPtr("new@example.com")})

	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Name)
	assert.Equal(t, "new@example.com", user.Email)
}

func TestUpdateUser_NotFound(t *testing.T) {
	userRepo := &mockUserRepo{
		findByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewUserService(userRepo)
	_, err := svc.UpdateUser(context.Background(), 99, dto.UpdateUserRequest{Name: strPtr("bob")})

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindUserByID_NotFound(t *testing.T) {
	userRepo := &mockUserRepo{
		findByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewUserService(userRepo)
	_, err := svc.FindUserByID(context.Background(), 99)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteUserByID_NotFound(t *testing.T) {
	userRepo := &mockUserRepo{
		existsByIDFn: func(ctx context.Context, id int64) (bool, error) {
			return false, nil
		},
		deleteFn: func(ctx context.Context, id int64) error {
			t.Fatal("delete must not run for an unknown user")
			return nil
		},
	}

	svc := NewUserService(userRepo)
	err := svc.DeleteUserByID(context.Background(), 99)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindAllUsers(t *testing.T) {
	userRepo := &mockUserRepo{
		findAllFn: func(ctx context.Context) ([]models.User, error) {
			return []models.User{{ID: 1, Name: "alice"}, {ID: 2, Name: "bob"}}, nil
		},
	}

	svc := NewUserService(userRepo)
	users, err := svc.FindAllUsers(context.Background())

	assert.NoError(t, err)
	assert.Len(t, users, 2)
}
