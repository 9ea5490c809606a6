package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"tacocat/internal/auth"
	"tacocat/internal/cache"
	apperrors "tacocat/internal/errors"
	"tacocat/internal/model"
	"tacocat/internal/repository"
	"tacocat/internal/testutil"
)

func testHasher() auth.PasswordHasher {
	return auth.NewBcryptHasher(bcrypt.MinCost)
}

func TestUserService_CreateUser(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful registration",
			email:    " Test@Example.com ",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
					return u.Email == "test@example.com" && u.PasswordHash != "password123"
				})).Return(nil)
			},
		},
		{
			name:     "user already exists",
			email:    "existing@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(apperrors.ErrDuplicateUser)
			},
			expectedError: apperrors.ErrDuplicateUser,
		},
		{
			name:          "empty email",
			email:         "   ",
			password:      "password123",
			setupMock:     func(*MockUserRepository) {},
			expectedError: apperrors.ErrInvalidInput,
		},
		{
			name:          "empty password",
			email:         "a@example.com",
			password:      "",
			setupMock:     func(*MockUserRepository) {},
			expectedError: apperrors.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewUserService(mockRepo, testHasher(), nil)
			user, err := svc.CreateUser(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, NormalizeEmail(tt.email), user.Email)
				assert.NotEmpty(t, user.PasswordHash)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_CreateUser_StorageFault(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	svc := NewUserService(mockRepo, testHasher(), nil)
	_, err := svc.CreateUser(context.Background(), "a@example.com", "pw")

	assert.Error(t, err)
	assert.False(t, errors.Is(err, apperrors.ErrDuplicateUser))
}

func TestUserService_StoresHashNotPlaintext(t *testing.T) {
	svc := NewUserService(repository.NewUserRepository(testutil.NewDB(t)), testHasher(), nil)
	ctx := context.Background()

	for _, email := range []string{"test_0@example.com", "test_1@example.com"} {
		_, err := svc.CreateUser(ctx, email, "password")
		require.NoError(t, err)

		stored, err := svc.FindByEmail(ctx, email)
		require.NoError(t, err)
		assert.NotEqual(t, "password", stored.PasswordHash)
		assert.True(t, testHasher().Check("password", stored.PasswordHash))
	}
}

func TestUserService_DuplicateKeepsOneUser(t *testing.T) {
	repo := repository.NewUserRepository(testutil.NewDB(t))
	svc := NewUserService(repo, testHasher(), nil)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, "test_1@example.com", "password")
	require.NoError(t, err)
	_, err = svc.CreateUser(ctx, "TEST_1@example.com", "password")
	assert.ErrorIs(t, err, apperrors.ErrDuplicateUser)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestUserService_EnsureUser(t *testing.T) {
	svc := NewUserService(repository.NewUserRepository(testutil.NewDB(t)), testHasher(), nil)
	ctx := context.Background()

	first, err := svc.EnsureUser(ctx, "ziru@test.com", "password")
	require.NoError(t, err)
	second, err := svc.EnsureUser(ctx, "ziru@test.com", "password")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestUserService_GetUserUsesCache(t *testing.T) {
	mr := miniredis.RunT(t)
	c := cache.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = c.Close() })

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, uint(5)).
		Return(&model.User{ID: 5, Email: "five@example.com", PasswordHash: "secret-hash"}, nil).Once()

	svc := NewUserService(mockRepo, testHasher(), c)
	ctx := context.Background()

	first, err := svc.GetUser(ctx, 5)
	require.NoError(t, err)
	second, err := svc.GetUser(ctx, 5)
	require.NoError(t, err)

	assert.Equal(t, first.Email, second.Email)
	assert.Empty(t, second.PasswordHash, "hash must not be cached")
	assert.True(t, mr.Exists("user:5"))
	mockRepo.AssertExpectations(t)
}

func TestUserService_GetUserNotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, uint(9)).Return(nil, apperrors.ErrUserNotFound)

	svc := NewUserService(mockRepo, testHasher(), nil)
	_, err := svc.GetUser(context.Background(), 9)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
