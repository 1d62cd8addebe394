package authenticating

import (
	"errors"
	"testing"

	"github.com/lwisniewski/retail-analytics-api/infrastructure/repository/mocks"
	"github.com/lwisniewski/retail-analytics-api/internal/config"
	"github.com/lwisniewski/retail-analytics-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{SecretKey: "test-secret-key"}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestService_LoginUser(t *testing.T) {
	passwordHash := hashPassword(t, "Sup3rSecret")

	tests := []struct {
		name     string
		email    string
		password string
		setup    func(userRepo *mocks.MockUserRepository)
		validate func(t *testing.T, token string, err error)
	}{
		{
			name:     "valid credentials return a signed token",
			email:    "Ana.Lima@Example.com",
			password: "Sup3rSecret",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().
					GetUserByEmail("ana.lima@example.com").
					Return(&domain.User{
						ID:           42,
						Name:         "Ana",
						Email:        "ana.lima@example.com",
						Active:       true,
						RoleID:       2,
						PasswordHash: passwordHash,
					}, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			},
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "Sup3rSecret",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().
					GetUserByEmail("nobody@example.com").
					Return(nil, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.ErrorIs(t, err, ErrUserNotFound)
				assert.Empty(t, token)
			},
		},
		{
			name:     "disabled account",
			email:    "ana.lima@example.com",
			password: "Sup3rSecret",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().
					GetUserByEmail("ana.lima@example.com").
					Return(&domain.User{
						ID:           42,
						Active:       false,
						PasswordHash: passwordHash,
					}, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.ErrorIs(t, err, ErrUserDisabled)

				var authErr *AuthError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, 42, authErr.UserID)
			},
		},
		{
			name:     "wrong password",
			email:    "ana.lima@example.com",
			password: "not-the-password",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().
					GetUserByEmail("ana.lima@example.com").
					Return(&domain.User{
						ID:           42,
						Active:       true,
						PasswordHash: passwordHash,
					}, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.ErrorIs(t, err, ErrInvalidCredentials)
			},
		},
		{
			name:     "missing credentials are rejected without a lookup",
			email:    "",
			password: "",
			setup:    func(userRepo *mocks.MockUserRepository) {},
			validate: func(t *testing.T, token string, err error) {
				assert.ErrorIs(t, err, ErrMissingRequiredData)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			userRepo := mocks.NewMockUserRepository(ctrl)
			tt.setup(userRepo)

			service := NewService(userRepo, testConfig())

			token, err := service.LoginUser(tt.email, tt.password)
			tt.validate(t, token, err)
		})
	}
}

func TestService_LoginThenValidateToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().
		GetUserByEmail("ana.lima@example.com").
		Return(&domain.User{
			ID:           42,
			Name:         "Ana",
			Email:        "ana.lima@example.com",
			Active:       true,
			RoleID:       2,
			PasswordHash: hashPassword(t, "Sup3rSecret"),
		}, nil)

	service := NewService(userRepo, testConfig())

	token, err := service.LoginUser("ana.lima@example.com", "Sup3rSecret")
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "ana.lima@example.com", claims.UserEmail)
	assert.Equal(t, 2, claims.UserRoleID)
}

func TestService_ValidateToken_RejectsForgedToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().
		GetUserByEmail("ana.lima@example.com").
		Return(&domain.User{
			ID:           42,
			Active:       true,
			PasswordHash: hashPassword(t, "Sup3rSecret"),
		}, nil)

	signer := NewService(userRepo, &config.Config{SecretKey: "another-secret"})
	token, err := signer.LoginUser("ana.lima@example.com", "Sup3rSecret")
	require.NoError(t, err)

	verifier := NewService(nil, testConfig())
	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestService_CreateUser(t *testing.T) {
	tests := []struct {
		name     string
		user     *domain.User
		setup    func(userRepo *mocks.MockUserRepository)
		validate func(t *testing.T, created *domain.User, err error)
	}{
		{
			name: "new user is hashed, deactivated and defaulted to viewer",
			user: &domain.User{
				Name:         "Ana",
				Lastname:     "Lima",
				Email:        "  Ana.Lima@Example.com ",
				PasswordHash: "Sup3rSecret",
			},
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().
					GetUserByEmail("ana.lima@example.com").
					Return(nil, nil)
				userRepo.EXPECT().
					CreateUser(gomock.Any()).
					DoAndReturn(func(user *domain.User) (*domain.User, error) {
						user.ID = 7
						return user, nil
					})
			},
			validate: func(t *testing.T, created *domain.User, err error) {
				require.NoError(t, err)
				assert.Equal(t, 7, created.ID)
				assert.Equal(t, "ana.lima@example.com", created.Email)
				assert.Equal(t, 3, created.RoleID)
				assert.False(t, created.Active)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("Sup3rSecret")))
			},
		},
		{
			name: "duplicate email is rejected",
			user: &domain.User{
				Name:         "Ana",
				Lastname:     "Lima",
				Email:        "ana.lima@example.com",
				PasswordHash: "Sup3rSecret",
			},
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().
					GetUserByEmail("ana.lima@example.com").
					Return(&domain.User{ID: 7}, nil)
			},
			validate: func(t *testing.T, created *domain.User, err error) {
				assert.ErrorIs(t, err, ErrUserAlreadyExists)
				assert.Nil(t, created)
			},
		},
		{
			name: "missing fields are rejected",
			user: &domain.User{Email: "ana.lima@example.com"},
			setup: func(userRepo *mocks.MockUserRepository) {
			},
			validate: func(t *testing.T, created *domain.User, err error) {
				assert.ErrorIs(t, err, ErrMissingRequiredData)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			userRepo := mocks.NewMockUserRepository(ctrl)
			tt.setup(userRepo)

			service := NewService(userRepo, testConfig())

			created, err := service.CreateUser(tt.user)
			tt.validate(t, created, err)
		})
	}
}

func TestService_ChangePassword(t *testing.T) {
	tests := []struct {
		name            string
		currentPassword string
		newPassword     string
		setup           func(t *testing.T, userRepo *mocks.MockUserRepository)
		wantErr         error
	}{
		{
			name:            "valid change rehashes the password",
			currentPassword: "Sup3rSecret",
			newPassword:     "An0therSecret",
			setup: func(t *testing.T, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().
					GetUserByID(42).
					Return(&domain.User{ID: 42, PasswordHash: hashPassword(t, "Sup3rSecret")}, nil)
				userRepo.EXPECT().
					UpdateUser(gomock.Any()).
					DoAndReturn(func(user *domain.User) error {
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("An0therSecret")))
						return nil
					})
			},
		},
		{
			name:            "same password is rejected",
			currentPassword: "Sup3rSecret",
			newPassword:     "Sup3rSecret",
			setup:           func(t *testing.T, userRepo *mocks.MockUserRepository) {},
			wantErr:         ErrSamePassword,
		},
		{
			name:            "weak password is rejected",
			currentPassword: "Sup3rSecret",
			newPassword:     "alllowercase",
			setup:           func(t *testing.T, userRepo *mocks.MockUserRepository) {},
			wantErr:         ErrWeakPassword,
		},
		{
			name:            "wrong current password",
			currentPassword: "not-the-password",
			newPassword:     "An0therSecret",
			setup: func(t *testing.T, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().
					GetUserByID(42).
					Return(&domain.User{ID: 42, PasswordHash: hashPassword(t, "Sup3rSecret")}, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			userRepo := mocks.NewMockUserRepository(ctrl)
			tt.setup(t, userRepo)

			service := NewService(userRepo, testConfig())

			err := service.ChangePassword(42, tt.currentPassword, tt.newPassword)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_GeneratePassword(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T, userRepo *mocks.MockUserRepository)
		validate func(t *testing.T, password string, err error)
	}{
		{
			name: "admin resets another user's password",
			setup: func(t *testing.T, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().
					GetUserByID(1).
					Return(&domain.User{ID: 1, RoleID: 1}, nil)
				userRepo.EXPECT().
					GetUserByID(42).
					Return(&domain.User{ID: 42, RoleID: 3}, nil)
				userRepo.EXPECT().
					UpdateUser(gomock.Any()).
					Return(nil)
			},
			validate: func(t *testing.T, password string, err error) {
				require.NoError(t, err)
				assert.Len(t, password, 12)

				service := &Service{}
				assert.NoError(t, service.ValidatePasswordStrength(password))
			},
		},
		{
			name: "non-admin is refused",
			setup: func(t *testing.T, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().
					GetUserByID(1).
					Return(&domain.User{ID: 1, RoleID: 2}, nil)
			},
			validate: func(t *testing.T, password string, err error) {
				assert.ErrorIs(t, err, ErrNoAdminPrivileges)
				assert.Empty(t, password)
			},
		},
		{
			name: "unknown target user",
			setup: func(t *testing.T, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().
					GetUserByID(1).
					Return(&domain.User{ID: 1, RoleID: 1}, nil)
				userRepo.EXPECT().
					GetUserByID(42).
					Return(nil, nil)
			},
			validate: func(t *testing.T, password string, err error) {
				assert.ErrorIs(t, err, ErrUserNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			userRepo := mocks.NewMockUserRepository(ctrl)
			tt.setup(t, userRepo)

			service := NewService(userRepo, testConfig())

			password, err := service.GeneratePassword(1, 42)
			tt.validate(t, password, err)
		})
	}
}

func TestService_UpdateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	newName := "Beatriz"
	active := true

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().
		GetUserByID(42).
		Return(&domain.User{ID: 42, Name: "Ana", Lastname: "Lima", RoleID: 3}, nil)
	userRepo.EXPECT().
		UpdateUser(gomock.Any()).
		DoAndReturn(func(user *domain.User) error {
			assert.Equal(t, "Beatriz", user.Name)
			assert.Equal(t, "Lima", user.Lastname)
			assert.True(t, user.Active)
			return nil
		})

	service := NewService(userRepo, testConfig())

	err := service.UpdateUser(&domain.UpdateUserRequest{
		ID:     42,
		Name:   &newName,
		Active: &active,
	})
	assert.NoError(t, err)
}

func TestService_UpdateUser_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().
		GetUserByID(99).
		Return(nil, nil)

	service := NewService(userRepo, testConfig())

	err := service.UpdateUser(&domain.UpdateUserRequest{ID: 99})
	assert.Error(t, err)
}

func TestService_GetUserProfile_StripsPasswordHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().
		GetUserByID(42).
		Return(&domain.User{ID: 42, PasswordHash: "some-hash"}, nil)

	service := NewService(userRepo, testConfig())

	user, err := service.GetUserProfile(42)
	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)
}

func TestService_ValidatePasswordStrength(t *testing.T) {
	service := &Service{}

	tests := []struct {
		password string
		wantErr  bool
	}{
		{password: "Sup3rSecret", wantErr: false},
		{password: "short1A", wantErr: true},
		{password: "alllowercase1", wantErr: true},
		{password: "ALLUPPERCASE1", wantErr: true},
		{password: "NoDigitsHere", wantErr: true},
	}

	for _, tt := range tests {
		err := service.ValidatePasswordStrength(tt.password)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrWeakPassword, "password=%q", tt.password)
		} else {
			assert.NoError(t, err, "password=%q", tt.password)
		}
	}
}

func TestIsCredentialsError(t *testing.T) {
	assert.True(t, IsCredentialsError(NewAuthError(ErrInvalidCredentials, "AUTH_001", "")))
	assert.True(t, IsCredentialsError(ErrUserDisabled))
	assert.False(t, IsCredentialsError(errors.New("timeout")))
}
