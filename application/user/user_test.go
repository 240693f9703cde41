package user_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	appuser "github.com/muhammadheryan/marketplace/application/user"
	"github.com/muhammadheryan/marketplace/cmd/config"
	"github.com/muhammadheryan/marketplace/constant"
	redismocks "github.com/muhammadheryan/marketplace/mocks/repository/redis"
	usermocks "github.com/muhammadheryan/marketplace/mocks/repository/user"
	"github.com/muhammadheryan/marketplace/model"
	cerr "github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-key-for-jwt-signing"

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      testSecret,
			JWTExpiration:  time.Hour,
			SessionExpTime: time.Hour,
		},
	}
}

func checkErrCode(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestUserApp_Register(t *testing.T) {
	type fields struct {
		userRepo  *usermocks.UserRepository
		redisRepo *redismocks.RedisRepository
	}
	req := &model.RegisterRequest{
		Role:            "seller",
		FirstName:       "Asha",
		LastName:        "Rao",
		Email:           "asha@example.com",
		Mobile:          "9800000001",
		Password:        "password123",
		IsPremiumSeller: true,
	}
	tests := []struct {
		name     string
		mockCall func(f fields)
		want     *model.RegisterResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: register new seller",
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "asha@example.com"}).Return(nil, nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Mobile: "9800000001"}).Return(nil, nil).Once()
				f.userRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.UserEntity) bool {
						return ent.FirstName == "Asha" &&
							ent.Email == "asha@example.com" &&
							ent.Mobile == "9800000001" &&
							ent.Role == "seller" &&
							ent.Premium &&
							bcrypt.CompareHashAndPassword([]byte(ent.PasswordHash), []byte("password123")) == nil
					})).
					Return(&model.UserEntity{
						ID:        1,
						FirstName: "Asha",
						LastName:  "Rao",
						Email:     "asha@example.com",
						Role:      "seller",
					}, nil).
					Once()
			},
			want: &model.RegisterResponse{
				FirstName: "Asha",
				LastName:  "Rao",
				Email:     "asha@example.com",
				Role:      "seller",
			},
		},
		{
			name: "error: email already exists",
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "asha@example.com"}).Return(&model.UserEntity{ID: 5}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
		{
			name: "error: mobile already exists",
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "asha@example.com"}).Return(nil, nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Mobile: "9800000001"}).Return(&model.UserEntity{ID: 5}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
		{
			name: "error: repository Get returns error",
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "asha@example.com"}).Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: repository Create returns error",
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, mock.Anything).Return(nil, nil).Twice()
				f.userRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.UserEntity")).Return(nil, errors.New("create failed")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appuser.NewUserApp(testConfig(), f.userRepo, f.redisRepo)

			got, err := app.Register(context.Background(), req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Register() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				checkErrCode(t, err, tt.errCode)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Register() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUserApp_Login(t *testing.T) {
	type fields struct {
		userRepo  *usermocks.UserRepository
		redisRepo *redismocks.RedisRepository
	}
	buyer := &model.UserEntity{
		ID:           7,
		FirstName:    "Ravi",
		Email:        "ravi@example.com",
		Mobile:       "9800000002",
		Role:         "buyer",
		PasswordHash: hashed(t, "password123"),
	}
	tests := []struct {
		name     string
		req      *model.LoginRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: login with email",
			req:  &model.LoginRequest{Identifier: "ravi@example.com", Password: "password123"},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "ravi@example.com"}).Return(buyer, nil).Once()
				f.redisRepo.On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(7), time.Hour).Return(nil).Once()
			},
		},
		{
			name: "success: login with mobile",
			req:  &model.LoginRequest{Identifier: "9800000002", Password: "password123"},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Mobile: "9800000002"}).Return(buyer, nil).Once()
				f.redisRepo.On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(7), time.Hour).Return(nil).Once()
			},
		},
		{
			name: "error: user not found",
			req:  &model.LoginRequest{Identifier: "nobody@example.com", Password: "password123"},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "nobody@example.com"}).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: wrong password",
			req:  &model.LoginRequest{Identifier: "ravi@example.com", Password: "wrong"},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "ravi@example.com"}).Return(buyer, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidPassword,
		},
		{
			name: "error: session store unavailable",
			req:  &model.LoginRequest{Identifier: "ravi@example.com", Password: "password123"},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "ravi@example.com"}).Return(buyer, nil).Once()
				f.redisRepo.On("SetSession", mock.Anything, mock.Anything, uint64(7), time.Hour).Return(errors.New("redis down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: repository Get returns error",
			req:  &model.LoginRequest{Identifier: "ravi@example.com", Password: "password123"},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, mock.Anything).Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			}
			tt.mockCall(f)
			app := appuser.NewUserApp(testConfig(), f.userRepo, f.redisRepo)

			got, err := app.Login(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Login() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				checkErrCode(t, err, tt.errCode)
				return
			}

			assert.Equal(t, "Login Successful", got.Message)
			assert.Equal(t, "buyer", got.Role)
			assert.Equal(t, uint64(7), got.UserID)

			claims := &jwt.RegisteredClaims{}
			_, err = jwt.ParseWithClaims(got.Token, claims, func(*jwt.Token) (interface{}, error) {
				return []byte(testSecret), nil
			})
			require.NoError(t, err)
			assert.Equal(t, "7", claims.Subject)
			assert.NotEmpty(t, claims.ID)
		})
	}
}

// login runs a successful login and returns the issued token and its session id.
func login(t *testing.T, app appuser.UserApp, userRepo *usermocks.UserRepository, redisRepo *redismocks.RedisRepository) (string, string) {
	t.Helper()
	var jti string
	userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "ravi@example.com"}).Return(&model.UserEntity{
		ID:           7,
		Role:         "buyer",
		PasswordHash: hashed(t, "password123"),
	}, nil).Once()
	redisRepo.On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(7), time.Hour).
		Run(func(args mock.Arguments) { jti = args.String(1) }).
		Return(nil).Once()

	resp, err := app.Login(context.Background(), &model.LoginRequest{Identifier: "ravi@example.com", Password: "password123"})
	require.NoError(t, err)
	return resp.Token, jti
}

func TestUserApp_ValidateToken(t *testing.T) {
	t.Run("success: live session", func(t *testing.T) {
		userRepo, redisRepo := usermocks.NewUserRepository(t), redismocks.NewRedisRepository(t)
		app := appuser.NewUserApp(testConfig(), userRepo, redisRepo)
		token, jti := login(t, app, userRepo, redisRepo)

		redisRepo.On("GetSession", mock.Anything, jti).Return(uint64(7), nil).Once()

		id, err := app.ValidateToken(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, uint64(7), id)
	})

	t.Run("error: session expired", func(t *testing.T) {
		userRepo, redisRepo := usermocks.NewUserRepository(t), redismocks.NewRedisRepository(t)
		app := appuser.NewUserApp(testConfig(), userRepo, redisRepo)
		token, jti := login(t, app, userRepo, redisRepo)

		redisRepo.On("GetSession", mock.Anything, jti).Return(uint64(0), errors.New("redis: nil")).Once()

		_, err := app.ValidateToken(context.Background(), token)
		assert.Error(t, err)
	})

	t.Run("error: session belongs to another user", func(t *testing.T) {
		userRepo, redisRepo := usermocks.NewUserRepository(t), redismocks.NewRedisRepository(t)
		app := appuser.NewUserApp(testConfig(), userRepo, redisRepo)
		token, jti := login(t, app, userRepo, redisRepo)

		redisRepo.On("GetSession", mock.Anything, jti).Return(uint64(8), nil).Once()

		_, err := app.ValidateToken(context.Background(), token)
		assert.Error(t, err)
	})

	t.Run("error: signed with another secret", func(t *testing.T) {
		claims := jwt.RegisteredClaims{Subject: "7", ID: "abc", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
		require.NoError(t, err)

		app := appuser.NewUserApp(testConfig(), usermocks.NewUserRepository(t), redismocks.NewRedisRepository(t))
		_, err = app.ValidateToken(context.Background(), token)
		assert.Error(t, err)
	})

	t.Run("error: token without jti", func(t *testing.T) {
		claims := jwt.RegisteredClaims{Subject: "7", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		app := appuser.NewUserApp(testConfig(), usermocks.NewUserRepository(t), redismocks.NewRedisRepository(t))
		_, err = app.ValidateToken(context.Background(), token)
		assert.Error(t, err)
	})

	t.Run("error: garbage token", func(t *testing.T) {
		app := appuser.NewUserApp(testConfig(), usermocks.NewUserRepository(t), redismocks.NewRedisRepository(t))
		_, err := app.ValidateToken(context.Background(), "not-a-token")
		assert.Error(t, err)
	})
}

func TestUserApp_Logout(t *testing.T) {
	t.Run("success: session removed", func(t *testing.T) {
		userRepo, redisRepo := usermocks.NewUserRepository(t), redismocks.NewRedisRepository(t)
		app := appuser.NewUserApp(testConfig(), userRepo, redisRepo)
		token, jti := login(t, app, userRepo, redisRepo)

		redisRepo.On("DeleteSession", mock.Anything, jti).Return(nil).Once()

		got, err := app.Logout(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, &model.LogoutResponse{Message: constant.MessageLoggedOut, LoggedIn: false}, got)
	})

	t.Run("error: delete fails", func(t *testing.T) {
		userRepo, redisRepo := usermocks.NewUserRepository(t), redismocks.NewRedisRepository(t)
		app := appuser.NewUserApp(testConfig(), userRepo, redisRepo)
		token, jti := login(t, app, userRepo, redisRepo)

		redisRepo.On("DeleteSession", mock.Anything, jti).Return(errors.New("redis down")).Once()

		_, err := app.Logout(context.Background(), token)
		checkErrCode(t, err, constant.ErrInternal)
	})

	t.Run("error: invalid token", func(t *testing.T) {
		app := appuser.NewUserApp(testConfig(), usermocks.NewUserRepository(t), redismocks.NewRedisRepository(t))
		_, err := app.Logout(context.Background(), "not-a-token")
		checkErrCode(t, err, constant.ErrUnauthorize)
	})
}

func TestUserApp_GetIdentity(t *testing.T) {
	tests := []struct {
		name     string
		mockCall func(userRepo *usermocks.UserRepository)
		want     *model.Identity
		errCode  *constant.ErrorType
	}{
		{
			name: "success",
			mockCall: func(userRepo *usermocks.UserRepository) {
				userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 3}).
					Return(&model.UserEntity{ID: 3, FirstName: "Asha", LastName: "Rao", Premium: true}, nil).Once()
			},
			want: &model.Identity{ID: 3, FirstName: "Asha", LastName: "Rao", Premium: true},
		},
		{
			name: "error: not found",
			mockCall: func(userRepo *usermocks.UserRepository) {
				userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 3}).Return(nil, nil).Once()
			},
			errCode: func() *constant.ErrorType { e := constant.ErrNotFound; return &e }(),
		},
		{
			name: "error: repository error",
			mockCall: func(userRepo *usermocks.UserRepository) {
				userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 3}).Return(nil, errors.New("db error")).Once()
			},
			errCode: func() *constant.ErrorType { e := constant.ErrInternal; return &e }(),
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			userRepo := usermocks.NewUserRepository(t)
			tt.mockCall(userRepo)
			app := appuser.NewUserApp(testConfig(), userRepo, redismocks.NewRedisRepository(t))

			got, err := app.GetIdentity(context.Background(), 3)
			if tt.errCode != nil {
				checkErrCode(t, err, *tt.errCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
