package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ceccimesquita/papillon/internal/domain/entities"
	"github.com/ceccimesquita/papillon/internal/usecase/interfaces"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const tokenTTL = time.Hour

type IAuthUseCase interface {
	Register(ctx context.Context, username, password string) (entities.User, error)
	Login(ctx context.Context, username, password string) (string, error)
}

type AuthUseCase struct {
	repo   interfaces.IUserRepository
	secret []byte
	now    func() time.Time
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(repo interfaces.IUserRepository, secret []byte) *AuthUseCase {
	return &AuthUseCase{repo: repo, secret: secret, now: time.Now}
}

// Register creates an account with a bcrypt-hashed password.
func (u *AuthUseCase) Register(ctx context.Context, username, password string) (entities.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return entities.User{}, ErrInvalidCredentials
	}

	existing, err := u.repo.GetByUsername(ctx, username)
	if err != nil {
		return entities.User{}, err
	}
	if existing.ID != 0 {
		return entities.User{}, ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return entities.User{}, err
	}

	return u.repo.Create(ctx, entities.User{
		Username: username,
		Password: string(hash),
		Role:     entities.RoleAdmin,
	})
}

// Login verifies the credentials and issues an HS256 bearer token valid for
// one hour.
func (u *AuthUseCase) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	user, err := u.repo.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if user.ID == 0 {
		return "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	now := u.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  user.Username,
		"role": user.Role,
		"jti":  uuid.NewString(),
		"iat":  now.Unix(),
		"exp":  now.Add(tokenTTL).Unix(),
	})
	return token.SignedString(u.secret)
}
