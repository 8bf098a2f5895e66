package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/ceccimesquita/papillon/internal/domain/entities"
	mock_interfaces "github.com/ceccimesquita/papillon/internal/usecase/interfaces/mocks"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newAuthUseCaseForTest(t *testing.T) (*AuthUseCase, *mock_interfaces.MockIUserRepository) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIUserRepository(ctrl)
	return NewAuthUseCase(repo, []byte("test-secret")), repo
}

func TestAuthUseCase_Register(t *testing.T) {
	t.Run("blank credentials", func(t *testing.T) {
		uc, _ := newAuthUseCaseForTest(t)
		_, err := uc.Register(context.Background(), "  ", "")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("duplicate username", func(t *testing.T) {
		uc, repo := newAuthUseCaseForTest(t)
		repo.EXPECT().GetByUsername(gomock.Any(), "admin").Return(entities.User{ID: 1, Username: "admin"}, nil)

		_, err := uc.Register(context.Background(), "admin", "secret123")
		if !errors.Is(err, ErrUserAlreadyExists) {
			t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
		}
	})

	t.Run("hashes the password and grants admin", func(t *testing.T) {
		uc, repo := newAuthUseCaseForTest(t)
		repo.EXPECT().GetByUsername(gomock.Any(), "admin").Return(entities.User{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.Password == "secret123" {
					t.Fatal("password stored in plain text")
				}
				if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret123")) != nil {
					t.Fatal("stored hash does not match the password")
				}
				if u.Role != entities.RoleAdmin {
					t.Fatalf("expected role %s, got %s", entities.RoleAdmin, u.Role)
				}
				u.ID = 1
				return u, nil
			},
		)

		res, err := uc.Register(context.Background(), " admin ", "secret123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != 1 || res.Username != "admin" {
			t.Fatalf("unexpected user: %+v", res)
		}
	})
}

func TestAuthUseCase_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	stored := entities.User{ID: 1, Username: "admin", Password: string(hash), Role: entities.RoleAdmin}

	t.Run("unknown user", func(t *testing.T) {
		uc, repo := newAuthUseCaseForTest(t)
		repo.EXPECT().GetByUsername(gomock.Any(), "admin").Return(entities.User{}, nil)

		_, err := uc.Login(context.Background(), "admin", "secret123")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		uc, repo := newAuthUseCaseForTest(t)
		repo.EXPECT().GetByUsername(gomock.Any(), "admin").Return(stored, nil)

		_, err := uc.Login(context.Background(), "admin", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("issues a signed token with the user claims", func(t *testing.T) {
		uc, repo := newAuthUseCaseForTest(t)
		repo.EXPECT().GetByUsername(gomock.Any(), "admin").Return(stored, nil)

		signed, err := uc.Login(context.Background(), "admin", "secret123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		parsed, err := jwt.Parse(signed, func(tok *jwt.Token) (any, error) {
			if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte("test-secret"), nil
		})
		if err != nil || !parsed.Valid {
			t.Fatalf("token does not verify: %v", err)
		}

		claims, ok := parsed.Claims.(jwt.MapClaims)
		if !ok {
			t.Fatalf("unexpected claims type %T", parsed.Claims)
		}
		if claims["sub"] != "admin" || claims["role"] != entities.RoleAdmin {
			t.Fatalf("unexpected claims: %+v", claims)
		}
		if claims["jti"] == "" {
			t.Fatal("expected a token id claim")
		}
	})
}
