package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ceccimesquita/papillon/internal/domain/entities"
	"github.com/ceccimesquita/papillon/internal/usecase/interfaces"
)

var (
	ErrMenuNotFound = errors.New("menu not found")
	ErrInvalidMenu  = errors.New("invalid menu")
)

type MenuItemInput struct {
	Name     string
	Category string
}

type MenuInput struct {
	Name  string
	Items []MenuItemInput
}

type IMenuUseCase interface {
	Create(ctx context.Context, in MenuInput) (entities.Menu, error)
	Get(ctx context.Context, id uint) (entities.Menu, error)
	List(ctx context.Context) ([]entities.Menu, error)
	Delete(ctx context.Context, id uint) error
}

type MenuUseCase struct {
	repo interfaces.IMenuRepository
}

var _ IMenuUseCase = (*MenuUseCase)(nil)

func NewMenuUseCase(repo interfaces.IMenuRepository) *MenuUseCase {
	return &MenuUseCase{repo: repo}
}

func (u *MenuUseCase) Create(ctx context.Context, in MenuInput) (entities.Menu, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.Menu{}, ErrInvalidMenu
	}

	items := make([]entities.MenuItem, 0, len(in.Items))
	for _, it := range in.Items {
		if strings.TrimSpace(it.Name) == "" {
			return entities.Menu{}, ErrInvalidMenu
		}
		items = append(items, entities.MenuItem{
			Name:     strings.TrimSpace(it.Name),
			Category: strings.TrimSpace(it.Category),
		})
	}

	return u.repo.Create(ctx, entities.Menu{Name: name, Items: items})
}

func (u *MenuUseCase) Get(ctx context.Context, id uint) (entities.Menu, error) {
	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Menu{}, err
	}
	if m.ID == 0 {
		return entities.Menu{}, fmt.Errorf("%w: id %d", ErrMenuNotFound, id)
	}
	return m, nil
}

func (u *MenuUseCase) List(ctx context.Context) ([]entities.Menu, error) {
	return u.repo.List(ctx)
}

func (u *MenuUseCase) Delete(ctx context.Context, id uint) error {
	if _, err := u.Get(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}
