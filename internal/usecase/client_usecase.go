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
	ErrClientNotFound      = errors.New("client not found")
	ErrClientAlreadyExists = errors.New("client already exists")
	ErrInvalidClient       = errors.New("invalid client")
)

// ClientInput carries the fields callers may set on a client.
type ClientInput struct {
	ID      uint
	Name    string
	Email   string
	CpfCnpj string
	Phone   string
}

type IClientUseCase interface {
	Register(ctx context.Context, in ClientInput) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
	Get(ctx context.Context, id uint) (entities.Client, error)
	GetDetails(ctx context.Context, id uint) (entities.Client, []entities.Event, error)
	Update(ctx context.Context, id uint, in ClientInput) (entities.Client, error)
	Delete(ctx context.Context, id uint) error
}

type ClientUseCase struct {
	repo   interfaces.IClientRepository
	events IEventUseCase
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository, events IEventUseCase) *ClientUseCase {
	return &ClientUseCase{repo: repo, events: events}
}

// Register creates a client, refusing duplicate tax ids.
func (u *ClientUseCase) Register(ctx context.Context, in ClientInput) (entities.Client, error) {
	c, err := clientFromInput(in)
	if err != nil {
		return entities.Client{}, err
	}

	existing, err := u.repo.GetByCpfCnpj(ctx, c.CpfCnpj)
	if err != nil {
		return entities.Client{}, err
	}
	if existing.ID != 0 {
		return entities.Client{}, fmt.Errorf("%w: cpf/cnpj %s", ErrClientAlreadyExists, c.CpfCnpj)
	}

	return u.repo.Create(ctx, c)
}

func (u *ClientUseCase) List(ctx context.Context) ([]entities.Client, error) {
	return u.repo.List(ctx)
}

func (u *ClientUseCase) Get(ctx context.Context, id uint) (entities.Client, error) {
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == 0 {
		return entities.Client{}, fmt.Errorf("%w: id %d", ErrClientNotFound, id)
	}
	return c, nil
}

// GetDetails returns the client together with their events.
func (u *ClientUseCase) GetDetails(ctx context.Context, id uint) (entities.Client, []entities.Event, error) {
	c, err := u.Get(ctx, id)
	if err != nil {
		return entities.Client{}, nil, err
	}
	events, err := u.events.ListByClient(ctx, id)
	if err != nil {
		return entities.Client{}, nil, err
	}
	return c, events, nil
}

func (u *ClientUseCase) Update(ctx context.Context, id uint, in ClientInput) (entities.Client, error) {
	existing, err := u.Get(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}

	c, err := clientFromInput(in)
	if err != nil {
		return entities.Client{}, err
	}

	other, err := u.repo.GetByCpfCnpj(ctx, c.CpfCnpj)
	if err != nil {
		return entities.Client{}, err
	}
	if other.ID != 0 && other.ID != existing.ID {
		return entities.Client{}, fmt.Errorf("%w: cpf/cnpj %s", ErrClientAlreadyExists, c.CpfCnpj)
	}
	c.ID = existing.ID

	return u.repo.Update(ctx, c)
}

func (u *ClientUseCase) Delete(ctx context.Context, id uint) error {
	if _, err := u.Get(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

func clientFromInput(in ClientInput) (entities.Client, error) {
	c := entities.Client{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		CpfCnpj: strings.TrimSpace(in.CpfCnpj),
		Phone:   strings.TrimSpace(in.Phone),
	}
	if c.Name == "" || c.CpfCnpj == "" {
		return entities.Client{}, ErrInvalidClient
	}
	return c, nil
}
