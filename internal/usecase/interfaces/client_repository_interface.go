package interfaces

import (
	"context"

	"github.com/ceccimesquita/papillon/internal/domain/entities"
)

// IClientRepository abstracts persistence for Client.
//
// Lookups that find nothing return a zero-valued entity and a nil error;
// use cases translate that into their own not-found sentinels.
type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id uint) (entities.Client, error)
	GetByCpfCnpj(ctx context.Context, cpfCnpj string) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
	Update(ctx context.Context, c entities.Client) (entities.Client, error)
	Delete(ctx context.Context, id uint) error
}
