package interfaces

import "context"

// ITxManager runs fn inside one database transaction. Repository calls made
// with the context passed to fn share that transaction; if fn returns an
// error nothing is committed.
//
// Multi-entity mutations (budget acceptance creating an event, supply
// mutations recalculating event financials) must go through Do so partial
// state never survives a failure.
type ITxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
