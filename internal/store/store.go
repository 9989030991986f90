package store

import (
	"context"

	"cricket-app/internal/model"
)

// Store is the persistence boundary for players. Every call is a single
// statement against the backing database; implementations keep no cache.
type Store interface {
	ListPlayers(ctx context.Context) ([]model.Player, error)
	GetPlayer(ctx context.Context, id int64) (model.Player, bool, error)
	CreatePlayer(ctx context.Context, player model.Player) (model.Player, error)
	// UpdatePlayer overwrites every non-id column of the row matching
	// player.ID. A missing row is not an error.
	UpdatePlayer(ctx context.Context, player model.Player) error
	// DeletePlayer removes the row with the given id. A missing row is not
	// an error.
	DeletePlayer(ctx context.Context, id int64) error
	Close() error
}
