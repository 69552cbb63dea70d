package store

import (
	"context"

	"github.com/avoronin/go-item-vault/models"
)

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// ItemRepository is the data-access contract for catalog items.
type ItemRepository interface {
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)
	FindItemByName(ctx context.Context, name string) (models.Item, error)
	UpsertItem(ctx context.Context, item models.Item) (models.Item, error)
	DeleteItem(ctx context.Context, name string) error
	ListItems(ctx context.Context) ([]models.Item, error)
}
