package service

import (
	"context"

	"github.com/avoronin/go-item-vault/models"
)

// AuthService owns the user registration, credential verification, and JWT
// token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ItemService owns catalog item CRUD with validation and conflict handling.
type ItemService interface {
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)
	GetItem(ctx context.Context, name string) (models.Item, error)
	UpsertItem(ctx context.Context, item models.Item) (models.Item, error)
	DeleteItem(ctx context.Context, name string) error
	ListItems(ctx context.Context) ([]models.Item, error)
}

// AppInfoService exposes application-level metadata such as the running
// version.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
