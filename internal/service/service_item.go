package service

import (
	"context"
	"fmt"
	"math"

	"github.com/avoronin/go-item-vault/internal/logger"
	"github.com/avoronin/go-item-vault/internal/store"
	"github.com/avoronin/go-item-vault/models"
)

// itemService is the concrete implementation of ItemService. It validates
// item fields and delegates persistence to an ItemRepository.
type itemService struct {
	itemRepository store.ItemRepository

	logger *logger.Logger
}

// NewItemService constructs an ItemService wired to the given ItemRepository.
func NewItemService(itemRepository store.ItemRepository, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		logger:         logger,
	}
}

// CreateItem validates and persists a new catalog item.
//
// Returns:
//   - ErrInvalidItemName if the name is empty.
//   - ErrInvalidItemPrice if the price is negative, NaN, or infinite.
//   - store.ErrItemAlreadyExists (wrapped) if the name is taken.
func (s *itemService) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	if err := validateItem(item); err != nil {
		log.Error().Str("name", item.Name).Float64("price", item.Price).Msg("invalid item data provided")
		return models.Item{}, err
	}

	createdItem, err := s.itemRepository.CreateItem(ctx, item)
	if err != nil {
		log.Err(err).Str("name", item.Name).Msg("item creation ended with error")
		return models.Item{}, fmt.Errorf("item creation ended with error: %w", err)
	}

	return createdItem, nil
}

// GetItem returns the item with the given name or a wrapped
// store.ErrNoItemWasFound.
func (s *itemService) GetItem(ctx context.Context, name string) (models.Item, error) {
	log := logger.FromContext(ctx)

	if name == "" {
		return models.Item{}, ErrInvalidItemName
	}

	foundItem, err := s.itemRepository.FindItemByName(ctx, name)
	if err != nil {
		log.Err(err).Str("name", name).Msg("item search by name failed")
		return models.Item{}, fmt.Errorf("item search by name failed: %w", err)
	}

	return foundItem, nil
}

// UpsertItem validates the item and writes it with create-or-replace
// semantics. Upserting the same item twice is idempotent; the latest price
// wins.
func (s *itemService) UpsertItem(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	if err := validateItem(item); err != nil {
		log.Error().Str("name", item.Name).Float64("price", item.Price).Msg("invalid item data provided")
		return models.Item{}, err
	}

	savedItem, err := s.itemRepository.UpsertItem(ctx, item)
	if err != nil {
		log.Err(err).Str("name", item.Name).Msg("item upsert ended with error")
		return models.Item{}, fmt.Errorf("item upsert ended with error: %w", err)
	}

	return savedItem, nil
}

// DeleteItem removes the named item. Deleting an absent item succeeds.
func (s *itemService) DeleteItem(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	if name == "" {
		return ErrInvalidItemName
	}

	if err := s.itemRepository.DeleteItem(ctx, name); err != nil {
		log.Err(err).Str("name", name).Msg("item deletion ended with error")
		return fmt.Errorf("item deletion ended with error: %w", err)
	}

	return nil
}

// ListItems returns every stored item.
func (s *itemService) ListItems(ctx context.Context) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	items, err := s.itemRepository.ListItems(ctx)
	if err != nil {
		log.Err(err).Msg("item listing ended with error")
		return nil, fmt.Errorf("item listing ended with error: %w", err)
	}

	return items, nil
}

// validateItem enforces the invariants shared by create and upsert: a
// non-empty name and a finite, non-negative price.
func validateItem(item models.Item) error {
	if item.Name == "" {
		return ErrInvalidItemName
	}

	if item.Price < 0 || math.IsNaN(item.Price) || math.IsInf(item.Price, 0) {
		return ErrInvalidItemPrice
	}

	return nil
}
