package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/avoronin/go-item-vault/internal/logger"
	"github.com/avoronin/go-item-vault/models"
)

// itemRepository is the SQLite-backed implementation of [ItemRepository].
// Queries are built with squirrel; the item name is the primary key.
type itemRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewItemRepository constructs an [ItemRepository] backed by the provided
// database connection and logger.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		db:     db,
		logger: logger,
	}
}

// CreateItem inserts a new catalog item.
//
// Error handling:
//   - SQLite unique/primary-key violation on the name → [ErrItemAlreadyExists].
//   - Any other driver-level error → wrapped with [ErrExecutingStatement].
func (r *itemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Insert(item.TableName()).
		Columns("name", "price").
		Values(item.Name, item.Price).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.CreateItem").Msg("error building insert query")
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return models.Item{}, ErrItemAlreadyExists
		}

		log.Err(err).Str("func", "*itemRepository.CreateItem").Str("name", item.Name).Msg("error executing insert")
		return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return item, nil
}

// FindItemByName retrieves a single item by its name.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoItemWasFound].
//   - Any other scan/driver error → wrapped with [ErrScanningRow].
func (r *itemRepository) FindItemByName(ctx context.Context, name string) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("name", "price").
		From(models.Item{}.TableName()).
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.FindItemByName").Msg("error building select query")
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Item
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&found.Name, &found.Price); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrNoItemWasFound
		}

		log.Err(err).Str("func", "*itemRepository.FindItemByName").Str("name", name).Msg("error scanning item row")
		return models.Item{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// UpsertItem creates the item when absent and replaces its price when
// present. The write is a single statement, so concurrent upserts cannot
// observe a half-applied state.
func (r *itemRepository) UpsertItem(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Insert(item.TableName()).
		Columns("name", "price").
		Values(item.Name, item.Price).
		Suffix("ON CONFLICT(name) DO UPDATE SET price = excluded.price").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.UpsertItem").Msg("error building upsert query")
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*itemRepository.UpsertItem").Str("name", item.Name).Msg("error executing upsert")
		return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return item, nil
}

// DeleteItem removes the item with the given name. Deleting an absent item is
// a no-op, not an error.
func (r *itemRepository) DeleteItem(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Delete(models.Item{}.TableName()).
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.DeleteItem").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*itemRepository.DeleteItem").Str("name", name).Msg("error executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ListItems returns every stored item ordered by name.
func (r *itemRepository) ListItems(ctx context.Context) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("name", "price").
		From(models.Item{}.TableName()).
		OrderBy("name").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.ListItems").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.ListItems").Msg("error executing select")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0)
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.Name, &item.Price); err != nil {
			log.Err(err).Str("func", "*itemRepository.ListItems").Msg("error scanning item rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*itemRepository.ListItems").Msg("error iterating item rows")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return items, nil
}
