package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/avoronin/go-item-vault/internal/logger"
	"github.com/avoronin/go-item-vault/models"
)

func newTestItemRepo(t *testing.T) (*itemRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &itemRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestCreateItem_Success(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	item := models.Item{Name: "widget", Price: 19.99}

	mock.ExpectExec("INSERT INTO items").
		WithArgs(item.Name, item.Price).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateItem(context.Background(), item)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created != item {
		t.Errorf("expected %+v, got %+v", item, created)
	}
}

func TestCreateItem_Conflict(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO items").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(uniqueViolation())

	_, err := repo.CreateItem(context.Background(), models.Item{Name: "widget", Price: 1})
	if !errors.Is(err, ErrItemAlreadyExists) {
		t.Fatalf("expected ErrItemAlreadyExists, got %v", err)
	}
}

func TestFindItemByName_Success(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"name", "price"}).
		AddRow("widget", 19.99)

	mock.ExpectQuery("SELECT name, price FROM items").
		WithArgs("widget").
		WillReturnRows(rows)

	found, err := repo.FindItemByName(context.Background(), "widget")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Price != 19.99 {
		t.Errorf("expected price 19.99, got %f", found.Price)
	}
}

func TestFindItemByName_NotFound(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT name, price FROM items").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindItemByName(context.Background(), "ghost")
	if !errors.Is(err, ErrNoItemWasFound) {
		t.Fatalf("expected ErrNoItemWasFound, got %v", err)
	}
}

func TestUpsertItem_InsertsOrReplaces(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	item := models.Item{Name: "widget", Price: 25.50}

	mock.ExpectExec("INSERT INTO items").
		WithArgs(item.Name, item.Price).
		WillReturnResult(sqlmock.NewResult(0, 1))

	saved, err := repo.UpsertItem(context.Background(), item)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved != item {
		t.Errorf("expected %+v, got %+v", item, saved)
	}
}

func TestDeleteItem_Success(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM items").
		WithArgs("widget").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteItem(context.Background(), "widget"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteItem_AbsentIsNoop(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM items").
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeleteItem(context.Background(), "ghost"); err != nil {
		t.Fatalf("deleting an absent item must not error, got %v", err)
	}
}

func TestListItems_ReturnsAllRows(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"name", "price"}).
		AddRow("chair", 49.99).
		AddRow("table", 120.00)

	mock.ExpectQuery("SELECT name, price FROM items").
		WillReturnRows(rows)

	items, err := repo.ListItems(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Name != "chair" || items[1].Name != "table" {
		t.Errorf("unexpected item order: %+v", items)
	}
}

func TestListItems_Empty(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT name, price FROM items").
		WillReturnRows(sqlmock.NewRows([]string{"name", "price"}))

	items, err := repo.ListItems(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(items) != 0 {
		t.Fatalf("expected 0 items, got %d", len(items))
	}
}
