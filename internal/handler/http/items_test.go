package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoronin/go-item-vault/internal/logger"
	"github.com/avoronin/go-item-vault/internal/service"
	"github.com/avoronin/go-item-vault/internal/store"
	"github.com/avoronin/go-item-vault/models"
)

// ─────────────────────────────────────────────
// Mock ItemService
// ─────────────────────────────────────────────

// mockItemService implements service.ItemService for unit tests.
type mockItemService struct {
	createItemFn func(ctx context.Context, item models.Item) (models.Item, error)
	getItemFn    func(ctx context.Context, name string) (models.Item, error)
	upsertItemFn func(ctx context.Context, item models.Item) (models.Item, error)
	deleteItemFn func(ctx context.Context, name string) error
	listItemsFn  func(ctx context.Context) ([]models.Item, error)
}

func (m *mockItemService) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	return m.createItemFn(ctx, item)
}

func (m *mockItemService) GetItem(ctx context.Context, name string) (models.Item, error) {
	return m.getItemFn(ctx, name)
}

func (m *mockItemService) UpsertItem(ctx context.Context, item models.Item) (models.Item, error) {
	return m.upsertItemFn(ctx, item)
}

func (m *mockItemService) DeleteItem(ctx context.Context, name string) error {
	return m.deleteItemFn(ctx, name)
}

func (m *mockItemService) ListItems(ctx context.Context) ([]models.Item, error) {
	return m.listItemsFn(ctx)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithItems builds a Handler with the given ItemService mock.
func newHandlerWithItems(t *testing.T, items service.ItemService) *Handler {
	t.Helper()
	return NewHandler(newTestServices(nil, items), logger.Nop())
}

// requestWithName builds a request whose chi route context carries the given
// {name} URL parameter, the way the router would populate it.
func requestWithName(method, name, body string) *http.Request {
	req := httptest.NewRequest(method, "/item/"+name, strings.NewReader(body))

	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("name", name)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

// ─────────────────────────────────────────────
// getItem
// ─────────────────────────────────────────────

func TestGetItem_Success(t *testing.T) {
	items := &mockItemService{
		getItemFn: func(_ context.Context, name string) (models.Item, error) {
			return models.Item{Name: name, Price: 99.99}, nil
		},
	}

	h := newHandlerWithItems(t, items)
	rec := httptest.NewRecorder()

	h.getItem(rec, requestWithName(http.MethodGet, "widget", ""))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "widget", resp.Name)
	assert.Equal(t, 99.99, resp.Price)
}

func TestGetItem_NotFound(t *testing.T) {
	items := &mockItemService{
		getItemFn: func(_ context.Context, _ string) (models.Item, error) {
			return models.Item{}, store.ErrNoItemWasFound
		},
	}

	h := newHandlerWithItems(t, items)
	rec := httptest.NewRecorder()

	h.getItem(rec, requestWithName(http.MethodGet, "ghost", ""))

	require.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// createItem
// ─────────────────────────────────────────────

func TestCreateItem_Success(t *testing.T) {
	items := &mockItemService{
		createItemFn: func(_ context.Context, item models.Item) (models.Item, error) {
			return item, nil
		},
	}

	h := newHandlerWithItems(t, items)
	rec := httptest.NewRecorder()

	h.createItem(rec, requestWithName(http.MethodPost, "chair", `{"price": 49.99}`))

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "chair", resp.Name)
	assert.Equal(t, 49.99, resp.Price)
}

func TestCreateItem_Duplicate(t *testing.T) {
	items := &mockItemService{
		createItemFn: func(_ context.Context, _ models.Item) (models.Item, error) {
			return models.Item{}, store.ErrItemAlreadyExists
		},
	}

	h := newHandlerWithItems(t, items)
	rec := httptest.NewRecorder()

	h.createItem(rec, requestWithName(http.MethodPost, "chair", `{"price": 10}`))

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "already exists")
}

func TestCreateItem_InvalidJSON(t *testing.T) {
	h := newHandlerWithItems(t, &mockItemService{})
	rec := httptest.NewRecorder()

	h.createItem(rec, requestWithName(http.MethodPost, "chair", `{"price": "not a number"}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateItem_MissingPriceField(t *testing.T) {
	h := newHandlerWithItems(t, &mockItemService{})
	rec := httptest.NewRecorder()

	h.createItem(rec, requestWithName(http.MethodPost, "chair", `{}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "price field is missing")
}

func TestCreateItem_ExplicitZeroPrice(t *testing.T) {
	items := &mockItemService{
		createItemFn: func(_ context.Context, item models.Item) (models.Item, error) {
			return item, nil
		},
	}

	h := newHandlerWithItems(t, items)
	rec := httptest.NewRecorder()

	h.createItem(rec, requestWithName(http.MethodPost, "freebie", `{"price": 0}`))

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 0.0, resp.Price)
}

func TestCreateItem_InvalidPrice(t *testing.T) {
	items := &mockItemService{
		createItemFn: func(_ context.Context, _ models.Item) (models.Item, error) {
			return models.Item{}, service.ErrInvalidItemPrice
		},
	}

	h := newHandlerWithItems(t, items)
	rec := httptest.NewRecorder()

	h.createItem(rec, requestWithName(http.MethodPost, "chair", `{"price": -5}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// upsertItem
// ─────────────────────────────────────────────

func TestUpsertItem_Success(t *testing.T) {
	items := &mockItemService{
		upsertItemFn: func(_ context.Context, item models.Item) (models.Item, error) {
			return item, nil
		},
	}

	h := newHandlerWithItems(t, items)
	rec := httptest.NewRecorder()

	h.upsertItem(rec, requestWithName(http.MethodPut, "widget", `{"price": 15}`))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 15.0, resp.Price)
}

func TestUpsertItem_MissingPriceField(t *testing.T) {
	h := newHandlerWithItems(t, &mockItemService{})
	rec := httptest.NewRecorder()

	h.upsertItem(rec, requestWithName(http.MethodPut, "widget", `{}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "price field is missing")
}

func TestUpsertItem_ExplicitZeroPrice(t *testing.T) {
	items := &mockItemService{
		upsertItemFn: func(_ context.Context, item models.Item) (models.Item, error) {
			return item, nil
		},
	}

	h := newHandlerWithItems(t, items)
	rec := httptest.NewRecorder()

	h.upsertItem(rec, requestWithName(http.MethodPut, "freebie", `{"price": 0}`))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 0.0, resp.Price)
}

func TestUpsertItem_InvalidJSON(t *testing.T) {
	h := newHandlerWithItems(t, &mockItemService{})
	rec := httptest.NewRecorder()

	h.upsertItem(rec, requestWithName(http.MethodPut, "widget", "{not json"))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// deleteItem
// ─────────────────────────────────────────────

func TestDeleteItem_Success(t *testing.T) {
	deleted := ""
	items := &mockItemService{
		deleteItemFn: func(_ context.Context, name string) error {
			deleted = name
			return nil
		},
	}

	h := newHandlerWithItems(t, items)
	rec := httptest.NewRecorder()

	h.deleteItem(rec, requestWithName(http.MethodDelete, "widget", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "widget", deleted)

	var resp models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "item deleted", resp.Message)
}

// ─────────────────────────────────────────────
// listItems
// ─────────────────────────────────────────────

func TestListItems_Success(t *testing.T) {
	items := &mockItemService{
		listItemsFn: func(_ context.Context) ([]models.Item, error) {
			return []models.Item{
				{Name: "chair", Price: 49.99},
				{Name: "table", Price: 120},
			}, nil
		},
	}

	h := newHandlerWithItems(t, items)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/items", nil)

	h.listItems(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ItemsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "chair", resp.Items[0].Name)
}

func TestListItems_Empty(t *testing.T) {
	items := &mockItemService{
		listItemsFn: func(_ context.Context) ([]models.Item, error) {
			return []models.Item{}, nil
		},
	}

	h := newHandlerWithItems(t, items)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/items", nil)

	h.listItems(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ItemsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Items)
}
