package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mvfrios/queijaria/internal/domain/catalog"
	"github.com/mvfrios/queijaria/internal/domain/sales"
	"github.com/mvfrios/queijaria/internal/infrastructure/persistence/blobstore"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) blobstore.Store {
	t.Helper()
	store, err := blobstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func completedOrder(t *testing.T, customer string, total int64) *sales.Order {
	t.Helper()
	p, err := catalog.NewProduct("queijo", "Queijo", decimal.NewFromInt(total), catalog.UnitTypeCount)
	require.NoError(t, err)
	order, err := sales.NewCompletedOrder(
		[]sales.CartLine{sales.NewCartLine(p, 1)},
		decimal.Zero, sales.PaymentMethodCash, customer,
	)
	require.NoError(t, err)
	return order
}

func TestHistoryStoreAppendNewestFirst(t *testing.T) {
	blob := newTestStore(t)
	ctx := context.Background()

	history := NewHistoryStore(blob)
	require.NoError(t, history.Load(ctx))
	assert.Zero(t, history.Len())

	first := completedOrder(t, "Ana", 10)
	second := completedOrder(t, "Bia", 20)
	require.NoError(t, history.Append(ctx, first))
	require.NoError(t, history.Append(ctx, second))

	var ids []uuid.UUID
	for order := range history.History() {
		ids = append(ids, order.ID)
	}
	require.Equal(t, []uuid.UUID{second.ID, first.ID}, ids)

	// the sequence can be ranged again
	count := 0
	for range history.History() {
		count++
	}
	assert.Equal(t, 2, count)
}

func TestHistoryStoreSurvivesReload(t *testing.T) {
	blob := newTestStore(t)
	ctx := context.Background()

	history := NewHistoryStore(blob)
	require.NoError(t, history.Load(ctx))
	order := completedOrder(t, "Ana", 35)
	require.NoError(t, history.Append(ctx, order))

	reloaded := NewHistoryStore(blob)
	require.NoError(t, reloaded.Load(ctx))
	require.Equal(t, 1, reloaded.Len())
	for got := range reloaded.History() {
		assert.Equal(t, order.ID, got.ID)
		assert.True(t, got.Total.Equal(order.Total))
		assert.Equal(t, order.CustomerName, got.CustomerName)
	}
}

func TestHistorySequenceStopsEarly(t *testing.T) {
	blob := newTestStore(t)
	ctx := context.Background()

	history := NewHistoryStore(blob)
	require.NoError(t, history.Load(ctx))
	for i := 0; i < 5; i++ {
		require.NoError(t, history.Append(ctx, completedOrder(t, "Ana", 10)))
	}

	seen := 0
	for range history.History() {
		seen++
		if seen == 2 {
			break
		}
	}
	assert.Equal(t, 2, seen)
}

func TestDraftStoreAddRemove(t *testing.T) {
	blob := newTestStore(t)
	ctx := context.Background()

	drafts := NewDraftStore(blob)
	require.NoError(t, drafts.Load(ctx))

	p, err := catalog.NewProduct("queijo", "Queijo", decimal.NewFromInt(10), catalog.UnitTypeCount)
	require.NoError(t, err)
	draft, err := sales.NewDraft([]sales.CartLine{sales.NewCartLine(p, 2)})
	require.NoError(t, err)

	require.NoError(t, drafts.Add(ctx, draft))
	require.Len(t, drafts.List(), 1)

	removed, found, err := drafts.Remove(ctx, draft.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, draft.ID, removed.ID)
	assert.Empty(t, drafts.List())

	// removing again is a no-op
	_, found, err = drafts.Remove(ctx, draft.ID)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCartStoreRoundTrip(t *testing.T) {
	blob := newTestStore(t)
	ctx := context.Background()

	cart := NewCartStore(blob)

	// nothing persisted yet means an empty cart
	lines, err := cart.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, lines)

	p, err := catalog.NewProduct("queijo", "Queijo", decimal.NewFromFloat(69.90), catalog.UnitTypeWeight)
	require.NoError(t, err)
	saved := []sales.CartLine{sales.NewCartLine(p, 500)}
	require.NoError(t, cart.Save(ctx, saved))

	lines, err = cart.Load(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, saved[0].ID, lines[0].ID)
	assert.Equal(t, "34.95", lines[0].LinePrice.String())
}

func TestCatalogStoreSeedDetection(t *testing.T) {
	blob := newTestStore(t)
	ctx := context.Background()

	store := NewCatalogStore(blob)
	found, err := store.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Save(ctx, catalog.DefaultProducts()))

	reloaded := NewCatalogStore(blob)
	found, err = reloaded.Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Len(t, reloaded.List(), 2)

	product, ok := reloaded.Find("mussarela-fatiado")
	require.True(t, ok)
	assert.Equal(t, "Mussarela Fatiado", product.Name)

	_, ok = reloaded.Find("nope")
	assert.False(t, ok)
}
