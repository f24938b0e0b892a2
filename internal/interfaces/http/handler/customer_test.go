package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/mvfrios/queijaria/internal/application/credit"
	apppartner "github.com/mvfrios/queijaria/internal/application/partner"
	"github.com/mvfrios/queijaria/internal/domain/catalog"
	"github.com/mvfrios/queijaria/internal/domain/sales"
	"github.com/mvfrios/queijaria/internal/infrastructure/persistence"
	"github.com/mvfrios/queijaria/internal/infrastructure/persistence/blobstore"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupCustomerRouter(t *testing.T) (*gin.Engine, *persistence.HistoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	}

	blob, err := blobstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	customerStore := persistence.NewCustomerStore(blob)
	historyStore := persistence.NewHistoryStore(blob)
	require.NoError(t, historyStore.Load(ctx))

	customers := apppartner.NewCustomerService(customerStore, zap.NewNop())
	require.NoError(t, customers.Load(ctx))
	credits := credit.NewCreditService(historyStore, customerStore)

	h := NewCustomerHandler(customers, credits)
	engine := gin.New()
	engine.POST("/customers", h.Register)
	engine.GET("/customers", h.List)
	engine.GET("/customers/balances", h.Balances)
	return engine, historyStore
}

func creditSaleOrder(t *testing.T, customer string, total int64) *sales.Order {
	t.Helper()
	p, err := catalog.NewProduct("queijo", "Queijo", decimal.NewFromInt(total), catalog.UnitTypeCount)
	require.NoError(t, err)
	order, err := sales.NewCompletedOrder(
		[]sales.CartLine{sales.NewCartLine(p, 1)},
		decimal.Zero, sales.PaymentMethodCredit, customer,
	)
	require.NoError(t, err)
	return order
}

func TestListCustomersOrderedByDebt(t *testing.T) {
	engine, history := setupCustomerRouter(t)
	ctx := context.Background()

	for _, name := range []string{"Ana", "Bia", "Carla"} {
		w, _ := doJSON(t, engine, http.MethodPost, "/customers", gin.H{"name": name})
		require.Equal(t, http.StatusCreated, w.Code)
	}
	require.NoError(t, history.Append(ctx, creditSaleOrder(t, "Carla", 80)))
	require.NoError(t, history.Append(ctx, creditSaleOrder(t, "Bia", 120)))

	w, resp := doJSON(t, engine, http.MethodGet, "/customers", nil)
	require.Equal(t, http.StatusOK, w.Code)

	list := resp.Data.([]any)
	require.Len(t, list, 3)
	names := make([]string, 0, len(list))
	for _, item := range list {
		names = append(names, item.(map[string]any)["name"].(string))
	}
	// biggest debtor first, debt-free customers by name
	assert.Equal(t, []string{"Bia", "Carla", "Ana"}, names)
}

func TestBalancesCarryRegisteredFlag(t *testing.T) {
	engine, history := setupCustomerRouter(t)
	ctx := context.Background()

	w, _ := doJSON(t, engine, http.MethodPost, "/customers", gin.H{"name": "Ana"})
	require.Equal(t, http.StatusCreated, w.Code)
	require.NoError(t, history.Append(ctx, creditSaleOrder(t, "Zeca", 50)))

	w, resp := doJSON(t, engine, http.MethodGet, "/customers/balances", nil)
	require.Equal(t, http.StatusOK, w.Code)

	byName := map[string]map[string]any{}
	for _, item := range resp.Data.([]any) {
		b := item.(map[string]any)
		byName[b["name"].(string)] = b
	}
	require.Len(t, byName, 2)
	assert.True(t, byName["Ana"]["registered"].(bool))
	assert.False(t, byName["Zeca"]["registered"].(bool))
}
