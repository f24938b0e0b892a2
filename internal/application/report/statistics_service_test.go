package report

import (
	"iter"
	"testing"
	"time"

	"github.com/mvfrios/queijaria/internal/domain/catalog"
	"github.com/mvfrios/queijaria/internal/domain/sales"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHistory struct {
	orders []*sales.Order
}

func (f *fakeHistory) History() iter.Seq[*sales.Order] {
	return func(yield func(*sales.Order) bool) {
		for _, o := range f.orders {
			if !yield(o) {
				return
			}
		}
	}
}

func saleAt(t *testing.T, customer string, total int64, at time.Time) *sales.Order {
	t.Helper()
	p, err := catalog.NewProduct("queijo", "Queijo", decimal.NewFromInt(total), catalog.UnitTypeCount)
	require.NoError(t, err)
	order, err := sales.NewCompletedOrder(
		[]sales.CartLine{sales.NewCartLine(p, 1)},
		decimal.Zero, sales.PaymentMethodCash, customer,
	)
	require.NoError(t, err)
	order.CreatedAt = at
	return order
}

func repaymentAt(t *testing.T, at time.Time) *sales.Order {
	t.Helper()
	payment, err := sales.NewCreditPayment("Ana", decimal.NewFromInt(999), sales.PaymentMethodCash)
	require.NoError(t, err)
	payment.CreatedAt = at
	return payment
}

func TestSummarizeWindows(t *testing.T) {
	now := time.Date(2026, time.August, 30, 15, 0, 0, 0, time.UTC)

	history := &fakeHistory{orders: []*sales.Order{
		saleAt(t, "", 10, now.Add(-2*time.Hour)),                           // today
		saleAt(t, "", 20, now.AddDate(0, 0, -3)),                           // this month
		saleAt(t, "", 30, time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)),    // this year
		saleAt(t, "", 40, time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC)),  // last year
		repaymentAt(t, now.Add(-time.Hour)),                                // never revenue
	}}
	service := NewStatisticsService(history)

	sum := service.Summarize(now)

	assert.Equal(t, "10", sum.RevenueToday.String())
	assert.Equal(t, "30", sum.RevenueMonth.String())
	assert.Equal(t, "60", sum.RevenueYear.String())
	assert.Equal(t, "100", sum.RevenueTotal.String())
	assert.Equal(t, 1, sum.OrdersToday)
	assert.Equal(t, 2, sum.OrdersMonth)
	assert.Equal(t, 3, sum.OrdersYear)
	assert.Equal(t, 4, sum.OrdersTotal)
	assert.Equal(t, "25", sum.AvgTicket.String())
	assert.Equal(t, "10", sum.AvgToday.String())
}

func TestSummarizeEmptyLedger(t *testing.T) {
	service := NewStatisticsService(&fakeHistory{})

	sum := service.Summarize(time.Now())
	assert.Zero(t, sum.OrdersTotal)
	assert.True(t, sum.RevenueTotal.IsZero())
	assert.True(t, sum.AvgTicket.IsZero())
}

func TestSummarizeDayBoundary(t *testing.T) {
	now := time.Date(2026, time.August, 30, 0, 30, 0, 0, time.UTC)

	history := &fakeHistory{orders: []*sales.Order{
		saleAt(t, "", 10, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)),  // midnight counts
		saleAt(t, "", 20, time.Date(2026, 8, 29, 23, 59, 0, 0, time.UTC)), // yesterday
	}}
	service := NewStatisticsService(history)

	sum := service.Summarize(now)
	assert.Equal(t, "10", sum.RevenueToday.String())
	assert.Equal(t, 1, sum.OrdersToday)
}

func TestCustomerRanking(t *testing.T) {
	now := time.Now()

	history := &fakeHistory{orders: []*sales.Order{
		saleAt(t, "Ana", 50, now),
		saleAt(t, "Bia", 80, now),
		saleAt(t, "Ana", 20, now),
		saleAt(t, "Carla", 80, now),
		saleAt(t, "", 500, now), // counter sale, excluded
		repaymentAt(t, now),     // not a sale
	}}
	service := NewStatisticsService(history)

	ranking := service.CustomerRanking()
	require.Len(t, ranking, 3)

	// Bia and Carla tie at 80; names break the tie
	assert.Equal(t, "Bia", ranking[0].Name)
	assert.Equal(t, "Carla", ranking[1].Name)
	assert.Equal(t, "Ana", ranking[2].Name)
	assert.Equal(t, "70", ranking[2].Spent.String())
	assert.Equal(t, 2, ranking[2].Orders)
}

func TestCustomerRankingEmptyLedger(t *testing.T) {
	service := NewStatisticsService(&fakeHistory{})
	assert.Empty(t, service.CustomerRanking())
}
