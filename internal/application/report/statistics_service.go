// Package report projects sales statistics from the order ledger.
// Figures are recomputed by replay on every request; nothing is cached
// between calls.
package report

import (
	"iter"
	"sort"
	"time"

	"github.com/mvfrios/queijaria/internal/domain/sales"
	"github.com/shopspring/decimal"
)

// HistoryProvider yields ledger entries for replay
type HistoryProvider interface {
	History() iter.Seq[*sales.Order]
}

// StatisticsService summarizes completed sales. Credit repayments and
// drafts are not sales and never count toward revenue.
type StatisticsService struct {
	history HistoryProvider
}

// NewStatisticsService creates a new statistics service
func NewStatisticsService(history HistoryProvider) *StatisticsService {
	return &StatisticsService{history: history}
}

// Summary holds revenue and order-count figures per wall-clock window
type Summary struct {
	RevenueToday decimal.Decimal `json:"revenue_today"`
	RevenueMonth decimal.Decimal `json:"revenue_month"`
	RevenueYear  decimal.Decimal `json:"revenue_year"`
	RevenueTotal decimal.Decimal `json:"revenue_total"`
	OrdersToday  int             `json:"orders_today"`
	OrdersMonth  int             `json:"orders_month"`
	OrdersYear   int             `json:"orders_year"`
	OrdersTotal  int             `json:"orders_total"`
	AvgTicket    decimal.Decimal `json:"avg_ticket"`
	AvgToday     decimal.Decimal `json:"avg_ticket_today"`
}

// RankedCustomer is one row of the customer spending ranking
type RankedCustomer struct {
	Name   string          `json:"name"`
	Spent  decimal.Decimal `json:"spent"`
	Orders int             `json:"orders"`
}

func avg(total decimal.Decimal, count int) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(count))).Round(2)
}

// Summarize computes the sales figures as of now. Today, this month
// and this year are wall-clock windows in now's location.
func (s *StatisticsService) Summarize(now time.Time) Summary {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	yearStart := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())

	var sum Summary
	sum.RevenueToday = decimal.Zero
	sum.RevenueMonth = decimal.Zero
	sum.RevenueYear = decimal.Zero
	sum.RevenueTotal = decimal.Zero

	for order := range s.history.History() {
		if order.Status != sales.OrderStatusCompleted {
			continue
		}
		sum.RevenueTotal = sum.RevenueTotal.Add(order.Total)
		sum.OrdersTotal++
		if !order.CreatedAt.Before(yearStart) {
			sum.RevenueYear = sum.RevenueYear.Add(order.Total)
			sum.OrdersYear++
		}
		if !order.CreatedAt.Before(monthStart) {
			sum.RevenueMonth = sum.RevenueMonth.Add(order.Total)
			sum.OrdersMonth++
		}
		if !order.CreatedAt.Before(dayStart) {
			sum.RevenueToday = sum.RevenueToday.Add(order.Total)
			sum.OrdersToday++
		}
	}

	sum.AvgTicket = avg(sum.RevenueTotal, sum.OrdersTotal)
	sum.AvgToday = avg(sum.RevenueToday, sum.OrdersToday)
	return sum
}

// CustomerRanking ranks named customers by total completed-sale
// spending, highest first, ties broken by name. Anonymous counter
// sales are excluded.
func (s *StatisticsService) CustomerRanking() []RankedCustomer {
	type entry struct {
		spent  decimal.Decimal
		orders int
	}
	totals := make(map[string]entry)

	for order := range s.history.History() {
		if order.Status != sales.OrderStatusCompleted {
			continue
		}
		if order.CustomerName == sales.CounterCustomerName {
			continue
		}
		e := totals[order.CustomerName]
		e.spent = e.spent.Add(order.Total)
		e.orders++
		totals[order.CustomerName] = e
	}

	ranking := make([]RankedCustomer, 0, len(totals))
	for name, e := range totals {
		ranking = append(ranking, RankedCustomer{Name: name, Spent: e.spent, Orders: e.orders})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if !ranking[i].Spent.Equal(ranking[j].Spent) {
			return ranking[i].Spent.GreaterThan(ranking[j].Spent)
		}
		return ranking[i].Name < ranking[j].Name
	})
	return ranking
}
