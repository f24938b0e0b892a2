package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mvfrios/queijaria/internal/application/report"
)

// ReportHandler exposes the sales statistics projections
type ReportHandler struct {
	BaseHandler
	service *report.StatisticsService
}

// NewReportHandler creates a new report handler
func NewReportHandler(service *report.StatisticsService) *ReportHandler {
	return &ReportHandler{service: service}
}

// SummaryResponse is the sales summary
type SummaryResponse struct {
	RevenueToday float64 `json:"revenue_today"`
	RevenueMonth float64 `json:"revenue_month"`
	RevenueYear  float64 `json:"revenue_year"`
	RevenueTotal float64 `json:"revenue_total"`
	OrdersToday  int     `json:"orders_today"`
	OrdersMonth  int     `json:"orders_month"`
	OrdersYear   int     `json:"orders_year"`
	OrdersTotal  int     `json:"orders_total"`
	AvgTicket    float64 `json:"avg_ticket"`
	AvgToday     float64 `json:"avg_ticket_today"`
}

// Summary returns the sales figures as of now
// GET /api/v1/statistics
func (h *ReportHandler) Summary(c *gin.Context) {
	sum := h.service.Summarize(time.Now())
	h.Success(c, SummaryResponse{
		RevenueToday: sum.RevenueToday.InexactFloat64(),
		RevenueMonth: sum.RevenueMonth.InexactFloat64(),
		RevenueYear:  sum.RevenueYear.InexactFloat64(),
		RevenueTotal: sum.RevenueTotal.InexactFloat64(),
		OrdersToday:  sum.OrdersToday,
		OrdersMonth:  sum.OrdersMonth,
		OrdersYear:   sum.OrdersYear,
		OrdersTotal:  sum.OrdersTotal,
		AvgTicket:    sum.AvgTicket.InexactFloat64(),
		AvgToday:     sum.AvgToday.InexactFloat64(),
	})
}

// RankedCustomerResponse is one row of the spending ranking
type RankedCustomerResponse struct {
	Name   string  `json:"name"`
	Spent  float64 `json:"spent"`
	Orders int     `json:"orders"`
}

// Ranking returns customers by total spending, highest first
// GET /api/v1/statistics/ranking
func (h *ReportHandler) Ranking(c *gin.Context) {
	ranking := h.service.CustomerRanking()
	result := make([]RankedCustomerResponse, 0, len(ranking))
	for _, r := range ranking {
		result = append(result, RankedCustomerResponse{
			Name:   r.Name,
			Spent:  r.Spent.InexactFloat64(),
			Orders: r.Orders,
		})
	}
	h.Success(c, result)
}
