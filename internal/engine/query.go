package engine

import (
	"strings"
	"time"

	"github.com/doantruongnsg/sobanhang/internal/models"
)

// OrderFilter narrows order history. Zero values mean "no constraint".
// From/To are inclusive YYYY-MM-DD bounds compared against the date prefix
// of the order timestamp - the persisted string format makes plain string
// comparison correct here.
type OrderFilter struct {
	Query  string               `json:"query"` // substring of order ID or customer name
	Status models.PaymentStatus `json:"status"`
	From   string               `json:"from"`
	To     string               `json:"to"`
}

// FilterOrders applies the filter, preserving the most-recent-first order of
// the history.
func FilterOrders(orders []models.Order, f OrderFilter) []models.Order {
	q := strings.ToLower(f.Query)
	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if q != "" &&
			!strings.Contains(strings.ToLower(o.ID), q) &&
			!strings.Contains(strings.ToLower(o.CustomerName), q) {
			continue
		}
		if f.Status != "" && o.PaymentStatus != f.Status {
			continue
		}
		day := datePrefix(o.Date)
		if f.From != "" && day < f.From {
			continue
		}
		if f.To != "" && day > f.To {
			continue
		}
		out = append(out, o)
	}
	return out
}

// OrderStats is a simple fold over a filtered order set.
type OrderStats struct {
	Count       int     `json:"count"`
	TotalAmount float64 `json:"totalAmount"`
	TotalProfit float64 `json:"totalProfit"`
	UnpaidCount int     `json:"unpaidCount"` // anything not fully PAID
}

// Aggregate folds the order set into its summary numbers.
func Aggregate(orders []models.Order) OrderStats {
	var s OrderStats
	for _, o := range orders {
		s.Count++
		s.TotalAmount += o.Total
		s.TotalProfit += o.Profit
		if o.PaymentStatus != models.StatusPaid {
			s.UnpaidCount++
		}
	}
	return s
}

// UnpaidOrder is one row of the dashboard debt summary.
type UnpaidOrder struct {
	ID           string  `json:"id"`
	CustomerName string  `json:"customerName"`
	Outstanding  float64 `json:"outstanding"`
}

// DashboardReport feeds the overview screen.
type DashboardReport struct {
	TodayRevenue  float64        `json:"todayRevenue"`
	TodayProfit   float64        `json:"todayProfit"`
	TodayOrders   int            `json:"todayOrders"`
	WeekRevenue   float64        `json:"weekRevenue"`
	LowStockCount int            `json:"lowStockCount"`
	RevenueDays   []string       `json:"revenueDays"`  // last 7 days, oldest first
	RevenueByDay  []float64      `json:"revenueByDay"` // aligned with RevenueDays
	UnpaidCount   int            `json:"unpaidCount"`
	UnpaidTotal   float64        `json:"unpaidTotal"`
	UnpaidOrders  []UnpaidOrder  `json:"unpaidOrders"`
	RecentOrders  []models.Order `json:"recentOrders"`
}

// Dashboard computes the daily and weekly rollups. Day matching is a string
// prefix test against the persisted YYYY-MM-DD format; the weekly cutoff
// parses the full timestamp and drops rows it cannot parse.
func Dashboard(data models.AppData, now time.Time) DashboardReport {
	var r DashboardReport

	today := now.Format(dateLayout)
	for _, o := range data.Orders {
		if strings.HasPrefix(o.Date, today) {
			r.TodayRevenue += o.Revenue
			r.TodayProfit += o.Profit
			r.TodayOrders++
		}
	}

	weekAgo := now.AddDate(0, 0, -7)
	for _, o := range data.Orders {
		if ts, err := time.Parse(dateTimeLayout, o.Date); err == nil && ts.After(weekAgo) {
			r.WeekRevenue += o.Revenue
		}
	}

	for _, p := range data.Products {
		if p.Stock <= p.MinStock {
			r.LowStockCount++
		}
	}

	r.RevenueDays = make([]string, 7)
	r.RevenueByDay = make([]float64, 7)
	for i := 0; i < 7; i++ {
		day := now.AddDate(0, 0, i-6).Format(dateLayout)
		r.RevenueDays[i] = day
		for _, o := range data.Orders {
			if strings.HasPrefix(o.Date, day) {
				r.RevenueByDay[i] += o.Revenue
			}
		}
	}

	for _, o := range data.Orders {
		if o.PaymentStatus == models.StatusUnpaid || o.PaymentStatus == models.StatusPartial {
			outstanding := o.Total - o.PaidAmount
			r.UnpaidCount++
			r.UnpaidTotal += outstanding
			r.UnpaidOrders = append(r.UnpaidOrders, UnpaidOrder{
				ID:           o.ID,
				CustomerName: o.CustomerName,
				Outstanding:  outstanding,
			})
		}
	}

	if len(data.Orders) > 5 {
		r.RecentOrders = data.Orders[:5]
	} else {
		r.RecentOrders = data.Orders
	}
	return r
}

// FinancialReport is the all-time tax and profit summary.
type FinancialReport struct {
	TotalRevenue float64 `json:"totalRevenue"`
	TotalCOGS    float64 `json:"totalCogs"`
	TotalProfit  float64 `json:"totalProfit"`
	VATOut       float64 `json:"vatOut"` // collected on sales
	VATIn        float64 `json:"vatIn"`  // paid on expenses
	VATDue       float64 `json:"vatDue"` // max(0, out - in)
}

// Finances folds orders and expenses into the tax report.
func Finances(data models.AppData) FinancialReport {
	var r FinancialReport
	for _, o := range data.Orders {
		r.TotalRevenue += o.Revenue
		r.TotalCOGS += o.COGS
		r.TotalProfit += o.Profit
		r.VATOut += o.VAT
	}
	for _, e := range data.Expenses {
		r.VATIn += e.VATIn
	}
	if due := r.VATOut - r.VATIn; due > 0 {
		r.VATDue = due
	}
	return r
}

func datePrefix(dateTime string) string {
	if len(dateTime) >= len(dateLayout) {
		return dateTime[:len(dateLayout)]
	}
	return dateTime
}
