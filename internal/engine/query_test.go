package engine

import (
	"testing"
	"time"

	"github.com/doantruongnsg/sobanhang/internal/models"
)

func sampleHistory() []models.Order {
	return []models.Order{
		{ID: "DH240315103000", Date: "2024-03-15 10:30:00", CustomerName: "Nguyen Van A", Total: 300000, Revenue: 300000, Profit: 140000, PaymentStatus: models.StatusPaid},
		{ID: "DH240314090000", Date: "2024-03-14 09:00:00", CustomerName: "Tran Thi B", Total: 150000, Revenue: 150000, Profit: 60000, PaymentStatus: models.StatusUnpaid},
		{ID: "DH240301120000", Date: "2024-03-01 12:00:00", CustomerName: "Le Van C", Total: 550000, Revenue: 550000, Profit: 230000, PaymentStatus: models.StatusPartial, PaidAmount: 275000},
	}
}

func TestFilterOrders_SubstringOnIDAndName(t *testing.T) {
	orders := sampleHistory()

	got := FilterOrders(orders, OrderFilter{Query: "dh240314"})
	if len(got) != 1 || got[0].ID != "DH240314090000" {
		t.Errorf("ID match failed: %+v", got)
	}

	got = FilterOrders(orders, OrderFilter{Query: "tran"})
	if len(got) != 1 || got[0].CustomerName != "Tran Thi B" {
		t.Errorf("case-insensitive name match failed: %+v", got)
	}
}

func TestFilterOrders_StatusBucket(t *testing.T) {
	got := FilterOrders(sampleHistory(), OrderFilter{Status: models.StatusUnpaid})
	if len(got) != 1 || got[0].PaymentStatus != models.StatusUnpaid {
		t.Errorf("status filter failed: %+v", got)
	}
}

func TestFilterOrders_InclusiveDateRange(t *testing.T) {
	orders := sampleHistory()

	got := FilterOrders(orders, OrderFilter{From: "2024-03-14", To: "2024-03-15"})
	if len(got) != 2 {
		t.Fatalf("expected 2 orders in range, got %d", len(got))
	}

	// Bounds are inclusive on both ends
	got = FilterOrders(orders, OrderFilter{From: "2024-03-01", To: "2024-03-01"})
	if len(got) != 1 || got[0].ID != "DH240301120000" {
		t.Errorf("single-day range failed: %+v", got)
	}
}

func TestFilterOrders_PreservesOrdering(t *testing.T) {
	got := FilterOrders(sampleHistory(), OrderFilter{})
	if len(got) != 3 || got[0].ID != "DH240315103000" || got[2].ID != "DH240301120000" {
		t.Errorf("most-recent-first ordering lost: %+v", got)
	}
}

func TestAggregate(t *testing.T) {
	s := Aggregate(sampleHistory())
	if s.Count != 3 {
		t.Errorf("count = %d, want 3", s.Count)
	}
	if s.TotalAmount != 1000000 {
		t.Errorf("totalAmount = %v, want 1000000", s.TotalAmount)
	}
	if s.TotalProfit != 430000 {
		t.Errorf("totalProfit = %v, want 430000", s.TotalProfit)
	}
	if s.UnpaidCount != 2 {
		t.Errorf("unpaidCount = %v, want 2 (UNPAID and PARTIAL)", s.UnpaidCount)
	}
}

func TestDashboard_TodayByDatePrefix(t *testing.T) {
	data := models.AppData{Orders: sampleHistory()}
	now := time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)

	r := Dashboard(data, now)
	if r.TodayRevenue != 300000 || r.TodayProfit != 140000 || r.TodayOrders != 1 {
		t.Errorf("today rollup wrong: %+v", r)
	}
}

func TestDashboard_WeekCutoff(t *testing.T) {
	data := models.AppData{Orders: sampleHistory()}
	now := time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)

	r := Dashboard(data, now)
	// March 1st falls outside the rolling 7-day window
	if r.WeekRevenue != 450000 {
		t.Errorf("weekRevenue = %v, want 450000", r.WeekRevenue)
	}
}

func TestDashboard_RevenueSeriesAligned(t *testing.T) {
	data := models.AppData{Orders: sampleHistory()}
	now := time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)

	r := Dashboard(data, now)
	if len(r.RevenueDays) != 7 || len(r.RevenueByDay) != 7 {
		t.Fatalf("series must cover 7 days, got %d/%d", len(r.RevenueDays), len(r.RevenueByDay))
	}
	if r.RevenueDays[6] != "2024-03-15" || r.RevenueByDay[6] != 300000 {
		t.Errorf("last slot must be today: %v = %v", r.RevenueDays[6], r.RevenueByDay[6])
	}
	if r.RevenueDays[5] != "2024-03-14" || r.RevenueByDay[5] != 150000 {
		t.Errorf("yesterday slot wrong: %v = %v", r.RevenueDays[5], r.RevenueByDay[5])
	}
}

func TestDashboard_UnpaidSummary(t *testing.T) {
	data := models.AppData{Orders: sampleHistory()}
	r := Dashboard(data, time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC))

	if r.UnpaidCount != 2 {
		t.Errorf("unpaidCount = %d, want 2", r.UnpaidCount)
	}
	// 150000 outstanding + (550000 - 275000)
	if r.UnpaidTotal != 425000 {
		t.Errorf("unpaidTotal = %v, want 425000", r.UnpaidTotal)
	}
}

func TestDashboard_LowStockCount(t *testing.T) {
	data := models.AppData{Products: []models.Product{
		{SKU: "A", Stock: 5, MinStock: 10},
		{SKU: "B", Stock: 10, MinStock: 10}, // at threshold counts
		{SKU: "C", Stock: 50, MinStock: 10},
	}}
	r := Dashboard(data, time.Now())
	if r.LowStockCount != 2 {
		t.Errorf("lowStockCount = %d, want 2", r.LowStockCount)
	}
}

func TestFinances_NetsVAT(t *testing.T) {
	data := models.AppData{
		Orders: []models.Order{
			{Revenue: 300000, COGS: 160000, Profit: 140000, VAT: 30000},
			{Revenue: 550000, COGS: 320000, Profit: 230000, VAT: 55000},
		},
		Expenses: []models.Expense{
			{Amount: 5000000, VATIn: 20000},
			{Amount: 2000000, VATIn: 15000},
		},
	}

	r := Finances(data)
	if r.TotalRevenue != 850000 || r.TotalCOGS != 480000 || r.TotalProfit != 370000 {
		t.Errorf("fold wrong: %+v", r)
	}
	if r.VATOut != 85000 || r.VATIn != 35000 || r.VATDue != 50000 {
		t.Errorf("vat netting wrong: %+v", r)
	}
}

func TestFinances_VATDueNeverNegative(t *testing.T) {
	data := models.AppData{
		Orders:   []models.Order{{VAT: 10000}},
		Expenses: []models.Expense{{VATIn: 50000}},
	}
	if r := Finances(data); r.VATDue != 0 {
		t.Errorf("vatDue = %v, want clamped 0", r.VATDue)
	}
}
