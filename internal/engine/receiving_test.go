package engine

import (
	"testing"

	"github.com/doantruongnsg/sobanhang/internal/models"
)

func TestReceiveStock_WeightedAverageCost(t *testing.T) {
	data := testData() // SP001: stock 50 at 80000

	next, entry, err := ReceiveStock(data, "SP001", 50, 100000, "restock", testNow)
	if err != nil {
		t.Fatalf("receive failed: %v", err)
	}

	p := next.FindProduct("SP001")
	if p.Stock != 100 {
		t.Errorf("stock = %d, want 100", p.Stock)
	}
	// (50*80000 + 50*100000) / 100
	if p.CostAvg != 90000 {
		t.Errorf("costAvg = %v, want 90000", p.CostAvg)
	}

	if entry.Type != models.MovementIn || entry.Qty != 50 || entry.UnitCost != 100000 {
		t.Errorf("bad IN entry: %+v", entry)
	}
	if len(next.Ledger) != 1 || next.Ledger[0].ID != entry.ID {
		t.Error("IN entry must be prepended to the ledger")
	}
}

func TestReceiveStock_EmptyStockTakesLotCost(t *testing.T) {
	data := testData()
	for i := range data.Products {
		if data.Products[i].SKU == "SP001" {
			data.Products[i].Stock = 0
		}
	}

	next, _, err := ReceiveStock(data, "SP001", 10, 95000, "", testNow)
	if err != nil {
		t.Fatalf("receive failed: %v", err)
	}
	p := next.FindProduct("SP001")
	if p.CostAvg != 95000 {
		t.Errorf("costAvg = %v, want the lot cost 95000", p.CostAvg)
	}
	if p.Stock != 10 {
		t.Errorf("stock = %d, want 10", p.Stock)
	}
}

func TestReceiveStock_NegativeStockTakesLotCost(t *testing.T) {
	data := testData()
	for i := range data.Products {
		if data.Products[i].SKU == "SP001" {
			data.Products[i].Stock = -3
		}
	}

	next, _, err := ReceiveStock(data, "SP001", 10, 95000, "", testNow)
	if err != nil {
		t.Fatalf("receive failed: %v", err)
	}
	// Averaging against negative stock would produce nonsense
	if got := next.FindProduct("SP001").CostAvg; got != 95000 {
		t.Errorf("costAvg = %v, want the lot cost 95000", got)
	}
}

func TestReceiveStock_RejectsBadInput(t *testing.T) {
	data := testData()

	if _, _, err := ReceiveStock(data, "SP001", 0, 100000, "", testNow); err == nil {
		t.Error("zero quantity must be rejected")
	}
	if _, _, err := ReceiveStock(data, "SP001", -5, 100000, "", testNow); err == nil {
		t.Error("negative quantity must be rejected")
	}
	if _, _, err := ReceiveStock(data, "NOPE", 5, 100000, "", testNow); err == nil {
		t.Error("unknown SKU must be rejected")
	}
}

func TestReceiveStock_LeavesInputUntouched(t *testing.T) {
	data := testData()
	_, _, err := ReceiveStock(data, "SP001", 50, 100000, "", testNow)
	if err != nil {
		t.Fatalf("receive failed: %v", err)
	}
	if data.FindProduct("SP001").Stock != 50 {
		t.Error("receive must not mutate the input document")
	}
}
