package engine

import (
	"time"

	"github.com/doantruongnsg/sobanhang/internal/models"
)

// ReceiveStock books an incoming lot against a product: stock goes up, one
// IN ledger entry is appended, and under the AVERAGE cost method the
// product's cost basis is re-weighted across the old stock and the new lot.
// FIFO is declared in settings but the single costAvg field cannot carry
// per-lot costs, so it falls back to the same behavior.
func ReceiveStock(data models.AppData, sku string, qty int, unitCost float64, note string, now time.Time) (models.AppData, models.InventoryEntry, error) {
	if qty <= 0 {
		return data, models.InventoryEntry{}, validationErr(CodeBadQuantity, "received quantity must be positive")
	}
	if data.FindProduct(sku) == nil {
		return data, models.InventoryEntry{}, validationErr(CodeUnknownProduct, "product not found: "+sku)
	}

	products := make([]models.Product, len(data.Products))
	for i, p := range data.Products {
		if p.SKU == sku {
			newStock := p.Stock + qty
			if p.Stock > 0 && newStock > 0 {
				p.CostAvg = (float64(p.Stock)*p.CostAvg + float64(qty)*unitCost) / float64(newStock)
			} else {
				// Nothing (or negative stock) to average against; the lot
				// sets the cost basis outright.
				p.CostAvg = unitCost
			}
			p.Stock = newStock
		}
		products[i] = p
	}

	entry := models.InventoryEntry{
		ID:       newLedgerID(),
		SKU:      sku,
		Type:     models.MovementIn,
		Qty:      qty,
		UnitCost: unitCost,
		RefID:    NewReceiptID(now),
		Date:     now.Format(dateTimeLayout),
		Note:     note,
	}

	next := data
	next.Products = products
	next.Ledger = append([]models.InventoryEntry{entry}, data.Ledger...)
	return next, entry, nil
}
