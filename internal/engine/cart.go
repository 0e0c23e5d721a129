package engine

import (
	"fmt"

	"github.com/doantruongnsg/sobanhang/internal/models"
)

// DiscountType selects how the order-level discount is interpreted
type DiscountType string

const (
	DiscountAmount  DiscountType = "amount"
	DiscountPercent DiscountType = "percent"
)

// Cart is the in-progress sale. All operations are value-semantics: they
// return a new Cart and never mutate the receiver, so the caller can treat
// every mutation as a state transition.
type Cart struct {
	Items []models.OrderItem `json:"items"`
}

// Adjustments are the order-level knobs the cashier controls alongside the
// line items.
type Adjustments struct {
	Discount     float64      `json:"discount"`
	DiscountType DiscountType `json:"discountType"`
	ShipFee      float64      `json:"shipFee"`
	VATRate      float64      `json:"vatRate"`
	CashReceived float64      `json:"cashReceived"`
}

// Totals is the full monetary derivation of a cart. Computing it has no
// side effects, so calling it twice on an unchanged cart yields identical
// numbers.
type Totals struct {
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discountAmount"`
	VAT            float64 `json:"vat"`
	Total          float64 `json:"total"`
	COGS           float64 `json:"cogs"`
	Profit         float64 `json:"profit"`
	Margin         float64 `json:"margin"`
}

// lineDerived recomputes the derived fields for a quantity. Derived fields
// are never independently settable.
func lineDerived(item models.OrderItem, qty int) models.OrderItem {
	item.Qty = qty
	item.LineTotal = float64(qty) * (item.Price - item.DiscountLine)
	item.LineProfit = float64(qty) * (item.Price - item.DiscountLine - item.CostAtSale)
	return item
}

// AddItem puts one unit of the product into the cart. Price and cost are
// snapshotted from the product now; stock is only checked, never touched,
// until settlement.
func (c Cart) AddItem(p models.Product, allowNegativeStock bool) (Cart, error) {
	if p.Stock <= 0 && !allowNegativeStock {
		return c, validationErr(CodeOutOfStock, fmt.Sprintf("%s is out of stock", p.Name))
	}

	items := make([]models.OrderItem, 0, len(c.Items)+1)
	found := false
	for _, item := range c.Items {
		if item.SKU == p.SKU {
			item = lineDerived(item, item.Qty+1)
			found = true
		}
		items = append(items, item)
	}
	if !found {
		items = append(items, models.OrderItem{
			SKU:        p.SKU,
			Name:       p.Name,
			Qty:        1,
			Price:      p.SalePrice,
			CostAtSale: p.CostAvg,
			LineTotal:  p.SalePrice,
			LineProfit: p.SalePrice - p.CostAvg,
		})
	}
	return Cart{Items: items}, nil
}

// UpdateQty shifts a line's quantity by delta. A resulting quantity of zero
// removes the line. Increasing past the product's current stock is rejected
// under the strict stock policy; the check is against the catalog stock as
// it stands, since there is only one cart per session.
func (c Cart) UpdateQty(sku string, delta int, product *models.Product, allowNegativeStock bool) (Cart, error) {
	items := make([]models.OrderItem, 0, len(c.Items))
	var rejected error
	for _, item := range c.Items {
		if item.SKU != sku {
			items = append(items, item)
			continue
		}

		if delta > 0 && product != nil && product.Stock <= item.Qty && !allowNegativeStock {
			rejected = validationErr(CodeInsufficientStock, fmt.Sprintf("cannot add more %s than is in stock", item.Name))
			items = append(items, item)
			continue
		}

		newQty := item.Qty + delta
		if newQty <= 0 {
			continue // line removed
		}
		items = append(items, lineDerived(item, newQty))
	}
	return Cart{Items: items}, rejected
}

// Remove drops a line unconditionally.
func (c Cart) Remove(sku string) Cart {
	items := make([]models.OrderItem, 0, len(c.Items))
	for _, item := range c.Items {
		if item.SKU != sku {
			items = append(items, item)
		}
	}
	return Cart{Items: items}
}

// Find returns the line for a SKU, or nil.
func (c Cart) Find(sku string) *models.OrderItem {
	for i := range c.Items {
		if c.Items[i].SKU == sku {
			return &c.Items[i]
		}
	}
	return nil
}

// Totals derives the cart-level money figures. VAT is charged on the
// subtotal, not on the discounted amount - that is the store's policy, not
// an accident.
func (c Cart) Totals(adj Adjustments, vatEnabled bool) Totals {
	var t Totals
	for _, item := range c.Items {
		t.Subtotal += item.LineTotal
		t.COGS += item.CostAtSale * float64(item.Qty)
	}

	if vatEnabled {
		t.VAT = t.Subtotal * adj.VATRate / 100
	}
	if adj.DiscountType == DiscountPercent {
		t.DiscountAmount = t.Subtotal * adj.Discount / 100
	} else {
		t.DiscountAmount = adj.Discount
	}

	t.Total = t.Subtotal - t.DiscountAmount + adj.ShipFee + t.VAT
	t.Profit = t.Total - t.COGS
	if t.Total > 0 {
		t.Margin = t.Profit / t.Total * 100
	}
	return t
}
