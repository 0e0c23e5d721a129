package engine

import (
	"fmt"
	"time"

	"github.com/doantruongnsg/sobanhang/internal/models"
)

// CustomerRef is the customer attachment captured when the cashier picked
// the customer, kept as a snapshot so the order survives even if the record
// disappears before checkout.
type CustomerRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Settle turns a cart into a completed order and applies the whole four-way
// update (stock decrement, ledger append, customer aggregates, order
// history) in one pass: it takes the previous document and returns the next
// one, touching nothing in between. The caller swaps the document and
// clears its cart only when no error is returned.
//
// Preconditions are checked before anything else; a violation returns the
// document unchanged. After the preconditions pass the operation cannot
// fail: a cart line whose product vanished mid-session, or a customer
// record that was deleted, is simply skipped so the rest of the sale still
// lands.
func Settle(data models.AppData, cart Cart, customer CustomerRef, method models.PaymentMethod, adj Adjustments, now time.Time) (models.AppData, models.Order, error) {
	// 1. Preconditions - zero mutation on failure
	if len(cart.Items) == 0 {
		return data, models.Order{}, validationErr(CodeEmptyCart, "cart is empty, pick a product first")
	}
	if customer.ID == "" {
		return data, models.Order{}, validationErr(CodeNoCustomer, "attach a customer before checkout")
	}

	totals := cart.Totals(adj, data.Settings.VATEnabled)

	// 2. Payment status: store-credit sales start life unpaid
	paymentStatus := models.StatusPaid
	paidAmount := totals.Total
	if method == models.PaymentDebt {
		paymentStatus = models.StatusUnpaid
		paidAmount = 0
	}

	var cashChange float64
	if adj.CashReceived > totals.Total {
		cashChange = adj.CashReceived - totals.Total
	}

	// 3. Build the order from the cart's snapshotted figures
	order := models.Order{
		ID:            NewOrderID(now, data.Orders),
		Date:          now.Format(dateTimeLayout),
		CustomerID:    customer.ID,
		CustomerName:  customer.Name,
		Subtotal:      totals.Subtotal,
		DiscountOrder: totals.DiscountAmount,
		ShipFee:       adj.ShipFee,
		VAT:           totals.VAT,
		Total:         totals.Total,
		Revenue:       totals.Total,
		COGS:          totals.COGS,
		Profit:        totals.Profit,
		Margin:        totals.Margin,
		PaymentMethod: method,
		PaymentStatus: paymentStatus,
		PaidAmount:    paidAmount,
		Status:        models.OrderCompleted,
		Items:         append([]models.OrderItem(nil), cart.Items...),
		CashReceived:  adj.CashReceived,
		CashChange:    cashChange,
	}

	// 4. Decrement stock for every line that still has a product. The
	// negative-stock policy was enforced at cart time; here the decrement is
	// unconditional so the receipt the user already saw stays truthful.
	products := make([]models.Product, len(data.Products))
	for i, p := range data.Products {
		if line := cart.Find(p.SKU); line != nil {
			p.Stock -= line.Qty
		}
		products[i] = p
	}

	// 5. Customer aggregates; debt moves only for store-credit sales
	customers := make([]models.Customer, len(data.Customers))
	for i, c := range data.Customers {
		if c.ID == customer.ID {
			c.TotalOrders++
			c.TotalSpent += totals.Total
			c.LastOrderDate = now.Format(dateLayout)
			if method == models.PaymentDebt {
				c.Debt += totals.Total
			}
		}
		customers[i] = c
	}

	// 6. One OUT ledger entry per line, all referencing the new order
	entries := make([]models.InventoryEntry, 0, len(cart.Items)+len(data.Ledger))
	for _, item := range cart.Items {
		entries = append(entries, models.InventoryEntry{
			ID:       newLedgerID(),
			SKU:      item.SKU,
			Type:     models.MovementOut,
			Qty:      item.Qty,
			UnitCost: item.CostAtSale,
			RefID:    order.ID,
			Date:     order.Date,
			Note:     fmt.Sprintf("Sale to %s", customer.Name),
		})
	}
	entries = append(entries, data.Ledger...)

	next := data
	next.Products = products
	next.Customers = customers
	next.Orders = append([]models.Order{order}, data.Orders...)
	next.Ledger = entries
	return next, order, nil
}
