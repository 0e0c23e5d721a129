package engine

import (
	"github.com/doantruongnsg/sobanhang/internal/models"
)

// paidAmountFor maps a payment status to the bookkeeping amount recorded
// with it. PARTIAL records half the total as a placeholder - the store does
// not track real partial-payment installments.
func paidAmountFor(status models.PaymentStatus, total float64) float64 {
	switch status {
	case models.StatusPaid:
		return total
	case models.StatusPartial:
		return total / 2
	default:
		return 0
	}
}

// CyclePaymentStatus advances an order through PAID -> UNPAID -> PARTIAL ->
// PAID, the quick manual correction used from the dashboard. It is a pure
// bookkeeping change: stock, ledger, and customer aggregates are untouched.
func CyclePaymentStatus(data models.AppData, orderID string) (models.AppData, models.Order, error) {
	return setPaymentStatus(data, orderID, func(current models.PaymentStatus) models.PaymentStatus {
		switch current {
		case models.StatusPaid:
			return models.StatusUnpaid
		case models.StatusUnpaid:
			return models.StatusPartial
		default:
			return models.StatusPaid
		}
	})
}

// MarkPaid settles an order's books regardless of its current status.
func MarkPaid(data models.AppData, orderID string) (models.AppData, models.Order, error) {
	return setPaymentStatus(data, orderID, func(models.PaymentStatus) models.PaymentStatus {
		return models.StatusPaid
	})
}

func setPaymentStatus(data models.AppData, orderID string, next func(models.PaymentStatus) models.PaymentStatus) (models.AppData, models.Order, error) {
	orders := make([]models.Order, len(data.Orders))
	var updated *models.Order
	for i, o := range data.Orders {
		if o.ID == orderID {
			// Orders persisted before payment tracking default to PAID
			current := o.PaymentStatus
			if current == "" {
				current = models.StatusPaid
			}
			o.PaymentStatus = next(current)
			o.PaidAmount = paidAmountFor(o.PaymentStatus, o.Total)
			updated = &o
		}
		orders[i] = o
	}
	if updated == nil {
		return data, models.Order{}, validationErr(CodeUnknownOrder, "order not found: "+orderID)
	}

	out := data
	out.Orders = orders
	return out, *updated, nil
}
