package engine

import (
	"testing"

	"github.com/doantruongnsg/sobanhang/internal/models"
)

func historyWith(status models.PaymentStatus, paid float64) models.AppData {
	return models.AppData{
		Orders: []models.Order{
			{ID: "DH240315103000", Total: 300000, PaymentStatus: status, PaidAmount: paid},
			{ID: "DH240314090000", Total: 100000, PaymentStatus: models.StatusPaid, PaidAmount: 100000},
		},
	}
}

func TestCyclePaymentStatus_FullCycle(t *testing.T) {
	data := historyWith(models.StatusPaid, 300000)

	steps := []struct {
		status models.PaymentStatus
		paid   float64
	}{
		{models.StatusUnpaid, 0},
		{models.StatusPartial, 150000},
		{models.StatusPaid, 300000},
		{models.StatusUnpaid, 0}, // and around again
	}

	for i, want := range steps {
		var order models.Order
		var err error
		data, order, err = CyclePaymentStatus(data, "DH240315103000")
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if order.PaymentStatus != want.status {
			t.Errorf("step %d: status = %s, want %s", i, order.PaymentStatus, want.status)
		}
		if order.PaidAmount != want.paid {
			t.Errorf("step %d: paidAmount = %v, want %v", i, order.PaidAmount, want.paid)
		}
	}
}

func TestCyclePaymentStatus_LeavesOtherOrdersAlone(t *testing.T) {
	data := historyWith(models.StatusPaid, 300000)
	next, _, err := CyclePaymentStatus(data, "DH240315103000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	other := next.FindOrder("DH240314090000")
	if other.PaymentStatus != models.StatusPaid || other.PaidAmount != 100000 {
		t.Errorf("untouched order changed: %+v", other)
	}
}

func TestCyclePaymentStatus_MissingStatusDefaultsToPaid(t *testing.T) {
	data := historyWith("", 0)
	_, order, err := CyclePaymentStatus(data, "DH240315103000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Blank status is treated as PAID, so one click lands on UNPAID
	if order.PaymentStatus != models.StatusUnpaid {
		t.Errorf("status = %s, want UNPAID", order.PaymentStatus)
	}
}

func TestCyclePaymentStatus_UnknownOrder(t *testing.T) {
	data := historyWith(models.StatusPaid, 300000)
	_, _, err := CyclePaymentStatus(data, "DH000000000000")
	if err == nil {
		t.Fatal("expected unknown-order error")
	}
	verr, ok := err.(*ValidationError)
	if !ok || verr.Code != CodeUnknownOrder {
		t.Errorf("expected %s, got %v", CodeUnknownOrder, err)
	}
}

func TestMarkPaid_FromAnyState(t *testing.T) {
	for _, start := range []models.PaymentStatus{models.StatusPaid, models.StatusUnpaid, models.StatusPartial} {
		data := historyWith(start, 0)
		_, order, err := MarkPaid(data, "DH240315103000")
		if err != nil {
			t.Fatalf("from %s: %v", start, err)
		}
		if order.PaymentStatus != models.StatusPaid {
			t.Errorf("from %s: status = %s, want PAID", start, order.PaymentStatus)
		}
		if order.PaidAmount != 300000 {
			t.Errorf("from %s: paidAmount = %v, want full total", start, order.PaidAmount)
		}
	}
}
