package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/doantruongnsg/sobanhang/internal/models"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
	idStampLayout  = "060102150405"
)

// NewOrderID builds a human-decodable order ID from the checkout timestamp.
// Checkout is manual and human-paced, so same-second collisions are rare;
// when one does happen a numeric suffix keeps the ID unique instead of
// silently reusing it.
func NewOrderID(now time.Time, existing []models.Order) string {
	base := "DH" + now.Format(idStampLayout)

	taken := func(id string) bool {
		for i := range existing {
			if existing[i].ID == id {
				return true
			}
		}
		return false
	}

	if !taken(base) {
		return base
	}
	for n := 2; ; n++ {
		id := fmt.Sprintf("%s-%d", base, n)
		if !taken(id) {
			return id
		}
	}
}

// NewReceiptID stamps a stock-receipt reference the same way orders are
// stamped, with a PN prefix.
func NewReceiptID(now time.Time) string {
	return "PN" + now.Format(idStampLayout)
}

// newLedgerID generates an opaque ledger entry ID. Ledger rows are created
// in batches within one instant, so these use random UUID fragments rather
// than timestamps.
func newLedgerID() string {
	return "LG" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:9])
}
