package engine

import (
	"strconv"

	"github.com/doantruongnsg/sobanhang/internal/models"
)

// Export row sets for the reporting collaborator. The engine supplies plain
// rows and columns; turning them into BOM-prefixed TSV is the transport
// layer's job.

// OrderExportColumns is the contract the order summary must satisfy.
var OrderExportColumns = []string{
	"Order ID", "Date", "Customer", "Subtotal", "Discount", "Ship Fee",
	"VAT", "Total", "Payment Method", "Payment Status", "Profit",
}

// ItemExportColumns extends the order columns with per-line detail.
var ItemExportColumns = []string{
	"Order ID", "Date", "Customer", "SKU", "Product", "Qty", "Unit Price",
	"Line Discount", "Line Total", "Payment Method", "Payment Status",
}

// OrderExportRows renders one row per order.
func OrderExportRows(orders []models.Order) [][]string {
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			o.ID,
			o.Date,
			o.CustomerName,
			money(o.Subtotal),
			money(o.DiscountOrder),
			money(o.ShipFee),
			money(o.VAT),
			money(o.Total),
			string(o.PaymentMethod),
			string(o.PaymentStatus),
			money(o.Profit),
		})
	}
	return rows
}

// ItemExportRows renders one row per line item.
func ItemExportRows(orders []models.Order) [][]string {
	var rows [][]string
	for _, o := range orders {
		for _, item := range o.Items {
			rows = append(rows, []string{
				o.ID,
				o.Date,
				o.CustomerName,
				item.SKU,
				item.Name,
				strconv.Itoa(item.Qty),
				money(item.Price),
				money(item.DiscountLine),
				money(item.LineTotal),
				string(o.PaymentMethod),
				string(o.PaymentStatus),
			})
		}
	}
	return rows
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
