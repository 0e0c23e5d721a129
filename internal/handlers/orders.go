package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/doantruongnsg/sobanhang/internal/engine"
	"github.com/doantruongnsg/sobanhang/internal/models"
)

func orderFilterFromQuery(c *gin.Context) engine.OrderFilter {
	return engine.OrderFilter{
		Query:  c.Query("query"),
		Status: models.PaymentStatus(c.Query("status")),
		From:   c.Query("from"),
		To:     c.Query("to"),
	}
}

// GetOrders returns the filtered history plus its aggregate fold.
func (a *App) GetOrders(c *gin.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	filtered := engine.FilterOrders(a.data.Orders, orderFilterFromQuery(c))
	c.JSON(http.StatusOK, gin.H{
		"orders": filtered,
		"stats":  engine.Aggregate(filtered),
	})
}

// TogglePaymentStatus advances an order through the PAID -> UNPAID ->
// PARTIAL -> PAID cycle, the quick manual correction.
func (a *App) TogglePaymentStatus(c *gin.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	next, order, err := engine.CyclePaymentStatus(a.data, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	a.data = next
	if !a.persist(c) {
		return
	}
	c.JSON(http.StatusOK, order)
}

// MarkOrderPaid settles an order's books unconditionally.
func (a *App) MarkOrderPaid(c *gin.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	next, order, err := engine.MarkPaid(a.data, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	a.data = next
	if !a.persist(c) {
		return
	}
	c.JSON(http.StatusOK, order)
}

// ExportOrders streams the filtered history as UTF-8 BOM-prefixed TSV, the
// shape the external reporting tools expect. ?granularity=items switches to
// one row per line item.
func (a *App) ExportOrders(c *gin.Context) {
	a.mu.Lock()
	filtered := engine.FilterOrders(a.data.Orders, orderFilterFromQuery(c))
	a.mu.Unlock()

	var columns []string
	var rows [][]string
	if c.Query("granularity") == "items" {
		columns = engine.ItemExportColumns
		rows = engine.ItemExportRows(filtered)
	} else {
		columns = engine.OrderExportColumns
		rows = engine.OrderExportRows(filtered)
	}

	var sb strings.Builder
	sb.WriteString("\ufeff") // BOM so spreadsheet apps detect UTF-8
	sb.WriteString(strings.Join(columns, "\t"))
	sb.WriteString("\r\n")
	for _, row := range rows {
		sb.WriteString(strings.Join(row, "\t"))
		sb.WriteString("\r\n")
	}

	c.Header("Content-Disposition", `attachment; filename="orders.tsv"`)
	c.Data(http.StatusOK, "text/tab-separated-values; charset=utf-8", []byte(sb.String()))
}
