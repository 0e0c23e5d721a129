package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/doantruongnsg/sobanhang/internal/models"
)

// GetExpenses lists the expense records.
func (a *App) GetExpenses(c *gin.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	c.JSON(http.StatusOK, a.data.Expenses)
}

type NewExpenseRequest struct {
	Date     string  `json:"date"`
	Category string  `json:"category" binding:"required"`
	Amount   float64 `json:"amount" binding:"required"`
	VATIn    float64 `json:"vatIn"`
	Note     string  `json:"note"`
}

// AddExpense records an outgoing payment; its vatIn is netted against
// collected VAT in the tax report.
func (a *App) AddExpense(c *gin.Context) {
	var req NewExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category and amount are required"})
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	expense := models.Expense{
		ID:       "CP" + time.Now().Format("060102150405"),
		Date:     date,
		Category: req.Category,
		Amount:   req.Amount,
		VATIn:    req.VATIn,
		Note:     req.Note,
	}
	a.data.Expenses = append(a.data.Expenses, expense)
	if !a.persist(c) {
		return
	}
	c.JSON(http.StatusCreated, expense)
}
