package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/doantruongnsg/sobanhang/internal/models"
)

// GetCustomers lists customers, optionally narrowed by ?phone= - the POS
// natural key lookup.
func (a *App) GetCustomers(c *gin.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if phone := c.Query("phone"); phone != "" {
		customer := a.data.FindCustomerByPhone(phone)
		if customer == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		c.JSON(http.StatusOK, customer)
		return
	}
	c.JSON(http.StatusOK, a.data.Customers)
}

type NewCustomerRequest struct {
	Phone   string `json:"phone" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Group   string `json:"group"`
	Address string `json:"address"`
}

// AddCustomer creates a customer explicitly (the other path is the
// unmatched-phone creation during checkout).
func (a *App) AddCustomer(c *gin.Context) {
	var req NewCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone and name are required"})
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.data.FindCustomerByPhone(req.Phone) != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "A customer with this phone already exists"})
		return
	}

	group := req.Group
	if group == "" {
		group = "Retail"
	}
	customer := models.Customer{
		ID:      "KH" + time.Now().Format("060102150405"),
		Phone:   req.Phone,
		Name:    req.Name,
		Group:   group,
		Address: req.Address,
	}
	a.data.Customers = append(a.data.Customers, customer)
	if !a.persist(c) {
		return
	}
	c.JSON(http.StatusCreated, customer)
}
