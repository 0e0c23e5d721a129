package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/doantruongnsg/sobanhang/internal/engine"
	"github.com/doantruongnsg/sobanhang/internal/logger"
	"github.com/doantruongnsg/sobanhang/internal/models"
)

// cartView is the response shape for every cart mutation: the live lines,
// the session knobs, and the freshly derived totals.
func (a *App) cartView() gin.H {
	return gin.H{
		"items":       a.cart.Items,
		"customer":    a.customer,
		"adjustments": a.adj,
		"totals":      a.cart.Totals(a.adj, a.data.Settings.VATEnabled),
	}
}

// GetCart returns the current POS session.
func (a *App) GetCart(c *gin.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	c.JSON(http.StatusOK, a.cartView())
}

type AddToCartRequest struct {
	SKU string `json:"sku" binding:"required"`
}

// AddToCart puts one unit of a product into the cart.
func (a *App) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	product := a.data.FindProduct(req.SKU)
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found: " + req.SKU})
		return
	}
	if !product.Active {
		c.JSON(http.StatusBadRequest, gin.H{"error": product.Name + " is no longer sold"})
		return
	}

	cart, err := a.cart.AddItem(*product, a.data.Settings.AllowNegativeStock)
	if err != nil {
		respondError(c, err)
		return
	}
	a.cart = cart
	c.JSON(http.StatusOK, a.cartView())
}

type UpdateQtyRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// UpdateCartQty shifts a line quantity; the line disappears at zero.
func (a *App) UpdateCartQty(c *gin.Context) {
	var req UpdateQtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	cart, err := a.cart.UpdateQty(c.Param("sku"), req.Delta, a.data.FindProduct(c.Param("sku")), a.data.Settings.AllowNegativeStock)
	a.cart = cart
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a.cartView())
}

// RemoveFromCart drops a line unconditionally.
func (a *App) RemoveFromCart(c *gin.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cart = a.cart.Remove(c.Param("sku"))
	c.JSON(http.StatusOK, a.cartView())
}

// ClearCart resets the whole POS session.
func (a *App) ClearCart(c *gin.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.resetSession()
	c.JSON(http.StatusOK, a.cartView())
}

type AdjustmentsRequest struct {
	Discount     *float64 `json:"discount"`
	DiscountType *string  `json:"discountType"`
	ShipFee      *float64 `json:"shipFee"`
	VATRate      *float64 `json:"vatRate"`
	CashReceived *float64 `json:"cashReceived"`
}

// SetAdjustments updates the order-level knobs; only the fields present in
// the body change.
func (a *App) SetAdjustments(c *gin.Context) {
	var req AdjustmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if req.Discount != nil {
		a.adj.Discount = *req.Discount
	}
	if req.DiscountType != nil {
		a.adj.DiscountType = engine.DiscountType(*req.DiscountType)
	}
	if req.ShipFee != nil {
		a.adj.ShipFee = *req.ShipFee
	}
	if req.VATRate != nil {
		a.adj.VATRate = *req.VATRate
	}
	if req.CashReceived != nil {
		a.adj.CashReceived = *req.CashReceived
	}
	c.JSON(http.StatusOK, a.cartView())
}

type AttachCustomerRequest struct {
	Phone string `json:"phone" binding:"required"`
	Name  string `json:"name"`
}

// AttachCustomer looks the customer up by phone; an unmatched phone with a
// name creates the customer on the spot, the first-checkout flow.
func (a *App) AttachCustomer(c *gin.Context) {
	var req AttachCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone is required"})
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	customer := a.data.FindCustomerByPhone(req.Phone)
	if customer == nil {
		if req.Name == "" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found; provide a name to create one"})
			return
		}
		newCustomer := models.Customer{
			ID:    "KH" + time.Now().Format("060102150405"),
			Phone: req.Phone,
			Name:  req.Name,
			Group: "Retail",
		}
		a.data.Customers = append(a.data.Customers, newCustomer)
		if !a.persist(c) {
			return
		}
		customer = &a.data.Customers[len(a.data.Customers)-1]
	}

	a.customer = engine.CustomerRef{ID: customer.ID, Name: customer.Name}
	c.JSON(http.StatusOK, gin.H{"customer": customer, "cart": a.cartView()})
}

// DetachCustomer removes the customer from the session.
func (a *App) DetachCustomer(c *gin.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.customer = engine.CustomerRef{}
	c.JSON(http.StatusOK, a.cartView())
}

type CheckoutRequest struct {
	PaymentMethod models.PaymentMethod `json:"paymentMethod" binding:"required"`
	CashReceived  *float64             `json:"cashReceived"`
}

// Checkout settles the cart: the engine produces the next document in one
// step, the document is swapped and persisted, and the session resets so
// the next sale starts clean.
func (a *App) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	adj := a.adj
	if req.CashReceived != nil {
		adj.CashReceived = *req.CashReceived
	}

	next, order, err := engine.Settle(a.data, a.cart, a.customer, req.PaymentMethod, adj, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	a.data = next
	a.resetSession()
	if !a.persist(c) {
		return
	}

	a.metrics.RecordSettlement(string(order.PaymentMethod), order.Total)
	logger.GetLogger().Info("Order settled",
		zap.String("order_id", order.ID),
		zap.Float64("total", order.Total),
		zap.String("payment_method", string(order.PaymentMethod)),
	)

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Order %s created", order.ID),
		"order":   order,
	})
}
