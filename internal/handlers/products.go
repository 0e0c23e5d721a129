package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/doantruongnsg/sobanhang/internal/engine"
	"github.com/doantruongnsg/sobanhang/internal/models"
)

// GetProducts lists the sellable catalog. ?filter=low / ?filter=out narrow
// to low-stock and out-of-stock items; deactivated products are hidden from
// the POS unless ?all=true asks for the full catalog.
func (a *App) GetProducts(c *gin.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	filter := c.Query("filter")
	includeInactive := c.Query("all") == "true"
	products := make([]models.Product, 0, len(a.data.Products))
	for _, p := range a.data.Products {
		if !p.Active && !includeInactive {
			continue
		}
		switch filter {
		case "low":
			if p.Stock > p.MinStock {
				continue
			}
		case "out":
			if p.Stock > 0 {
				continue
			}
		}
		products = append(products, p)
	}
	c.JSON(http.StatusOK, products)
}

type NewProductRequest struct {
	SKU       string  `json:"sku" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Category  string  `json:"category"`
	Supplier  string  `json:"supplier"`
	SalePrice float64 `json:"salePrice"`
	CostAvg   float64 `json:"costAvg"`
	Stock     int     `json:"stock"`
	MinStock  int     `json:"minStock"`
	Active    *bool   `json:"active"`
}

// AddProduct creates a catalog entry. SKUs are immutable and unique. New
// products are active unless the body says otherwise.
func (a *App) AddProduct(c *gin.Context) {
	var req NewProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.data.FindProduct(req.SKU) != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "SKU already exists: " + req.SKU})
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	newProduct := models.Product{
		SKU:       req.SKU,
		Name:      req.Name,
		Category:  req.Category,
		Supplier:  req.Supplier,
		SalePrice: req.SalePrice,
		CostAvg:   req.CostAvg,
		Stock:     req.Stock,
		MinStock:  req.MinStock,
		Active:    active,
	}

	a.data.Products = append(a.data.Products, newProduct)
	if !a.persist(c) {
		return
	}
	c.JSON(http.StatusCreated, newProduct)
}

type ProductUpdateRequest struct {
	Name      *string  `json:"name"`
	Category  *string  `json:"category"`
	Supplier  *string  `json:"supplier"`
	SalePrice *float64 `json:"salePrice"`
	CostAvg   *float64 `json:"costAvg"`
	Stock     *int     `json:"stock"`
	MinStock  *int     `json:"minStock"`
	Active    *bool    `json:"active"`
}

// UpdateProduct edits a product in place; only fields present in the body
// change. Edits never touch lines already sitting in a cart - those carry
// their own snapshots.
func (a *App) UpdateProduct(c *gin.Context) {
	var req ProductUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	product := a.data.FindProduct(c.Param("sku"))
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Supplier != nil {
		product.Supplier = *req.Supplier
	}
	if req.SalePrice != nil {
		product.SalePrice = *req.SalePrice
	}
	if req.CostAvg != nil {
		product.CostAvg = *req.CostAvg
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.MinStock != nil {
		product.MinStock = *req.MinStock
	}
	if req.Active != nil {
		product.Active = *req.Active
	}

	if !a.persist(c) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully", "product": product})
}

// DeleteProduct removes a product from the catalog. A product referenced by
// order history is deactivated instead of removed, so past orders and
// ledger entries keep resolving.
func (a *App) DeleteProduct(c *gin.Context) {
	sku := c.Param("sku")

	a.mu.Lock()
	defer a.mu.Unlock()

	product := a.data.FindProduct(sku)
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	referenced := false
	for _, o := range a.data.Orders {
		for _, item := range o.Items {
			if item.SKU == sku {
				referenced = true
			}
		}
	}

	if referenced {
		product.Active = false
		if !a.persist(c) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product is linked to past sales and was deactivated instead"})
		return
	}

	products := make([]models.Product, 0, len(a.data.Products)-1)
	for _, p := range a.data.Products {
		if p.SKU != sku {
			products = append(products, p)
		}
	}
	a.data.Products = products
	if !a.persist(c) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

type ReceiveStockRequest struct {
	Qty      int     `json:"qty" binding:"required"`
	UnitCost float64 `json:"unitCost"`
	Note     string  `json:"note"`
}

// ReceiveStock books an incoming lot: stock up, cost basis re-weighted, one
// IN ledger entry.
func (a *App) ReceiveStock(c *gin.Context) {
	var req ReceiveStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	next, entry, err := engine.ReceiveStock(a.data, c.Param("sku"), req.Qty, req.UnitCost, req.Note, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	a.data = next
	if !a.persist(c) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"entry": entry, "product": a.data.FindProduct(c.Param("sku"))})
}
