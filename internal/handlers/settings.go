package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetSettings returns the configuration block of the document.
func (a *App) GetSettings(c *gin.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	c.JSON(http.StatusOK, a.data.Settings)
}

type SettingsUpdateRequest struct {
	VATRate             *float64 `json:"vatRate"`
	VATEnabled          *bool    `json:"vatEnabled"`
	ShipAsRevenue       *bool    `json:"shipAsRevenue"`
	AllowNegativeStock  *bool    `json:"allowNegativeStock"`
	HideCostFromCashier *bool    `json:"hideCostFromCashier"`
	CostMethod          *string  `json:"costMethod"`
	Theme               *string  `json:"theme"`
	GeminiAPIKey        *string  `json:"geminiApiKey"`
	SelectedModel       *string  `json:"selectedModel"`
}

// UpdateSettings applies a partial settings edit. A VAT-rate change also
// resets the session's VAT override so the next sale picks up the new
// default.
func (a *App) UpdateSettings(c *gin.Context) {
	var req SettingsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	s := &a.data.Settings
	if req.VATRate != nil {
		s.VATRate = *req.VATRate
		a.adj.VATRate = *req.VATRate
	}
	if req.VATEnabled != nil {
		s.VATEnabled = *req.VATEnabled
	}
	if req.ShipAsRevenue != nil {
		s.ShipAsRevenue = *req.ShipAsRevenue
	}
	if req.AllowNegativeStock != nil {
		s.AllowNegativeStock = *req.AllowNegativeStock
	}
	if req.HideCostFromCashier != nil {
		s.HideCostFromCashier = *req.HideCostFromCashier
	}
	if req.CostMethod != nil {
		s.CostMethod = *req.CostMethod
	}
	if req.Theme != nil {
		s.Theme = *req.Theme
	}
	if req.GeminiAPIKey != nil {
		s.GeminiAPIKey = *req.GeminiAPIKey
	}
	if req.SelectedModel != nil {
		s.SelectedModel = *req.SelectedModel
	}

	if !a.persist(c) {
		return
	}
	c.JSON(http.StatusOK, a.data.Settings)
}
