package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/doantruongnsg/sobanhang/internal/engine"
)

// GetDashboard feeds the overview screen: today's numbers, the 7-day
// revenue series, low-stock warnings, and the outstanding-debt summary.
func (a *App) GetDashboard(c *gin.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	c.JSON(http.StatusOK, engine.Dashboard(a.data, time.Now()))
}

// GetFinances returns the all-time tax and profit report.
func (a *App) GetFinances(c *gin.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	c.JSON(http.StatusOK, engine.Finances(a.data))
}
