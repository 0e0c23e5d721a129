package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetBackup downloads the whole document as JSON, the portable backup
// format (and the exact shape the storage layer persists).
func (a *App) GetBackup(c *gin.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	c.Header("Content-Disposition", `attachment; filename="sobanhang-backup.json"`)
	c.JSON(http.StatusOK, a.data)
}

// ResetData wipes the stored document and restarts from the seeded
// defaults. Admin only; there is no undo.
func (a *App) ResetData(c *gin.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.store.Reset(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset data"})
		return
	}

	data, err := a.store.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload data"})
		return
	}
	a.data = data
	a.resetSession()

	c.JSON(http.StatusOK, gin.H{"message": "Data reset to factory defaults"})
}
