package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doantruongnsg/sobanhang/internal/ai"
	"github.com/doantruongnsg/sobanhang/internal/config"
)

// AskAI builds the inventory-advice prompt from the current document and
// sends it to Gemini. The environment key wins over the one stored in
// settings. This path can fail freely; nothing in the POS depends on it.
func (a *App) AskAI(c *gin.Context) {
	a.mu.Lock()
	prompt := ai.BuildSuggestionPrompt(a.data.Products, a.data.Orders)
	apiKey := config.AppConfig.AI.GeminiAPIKey
	if apiKey == "" {
		apiKey = a.data.Settings.GeminiAPIKey
	}
	model := a.data.Settings.SelectedModel
	a.mu.Unlock()

	if apiKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No Gemini API key configured"})
		return
	}

	reply, err := ai.Suggest(c.Request.Context(), prompt, apiKey, model)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
