package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doantruongnsg/sobanhang/internal/auth"
	"github.com/doantruongnsg/sobanhang/internal/models"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login checks the credentials against the document's account list and
// hands out a session token.
func (a *App) Login(c *gin.Context) {
	var input LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	var account *models.UserAccount
	for i := range a.data.Accounts {
		if a.data.Accounts[i].Username == input.Username && a.data.Accounts[i].Active {
			account = &a.data.Accounts[i]
			break
		}
	}
	if account == nil || !auth.CheckPassword(account.Password, input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := auth.GenerateToken(*account)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	// The document remembers who is signed in, same as the original UI did
	a.data.CurrentUser = models.CurrentUser{Name: account.Name, Role: account.Role}
	if !a.persist(c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"role":     account.Role,
		"username": account.Username,
		"name":     account.Name,
	})
}
