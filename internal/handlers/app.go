package handlers

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/doantruongnsg/sobanhang/internal/engine"
	"github.com/doantruongnsg/sobanhang/internal/logger"
	"github.com/doantruongnsg/sobanhang/internal/metrics"
	"github.com/doantruongnsg/sobanhang/internal/models"
	"github.com/doantruongnsg/sobanhang/internal/store"
)

// App owns the in-memory document and the single active POS session (one
// cart, one attached customer). Handlers mutate the document only through
// engine state transitions and swap the whole thing under the lock; the
// lock exists for HTTP plumbing, not for multi-user semantics - the till is
// single-operator.
type App struct {
	mu       sync.Mutex
	data     models.AppData
	cart     engine.Cart
	adj      engine.Adjustments
	customer engine.CustomerRef
	store    *store.Store
	metrics  *metrics.HTTPMetrics
}

// NewApp loads the persisted document and prepares a fresh POS session.
func NewApp(st *store.Store, m *metrics.HTTPMetrics) (*App, error) {
	data, err := st.Load()
	if err != nil {
		return nil, err
	}
	a := &App{
		data:    data,
		store:   st,
		metrics: m,
	}
	a.resetSession()
	return a, nil
}

// resetSession clears the cart and restores adjustments to the configured
// defaults. Caller must hold the lock (or be in construction).
func (a *App) resetSession() {
	a.cart = engine.Cart{}
	a.customer = engine.CustomerRef{}
	a.adj = engine.Adjustments{
		DiscountType: engine.DiscountAmount,
		VATRate:      a.data.Settings.VATRate,
	}
}

// persist writes the document after a state transition. Storage errors are
// surfaced to the caller; the in-memory state already moved on and is not
// rolled back or retried.
func (a *App) persist(c *gin.Context) bool {
	if err := a.store.Save(a.data); err != nil {
		logger.GetLogger().Error("Failed to persist document", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save data"})
		return false
	}
	return true
}

// respondError maps engine validation failures to structured 4xx payloads
// and everything else to a 500.
func respondError(c *gin.Context, err error) {
	var verr *engine.ValidationError
	if errors.As(err, &verr) {
		status := http.StatusBadRequest
		if verr.Code == engine.CodeUnknownOrder || verr.Code == engine.CodeUnknownProduct {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": verr.Message, "code": verr.Code})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
