package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/finwrapped/finwrapped-go/internal/registry"
	"github.com/finwrapped/finwrapped-go/internal/services"
)

// RefreshHandler force-rebuilds cached snapshots, one company or the whole
// registry.
type RefreshHandler struct {
	assembler *services.Assembler
	refresher *services.Refresher
	registry  *registry.Registry
}

func NewRefreshHandler(assembler *services.Assembler, refresher *services.Refresher, reg *registry.Registry) *RefreshHandler {
	return &RefreshHandler{assembler: assembler, refresher: refresher, registry: reg}
}

// Refresh handles POST /api/v1/refresh?ticker=&year=. Without a ticker it
// refreshes every covered company, paced to respect upstream rate limits.
func (h *RefreshHandler) Refresh(c *gin.Context) {
	year := defaultYear
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid year: " + raw})
			return
		}
		year = parsed
	}

	if ticker := c.Query("ticker"); ticker != "" {
		wrapped, err := h.assembler.GetWrapped(c.Request.Context(), ticker, year, true)
		if err != nil {
			if errors.Is(err, services.ErrUnknownCompany) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Company not found: " + ticker})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"ticker":    wrapped.Meta.Ticker,
			"revenue":   wrapped.Financials.Revenue,
			"eps":       wrapped.Financials.EPS,
			"returnYTD": wrapped.Stock.ReturnYTD,
		})
		return
	}

	refreshed, err := h.refresher.RefreshAll(c.Request.Context(), year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	total := h.registry.Len()
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"total":     total,
		"refreshed": refreshed,
		"failed":    total - refreshed,
	})
}
