package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/finwrapped/finwrapped-go/internal/registry"
	"github.com/finwrapped/finwrapped-go/internal/services"
)

const defaultYear = 2024

// WrappedHandler serves assembled wrapped records.
type WrappedHandler struct {
	assembler *services.Assembler
	registry  *registry.Registry
}

func NewWrappedHandler(assembler *services.Assembler, reg *registry.Registry) *WrappedHandler {
	return &WrappedHandler{assembler: assembler, registry: reg}
}

// GetWrapped handles GET /api/v1/wrapped/:ticker?year=&refresh=.
func (h *WrappedHandler) GetWrapped(c *gin.Context) {
	ticker := c.Param("ticker")

	year := defaultYear
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "invalid year: " + raw,
			})
			return
		}
		year = parsed
	}
	refresh := c.Query("refresh") == "true"

	wrapped, err := h.assembler.GetWrapped(c.Request.Context(), ticker, year, refresh)
	if err != nil {
		h.renderError(c, ticker, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    wrapped,
	})
}

func (h *WrappedHandler) renderError(c *gin.Context, ticker string, err error) {
	switch {
	case errors.Is(err, services.ErrUnknownCompany):
		tickers := h.registry.Tickers()
		if len(tickers) > 10 {
			tickers = tickers[:10]
		}
		c.JSON(http.StatusNotFound, gin.H{
			"success":          false,
			"error":            "Company not found: " + ticker,
			"availableTickers": tickers,
		})
	case errors.Is(err, services.ErrDataUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error":   "data unavailable for " + ticker,
		})
	default:
		logrus.WithError(err).WithField("ticker", ticker).Error("Failed to build wrapped data")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "internal server error",
		})
	}
}
