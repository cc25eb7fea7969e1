package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finwrapped/finwrapped-go/internal/models"
	"github.com/finwrapped/finwrapped-go/internal/registry"
)

// CompaniesHandler lists the covered companies.
type CompaniesHandler struct {
	registry *registry.Registry
}

func NewCompaniesHandler(reg *registry.Registry) *CompaniesHandler {
	return &CompaniesHandler{registry: reg}
}

type companySummary struct {
	Ticker string       `json:"ticker"`
	Name   string       `json:"name"`
	Sector string       `json:"sector"`
	Theme  models.Theme `json:"theme"`
}

// List handles GET /api/v1/companies.
func (h *CompaniesHandler) List(c *gin.Context) {
	all := h.registry.All()
	out := make([]companySummary, len(all))
	for i, company := range all {
		out[i] = companySummary{
			Ticker: company.Ticker,
			Name:   company.Name,
			Sector: company.Sector,
			Theme:  company.Theme,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(out),
		"data":    out,
	})
}
