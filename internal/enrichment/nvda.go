package enrichment

import "github.com/finwrapped/finwrapped-go/internal/models"

// Curated from NVIDIA's FY2025 earnings reports and press releases. Calendar
// 2024 on the stock side; the fiscal year closed January 2025.
func nvidia2024() *Patch {
	pct := 99
	return &Patch{
		Stock: &StockPatch{
			MarketCap:  models.F(3.2e12),
			VsSPX:      models.F(1.45),
			Percentile: &pct,
			Split:      &models.SplitInfo{Ratio: "10:1", Date: "2024-06-07"},
		},
		Financials: &FinancialsPatch{
			Employees:          intp(29600),
			RevenuePerEmployee: models.F(4.41e6),
			ProfitPerEmployee:  models.F(2.46e6),
		},
		CashFlow: &CashFlowPatch{
			Buybacks:  models.F(33.7e9),
			Dividends: models.F(0.5e9),
		},
		Valuation: &ValuationPatch{
			PESectorAvg: models.F(25),
			PSSectorAvg: models.F(5),
		},
		Segments: []models.SegmentData{
			{Name: "Data Center", Revenue: 115.2e9, Percentage: 0.88, Growth: 1.42, Color: "#76B900"},
			{Name: "Gaming", Revenue: 11.4e9, Percentage: 0.09, Growth: 0.09, Color: "#00d4ff"},
			{Name: "Pro Visualization", Revenue: 1.9e9, Percentage: 0.015, Growth: 0.21, Color: "#f59e0b"},
			{Name: "Automotive", Revenue: 1.7e9, Percentage: 0.013, Growth: 0.55, Color: "#a855f7"},
		},
		Geographic: []models.GeographicData{
			{Region: "United States", Percentage: 0.47, Color: "#3b82f6"},
			{Region: "China + Hong Kong", Percentage: 0.22, Growth: -0.04, Color: "#f59e0b"},
			{Region: "Taiwan", Percentage: 0.15, Color: "#22c55e"},
			{Region: "Singapore", Percentage: 0.08, Color: "#8b5cf6"},
			{Region: "Rest of World", Percentage: 0.08, Color: "#6b7280"},
		},
		Quarterly: []models.QuarterlyData{
			{Quarter: "Q1 FY25", Revenue: 26.0e9, QoQGrowth: 0.18, YoYGrowth: 2.62},
			{Quarter: "Q2 FY25", Revenue: 30.0e9, QoQGrowth: 0.15, YoYGrowth: 1.22},
			{Quarter: "Q3 FY25", Revenue: 35.1e9, QoQGrowth: 0.17, YoYGrowth: 0.94},
			{Quarter: "Q4 FY25", Revenue: 39.3e9, QoQGrowth: 0.12, YoYGrowth: 0.78},
		},
		Events: []models.EventData{
			{Date: "2024-03-18", Title: "Blackwell Unveiled", Description: "208B transistors. 30x faster inference. Most powerful chip ever.", Type: "product", Color: "#76B900"},
			{Date: "2024-06-07", Title: "10-for-1 Stock Split", Description: "Made shares accessible. Volume surged 40%.", Type: "corporate", Color: "#00d4ff"},
			{Date: "2024-06-18", Title: "Became #1 Most Valuable", Description: "Briefly passed Apple & Microsoft. $3.34T market cap.", Type: "milestone", Color: "#a855f7"},
			{Date: "2024-11-08", Title: "Joined the Dow Jones", Description: "Replaced Intel. The symbolic passing of the torch.", Type: "milestone", Color: "#f59e0b"},
		},
		Competitive: &models.CompetitiveData{
			MarketShare:      0.9,
			MarketShareLabel: "Data Center GPU",
			Moat:             "CUDA ecosystem + 15 years of software = sticky. Google TPU and Amazon Trainium are threats, but neither is available externally.",
			Competitors: []models.CompetitorData{
				{Name: "NVIDIA", Ticker: "NVDA", Share: 0.9, Metric: "H100, Blackwell", Color: "#76B900"},
				{Name: "AMD", Ticker: "AMD", Share: 0.06, Metric: "MI300X", Color: "#ef4444"},
				{Name: "Intel", Ticker: "INTC", Share: 0.03, Metric: "Gaudi", Color: "#3b82f6"},
				{Name: "Others", Share: 0.01, Color: "#6b7280"},
			},
		},
		Insiders: &models.InsiderData{
			TotalSales:  2e9,
			TotalBuys:   0,
			NetActivity: "selling",
			CEOName:     "Jensen Huang",
			Transactions: []models.InsiderTransaction{
				{Date: "2024-03", Name: "Jensen Huang", Title: "CEO", Type: "sale"},
			},
		},
		Summary: "In FY2025, NVIDIA cemented its position as the backbone of AI. Revenue hit $130.5B (+114%), net income reached $72.9B, and margins expanded to software-like levels. Data Center is now 88% of revenue. Risks include China exposure (22%) and customer concentration (top 4 = 40%), but momentum is unprecedented.",
		Buzzwords: []models.Buzzword{
			{Word: "AI", Count: 847, Size: "lg"},
			{Word: "GPU", Count: 312, Size: "md"},
			{Word: "Datacenter", Count: 245, Size: "md"},
			{Word: "Blackwell", Count: 156, Size: "md"},
			{Word: "Inference", Count: 134, Size: "sm"},
			{Word: "CUDA", Count: 98, Size: "sm"},
			{Word: "Sovereign AI", Count: 67, Size: "sm"},
		},
		CEOQuote: &models.Quote{
			Quote: "The next wave of AI is physical AI — robots and autonomous machines that understand and interact with the world.",
			Name:  "Jensen Huang",
			Title: "CEO & Co-Founder",
		},
		Achievements: []models.Achievement{
			{Icon: "🏆", Title: "Beat 8/8", Desc: "Quarters"},
			{Icon: "💰", Title: "$3T Club", Desc: "Market cap"},
			{Icon: "👑", Title: "Briefly #1", Desc: "Most valuable"},
			{Icon: "📈", Title: "+114%", Desc: "Revenue"},
			{Icon: "⚡", Title: "Blackwell", Desc: "Launched"},
			{Icon: "🎯", Title: "Dow Jones", Desc: "Replaced Intel"},
		},
		Customers: &models.CustomerConcentration{
			Top4Percentage: 0.4,
			Top4Label:      "Top 4 Hyperscalers",
			Customers:      []string{"AWS", "Azure", "GCP", "Meta"},
			Risk:           "If they build their own chips (Google TPU, Amazon Trainium), that's a problem.",
		},
	}
}
