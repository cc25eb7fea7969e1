package enrichment

import "github.com/finwrapped/finwrapped-go/internal/models"

// Curated from Apple's FY2024 earnings reports and press releases. The
// fiscal year closed September 2024.
func apple2024() *Patch {
	pct := 75
	return &Patch{
		Stock: &StockPatch{
			MarketCap:  models.F(3.44e12),
			VsSPX:      models.F(0.05),
			Percentile: &pct,
		},
		Financials: &FinancialsPatch{
			Employees:          intp(161000),
			RevenuePerEmployee: models.F(2.43e6),
			ProfitPerEmployee:  models.F(0.58e6),
		},
		CashFlow: &CashFlowPatch{
			Buybacks:  models.F(95e9),
			Dividends: models.F(15.2e9),
		},
		Valuation: &ValuationPatch{
			PESectorAvg: models.F(25),
			PSSectorAvg: models.F(5),
		},
		Segments: []models.SegmentData{
			{Name: "iPhone", Revenue: 201.2e9, Percentage: 0.515, Growth: -0.01, Color: "#0071e3"},
			{Name: "Services", Revenue: 96.2e9, Percentage: 0.246, Growth: 0.13, Color: "#34c759"},
			{Name: "Mac", Revenue: 29.9e9, Percentage: 0.077, Growth: 0.02, Color: "#86868b"},
			{Name: "iPad", Revenue: 26.7e9, Percentage: 0.068, Growth: -0.06, Color: "#ff9500"},
			{Name: "Wearables & Home", Revenue: 37e9, Percentage: 0.095, Growth: -0.07, Color: "#ff2d55"},
		},
		Geographic: []models.GeographicData{
			{Region: "Americas", Percentage: 0.42, Color: "#0071e3"},
			{Region: "Europe", Percentage: 0.25, Color: "#34c759"},
			{Region: "Greater China", Percentage: 0.17, Growth: -0.08, Color: "#ff9500"},
			{Region: "Japan", Percentage: 0.06, Color: "#ff2d55"},
			{Region: "Rest of Asia Pacific", Percentage: 0.10, Color: "#86868b"},
		},
		Quarterly: []models.QuarterlyData{
			{Quarter: "Q1 FY24", Revenue: 119.6e9, QoQGrowth: 0.13, YoYGrowth: 0.02},
			{Quarter: "Q2 FY24", Revenue: 90.8e9, QoQGrowth: -0.24, YoYGrowth: -0.04},
			{Quarter: "Q3 FY24", Revenue: 85.8e9, QoQGrowth: -0.05, YoYGrowth: 0.05},
			{Quarter: "Q4 FY24", Revenue: 94.9e9, QoQGrowth: 0.11, YoYGrowth: 0.06},
		},
		Events: []models.EventData{
			{Date: "2024-01-28", Title: "Vision Pro Launch", Description: "Apple's first spatial computer. $3,499. Mixed reality enters premium market.", Type: "product", Color: "#0071e3"},
			{Date: "2024-06-10", Title: "Apple Intelligence Announced", Description: "AI features coming to iOS 18. Siri gets smarter. ChatGPT integration.", Type: "product", Color: "#34c759"},
			{Date: "2024-09-09", Title: "iPhone 16 Launch", Description: "A18 chip. Apple Intelligence built-in. Camera button debuts.", Type: "product", Color: "#ff9500"},
			{Date: "2024-03-04", Title: "EU DMA Compliance", Description: "Opened App Store to third-party payments. Sideloading in EU.", Type: "corporate", Color: "#ff2d55"},
		},
		Competitive: &models.CompetitiveData{
			MarketShare:      0.22,
			MarketShareLabel: "Global Smartphone",
			Moat:             "Ecosystem lock-in + brand loyalty + premium positioning. Services growing 2x hardware.",
			Competitors: []models.CompetitorData{
				{Name: "Apple", Ticker: "AAPL", Share: 0.22, Metric: "iPhone", Color: "#000000"},
				{Name: "Samsung", Share: 0.19, Metric: "Galaxy", Color: "#1428a0"},
				{Name: "Xiaomi", Share: 0.14, Metric: "Mi/Redmi", Color: "#ff6900"},
				{Name: "Others", Share: 0.45, Color: "#86868b"},
			},
		},
		Insiders: &models.InsiderData{
			TotalSales:  75e6,
			TotalBuys:   0,
			NetActivity: "selling",
			CEOName:     "Tim Cook",
		},
		Summary: "Apple's FY2024 showed modest revenue growth (+2%) but continued services momentum (+13%). Services now 25% of revenue with 2B+ active devices. China remains a concern (-8% YoY). AI features (Apple Intelligence) positioned as the next growth driver. Returned $110B to shareholders via buybacks and dividends.",
		Buzzwords: []models.Buzzword{
			{Word: "iPhone", Count: 289, Size: "lg"},
			{Word: "Apple Intelligence", Count: 156, Size: "lg"},
			{Word: "Services", Count: 134, Size: "md"},
			{Word: "Installed Base", Count: 98, Size: "md"},
			{Word: "Privacy", Count: 87, Size: "sm"},
			{Word: "Ecosystem", Count: 76, Size: "sm"},
			{Word: "Vision Pro", Count: 45, Size: "sm"},
		},
		CEOQuote: &models.Quote{
			Quote: "Apple Intelligence is the next big step for Apple. Personal intelligence that understands you, protects your privacy, and helps you do more.",
			Name:  "Tim Cook",
			Title: "CEO",
		},
		Achievements: []models.Achievement{
			{Icon: "💰", Title: "$3.4T", Desc: "Market Cap"},
			{Icon: "📱", Title: "2B+", Desc: "Active Devices"},
			{Icon: "🎯", Title: "$110B", Desc: "Returned to Shareholders"},
			{Icon: "🤖", Title: "Apple AI", Desc: "Intelligence Launch"},
			{Icon: "👓", Title: "Vision Pro", Desc: "Spatial Computing"},
			{Icon: "💵", Title: "$108B", Desc: "Free Cash Flow"},
		},
		Customers: &models.CustomerConcentration{
			Top4Percentage: 0.0,
			Top4Label:      "Consumer-Focused",
			Customers:      []string{"Individual Consumers", "Enterprise", "Education", "Government"},
			Risk:           "Consumer discretionary spending. China competition (Huawei). Regulatory pressure in EU.",
		},
	}
}
