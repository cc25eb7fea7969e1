package registry

import "github.com/finwrapped/finwrapped-go/internal/models"

// Companies returns the built-in issuer table. CIK codes come from SEC
// EDGAR; fiscal-year-end months matter for off-cycle filers (NVDA closes in
// January, AAPL in September).
func Companies() []models.Company {
	return []models.Company{
		{
			Ticker: "NVDA", Name: "NVIDIA Corporation", CIK: "0001045810",
			Sector: "Technology", FiscalYearEnd: 1, CEO: "Jensen Huang",
			Theme: models.Theme{Primary: "#76B900", Secondary: "#00d4ff", Accent: "#a855f7"},
		},
		{
			Ticker: "AAPL", Name: "Apple Inc.", CIK: "0000320193",
			Sector: "Technology", FiscalYearEnd: 9, CEO: "Tim Cook",
			Theme: models.Theme{Primary: "#555555", Secondary: "#0071e3", Accent: "#bf4800"},
		},
		{
			Ticker: "MSFT", Name: "Microsoft Corporation", CIK: "0000789019",
			Sector: "Technology", FiscalYearEnd: 6, CEO: "Satya Nadella",
			Theme: models.Theme{Primary: "#00a4ef", Secondary: "#7fba00", Accent: "#f25022"},
		},
		{
			Ticker: "GOOGL", Name: "Alphabet Inc.", CIK: "0001652044",
			Sector: "Technology", FiscalYearEnd: 12, CEO: "Sundar Pichai",
			Theme: models.Theme{Primary: "#4285f4", Secondary: "#34a853", Accent: "#ea4335"},
		},
		{
			Ticker: "META", Name: "Meta Platforms Inc.", CIK: "0001326801",
			Sector: "Technology", FiscalYearEnd: 12, CEO: "Mark Zuckerberg",
			Theme: models.Theme{Primary: "#0866ff", Secondary: "#00d4ff", Accent: "#833ab4"},
		},
		{
			Ticker: "AMZN", Name: "Amazon.com Inc.", CIK: "0001018724",
			Sector: "Consumer Discretionary", FiscalYearEnd: 12, CEO: "Andy Jassy",
			Theme: models.Theme{Primary: "#ff9900", Secondary: "#146eb4", Accent: "#232f3e"},
		},
		{
			Ticker: "TSLA", Name: "Tesla Inc.", CIK: "0001318605",
			Sector: "Consumer Discretionary", FiscalYearEnd: 12, CEO: "Elon Musk",
			Theme: models.Theme{Primary: "#e82127", Secondary: "#393c41", Accent: "#5c5e62"},
		},
		{
			Ticker: "AMD", Name: "Advanced Micro Devices", CIK: "0000002488",
			Sector: "Technology", FiscalYearEnd: 12, CEO: "Lisa Su",
			Theme: models.Theme{Primary: "#ed1c24", Secondary: "#000000", Accent: "#7cb82f"},
		},
		{
			Ticker: "CRM", Name: "Salesforce Inc.", CIK: "0001108524",
			Sector: "Technology", FiscalYearEnd: 1, CEO: "Marc Benioff",
			Theme: models.Theme{Primary: "#00a1e0", Secondary: "#032d60", Accent: "#ff784f"},
		},
		{
			Ticker: "JPM", Name: "JPMorgan Chase & Co.", CIK: "0000019617",
			Sector: "Financials", FiscalYearEnd: 12, CEO: "Jamie Dimon",
			Theme: models.Theme{Primary: "#117aca", Secondary: "#002d72", Accent: "#5a6771"},
		},
		{
			Ticker: "WMT", Name: "Walmart Inc.", CIK: "0000104169",
			Sector: "Consumer Staples", FiscalYearEnd: 1, CEO: "Doug McMillon",
			Theme: models.Theme{Primary: "#0071ce", Secondary: "#ffc220", Accent: "#041e42"},
		},
		{
			Ticker: "KO", Name: "The Coca-Cola Company", CIK: "0000021344",
			Sector: "Consumer Staples", FiscalYearEnd: 12, CEO: "James Quincey",
			Theme: models.Theme{Primary: "#f40009", Secondary: "#1e1e1e", Accent: "#ffffff"},
		},
		{
			Ticker: "DIS", Name: "The Walt Disney Company", CIK: "0001744489",
			Sector: "Communication Services", FiscalYearEnd: 9, CEO: "Bob Iger",
			Theme: models.Theme{Primary: "#113ccf", Secondary: "#0a1e5c", Accent: "#f9d342"},
		},
		{
			Ticker: "NFLX", Name: "Netflix Inc.", CIK: "0001065280",
			Sector: "Communication Services", FiscalYearEnd: 12, CEO: "Ted Sarandos",
			Theme: models.Theme{Primary: "#e50914", Secondary: "#141414", Accent: "#b20710"},
		},
		{
			Ticker: "BRK-B", Name: "Berkshire Hathaway Inc.", CIK: "0001067983",
			Sector: "Financials", FiscalYearEnd: 12, CEO: "Warren Buffett",
			Theme: models.Theme{Primary: "#1a3c6e", Secondary: "#8c1d40", Accent: "#d6c39a"},
		},
	}
}
