package enrichment

// patches indexes curated overlays by normalized ticker and calendar year.
var patches = map[string]map[int]*Patch{
	"NVDA": {2024: nvidia2024()},
	"AAPL": {2024: apple2024()},
}

func intp(v int) *int {
	return &v
}
