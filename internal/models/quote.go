package models

// SearchMatch is the top-ranked candidate returned by the name search.
type SearchMatch struct {
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name"`
	AssetType string  `json:"type"`
	Exchange  string  `json:"exchange"`
	Score     float64 `json:"score"`
}

// PriceResult is the outcome of one lookup. Price is nil exactly when
// Success is false.
type PriceResult struct {
	Ticker  string   `json:"ticker"`
	Name    string   `json:"name"`
	Price   *float64 `json:"price"`
	Success bool     `json:"success"`
}

// NewPriceResult builds a result from an optional price.
func NewPriceResult(ticker, name string, price float64, ok bool) *PriceResult {
	res := &PriceResult{
		Ticker: ticker,
		Name:   name,
	}
	if ok {
		p := price
		res.Price = &p
		res.Success = true
	}
	return res
}
