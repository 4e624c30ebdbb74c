package lookup

import (
	"errors"
	"fmt"

	"github.com/gokulrajanpillai/TradeDeskCLI/internal/models"
)

// ErrNoMatch is returned when a company name resolves to no ticker.
var ErrNoMatch = errors.New("no matching ticker")

// Resolver maps a free-text name to its best ticker match.
type Resolver interface {
	BestMatch(name string) (*models.SearchMatch, bool)
}

// PriceFetcher returns the current price for a ticker symbol.
type PriceFetcher interface {
	CurrentPrice(symbol string) (float64, bool)
}

// Request describes one lookup. At least one of Ticker or Name must be set;
// the CLI enforces that before calling the service.
type Request struct {
	Ticker string
	Name   string
}

// Service orchestrates name resolution and price fetching.
type Service struct {
	resolver Resolver
	prices   PriceFetcher
}

// NewService creates a lookup service.
func NewService(resolver Resolver, prices PriceFetcher) *Service {
	return &Service{
		resolver: resolver,
		prices:   prices,
	}
}

// Lookup resolves the request to a ticker, fetches its current price and
// builds the result. A name that resolves to nothing is a terminal failure
// wrapped around ErrNoMatch; a missing price is not an error, it is reported
// as Success=false.
func (s *Service) Lookup(req Request) (*models.PriceResult, error) {
	ticker := req.Ticker
	var resolved *models.SearchMatch

	if ticker == "" && req.Name != "" {
		match, ok := s.resolver.BestMatch(req.Name)
		if !ok {
			return nil, fmt.Errorf("%w for name %q", ErrNoMatch, req.Name)
		}
		resolved = match
		ticker = match.Symbol
	}

	price, ok := s.prices.CurrentPrice(ticker)

	return models.NewPriceResult(ticker, displayName(resolved, req, ticker), price, ok), nil
}

// displayName prefers the resolved match name, then the supplied name, then
// the ticker symbol itself.
func displayName(resolved *models.SearchMatch, req Request, ticker string) string {
	if resolved != nil && resolved.Name != "" {
		return resolved.Name
	}
	if req.Name != "" {
		return req.Name
	}
	return ticker
}
