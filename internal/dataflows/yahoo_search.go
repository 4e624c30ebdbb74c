package dataflows

import (
	"encoding/json"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"github.com/gokulrajanpillai/TradeDeskCLI/internal/config"
	"github.com/gokulrajanpillai/TradeDeskCLI/internal/models"
)

// SearchClient queries the Yahoo Finance public search endpoint to map a
// free-text company name to a ticker symbol.
type SearchClient struct {
	client *resty.Client
	log    *logrus.Logger
}

// NewSearchClient creates a search client from the application config.
func NewSearchClient(cfg *config.Config) *SearchClient {
	client := resty.New()
	client.SetBaseURL(cfg.SearchBaseURL)
	client.SetTimeout(cfg.SearchTimeout)
	// Yahoo rejects requests without a browser-ish user agent.
	client.SetHeader("User-Agent", cfg.UserAgent)

	return &SearchClient{
		client: client,
		log:    logrus.StandardLogger(),
	}
}

// yahooSearchResponse mirrors the fields we read from the search payload.
type yahooSearchResponse struct {
	Quotes []struct {
		Symbol    string  `json:"symbol"`
		ShortName string  `json:"shortname"`
		LongName  string  `json:"longname"`
		QuoteType string  `json:"quoteType"`
		Exchange  string  `json:"exchange"`
		Score     float64 `json:"score"`
	} `json:"quotes"`
}

// BestMatch returns the top-ranked quote match for a company name. Transport
// errors, non-2xx statuses, malformed bodies, an empty match list and a match
// with an empty symbol all collapse into the same "no match" outcome; callers
// never see the distinction.
func (sc *SearchClient) BestMatch(name string) (*models.SearchMatch, bool) {
	resp, err := sc.client.R().
		SetQueryParams(map[string]string{
			"q":           name,
			"quotesCount": "1",
			"newsCount":   "0",
			"listsCount":  "0",
		}).
		Get("")

	if err != nil {
		sc.log.WithField("query", name).WithError(err).Debug("name search request failed")
		return nil, false
	}

	if resp.StatusCode() != 200 {
		sc.log.WithFields(logrus.Fields{
			"query":  name,
			"status": resp.StatusCode(),
		}).Debug("name search returned error status")
		return nil, false
	}

	var payload yahooSearchResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		sc.log.WithField("query", name).WithError(err).Debug("failed to parse search response")
		return nil, false
	}

	if len(payload.Quotes) == 0 {
		return nil, false
	}

	q := payload.Quotes[0]
	if q.Symbol == "" {
		return nil, false
	}

	// Prefer the short display name over the long one over the bare symbol.
	displayName := q.ShortName
	if displayName == "" {
		displayName = q.LongName
	}
	if displayName == "" {
		displayName = q.Symbol
	}

	return &models.SearchMatch{
		Symbol:    q.Symbol,
		Name:      displayName,
		AssetType: q.QuoteType,
		Exchange:  q.Exchange,
		Score:     q.Score,
	}, true
}
