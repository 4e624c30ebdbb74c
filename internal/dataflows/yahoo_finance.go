package dataflows

import (
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/quote"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// fastQuoteFunc returns the current market price for a symbol.
type fastQuoteFunc func(symbol string) (float64, error)

// historyFunc returns closing prices in chronological order.
type historyFunc func(symbol string) ([]decimal.Decimal, error)

// PriceClient fetches a current price from Yahoo Finance. The three tiers are
// function fields so each can be replaced independently in tests.
type PriceClient struct {
	fast     fastQuoteFunc
	intraday historyFunc
	daily    historyFunc
	log      *logrus.Logger
}

// NewPriceClient creates a price client backed by Yahoo Finance.
func NewPriceClient() *PriceClient {
	return &PriceClient{
		fast:     fetchFastQuote,
		intraday: fetchCloses(datetime.OneMin),
		daily:    fetchCloses(datetime.OneDay),
		log:      logrus.StandardLogger(),
	}
}

// CurrentPrice walks the fast quote, intraday history and daily history tiers
// in order, taking the first usable value. The fast quote may be stale or
// absent for illiquid or newly listed symbols and during off-hours, intraday
// history covers most of the rest, and daily history is the last resort for
// markets without intraday granularity. A tier that errors simply yields
// nothing; exhausting all three returns (0, false).
func (pc *PriceClient) CurrentPrice(symbol string) (float64, bool) {
	price, err := pc.fast(symbol)
	if err != nil {
		pc.log.WithField("symbol", symbol).WithError(err).Debug("fast quote unavailable")
	} else if price > 0 {
		return price, true
	}

	tiers := []struct {
		name  string
		fetch historyFunc
	}{
		{"intraday", pc.intraday},
		{"daily", pc.daily},
	}

	for _, tier := range tiers {
		closes, err := tier.fetch(symbol)
		if err != nil {
			pc.log.WithFields(logrus.Fields{
				"symbol": symbol,
				"tier":   tier.name,
			}).WithError(err).Debug("history fetch failed")
			continue
		}
		if price, ok := lastClose(closes); ok {
			return price, true
		}
	}

	return 0, false
}

func fetchFastQuote(symbol string) (float64, error) {
	q, err := quote.Get(symbol)
	if err != nil {
		return 0, err
	}
	if q == nil {
		return 0, nil
	}
	return q.RegularMarketPrice, nil
}

// fetchCloses builds a tier that pulls one trading day of history at the
// given interval.
func fetchCloses(interval datetime.Interval) historyFunc {
	return func(symbol string) ([]decimal.Decimal, error) {
		end := time.Now()
		start := end.AddDate(0, 0, -1)

		iter := chart.Get(&chart.Params{
			Symbol:   symbol,
			Start:    datetime.New(&start),
			End:      datetime.New(&end),
			Interval: interval,
		})

		var closes []decimal.Decimal
		for iter.Next() {
			closes = append(closes, iter.Bar().Close)
		}
		if err := iter.Err(); err != nil {
			return nil, err
		}

		return closes, nil
	}
}

// lastClose picks the most recent positive close, skipping missing bars.
func lastClose(closes []decimal.Decimal) (float64, bool) {
	for i := len(closes) - 1; i >= 0; i-- {
		if closes[i].IsPositive() {
			price, _ := closes[i].Float64()
			return price, true
		}
	}
	return 0, false
}
