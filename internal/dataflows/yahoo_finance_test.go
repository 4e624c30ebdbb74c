package dataflows

import (
	"errors"
	"io"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// tierCounter records how often each tier was invoked.
type tierCounter struct {
	fast, intraday, daily int
}

func newPriceClientWith(c *tierCounter, fast fastQuoteFunc, intraday, daily historyFunc) *PriceClient {
	return &PriceClient{
		fast: func(symbol string) (float64, error) {
			c.fast++
			return fast(symbol)
		},
		intraday: func(symbol string) ([]decimal.Decimal, error) {
			c.intraday++
			return intraday(symbol)
		},
		daily: func(symbol string) ([]decimal.Decimal, error) {
			c.daily++
			return daily(symbol)
		},
		log: quietLogger(),
	}
}

func noHistory(string) ([]decimal.Decimal, error) {
	return nil, errors.New("should not be called")
}

func TestCurrentPrice_FastQuoteWinsWithoutHistoryCalls(t *testing.T) {
	var counter tierCounter
	client := newPriceClientWith(&counter,
		func(string) (float64, error) { return 150.1234, nil },
		noHistory,
		noHistory,
	)

	price, ok := client.CurrentPrice("AAPL")
	require.True(t, ok)
	require.InEpsilon(t, 150.1234, price, 0.0001)
	require.Equal(t, 1, counter.fast)
	require.Zero(t, counter.intraday)
	require.Zero(t, counter.daily)
}

func TestCurrentPrice_ZeroFastQuoteFallsBackToIntraday(t *testing.T) {
	var counter tierCounter
	client := newPriceClientWith(&counter,
		func(string) (float64, error) { return 0, nil },
		func(string) ([]decimal.Decimal, error) {
			return []decimal.Decimal{
				decimal.NewFromFloat(101.5),
				decimal.NewFromFloat(102.25),
			}, nil
		},
		noHistory,
	)

	price, ok := client.CurrentPrice("NEWCO")
	require.True(t, ok)
	require.InEpsilon(t, 102.25, price, 0.0001)
	require.Equal(t, 1, counter.intraday)
	require.Zero(t, counter.daily)
}

func TestCurrentPrice_FastQuoteErrorFallsThrough(t *testing.T) {
	var counter tierCounter
	client := newPriceClientWith(&counter,
		func(string) (float64, error) { return 0, errors.New("quote endpoint down") },
		func(string) ([]decimal.Decimal, error) { return nil, errors.New("no intraday data") },
		func(string) ([]decimal.Decimal, error) {
			return []decimal.Decimal{decimal.NewFromFloat(17.42)}, nil
		},
	)

	price, ok := client.CurrentPrice("ILLIQ.L")
	require.True(t, ok)
	require.InEpsilon(t, 17.42, price, 0.0001)
	require.Equal(t, 1, counter.fast)
	require.Equal(t, 1, counter.intraday)
	require.Equal(t, 1, counter.daily)
}

func TestCurrentPrice_SkipsMissingTrailingCloses(t *testing.T) {
	var counter tierCounter
	client := newPriceClientWith(&counter,
		func(string) (float64, error) { return 0, nil },
		func(string) ([]decimal.Decimal, error) {
			// trailing zero bars stand in for missing closes
			return []decimal.Decimal{
				decimal.NewFromFloat(55.5),
				decimal.Zero,
				decimal.Zero,
			}, nil
		},
		noHistory,
	)

	price, ok := client.CurrentPrice("HALTED")
	require.True(t, ok)
	require.InEpsilon(t, 55.5, price, 0.0001)
}

func TestCurrentPrice_AllTiersExhaustedIsUnavailable(t *testing.T) {
	var counter tierCounter
	client := newPriceClientWith(&counter,
		func(string) (float64, error) { return 0, errors.New("boom") },
		func(string) ([]decimal.Decimal, error) { return nil, nil },
		func(string) ([]decimal.Decimal, error) { return []decimal.Decimal{decimal.Zero}, nil },
	)

	price, ok := client.CurrentPrice("GONE")
	require.False(t, ok)
	require.Zero(t, price)
	require.Equal(t, 1, counter.fast)
	require.Equal(t, 1, counter.intraday)
	require.Equal(t, 1, counter.daily)
}

func TestLastClose(t *testing.T) {
	_, ok := lastClose(nil)
	require.False(t, ok)

	price, ok := lastClose([]decimal.Decimal{decimal.NewFromFloat(1.5), decimal.NewFromFloat(2.5)})
	require.True(t, ok)
	require.InEpsilon(t, 2.5, price, 0.0001)
}
