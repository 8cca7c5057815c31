package yahoo

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vleite/wealth"
	"github.com/vleite/wealth/date"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

// Client fetches daily price series from the Yahoo chart API.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient returns a client with a short-lived disk cache, matching the
// cadence of a valuation session.
func NewClient() *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		HTTP:    newCachingClient(10 * time.Minute),
	}
}

// NewDirectClient returns a client that always hits the network, skipping
// the local response cache.
func NewDirectClient() *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		HTTP:    http.DefaultClient,
	}
}

var _ wealth.QuoteProvider = (*Client)(nil)

// Fetch retrieves daily bars for each symbol over the range r. Symbols the
// API does not know are left out of the result; for currency pairs the
// intraday spot endpoint is tried as a fallback. An error is returned only
// when nothing could be fetched at all.
func (c *Client) Fetch(symbols []string, r date.Range) (map[string]*wealth.Series, error) {
	out := make(map[string]*wealth.Series, len(symbols))
	var firstErr error
	for _, symbol := range symbols {
		series, err := c.fetchChart(symbol, r)
		if err != nil {
			log.Printf("no daily bars for %q: %v", symbol, err)
			if spot, ok := c.spotFallback(symbol); ok {
				out[symbol] = spot
				continue
			}
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		out[symbol] = series
	}
	if len(out) == 0 && firstErr != nil {
		return nil, fmt.Errorf("could not fetch any of %d symbols: %w", len(symbols), firstErr)
	}
	return out, nil
}

// chartResponse mirrors the relevant part of the chart API payload.
//
//	{"chart":{"result":[{"timestamp":[...],
//	  "indicators":{"quote":[{"close":[...]}],
//	                "adjclose":[{"adjclose":[...]}]}}],
//	  "error":null}}
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*decimal.Decimal `json:"close"`
				} `json:"quote"`
				AdjClose []struct {
					AdjClose []*decimal.Decimal `json:"adjclose"`
				} `json:"adjclose"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// fetchChart retrieves the daily series for one symbol. Null data points
// (market holidays inside the window) are skipped, not zeroed.
func (c *Client) fetchChart(symbol string, r date.Range) (*wealth.Series, error) {
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?period1=%d&period2=%d&interval=1d&events=div%%2Csplit",
		c.BaseURL, url.PathEscape(symbol), r.From.Unix(), r.To.Add(1).Unix())

	var content chartResponse
	if err := jwget(c.HTTP, addr, &content); err != nil {
		return nil, err
	}
	if e := content.Chart.Error; e != nil {
		return nil, fmt.Errorf("chart API error for %q: %s %s", symbol, e.Code, e.Description)
	}
	if len(content.Chart.Result) == 0 {
		return nil, fmt.Errorf("empty chart result for %q", symbol)
	}

	result := content.Chart.Result[0]
	series := &wealth.Series{}

	var closes, adjcloses []*decimal.Decimal
	if len(result.Indicators.Quote) > 0 {
		closes = result.Indicators.Quote[0].Close
	}
	if len(result.Indicators.AdjClose) > 0 {
		adjcloses = result.Indicators.AdjClose[0].AdjClose
	}

	for i, ts := range result.Timestamp {
		day := date.FromTime(time.Unix(ts, 0))
		if i < len(closes) && closes[i] != nil {
			series.Close.Append(day, *closes[i])
		}
		if i < len(adjcloses) && adjcloses[i] != nil {
			series.AdjClose.Append(day, *adjcloses[i])
		}
	}
	if series.Close.Len() == 0 && series.AdjClose.Len() == 0 {
		return nil, fmt.Errorf("no usable data points for %q", symbol)
	}
	return series, nil
}

// spotFallback tries the intraday spot endpoint for currency pair symbols,
// whose chart coverage is spotty.
func (c *Client) spotFallback(symbol string) (*wealth.Series, bool) {
	if !strings.HasSuffix(symbol, "=X") {
		return nil, false
	}
	spot, err := c.Spot(symbol)
	if err != nil {
		log.Printf("spot fallback for %q failed too: %v", symbol, err)
		return nil, false
	}
	series := &wealth.Series{}
	series.Close.Append(date.Today(), decimal.NewFromFloat(spot))
	return series, true
}
