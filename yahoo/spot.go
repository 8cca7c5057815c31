package yahoo

import (
	"fmt"
	"math"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
)

/*
	{
	    "quoteResponse": {
	        "result": [
	            {
	                "symbol": "USDBRL=X",
	                "regularMarketPrice": 5.4321,
	                "regularMarketTime": 1721999400
	            }
	        ],
	        "error": null
	    }
	}
*/

// Spot returns the latest intraday price for a symbol from the quote
// endpoint. The payload nesting varies across Yahoo deployments, so the
// price is extracted by path rather than by a rigid struct.
func (c *Client) Spot(symbol string) (float64, error) {
	addr := fmt.Sprintf("%s/v7/finance/quote?symbols=%s", c.BaseURL, url.QueryEscape(symbol))

	var jobj any
	if err := jwget(c.HTTP, addr, &jobj); err != nil {
		return math.NaN(), fmt.Errorf("error in wget %q: %w", symbol, err)
	}

	path := "$.quoteResponse.result[0].regularMarketPrice"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %w", symbol, path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %s %v", symbol, path, "not a float", jval)
	}
	if val == 0 {
		// a zero spot means the market feed has nothing for the symbol
		return math.NaN(), fmt.Errorf("empty spot price for %q", symbol)
	}
	return val, nil
}
