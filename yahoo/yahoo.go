// Package yahoo quotes market prices and exchange rates from the public Yahoo
// Finance chart API. Responses are cached on disk for the day, so re-runs do
// not hammer the endpoint.
package yahoo

import (
	"fmt"
	"math"
	"net/http"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

// Client speaks to the Yahoo Finance chart endpoint. The zero value is not
// usable; create one with New.
type Client struct {
	// BaseURL is overridable for tests.
	BaseURL string
	HTTP    *http.Client
}

// New returns a client backed by the daily disk cache.
func New() *Client {
	return &Client{BaseURL: defaultBaseURL, HTTP: newDailyCachingClient()}
}

/*
	{
	    "chart": {
	        "result": [
	            {
	                "meta": {
	                    "currency": "USD",
	                    "symbol": "AAPL",
	                    "regularMarketPrice": 230.49,
	                    "chartPreviousClose": 229.87
	                }
	            }
	        ],
	        "error": null
	    }
	}
*/
func (c *Client) LatestClose(symbol string) (float64, error) {
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=1d", c.BaseURL, url.PathEscape(symbol))
	var jobj any
	if err := jwget(c.HTTP, addr, &jobj); err != nil {
		return math.NaN(), fmt.Errorf("error in wget %q: %w", symbol, err)
	}
	path := "$.chart.result[0].meta.regularMarketPrice"
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
		// a delisted symbol sometimes comes back with a zero meta price
		return math.NaN(), fmt.Errorf("empty price for %q, no value to return", symbol)
	}
	return val, nil
}

// Rate quotes how many units of 'to' one unit of 'from' is worth, using
// Yahoo's currency-pair pseudo symbols ("USDTRY=X").
func (c *Client) Rate(from, to string) (float64, error) {
	return c.LatestClose(from + to + "=X")
}
