// Package tefas retrieves published fund prices from TEFAS, the Turkish
// electronic fund trading platform. TEFAS publishes one price per fund per
// trading day, with gaps on week-ends and holidays; callers are expected to
// walk backwards over the gaps themselves.
package tefas

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tyildiz/invtrack/date"
)

const defaultBaseURL = "https://www.tefas.gov.tr"

// TEFAS formats dates the Turkish way.
const dayLayout = "02.01.2006"

// Client speaks to the TEFAS history endpoint. Create one with New.
type Client struct {
	// BaseURL is overridable for tests.
	BaseURL string
	HTTP    *http.Client
}

// New returns a client for the public TEFAS endpoint.
func New() *Client {
	return &Client{BaseURL: defaultBaseURL, HTTP: http.DefaultClient}
}

// historyRecord is one row of the BindHistoryInfo response.
//
//	{
//	    "draw": 0,
//	    "recordsTotal": 1,
//	    "data": [
//	        {
//	            "TARIH": "1755820800000",
//	            "FONKODU": "AFT",
//	            "FONUNVAN": "AK PORTFOY ...",
//	            "FIYAT": 2.531806
//	        }
//	    ]
//	}
type historyRecord struct {
	Code  string          `json:"FONKODU"`
	Price decimal.Decimal `json:"FIYAT"`
}

// PriceOn returns the fund's published price for the given calendar day, or an
// error when no price was published that day.
func (c *Client) PriceOn(code string, day date.Date) (float64, error) {
	form := url.Values{
		"fontip":   {"YAT"},
		"fonkod":   {code},
		"bastarih": {day.Formatted(dayLayout)},
		"bittarih": {day.Formatted(dayLayout)},
	}

	req, err := http.NewRequest(http.MethodPost, c.BaseURL+"/api/DB/BindHistoryInfo", strings.NewReader(form.Encode()))
	if err != nil {
		return 0, fmt.Errorf("cannot create tefas request for %q: %w", code, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, fmt.Errorf("cannot query tefas for %q: %w", code, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return 0, fmt.Errorf("cannot http POST %v/%v: %v", req.URL.Host, req.URL.Path, resp.Status)
	}

	// reading in a buffer to be able to print the json in debug mode
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return 0, fmt.Errorf("cannot read tefas response body: %w", err)
	}

	var payload struct {
		Data []historyRecord `json:"data"`
	}
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		return 0, fmt.Errorf("could not decode tefas history json: %w", err)
	}

	for _, rec := range payload.Data {
		if strings.EqualFold(rec.Code, code) && rec.Price.IsPositive() {
			return rec.Price.InexactFloat64(), nil
		}
	}
	return 0, fmt.Errorf("no price published for %s on %s", code, day)
}
