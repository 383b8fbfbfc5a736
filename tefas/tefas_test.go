package tefas

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tyildiz/invtrack/date"
)

// historyServer serves BindHistoryInfo with one published price per day key
// ("02.01.2006" format).
func historyServer(t *testing.T, code string, prices map[string]float64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/DB/BindHistoryInfo" {
			http.NotFound(w, r)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if got := r.FormValue("fonkod"); got != code {
			fmt.Fprint(w, `{"data":[]}`)
			return
		}
		price, ok := prices[r.FormValue("bastarih")]
		if !ok {
			// no publication that day, TEFAS answers an empty set
			fmt.Fprint(w, `{"data":[]}`)
			return
		}
		fmt.Fprintf(w, `{"draw":0,"recordsTotal":1,"data":[{"TARIH":"1755820800000","FONKODU":%q,"FONUNVAN":"TEST FONU","FIYAT":%v}]}`, code, price)
	}))
}

func testClient(srv *httptest.Server) *Client {
	return &Client{BaseURL: srv.URL, HTTP: srv.Client()}
}

func TestPriceOn(t *testing.T) {
	day := date.New(2025, 8, 22)
	srv := historyServer(t, "AFT", map[string]float64{"22.08.2025": 2.531806})
	defer srv.Close()

	got, err := testClient(srv).PriceOn("AFT", day)
	if err != nil {
		t.Fatalf("PriceOn() error = %v", err)
	}
	if want := 2.531806; got != want {
		t.Errorf("PriceOn() = %v, want %v", got, want)
	}
}

func TestPriceOn_NonTradingDay(t *testing.T) {
	srv := historyServer(t, "AFT", map[string]float64{"22.08.2025": 2.531806})
	defer srv.Close()

	// Saturday: nothing published.
	if _, err := testClient(srv).PriceOn("AFT", date.New(2025, 8, 23)); err == nil {
		t.Error("PriceOn() expected an error for a non-trading day")
	}
}

func TestPriceOn_UnknownFund(t *testing.T) {
	srv := historyServer(t, "AFT", map[string]float64{"22.08.2025": 2.531806})
	defer srv.Close()

	if _, err := testClient(srv).PriceOn("NOPE", date.New(2025, 8, 22)); err == nil {
		t.Error("PriceOn() expected an error for an unknown fund")
	}
}

func TestPriceOn_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	if _, err := testClient(srv).PriceOn("AFT", date.New(2025, 8, 22)); err == nil {
		t.Error("PriceOn() expected an error on a non-200 status")
	}
}
