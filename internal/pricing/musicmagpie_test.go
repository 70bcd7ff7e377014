package pricing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MdShadmanLabib/phonevalue-backend/internal/httputil"
)

const magpieResultsPage = `<html><body>
<ul class="results">
  <li class="product-result">
    <span class="product-name">Apple iPhone 13 128GB</span>
    <span class="product-price">£280.50</span>
  </li>
  <li class="product-result">
    <span class="product-name">Apple iPhone 13 256GB</span>
    <span class="product-price">£310.00</span>
  </li>
</ul>
</body></html>`

func TestMusicMagpieLookupExtractsFirstResultPrice(t *testing.T) {
	srv, requested := serveMarkup(t, magpieResultsPage)

	src := NewMusicMagpie(httputil.NewClient(2*time.Second), srv.URL)
	got := src.Lookup(context.Background(), Query{Brand: "Apple", Model: "iPhone 13", Storage: "128GB"})

	if !got.Found {
		t.Fatal("Lookup() reported not found for a page with results")
	}
	if got.Amount != 280.50 {
		t.Errorf("Amount = %v, want 280.50 (first result entry)", got.Amount)
	}
	if *requested != "/start-selling/search?q=Apple+iPhone+13+128GB" {
		t.Errorf("requested URI = %q, want the encoded brand+model+storage search", *requested)
	}
}

func TestMusicMagpieLookupIgnoresGrade(t *testing.T) {
	srv, requested := serveMarkup(t, magpieResultsPage)

	src := NewMusicMagpie(httputil.NewClient(2*time.Second), srv.URL)
	src.Lookup(context.Background(), Query{Brand: "Apple", Model: "iPhone 13", Storage: "128GB", Grade: "A"})

	if *requested != "/start-selling/search?q=Apple+iPhone+13+128GB" {
		t.Errorf("requested URI = %q, grade must not leak into the search terms", *requested)
	}
}

func TestMusicMagpieLookupSoftFailures(t *testing.T) {
	lookup := func(t *testing.T, handler http.HandlerFunc) Price {
		t.Helper()
		srv := httptest.NewServer(handler)
		t.Cleanup(srv.Close)
		src := NewMusicMagpie(httputil.NewClient(2*time.Second), srv.URL)
		return src.Lookup(context.Background(), Query{Brand: "Apple", Model: "iPhone 13", Storage: "128GB"})
	}

	t.Run("not found status", func(t *testing.T) {
		got := lookup(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		if got.Found {
			t.Error("Lookup() found a price from a 404 response")
		}
	})

	t.Run("changed markup", func(t *testing.T) {
		got := lookup(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html><body><div class="redesigned-result-tile">£99</div></body></html>`))
		})
		if got.Found {
			t.Error("Lookup() found a price after a selector drift")
		}
	})

	t.Run("price element empty", func(t *testing.T) {
		got := lookup(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<li class="product-result"><span class="product-price"></span></li>`))
		})
		if got.Found {
			t.Error("Lookup() found a price in an empty price node")
		}
	})
}
