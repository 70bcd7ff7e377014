package pricing

import (
	"bytes"
	"context"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/MdShadmanLabib/phonevalue-backend/internal/httputil"
	"github.com/MdShadmanLabib/phonevalue-backend/internal/observability"
)

// CeX search markup, observed 2026-08. May drift without notice.
const (
	cexSearchPath    = "/search?stext="
	cexCardSelector  = ".search-product-card"
	cexPriceSelector = ".product-main-price"
)

// Cex scrapes the CeX buy-back search page. CeX lists the same handset
// separately per grade, so a graded query narrows the search itself and
// no further adjustment is needed on the result.
type Cex struct {
	client  *http.Client
	baseURL string
}

func NewCex(client *http.Client, baseURL string) *Cex {
	return &Cex{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

func (c *Cex) Name() string { return "cex" }

// Lookup fetches the first search result's price for the queried device.
// Every failure mode comes back as a not-found Price.
func (c *Cex) Lookup(ctx context.Context, q Query) Price {
	start := time.Now()
	defer func() {
		observability.CompetitorLookupDuration.WithLabelValues(c.Name()).Observe(time.Since(start).Seconds())
	}()

	terms := q.Model + " " + q.Storage
	if q.Grade != "" {
		terms += " Unlocked " + q.Grade
	}
	searchURL := c.baseURL + cexSearchPath + url.QueryEscape(terms)

	body, err := httputil.Get(ctx, c.client, searchURL)
	if err != nil {
		return c.miss("fetch %s: %v", searchURL, err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return c.miss("parse document: %v", err)
	}

	card := doc.Find(cexCardSelector).First()
	if card.Length() == 0 {
		return c.miss("no result card for %q", terms)
	}

	text := strings.TrimSpace(card.Find(cexPriceSelector).First().Text())
	amount, ok := ParsePrice(text)
	if !ok {
		return c.miss("unparseable price text %q", text)
	}

	observability.CompetitorLookups.WithLabelValues(c.Name(), "found").Inc()
	return Price{Amount: amount, Found: true}
}

func (c *Cex) miss(format string, args ...any) Price {
	log.Printf("[cex] "+format, args...)
	observability.CompetitorLookups.WithLabelValues(c.Name(), "miss").Inc()
	return Price{}
}
