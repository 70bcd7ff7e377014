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

// musicMagpie sell-search markup, observed 2026-08. May drift without notice.
const (
	magpieSearchPath    = "/start-selling/search?q="
	magpieCardSelector  = ".product-result"
	magpiePriceSelector = ".product-price"
)

// MusicMagpie scrapes the musicMagpie trade-in search page. The site does
// not search by grade, so Query.Grade is ignored here.
type MusicMagpie struct {
	client  *http.Client
	baseURL string
}

func NewMusicMagpie(client *http.Client, baseURL string) *MusicMagpie {
	return &MusicMagpie{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

func (m *MusicMagpie) Name() string { return "musicmagpie" }

func (m *MusicMagpie) Lookup(ctx context.Context, q Query) Price {
	start := time.Now()
	defer func() {
		observability.CompetitorLookupDuration.WithLabelValues(m.Name()).Observe(time.Since(start).Seconds())
	}()

	terms := q.Brand + " " + q.Model + " " + q.Storage
	searchURL := m.baseURL + magpieSearchPath + url.QueryEscape(terms)

	body, err := httputil.Get(ctx, m.client, searchURL)
	if err != nil {
		return m.miss("fetch %s: %v", searchURL, err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return m.miss("parse document: %v", err)
	}

	result := doc.Find(magpieCardSelector).First()
	if result.Length() == 0 {
		return m.miss("no result entry for %q", terms)
	}

	text := strings.TrimSpace(result.Find(magpiePriceSelector).First().Text())
	amount, ok := ParsePrice(text)
	if !ok {
		return m.miss("unparseable price text %q", text)
	}

	observability.CompetitorLookups.WithLabelValues(m.Name(), "found").Inc()
	return Price{Amount: amount, Found: true}
}

func (m *MusicMagpie) miss(format string, args ...any) Price {
	log.Printf("[musicmagpie] "+format, args...)
	observability.CompetitorLookups.WithLabelValues(m.Name(), "miss").Inc()
	return Price{}
}
