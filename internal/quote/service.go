package quote

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/MdShadmanLabib/phonevalue-backend/internal/observability"
	"github.com/MdShadmanLabib/phonevalue-backend/internal/pricing"
)

// NoOfferMessage accompanies a zero offer when neither competitor
// produced a price.
const NoOfferMessage = "we could not find a market price for this device, so no offer can be made right now"

// Result is one computed quote. Competitor prices that could not be
// scraped surface as 0 to keep the response contract's numeric shape.
type Result struct {
	OurPrice         int
	CexPrice         float64
	MusicMagpiePrice float64
	Message          string
}

// Service orchestrates the two competitor lookups and the offer math.
type Service struct {
	cex         pricing.Source
	musicMagpie pricing.Source
	calc        *Calculator
}

func NewService(cex, musicMagpie pricing.Source, calc *Calculator) *Service {
	return &Service{cex: cex, musicMagpie: musicMagpie, calc: calc}
}

// QuoteByCondition prices a device from its itemized condition: the
// higher competitor price is degraded by the condition adjustments
// before the bonus is added.
func (s *Service) QuoteByCondition(ctx context.Context, d Device, c Condition) Result {
	cexPrice, magpiePrice := s.lookup(ctx, pricing.Query{Brand: d.Brand, Model: d.Model, Storage: d.Storage})
	return s.offer(cexPrice, magpiePrice, func(baseline float64) float64 {
		return ConditionAdjusted(baseline, c)
	})
}

// QuoteByGrade prices a device from a coarse grade label. The grade
// narrows the CeX search to grade-specific listings, so the scraped
// baseline already reflects condition and gets the bonus directly.
func (s *Service) QuoteByGrade(ctx context.Context, d Device, grade string) Result {
	cexPrice, magpiePrice := s.lookup(ctx, pricing.Query{Brand: d.Brand, Model: d.Model, Storage: d.Storage, Grade: grade})
	return s.offer(cexPrice, magpiePrice, func(baseline float64) float64 {
		return baseline
	})
}

// lookup issues both competitor lookups concurrently and waits for both.
// Sources absorb their own failures, so neither lookup can cancel the
// other; a miss simply comes back not found.
func (s *Service) lookup(ctx context.Context, q pricing.Query) (cex, magpie pricing.Price) {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cex = s.cex.Lookup(ctx, q)
		return nil
	})
	g.Go(func() error {
		magpie = s.musicMagpie.Lookup(ctx, q)
		return nil
	})
	g.Wait()
	return cex, magpie
}

func (s *Service) offer(cex, magpie pricing.Price, adjust func(float64) float64) Result {
	res := Result{
		CexPrice:         cex.Amount,
		MusicMagpiePrice: magpie.Amount,
	}

	if !cex.Found && !magpie.Found {
		log.Printf("[quote] no competitor price available, no offer made")
		observability.QuotesTotal.WithLabelValues("no_offer").Inc()
		res.Message = NoOfferMessage
		return res
	}

	baseline := cex.Amount
	if magpie.Found && magpie.Amount > baseline {
		baseline = magpie.Amount
	}

	res.OurPrice = s.calc.Offer(adjust(baseline))
	observability.QuotesTotal.WithLabelValues("offered").Inc()
	return res
}
