package main

import (
	"log"

	"github.com/MdShadmanLabib/phonevalue-backend/internal/config"
	"github.com/MdShadmanLabib/phonevalue-backend/internal/httputil"
	"github.com/MdShadmanLabib/phonevalue-backend/internal/observability"
	"github.com/MdShadmanLabib/phonevalue-backend/internal/pricing"
	"github.com/MdShadmanLabib/phonevalue-backend/internal/quote"
	"github.com/MdShadmanLabib/phonevalue-backend/internal/transport/rest"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[server] load config: %v", err)
	}

	observability.Start(cfg.Server.MetricsPort)

	client := httputil.NewClient(cfg.Scrape.Timeout)
	cex := pricing.NewCex(client, cfg.Scrape.CexBaseURL)
	musicMagpie := pricing.NewMusicMagpie(client, cfg.Scrape.MusicMagpieBaseURL)

	svc := quote.NewService(cex, musicMagpie, quote.NewCalculator(nil))
	server := rest.New(cfg, svc)

	log.Printf("[server] listening on :%s", cfg.Server.Port)
	if err := server.Listen(cfg.Server.Port); err != nil {
		log.Fatalf("[server] serve: %v", err)
	}
}
