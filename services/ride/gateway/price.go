package gateway

import (
	"context"
	"fmt"
	"time"

	httpclient "github.com/piresc/taximeter/internal/pkg/http"
	"github.com/piresc/taximeter/internal/pkg/logger"
	"github.com/piresc/taximeter/internal/pkg/models"
	"github.com/piresc/taximeter/internal/pkg/retry"
	"github.com/piresc/taximeter/services/ride"
)

type priceGW struct {
	client   *httpclient.Client
	url      string
	fallback models.PriceConfiguration
}

// NewPriceGW creates a price gateway reading rates from cfg.URL.
// Without a URL every call returns the fallback rates.
func NewPriceGW(cfg models.PricingConfig) ride.PriceGW {
	retrier := retry.New(retry.Config{
		MaxRetries: cfg.MaxRetries,
		BaseDelay:  100 * time.Millisecond,
		MaxDelay:   time.Second,
		Multiplier: 2.0,
		Jitter:     true,
	}, nil)

	return &priceGW{
		client: httpclient.NewClient(cfg.Timeout, retrier),
		url:    cfg.URL,
		fallback: models.PriceConfiguration{
			PricePerKm:     cfg.FallbackPricePerKm,
			PricePerSecond: cfg.FallbackPricePerSecond,
		},
	}
}

// GetPriceConfiguration fetches the current rates, falling back to the configured ones on any failure
func (g *priceGW) GetPriceConfiguration(ctx context.Context) models.PriceConfiguration {
	if g.url == "" {
		return g.fallback
	}

	var prices models.PriceConfiguration
	if err := g.client.GetJSON(ctx, g.url, &prices); err != nil {
		logger.WarnCtx(ctx, "Failed to fetch price configuration, using fallback rates",
			logger.String("url", g.url),
			logger.Err(err))
		return g.fallback
	}
	if err := validatePrices(prices); err != nil {
		logger.WarnCtx(ctx, "Invalid price configuration, using fallback rates",
			logger.String("url", g.url),
			logger.Err(err))
		return g.fallback
	}

	return prices
}

func validatePrices(p models.PriceConfiguration) error {
	if p.PricePerKm < 0 || p.PricePerSecond < 0 {
		return fmt.Errorf("negative rate: per km %v, per second %v", p.PricePerKm, p.PricePerSecond)
	}
	return nil
}
